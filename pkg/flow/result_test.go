package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(5)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 5, r.Result())
	assert.NoError(t, r.Err())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, err, r.Err())
	assert.Equal(t, 0, r.Result())
}

func TestFailFrom_PreservesIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("upstream")
	from := Fail[string](err)

	to := FailFrom[string, int](from)

	require.True(t, to.IsFailure())
	assert.Equal(t, err, to.Err())
	assert.Equal(t, from.Id(), to.Id())
	assert.Equal(t, from.CreatedAt(), to.CreatedAt())
}

func TestOk(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Some(3), Success(3).Ok())
	assert.True(t, Fail[int](errors.New("no")).Ok().IsNone())
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	var zero Result[int]
	assert.True(t, zero.IsEmpty())
	assert.False(t, Success(1).IsEmpty())
	assert.False(t, Fail[int](errors.New("x")).IsEmpty())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GetErrors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, GetErrors(single))

	joined := errors.Join(errors.New("one"), errors.New("two"))
	assert.Len(t, GetErrors(joined), 2)
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	assert.True(t, IsNil(nil))

	var p *int
	assert.True(t, IsNil(p))

	v := 1
	assert.False(t, IsNil(&v))
	assert.False(t, IsNil(errors.New("x")))
}
