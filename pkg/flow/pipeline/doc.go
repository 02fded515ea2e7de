// Package pipeline composes parse -> validate -> format stages over raw
// textual records into one fallible transformation with a fallback.
//
// The first failing stage short-circuits the rest: format only ever sees a
// fully validated record, and any failure collapses to the fallback text in
// Run. Callers needing to tell parse failures from validation failures
// inspect the Result returned by Eval before collapsing it.
//
// Key operations:
// - Pipeline.Eval: run the stages, keep the Result inspectable
// - Pipeline.Run: collapse to formatted output or fallback text
// - Rules/FirstOf: build validators from named predicates
package pipeline
