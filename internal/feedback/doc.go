// Package feedback contains the core types and engine for turning terse
// review comments into empathetic, educational feedback.
//
// It defines the CommentAnalysis and Report types, infers a severity for each
// comment from keyword heuristics (used to calibrate the requested tone),
// assembles the per-comment and summary prompts, parses the model's labeled
// Markdown sections back into structured fields, and runs the pipeline.
//
// The pipeline is sequential by default; with workers > 1 the independent
// per-comment calls fan out under a bounded semaphore while the summary call
// waits for all of them. Provider failures degrade individual analyses
// instead of aborting the run, so every input comment always yields exactly
// one analysis.
//
// Rules packs (rules.go) let callers shape audience, tone, focus areas, and
// banned phrases appended to every prompt.
package feedback
