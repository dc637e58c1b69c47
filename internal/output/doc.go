// Package output renders feedback reports in different formats.
//
// Two writers are available: MarkdownWriter produces the shareable report
// document with one section per analyzed comment plus an overall summary,
// and JSONWriter emits the full report structure for machine consumption.
// Rendering is deterministic; the same report always produces identical
// bytes.
package output
