// Empath is a CLI that turns terse code review comments into empathetic,
// educational feedback using LLM providers.
//
// It reads a JSON file containing a code snippet and a list of review
// comments, asks the configured provider to rephrase each comment
// constructively (with the underlying principle, a corrected code suggestion,
// and a link for further reading), and writes a Markdown report ending with an
// encouraging overall summary.
//
// Usage:
//
//	empath review input.json                  # write report.md
//	empath review input.json -o feedback.md   # choose the output path
//	empath review input.json --format json    # machine-readable report
//	empath models doctor                      # validate provider credentials
//
// See https://github.com/dshills/empath for full documentation.
package main
