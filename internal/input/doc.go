// Package input loads and validates the review input document.
//
// The expected format is a JSON object with two required keys:
//
//	{
//	  "code_snippet": "<source code under review>",
//	  "review_comments": ["<terse comment>", ...]
//	}
//
// Any missing file, malformed JSON, missing key, empty snippet, or empty
// comment list is reported as an [*Error] (test with [IsInputError]) before
// any network call is made.
package input
