package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ReviewInput is the parsed and validated input document. It is never mutated
// after Load returns; comment order is preserved through the whole pipeline.
type ReviewInput struct {
	CodeSnippet string   `json:"code_snippet"`
	Comments    []string `json:"review_comments"`
}

// Error describes an invalid or unreadable input file.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input file %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("input file %s: %s", e.Path, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// IsInputError checks if an error originated from input loading/validation.
func IsInputError(err error) bool {
	var ie *Error
	return errors.As(err, &ie)
}

// rawInput mirrors the on-disk JSON document. Pointer fields distinguish a
// missing key from a present-but-empty value.
type rawInput struct {
	CodeSnippet *string   `json:"code_snippet"`
	Comments    *[]string `json:"review_comments"`
}

// Load reads and validates the input JSON file at path.
func Load(path string) (ReviewInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ReviewInput{}, &Error{Path: path, Reason: "file not found"}
		}
		return ReviewInput{}, &Error{Path: path, Reason: "cannot read file", Err: err}
	}

	var raw rawInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return ReviewInput{}, &Error{Path: path, Reason: "invalid JSON", Err: err}
	}

	if raw.CodeSnippet == nil {
		return ReviewInput{}, &Error{Path: path, Reason: `missing required key "code_snippet"`}
	}
	if raw.Comments == nil {
		return ReviewInput{}, &Error{Path: path, Reason: `missing required key "review_comments"`}
	}
	if strings.TrimSpace(*raw.CodeSnippet) == "" {
		return ReviewInput{}, &Error{Path: path, Reason: `"code_snippet" must not be empty`}
	}
	if len(*raw.Comments) == 0 {
		return ReviewInput{}, &Error{Path: path, Reason: `"review_comments" must not be empty`}
	}
	for i, c := range *raw.Comments {
		if strings.TrimSpace(c) == "" {
			return ReviewInput{}, &Error{Path: path, Reason: fmt.Sprintf("review comment %d is empty", i+1)}
		}
	}

	return ReviewInput{
		CodeSnippet: *raw.CodeSnippet,
		Comments:    *raw.Comments,
	}, nil
}
