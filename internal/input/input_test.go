package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeInput(t, `{
		"code_snippet": "def f():\n    pass",
		"review_comments": ["rename f", "add a docstring"]
	}`)

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    pass", in.CodeSnippet)
	assert.Equal(t, []string{"rename f", "add a docstring"}, in.Comments)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, IsInputError(err))
	assert.Contains(t, err.Error(), "file not found")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeInput(t, `{"code_snippet": "x=1", "review_comments": [`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsInputError(err))
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoad_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{"no snippet", `{"review_comments": ["x"]}`, "code_snippet"},
		{"no comments", `{"code_snippet": "x = 1"}`, "review_comments"},
		{"empty snippet", `{"code_snippet": "  ", "review_comments": ["x"]}`, "must not be empty"},
		{"empty comment list", `{"code_snippet": "x = 1", "review_comments": []}`, "must not be empty"},
		{"blank comment", `{"code_snippet": "x = 1", "review_comments": ["ok", " "]}`, "comment 2 is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeInput(t, tt.content))
			require.Error(t, err)
			assert.True(t, IsInputError(err))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestLoad_OrderPreserved(t *testing.T) {
	path := writeInput(t, `{
		"code_snippet": "x = 1",
		"review_comments": ["first", "second", "third"]
	}`)

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, in.Comments)
}
