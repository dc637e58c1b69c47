package feedback

import (
	"strings"
	"testing"
)

const wellFormedOutput = `### Positive Rephrasing
Great start on the filtering logic! There's an opportunity to make it even more efficient.

### The Why
List comprehensions combine filtering and collection in a single pass, which reads more clearly and avoids repeated appends.

### Suggested Improvement
` + "```python\nresults = [u for u in users if u.active]\n```" + `

### Further Learning
https://docs.python.org/3/tutorial/datastructures.html#list-comprehensions
`

func TestParseAnalysis_FourSections(t *testing.T) {
	a := ParseAnalysis("This is inefficient.", wellFormedOutput)

	if a.Comment != "This is inefficient." {
		t.Errorf("Comment = %q", a.Comment)
	}
	if !strings.HasPrefix(a.Rephrasing, "Great start") {
		t.Errorf("Rephrasing = %q", a.Rephrasing)
	}
	if !strings.Contains(a.Explanation, "single pass") {
		t.Errorf("Explanation = %q", a.Explanation)
	}
	if !strings.Contains(a.Suggestion, "```python") {
		t.Errorf("Suggestion should keep its code fence, got %q", a.Suggestion)
	}
	if a.Resource != "https://docs.python.org/3/tutorial/datastructures.html#list-comprehensions" {
		t.Errorf("Resource = %q", a.Resource)
	}
	if a.Degraded {
		t.Error("Degraded should be false for parsed output")
	}
}

func TestParseAnalysis_BoldInlineLabels(t *testing.T) {
	raw := "**Positive Rephrasing:** Nice instinct reaching for a loop here.\n" +
		"**The Why:** Each iteration allocates a new list.\n" +
		"**Suggested Improvement:** Use a comprehension.\n" +
		"**Further Learning:** https://example.com/comprehensions\n"

	a := ParseAnalysis("c", raw)

	if a.Rephrasing != "Nice instinct reaching for a loop here." {
		t.Errorf("Rephrasing = %q", a.Rephrasing)
	}
	if a.Explanation != "Each iteration allocates a new list." {
		t.Errorf("Explanation = %q", a.Explanation)
	}
	if a.Suggestion != "Use a comprehension." {
		t.Errorf("Suggestion = %q", a.Suggestion)
	}
	if a.Resource != "https://example.com/comprehensions" {
		t.Errorf("Resource = %q", a.Resource)
	}
}

func TestParseAnalysis_CaseInsensitiveHeadings(t *testing.T) {
	raw := "## POSITIVE REPHRASING\nwarm words\n## the why\nreasons\n## suggested improvement\nfix\n## further learning\nhttps://x.test\n"

	a := ParseAnalysis("c", raw)
	if a.Rephrasing != "warm words" || a.Explanation != "reasons" || a.Suggestion != "fix" || a.Resource != "https://x.test" {
		t.Errorf("Parsed = %+v", a)
	}
}

func TestParseAnalysis_MissingSections(t *testing.T) {
	raw := "### Positive Rephrasing\nkind words\n\n### The Why\nreasons\n"

	a := ParseAnalysis("c", raw)
	if a.Rephrasing != "kind words" {
		t.Errorf("Rephrasing = %q", a.Rephrasing)
	}
	if a.Explanation != "reasons" {
		t.Errorf("Explanation = %q", a.Explanation)
	}
	if a.Suggestion != "" {
		t.Errorf("Suggestion should be empty, got %q", a.Suggestion)
	}
	if a.Resource != "" {
		t.Errorf("Resource should be empty, got %q", a.Resource)
	}
}

func TestParseAnalysis_NoHeadingsFallsBackToExplanation(t *testing.T) {
	raw := "The model ignored the format and wrote one paragraph about naming conventions instead."

	a := ParseAnalysis("c", raw)
	if a.Explanation != raw {
		t.Errorf("Explanation = %q, want full raw text", a.Explanation)
	}
	if a.Rephrasing != "" || a.Suggestion != "" || a.Resource != "" {
		t.Errorf("Other sections should be empty: %+v", a)
	}
}

func TestParseAnalysis_HeadingInsideFenceIsContent(t *testing.T) {
	raw := "### Suggested Improvement\n```python\n# ### The Why\nresults = []\n```\n### Further Learning\nhttps://x.test\n"

	a := ParseAnalysis("c", raw)
	if !strings.Contains(a.Suggestion, "# ### The Why") {
		t.Errorf("Fenced heading should stay in Suggestion, got %q", a.Suggestion)
	}
	if a.Explanation != "" {
		t.Errorf("Explanation should be empty, got %q", a.Explanation)
	}
	if a.Resource != "https://x.test" {
		t.Errorf("Resource = %q", a.Resource)
	}
}

func TestMatchHeading(t *testing.T) {
	tests := []struct {
		line    string
		section int
		ok      bool
	}{
		{"### Positive Rephrasing", sectionRephrasing, true},
		{"**The Why:**", sectionWhy, true},
		{"- Suggested Improvement:", sectionSuggestion, true},
		{"Further Learning:", sectionResource, true},
		{"Further Reading:", sectionResource, true},
		{"Resource Link:", sectionResource, true},
		{"I wonder why this is slow", sectionNone, false},
		{"plain prose line", sectionNone, false},
		{"", sectionNone, false},
	}
	for _, tt := range tests {
		section, ok := matchHeading(tt.line)
		if section != tt.section || ok != tt.ok {
			t.Errorf("matchHeading(%q) = (%d, %v), want (%d, %v)", tt.line, section, ok, tt.section, tt.ok)
		}
	}
}
