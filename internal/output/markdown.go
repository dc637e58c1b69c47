package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/empath/internal/feedback"
)

const emptyField = "_Not provided._"

// MarkdownWriter outputs the report as a shareable markdown document.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *feedback.Report) error {
	fmt.Fprintf(w, "# Empathetic Code Review Report\n\n")
	fmt.Fprintf(w, "A constructive rewrite of %d review comment(s), turning direct critique into mentoring feedback.\n\n", len(report.Analyses))

	fmt.Fprintf(w, "## Original Code Snippet\n\n")
	fmt.Fprintf(w, "```%s\n%s\n```\n\n", report.Language, strings.TrimRight(report.Snippet, "\n"))

	for _, a := range report.Analyses {
		fmt.Fprintf(w, "---\n\n")
		fmt.Fprintf(w, "### Analysis of Comment: \"%s\"\n\n", a.Comment)

		fmt.Fprintf(w, "**Positive Rephrasing:**\n\n%s\n\n", orPlaceholder(a.Rephrasing))
		fmt.Fprintf(w, "**The Why:**\n\n%s\n\n", orPlaceholder(a.Explanation))

		fmt.Fprintf(w, "**Suggested Improvement:**\n\n")
		m.writeSuggestion(w, a.Suggestion, report.Language)

		if a.Resource != "" {
			fmt.Fprintf(w, "**Further Learning:**\n\n%s\n\n", a.Resource)
		}
	}

	fmt.Fprintf(w, "---\n\n")
	fmt.Fprintf(w, "## Overall Summary\n\n")
	fmt.Fprintf(w, "%s\n\n", orPlaceholder(report.Summary))

	if report.Degraded > 0 {
		fmt.Fprintf(w, "*%d comment(s) could not be analyzed and are marked above.*\n\n", report.Degraded)
	}

	fmt.Fprintf(w, "*Generated by %s %s (%s/%s) in %dms (LLM: %dms)*\n",
		report.Tool, report.Version, report.Provider, report.Model,
		report.Timing.TotalMs, report.Timing.LLMMs)

	return nil
}

func (m *MarkdownWriter) writeSuggestion(w io.Writer, suggestion, lang string) {
	if suggestion == "" {
		fmt.Fprintf(w, "%s\n\n", emptyField)
		return
	}
	// Model output already fenced: pass through untouched.
	if strings.Contains(suggestion, "```") {
		fmt.Fprintf(w, "%s\n\n", strings.TrimRight(suggestion, "\n"))
		return
	}
	if looksLikeCode(suggestion) {
		fmt.Fprintf(w, "```%s\n%s\n```\n\n", lang, strings.TrimRight(suggestion, "\n"))
		return
	}
	fmt.Fprintf(w, "%s\n\n", suggestion)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyField
	}
	return s
}

func looksLikeCode(s string) bool {
	codeIndicators := []string{
		"func ", "if ", "for ", "return ", "var ", "const ",
		"def ", "class ", "import ", "from ",
		"{", "}", "=>", "->", ":=", "==",
		"()", "[];",
	}
	for _, indicator := range codeIndicators {
		if strings.Contains(s, indicator) {
			return true
		}
	}
	return false
}
