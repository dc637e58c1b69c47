package feedback

import (
	"fmt"
	"strings"
)

// Section labels the model is instructed to emit. The parser matches them
// case-insensitively by keyword, so minor formatting drift is tolerated.
const (
	labelRephrasing = "Positive Rephrasing"
	labelWhy        = "The Why"
	labelSuggestion = "Suggested Improvement"
	labelResource   = "Further Learning"
)

const systemPrompt = `You are an expert senior software engineer and a patient, empathetic mentor.
Your mission is to transform direct, critical code review comments into constructive, educational, and encouraging feedback.

When given a code snippet and a single review comment, respond in Markdown with exactly these four sections, each introduced by a level-3 heading, in this order:

### Positive Rephrasing
Rewrite the feedback in a gentle, supportive, and encouraging tone. Start by acknowledging the developer's effort or finding something positive about the original attempt.

### The Why
Clearly and concisely explain the underlying software engineering principle (e.g., performance, readability, style conventions, security). This is the core educational component.

### Suggested Improvement
Provide a concrete, corrected code snippet that implements the suggestion, inside a fenced code block.

### Further Learning
Provide one high-quality URL to external documentation or a well-regarded article that explains the concept in more detail.

Do not add any other sections, preamble, or closing remarks.`

// SystemPrompt returns the mentor persona prompt shared by all calls.
func SystemPrompt() string {
	return systemPrompt
}

func toneGuidance(sev Severity) string {
	switch sev {
	case SeverityHigh:
		return "This comment points at a potential correctness or security problem. Be supportive but convey clear urgency about fixing it."
	case SeverityMedium:
		return "This comment points at a design or efficiency concern. Be encouraging while explaining why the improvement matters."
	default:
		return "This comment is a stylistic or convention nit. Keep the tone light and friendly; this is polish, not a problem."
	}
}

// BuildAnalysisPrompt constructs the per-comment prompt. Pure string
// construction; no length validation is performed (the provider enforces
// its own limits).
func BuildAnalysisPrompt(snippet, lang, comment string, sev Severity, rules *Rules) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Review comment to transform: %q\n\n", comment)
	b.WriteString(toneGuidance(sev))
	b.WriteString("\n")

	if rulesSection := BuildRulesPromptSection(rules); rulesSection != "" {
		b.WriteString(rulesSection)
	}

	b.WriteString("\nCode snippet the comment refers to:\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n", lang, snippet)

	return b.String()
}

// BuildSummaryPrompt constructs the closing-summary prompt from all prior
// analyses. It is only called after every per-comment analysis completed.
func BuildSummaryPrompt(snippet, lang string, analyses []CommentAnalysis, rules *Rules) string {
	var b strings.Builder

	b.WriteString("You have just provided detailed feedback on a code snippet.\n\n")
	b.WriteString("Now write a brief, holistic summary of all the feedback as a single encouraging paragraph. ")
	b.WriteString("Summarize the key areas for improvement in a motivating way, reference the categories of feedback given, and end on a positive, forward-looking note about the developer's work and potential. ")
	b.WriteString("Respond with the paragraph only: no headings, no lists.\n")

	if rulesSection := BuildRulesPromptSection(rules); rulesSection != "" {
		b.WriteString(rulesSection)
	}

	b.WriteString("\nOriginal code:\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n", lang, snippet)

	b.WriteString("\nFeedback that was given:\n")
	for i, a := range analyses {
		fmt.Fprintf(&b, "%d. Comment: %q (severity: %s)\n", i+1, a.Comment, a.Severity)
		if a.Rephrasing != "" {
			fmt.Fprintf(&b, "   Rephrased as: %s\n", firstLine(a.Rephrasing))
		}
		if a.Explanation != "" {
			fmt.Fprintf(&b, "   Principle: %s\n", firstLine(a.Explanation))
		}
	}

	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
