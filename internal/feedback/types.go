package feedback

import "strings"

// Severity classifies how serious the issue behind a review comment is.
// It is inferred locally from keywords and used only to calibrate the tone
// the model is asked for; a style nit gets a lighter touch than a bug.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var highSeverityWords = []string{
	"bug", "crash", "panic", "security", "injection", "vulnerab",
	"race condition", "deadlock", "leak", "data loss", "overflow",
	"incorrect", "wrong", "broken", "fails",
}

var mediumSeverityWords = []string{
	"inefficient", "performance", "slow", "o(n", "complexity",
	"duplicate", "duplicated", "error handling", "deprecated",
	"redundant", "mutable default", "global",
}

// InferSeverity classifies a comment by keyword heuristics. Comments that
// match nothing are treated as low severity (style, naming, conventions).
func InferSeverity(comment string) Severity {
	c := strings.ToLower(comment)
	for _, w := range highSeverityWords {
		if strings.Contains(c, w) {
			return SeverityHigh
		}
	}
	for _, w := range mediumSeverityWords {
		if strings.Contains(c, w) {
			return SeverityMedium
		}
	}
	return SeverityLow
}

// CommentAnalysis is the four-part empathetic rewrite of one review comment.
// Instances are created by the parser (or as degraded placeholders by the
// engine) and never mutated afterwards.
type CommentAnalysis struct {
	Comment     string   `json:"comment"`
	Severity    Severity `json:"severity"`
	Rephrasing  string   `json:"positiveRephrasing"`
	Explanation string   `json:"explanation"`
	Suggestion  string   `json:"suggestedImprovement"`
	Resource    string   `json:"furtherLearning,omitempty"`
	Degraded    bool     `json:"degraded,omitempty"`
}

// Timing contains performance metrics.
type Timing struct {
	LLMMs   int64 `json:"llmMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report is the top-level output structure. One analysis per input comment,
// in input order, always.
type Report struct {
	Tool     string            `json:"tool"`
	Version  string            `json:"version"`
	RunID    string            `json:"runId"`
	Provider string            `json:"provider"`
	Model    string            `json:"model"`
	Snippet  string            `json:"snippet"`
	Language string            `json:"language"`
	Analyses []CommentAnalysis `json:"analyses"`
	Summary  string            `json:"summary"`
	Degraded int               `json:"degraded"`
	Timing   Timing            `json:"timing"`
}
