package feedback

import "strings"

// section identifiers used while splitting raw model output.
const (
	sectionNone = iota
	sectionRephrasing
	sectionWhy
	sectionSuggestion
	sectionResource
)

// ParseAnalysis splits raw model output into the four labeled sections.
// Section headings are matched case-insensitively by keyword, so the parser
// tolerates "### Positive Rephrasing", "**positive rephrasing:**", and
// similar variations. Missing sections are left as empty strings. If no
// recognizable heading is found at all, the entire raw text is placed in
// Explanation so that nothing is silently dropped.
func ParseAnalysis(comment, raw string) CommentAnalysis {
	analysis := CommentAnalysis{
		Comment:  comment,
		Severity: InferSeverity(comment),
	}

	sections := map[int][]string{}
	current := sectionNone
	matched := false
	inFence := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		// Fenced code (e.g. the suggested snippet) is always content; a
		// commented-out heading inside a fence must not start a new section.
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			sections[current] = append(sections[current], line)
			continue
		}
		if inFence {
			sections[current] = append(sections[current], line)
			continue
		}

		if section, ok := matchHeading(trimmed); ok {
			current = section
			matched = true
			// Inline content after the label ("**The Why:** because...").
			if rest := headingRemainder(trimmed); rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}

		sections[current] = append(sections[current], line)
	}

	if !matched {
		analysis.Explanation = strings.TrimSpace(raw)
		return analysis
	}

	analysis.Rephrasing = joinSection(sections[sectionRephrasing])
	analysis.Explanation = joinSection(sections[sectionWhy])
	analysis.Suggestion = joinSection(sections[sectionSuggestion])
	analysis.Resource = joinSection(sections[sectionResource])
	return analysis
}

// matchHeading reports whether a line introduces one of the four sections.
// A line is only considered a heading candidate when it carries markdown
// heading/emphasis/bullet decoration or ends with a colon; this keeps
// ordinary prose containing words like "why" from splitting a section.
func matchHeading(trimmed string) (int, bool) {
	if trimmed == "" {
		return sectionNone, false
	}
	decorated := strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, ">")
	if !decorated && !strings.HasSuffix(trimmed, ":") {
		return sectionNone, false
	}

	label := strings.ToLower(headingLabel(trimmed))
	if len(label) > 60 {
		return sectionNone, false
	}

	switch {
	case strings.Contains(label, "rephras"):
		return sectionRephrasing, true
	case strings.Contains(label, "why"):
		return sectionWhy, true
	case strings.Contains(label, "suggest"), strings.Contains(label, "improvement"):
		return sectionSuggestion, true
	case strings.Contains(label, "learning"), strings.Contains(label, "resource"), strings.Contains(label, "link"), strings.Contains(label, "reading"):
		return sectionResource, true
	}
	return sectionNone, false
}

// headingLabel strips markdown decoration and returns the label portion of a
// heading line (the text before any inline content separator).
func headingLabel(trimmed string) string {
	s := strings.TrimLeft(trimmed, "#*->• \t")
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(strings.TrimSpace(s), "*")
}

// headingRemainder returns inline content following the label's colon, with
// trailing emphasis markers removed ("**The Why:** text" -> "text").
func headingRemainder(trimmed string) string {
	i := strings.Index(trimmed, ":")
	if i < 0 {
		return ""
	}
	rest := strings.TrimSpace(trimmed[i+1:])
	rest = strings.TrimPrefix(rest, "**")
	return strings.TrimSpace(rest)
}

func joinSection(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
