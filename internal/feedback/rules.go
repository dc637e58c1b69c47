package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Rules is a tone pack loaded from --rules. It lets teams shape the voice of
// the generated feedback without editing prompt code.
type Rules struct {
	Audience string   `json:"audience,omitempty"`
	Tone     string   `json:"tone,omitempty"`
	Focus    []string `json:"focus,omitempty"`
	Avoid    []string `json:"avoid,omitempty"`
}

// LoadRules loads a rules file from disk. Returns nil Rules and nil error if path is empty.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	return &rules, nil
}

// BuildRulesPromptSection returns additional prompt instructions derived from rules.
func BuildRulesPromptSection(rules *Rules) string {
	if rules == nil {
		return ""
	}

	var b strings.Builder

	if rules.Audience != "" {
		fmt.Fprintf(&b, "\nThe feedback is addressed to a %s developer; pitch explanations accordingly.\n", rules.Audience)
	}
	if rules.Tone != "" {
		fmt.Fprintf(&b, "\nOverall tone: %s.\n", rules.Tone)
	}
	if len(rules.Focus) > 0 {
		fmt.Fprintf(&b, "\nEmphasize these themes where relevant: %s.\n",
			strings.Join(rules.Focus, ", "))
	}
	if len(rules.Avoid) > 0 {
		b.WriteString("\nNever use these words or phrases:\n")
		for _, phrase := range rules.Avoid {
			fmt.Fprintf(&b, "- %q\n", phrase)
		}
	}

	return b.String()
}
