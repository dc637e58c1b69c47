package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dshills/empath/internal/feedback"
)

func TestJSONWriter_RoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded feedback.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if decoded.Tool != "empath" {
		t.Errorf("Tool = %q, want empath", decoded.Tool)
	}
	if len(decoded.Analyses) != 2 {
		t.Errorf("Analyses = %d, want 2", len(decoded.Analyses))
	}
	if decoded.Analyses[0].Rephrasing == "" {
		t.Error("Missing positiveRephrasing in decoded analysis")
	}
	if decoded.Summary != report.Summary {
		t.Errorf("Summary = %q, want %q", decoded.Summary, report.Summary)
	}
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"markdown", false},
		{"md", false},
		{"json", false},
		{"xml", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := GetWriter(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("GetWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}
