package feedback

import "testing"

func TestInferSeverity(t *testing.T) {
	tests := []struct {
		comment string
		want    Severity
	}{
		{"This is a bug that will crash in production.", SeverityHigh},
		{"Potential SQL injection here.", SeverityHigh},
		{"This leaks file handles.", SeverityHigh},
		{"This is wrong, it fails on empty input.", SeverityHigh},
		{"This is inefficient. You should not loop twice.", SeverityMedium},
		{"O(n^2) complexity, consider a map.", SeverityMedium},
		{"Boolean comparison '== True' is redundant.", SeverityMedium},
		{"Using a mutable default argument is risky.", SeverityMedium},
		{"Variable 'u' is a bad name.", SeverityLow},
		{"Missing docstring.", SeverityLow},
		{"", SeverityLow},
	}
	for _, tt := range tests {
		if got := InferSeverity(tt.comment); got != tt.want {
			t.Errorf("InferSeverity(%q) = %s, want %s", tt.comment, got, tt.want)
		}
	}
}
