package parser

import "strings"

// LabeledStrategy extracts the JSON array following a SCHEDULE: label, the
// format the prompt explicitly asks for.
type LabeledStrategy struct{}

func (s *LabeledStrategy) Name() string { return "labeled" }

func (s *LabeledStrategy) Extract(text string) (string, bool) {
	idx := strings.Index(text, "SCHEDULE:")
	if idx < 0 {
		return "", false
	}
	return extractArray(text, idx+len("SCHEDULE:"))
}
