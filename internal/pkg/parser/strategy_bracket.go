package parser

import "regexp"

// BracketStrategy finds any bracketed array of JSON objects anywhere in the
// completion, for models that ignored the SCHEDULE: label.
type BracketStrategy struct{}

var arrayOfObjectsRe = regexp.MustCompile(`\[\s*\{`)

func (s *BracketStrategy) Name() string { return "bracket" }

func (s *BracketStrategy) Extract(text string) (string, bool) {
	loc := arrayOfObjectsRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return extractArray(text, loc[0])
}
