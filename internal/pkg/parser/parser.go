// Package parser extracts a structured schedule and explanation from a
// generative model's freeform completion. The model is not guaranteed to
// return valid JSON or to honor the response template, so extraction runs
// through an ordered chain of strategies; the first match wins.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/modelday/modelday/internal/modules/model"
)

// DefaultExplanation is returned when the completion has no EXPLANATION label.
const DefaultExplanation = "Schedule customized!"

// ParseError means the completion did not contain a recoverable schedule.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func newParseError(msg string) *ParseError { return &ParseError{msg: msg} }

// Result is the structured outcome of parsing one completion.
type Result struct {
	Schedule    []model.TimeSlot `json:"schedule"`
	Explanation string           `json:"explanation"`
}

// ExtractStrategy locates the text of a JSON schedule array inside a
// completion. Strategies are pure and independently testable.
type ExtractStrategy interface {
	// Extract returns the candidate JSON array text and whether it was found.
	Extract(text string) (string, bool)
	Name() string
}

func strategies() []ExtractStrategy {
	return []ExtractStrategy{
		&LabeledStrategy{},
		&BracketStrategy{},
		&FencedStrategy{},
	}
}

var explanationRe = regexp.MustCompile(`(?s)EXPLANATION:\s*(.*?)\s*SCHEDULE:`)

// Parse extracts the schedule and explanation from a raw completion.
func Parse(text string) (*Result, error) {
	stripped := stripFences(text)

	var arrayText string
	found := false
	for _, s := range strategies() {
		input := stripped
		if _, ok := s.(*FencedStrategy); ok {
			// The fenced strategy needs the markers that stripFences removes.
			input = text
		}
		if candidate, ok := s.Extract(input); ok {
			arrayText = candidate
			found = true
			break
		}
	}
	if !found {
		return nil, newParseError("Could not find schedule in AI response")
	}

	var raw []rawSlot
	if err := sonic.Unmarshal([]byte(arrayText), &raw); err != nil {
		return nil, newParseError("Could not find schedule in AI response")
	}
	if len(raw) == 0 {
		return nil, newParseError("Could not find schedule in AI response")
	}

	schedule := make([]model.TimeSlot, 0, len(raw))
	now := time.Now().UnixMilli()
	for i, r := range raw {
		schedule = append(schedule, normalizeSlot(r, now, i))
	}

	explanation := DefaultExplanation
	if m := explanationRe.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		explanation = strings.TrimSpace(m[1])
	}

	return &Result{Schedule: schedule, Explanation: explanation}, nil
}

type rawSlot struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

func normalizeSlot(r rawSlot, stamp int64, index int) model.TimeSlot {
	slot := model.TimeSlot{
		ID:       r.ID,
		Time:     r.Time,
		Activity: r.Activity,
		Category: r.Category,
		Color:    r.Color,
	}
	if slot.ID == "" {
		slot.ID = fmt.Sprintf("slot-%d-%d", stamp, index)
	}
	if slot.Category == "" {
		slot.Category = "personal"
	}
	if slot.Color == "" {
		slot.Color = ColorFor(slot.Activity)
	}
	return slot
}

// ColorFor derives a display color from keywords in the activity name.
func ColorFor(activity string) string {
	name := strings.ToLower(activity)
	switch {
	case strings.Contains(name, "work"), strings.Contains(name, "meeting"):
		return "#3B82F6" // blue
	case strings.Contains(name, "exercise"):
		return "#22C55E" // green
	case strings.Contains(name, "reading"), strings.Contains(name, "learning"):
		return "#8B5CF6" // purple
	case strings.Contains(name, "family"), strings.Contains(name, "meal"):
		return "#F59E0B" // amber
	case strings.Contains(name, "sleep"):
		return "#1E3A5F" // navy
	default:
		return "#9CA3AF" // gray
	}
}

var fenceRe = regexp.MustCompile("(?m)^```[a-zA-Z]*\\s*$")

func stripFences(text string) string {
	return fenceRe.ReplaceAllString(text, "")
}

// extractArray returns the balanced JSON array starting at the first '['
// at or after from, tracking string literals so brackets inside quoted
// values do not break the depth count.
func extractArray(text string, from int) (string, bool) {
	start := strings.Index(text[from:], "[")
	if start < 0 {
		return "", false
	}
	start += from

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}
