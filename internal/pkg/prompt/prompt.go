// Package prompt renders the instruction prompt sent to the generative model
// when a user asks to customize their schedule.
package prompt

import (
	"fmt"
	"strings"

	"github.com/modelday/modelday/internal/modules/model"
)

// DefaultPhilosophy is used when a role model has no philosophy text.
const DefaultPhilosophy = "Focus on discipline, consistency, and a healthy balance between work, rest, and family."

// Build renders the full prompt from the current schedule, the user's
// free-text request and the role model's philosophy. The schedule is
// serialized in full; arbitrarily long schedules are not truncated here
// (callers may warn on estimated token count).
func Build(schedule []model.TimeSlot, userQuery, philosophy string) string {
	if strings.TrimSpace(philosophy) == "" {
		philosophy = DefaultPhilosophy
	}

	var b strings.Builder

	b.WriteString("You are a lifestyle coach helping a user restructure their daily schedule.\n\n")

	b.WriteString("CURRENT SCHEDULE:\n")
	for i, slot := range schedule {
		fmt.Fprintf(&b, "%d. %s: %s (%s)\n", i+1, slot.Time, slot.Activity, slot.Category)
	}

	b.WriteString("\nUSER REQUEST:\n")
	b.WriteString(userQuery)
	b.WriteString("\n")

	b.WriteString("\nROLE MODEL PHILOSOPHY:\n")
	b.WriteString(philosophy)
	b.WriteString("\n")

	b.WriteString(`
INSTRUCTIONS:
- Modify the current schedule according to the user request, guided by the role model's philosophy.
- Interpret abstract principles from the philosophy into concretely named schedule activities.
- Preserve 7-8 hours of sleep and keep meal times consistent.
- Respond in EXACTLY this format:

EXPLANATION: A 2-4 sentence explanation of the changes you made and how they reflect the philosophy.
SCHEDULE: A JSON array of schedule objects, each with fields "id", "time", "activity", "category", "color".
`)

	return b.String()
}
