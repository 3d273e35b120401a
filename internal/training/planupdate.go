package training

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

// UpdateConfirmation is appended to a coach reply after directives were applied.
const UpdateConfirmation = "✓ Training plan updated!"

const updatePrefix = "UPDATE:"

// PlanUpdate is one parsed "UPDATE: Week N, Day, Type, Miles, Pace" directive.
type PlanUpdate struct {
	Week    int     `json:"week"`
	Day     string  `json:"day"`
	Type    string  `json:"type"`
	Mileage float64 `json:"mileage"`
	Pace    string  `json:"pace"`
}

var updatePattern = regexp.MustCompile(`^UPDATE:\s*Week\s*(\d+),\s*(\w+),\s*([^,]+),\s*([\d.]+),\s*(.+)$`)

// ParsePlanUpdates extracts plan directives from free-form coach text. The
// grammar is deliberately best-effort: the model is only loosely instructed to
// follow it, so lines that don't match are dropped without error.
func ParsePlanUpdates(text string) []PlanUpdate {
	var updates []PlanUpdate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, updatePrefix) {
			continue
		}
		match := updatePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		week, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		mileage, err := strconv.ParseFloat(match[4], 64)
		if err != nil {
			continue
		}
		updates = append(updates, PlanUpdate{
			Week:    week,
			Day:     strings.TrimSpace(match[2]),
			Type:    strings.TrimSpace(match[3]),
			Mileage: mileage,
			Pace:    strings.TrimSpace(match[5]),
		})
	}
	return updates
}

// ApplyPlanUpdates overwrites matching (week, day) slots in place and returns
// how many updates landed. Updates are absolute, so reapplying the same set is
// a no-op; a missing week or day silently skips that update. Empty type or
// pace fields preserve the slot's existing value.
func ApplyPlanUpdates(plan models.TrainingPlan, updates []PlanUpdate) int {
	applied := 0
	for _, update := range updates {
		week, ok := plan[update.Week]
		if !ok {
			continue
		}
		for i := range week {
			if week[i].Day != update.Day {
				continue
			}
			if update.Type != "" {
				week[i].Type = update.Type
			}
			week[i].Planned = update.Mileage
			if update.Pace != "" {
				pace := update.Pace
				week[i].Pace = &pace
			}
			applied++
			break
		}
	}
	return applied
}

// StripPlanUpdates removes directive lines from the text shown to the user.
func StripPlanUpdates(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimRight(line, "\r"), updatePrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
