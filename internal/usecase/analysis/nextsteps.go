package analysis

import (
	"fmt"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

const maxNextSteps = 3

// GenerateNextSteps turns prioritized action items into follow-up guidance.
// Items are expected in priority order, high first.
func GenerateNextSteps(items []entities.ExtractedActionItem) []string {
	if len(items) == 0 {
		return []string{"No specific next steps identified"}
	}

	var steps []string
	for _, item := range items {
		if len(steps) >= maxNextSteps {
			break
		}
		switch item.Priority {
		case entities.ActionItemPriorityHigh:
			steps = append(steps, fmt.Sprintf("Urgent: %s (assigned to %s)", item.Task, item.Assignee))
		case entities.ActionItemPriorityMedium:
			steps = append(steps, fmt.Sprintf("Follow up on: %s", item.Task))
		default:
			steps = append(steps, fmt.Sprintf("Monitor: %s", item.Task))
		}
	}
	return steps
}
