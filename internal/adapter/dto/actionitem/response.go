package actionitem

import (
	"time"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// ActionItemResponse represents an action item in API responses
type ActionItemResponse struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Task      string    `json:"task"`
	Assignee  string    `json:"assignee"`
	DueDate   string    `json:"due_date"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromEntity converts an ActionItem entity to its response shape
func FromEntity(item *entities.ActionItem) ActionItemResponse {
	return ActionItemResponse{
		ID:        item.ID.String(),
		MeetingID: item.MeetingID.String(),
		Task:      item.Task,
		Assignee:  item.Assignee,
		DueDate:   item.DueDate,
		Priority:  item.Priority,
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// FromEntities converts a slice of ActionItem entities
func FromEntities(items []*entities.ActionItem) []ActionItemResponse {
	responses := make([]ActionItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromEntity(item))
	}
	return responses
}
