package actionitem

// CreateActionItemRequest is the payload for manually creating an action item
type CreateActionItemRequest struct {
	MeetingID string `json:"meeting_id" validate:"required"`
	Task      string `json:"task" validate:"required"`
	Assignee  string `json:"assignee"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateActionItemRequest is the payload for updating an action item.
// Omitted fields are left unchanged.
type UpdateActionItemRequest struct {
	Task     *string `json:"task"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"due_date"`
	Priority *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status   *string `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
}
