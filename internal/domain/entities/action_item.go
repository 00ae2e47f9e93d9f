package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem represents a task extracted from a meeting transcript
type ActionItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Task      string    `json:"task" gorm:"type:text;not null"`
	Assignee  string    `json:"assignee" gorm:"type:varchar(255);default:'TBD'"`
	DueDate   string    `json:"due_date" gorm:"type:varchar(100);default:'TBD'"` // as spoken in the meeting, e.g. "Friday"
	Priority  string    `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a new ActionItem entity
func NewActionItem(meetingID uuid.UUID, task string) *ActionItem {
	return &ActionItem{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Task:      task,
		Assignee:  "TBD",
		DueDate:   "TBD",
		Priority:  ActionItemPriorityMedium,
		Status:    ActionItemStatusPending,
	}
}

// ActionItemPriority constants
const (
	ActionItemPriorityLow    = "low"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityHigh   = "high"
)

// ActionItemStatus constants
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in_progress"
	ActionItemStatusCompleted  = "completed"
	ActionItemStatusCancelled  = "cancelled"
)
