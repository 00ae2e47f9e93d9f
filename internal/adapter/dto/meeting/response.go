package meeting

import (
	"time"

	"github.com/johnquangdev/minutemeet/internal/adapter/dto/actionitem"
	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// ProcessMeetingResponse is the result of processing a transcript
type ProcessMeetingResponse struct {
	MeetingID   string                          `json:"meeting_id"`
	Title       string                          `json:"title"`
	Summary     string                          `json:"summary"`
	ActionItems []actionitem.ActionItemResponse `json:"action_items"`
	HealthScore float64                         `json:"health_score"`
	KeyInsights []string                        `json:"key_insights"`
	NextSteps   []string                        `json:"next_steps"`
}

// MeetingListItem is the compact shape used when listing meetings
type MeetingListItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	MeetingType string    `json:"meeting_type"`
	Duration    int       `json:"duration"`
	HealthScore float64   `json:"health_score"`
	CreatedAt   time.Time `json:"created_at"`
}

// MeetingDetailResponse is the full meeting shape including analysis results
type MeetingDetailResponse struct {
	ID            string                          `json:"id"`
	Title         string                          `json:"title"`
	Participants  []string                        `json:"participants"`
	MeetingType   string                          `json:"meeting_type"`
	Duration      int                             `json:"duration"`
	Summary       string                          `json:"summary"`
	HealthScore   float64                         `json:"health_score"`
	KeyInsights   []string                        `json:"key_insights"`
	NextSteps     []string                        `json:"next_steps"`
	ActionItems   []actionitem.ActionItemResponse `json:"action_items"`
	TranscriptURL string                          `json:"transcript_url,omitempty"`
	CreatedAt     time.Time                       `json:"created_at"`
	UpdatedAt     time.Time                       `json:"updated_at"`
}

// ProcessResponseFromEntity builds the processing response for a stored meeting
func ProcessResponseFromEntity(m *entities.Meeting) ProcessMeetingResponse {
	items := make([]actionitem.ActionItemResponse, 0, len(m.ActionItems))
	for i := range m.ActionItems {
		items = append(items, actionitem.FromEntity(&m.ActionItems[i]))
	}
	return ProcessMeetingResponse{
		MeetingID:   m.ID.String(),
		Title:       m.Title,
		Summary:     m.Summary,
		ActionItems: items,
		HealthScore: m.HealthScore,
		KeyInsights: m.KeyInsightList(),
		NextSteps:   m.NextStepList(),
	}
}

// ListItemFromEntity builds the compact list shape for a meeting
func ListItemFromEntity(m *entities.Meeting) MeetingListItem {
	return MeetingListItem{
		ID:          m.ID.String(),
		Title:       m.Title,
		MeetingType: m.MeetingType,
		Duration:    m.Duration,
		HealthScore: m.HealthScore,
		CreatedAt:   m.CreatedAt,
	}
}

// DetailFromEntity builds the full meeting response
func DetailFromEntity(m *entities.Meeting) MeetingDetailResponse {
	items := make([]actionitem.ActionItemResponse, 0, len(m.ActionItems))
	for i := range m.ActionItems {
		items = append(items, actionitem.FromEntity(&m.ActionItems[i]))
	}
	return MeetingDetailResponse{
		ID:            m.ID.String(),
		Title:         m.Title,
		Participants:  m.ParticipantList(),
		MeetingType:   m.MeetingType,
		Duration:      m.Duration,
		Summary:       m.Summary,
		HealthScore:   m.HealthScore,
		KeyInsights:   m.KeyInsightList(),
		NextSteps:     m.NextStepList(),
		ActionItems:   items,
		TranscriptURL: m.TranscriptURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
