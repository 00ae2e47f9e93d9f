package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingType constants
const (
	MeetingTypeGeneral        = "general"
	MeetingTypeExecutive      = "executive"
	MeetingTypeSprintPlanning = "sprint_planning"
	MeetingTypeBudget         = "budget"
	MeetingTypeClient         = "client"
	MeetingTypeTechnical      = "technical"
)

// ValidMeetingTypes lists every accepted meeting type
var ValidMeetingTypes = []string{
	MeetingTypeGeneral,
	MeetingTypeExecutive,
	MeetingTypeSprintPlanning,
	MeetingTypeBudget,
	MeetingTypeClient,
	MeetingTypeTechnical,
}

// IsValidMeetingType reports whether t is an accepted meeting type
func IsValidMeetingType(t string) bool {
	for _, v := range ValidMeetingTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Meeting represents a processed meeting with its analysis results
type Meeting struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title            string         `json:"title" gorm:"type:varchar(500);not null"`
	Transcript       string         `json:"transcript" gorm:"type:text;not null"`
	Participants     datatypes.JSON `json:"participants" gorm:"type:jsonb;default:'[]'"`
	MeetingType      string         `json:"meeting_type" gorm:"type:varchar(50);default:'general'"`
	Duration         int            `json:"duration" gorm:"not null"` // minutes
	Summary          string         `json:"summary" gorm:"type:text"`
	HealthScore      float64        `json:"health_score"`
	KeyInsights      datatypes.JSON `json:"key_insights" gorm:"type:jsonb;default:'[]'"`
	NextSteps        datatypes.JSON `json:"next_steps" gorm:"type:jsonb;default:'[]'"`
	TranscriptObject string         `json:"transcript_object,omitempty" gorm:"type:text"`
	TranscriptURL    string         `json:"transcript_url,omitempty" gorm:"-"`
	ActionItems      []ActionItem   `json:"action_items,omitempty" gorm:"foreignKey:MeetingID"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new Meeting entity
func NewMeeting(title, transcript, meetingType string, duration int) *Meeting {
	return &Meeting{
		ID:          uuid.New(),
		Title:       title,
		Transcript:  transcript,
		MeetingType: meetingType,
		Duration:    duration,
	}
}

// SetParticipants stores the participant list as JSONB
func (m *Meeting) SetParticipants(participants []string) error {
	data, err := json.Marshal(participants)
	if err != nil {
		return err
	}
	m.Participants = data
	return nil
}

// ParticipantList returns the decoded participant names
func (m *Meeting) ParticipantList() []string {
	var participants []string
	if len(m.Participants) == 0 {
		return participants
	}
	_ = json.Unmarshal(m.Participants, &participants)
	return participants
}

// SetKeyInsights stores key insights as JSONB
func (m *Meeting) SetKeyInsights(insights []string) error {
	data, err := json.Marshal(insights)
	if err != nil {
		return err
	}
	m.KeyInsights = data
	return nil
}

// KeyInsightList returns the decoded key insights
func (m *Meeting) KeyInsightList() []string {
	var insights []string
	if len(m.KeyInsights) == 0 {
		return insights
	}
	_ = json.Unmarshal(m.KeyInsights, &insights)
	return insights
}

// SetNextSteps stores next steps as JSONB
func (m *Meeting) SetNextSteps(steps []string) error {
	data, err := json.Marshal(steps)
	if err != nil {
		return err
	}
	m.NextSteps = data
	return nil
}

// NextStepList returns the decoded next steps
func (m *Meeting) NextStepList() []string {
	var steps []string
	if len(m.NextSteps) == 0 {
		return steps
	}
	_ = json.Unmarshal(m.NextSteps, &steps)
	return steps
}
