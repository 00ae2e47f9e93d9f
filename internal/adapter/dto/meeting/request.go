package meeting

// ProcessMeetingRequest is the payload for processing a meeting transcript
type ProcessMeetingRequest struct {
	Title        string   `json:"title"`
	Transcript   string   `json:"transcript" validate:"required,min=10"`
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
	MeetingType  string   `json:"meeting_type" validate:"required,oneof=general executive sprint_planning budget client technical"`
	Duration     int      `json:"duration" validate:"required,gt=0"` // minutes
}

// ListMeetingsRequest carries query parameters for listing meetings
type ListMeetingsRequest struct {
	MeetingType string `query:"meeting_type" validate:"omitempty,oneof=general executive sprint_planning budget client technical"`
	Limit       int    `query:"limit" validate:"omitempty,gte=0"`
	Offset      int    `query:"offset" validate:"omitempty,gte=0"`
}
