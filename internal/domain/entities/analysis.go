package entities

// AnalysisResult represents the structured output of the transcript analysis pipeline
type AnalysisResult struct {
	Summary     string                `json:"summary"`
	ActionItems []ExtractedActionItem `json:"action_items"`
	HealthScore float64               `json:"health_score"`
	KeyInsights []string              `json:"key_insights"`
	NextSteps   []string              `json:"next_steps"`
}

// ExtractedActionItem represents an action item detected in a transcript
type ExtractedActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date"` // as mentioned, e.g. "Friday", "next week"
	Priority string `json:"priority"` // low, medium, high
}
