package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// SummaryClient abstracts the remote summarization model
type SummaryClient interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Engine runs the full transcript analysis pipeline
type Engine struct {
	summarizer SummaryClient
	logger     *zap.Logger
}

// NewEngine constructs an analysis engine. summarizer may be nil, in which
// case extractive summarization is always used.
func NewEngine(summarizer SummaryClient, logger *zap.Logger) *Engine {
	return &Engine{
		summarizer: summarizer,
		logger:     logger,
	}
}

// Analyze produces the complete analysis for a meeting transcript
func (e *Engine) Analyze(ctx context.Context, transcript string, participants []string, meetingType string, durationMinutes int) (*entities.AnalysisResult, error) {
	actionItems := ExtractActionItems(transcript, participants)

	summary := e.summarize(ctx, transcript, meetingType)

	result := &entities.AnalysisResult{
		Summary:     summary,
		ActionItems: actionItems,
		HealthScore: CalculateHealthScore(transcript, len(actionItems), len(participants), durationMinutes),
		KeyInsights: ExtractKeyInsights(transcript),
		NextSteps:   GenerateNextSteps(actionItems),
	}

	if e.logger != nil {
		e.logger.Info("transcript analysis completed",
			zap.Int("action_items", len(result.ActionItems)),
			zap.Float64("health_score", result.HealthScore),
			zap.Int("key_insights", len(result.KeyInsights)),
		)
	}

	return result, nil
}

// summarize prefers the remote model and falls back to extractive
// summarization when the model is unavailable or fails
func (e *Engine) summarize(ctx context.Context, transcript, meetingType string) string {
	if e.summarizer != nil {
		maxLen, minLen := SummaryLengthBounds(transcript)
		summary, err := e.summarizer.Summarize(ctx, transcript, maxLen, minLen)
		if err == nil && summary != "" {
			return summary
		}
		if e.logger != nil {
			e.logger.Warn("remote summarization failed, using extractive fallback", zap.Error(err))
		}
	}
	return ExtractiveSummary(transcript, meetingType)
}
