package meeting

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/minutemeet/errors"
	"github.com/johnquangdev/minutemeet/internal/domain/entities"
	"github.com/johnquangdev/minutemeet/internal/domain/repositories"
	"github.com/johnquangdev/minutemeet/internal/infrastructure/cache"
	"github.com/johnquangdev/minutemeet/internal/usecase/analysis"
	"github.com/johnquangdev/minutemeet/pkg/config"
)

const minTranscriptLength = 10

// TranscriptArchiver stores raw transcripts in object storage and hands out
// short-lived links to archived objects
type TranscriptArchiver interface {
	ArchiveTranscript(ctx context.Context, meetingID, transcript string) (string, error)
	TranscriptURL(ctx context.Context, objectName string) (string, error)
}

// ProcessInput carries a transcript and its metadata into the pipeline
type ProcessInput struct {
	Title        string
	Transcript   string
	Participants []string
	MeetingType  string
	Duration     int
}

// Service defines meeting processing and retrieval operations
type Service interface {
	Process(ctx context.Context, input ProcessInput) (*entities.Meeting, error)
	GetByID(ctx context.Context, id string) (*entities.Meeting, error)
	List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)
}

type meetingService struct {
	meetingRepo repositories.MeetingRepository
	itemRepo    repositories.ActionItemRepository
	engine      *analysis.Engine
	store       cache.Store
	archiver    TranscriptArchiver
	cfg         *config.Config
	logger      *zap.Logger
}

// NewService constructs a meeting service. archiver may be nil when object
// storage is disabled.
func NewService(
	meetingRepo repositories.MeetingRepository,
	itemRepo repositories.ActionItemRepository,
	engine *analysis.Engine,
	store cache.Store,
	archiver TranscriptArchiver,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo: meetingRepo,
		itemRepo:    itemRepo,
		engine:      engine,
		store:       store,
		archiver:    archiver,
		cfg:         cfg,
		logger:      logger,
	}
}

// Process validates the input, analyzes the transcript and persists the
// meeting together with its extracted action items
func (s *meetingService) Process(ctx context.Context, input ProcessInput) (*entities.Meeting, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	result, err := s.analyzeWithCache(ctx, input)
	if err != nil {
		return nil, apperrors.ErrAnalysisFailed(err)
	}

	m := entities.NewMeeting(meetingTitle(input), input.Transcript, input.MeetingType, input.Duration)
	m.Summary = result.Summary
	m.HealthScore = result.HealthScore
	if err := m.SetParticipants(input.Participants); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if err := m.SetKeyInsights(result.KeyInsights); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if err := m.SetNextSteps(result.NextSteps); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	// Archival is best effort: the analysis result must not be lost because
	// object storage is down
	if s.archiver != nil {
		objectName, err := s.archiver.ArchiveTranscript(ctx, m.ID.String(), input.Transcript)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("failed to archive transcript",
					zap.String("meeting_id", m.ID.String()),
					zap.Error(err),
				)
			}
		} else {
			m.TranscriptObject = objectName
		}
	}

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create meeting", err)
	}

	items := make([]*entities.ActionItem, 0, len(result.ActionItems))
	for _, extracted := range result.ActionItems {
		item := entities.NewActionItem(m.ID, extracted.Task)
		item.Assignee = extracted.Assignee
		item.DueDate = extracted.DueDate
		item.Priority = extracted.Priority
		items = append(items, item)
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create action items", err)
	}

	for _, item := range items {
		m.ActionItems = append(m.ActionItems, *item)
	}

	if s.logger != nil {
		s.logger.Info("meeting processed",
			zap.String("meeting_id", m.ID.String()),
			zap.String("meeting_type", m.MeetingType),
			zap.Int("action_items", len(items)),
			zap.Float64("health_score", m.HealthScore),
		)
	}

	return m, nil
}

// GetByID retrieves a meeting including its action items
func (s *meetingService) GetByID(ctx context.Context, id string) (*entities.Meeting, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrMeetingNotFound(id)
	}

	m, err := s.meetingRepo.FindByID(ctx, mid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrMeetingNotFound(id)
		}
		return nil, apperrors.ErrDBQueryFailed("find meeting", err)
	}

	// A presigned link is a convenience; the meeting is returned either way
	if s.archiver != nil && m.TranscriptObject != "" {
		url, err := s.archiver.TranscriptURL(ctx, m.TranscriptObject)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("failed to presign transcript link",
					zap.String("meeting_id", m.ID.String()),
					zap.Error(err),
				)
			}
		} else {
			m.TranscriptURL = url
		}
	}
	return m, nil
}

// List retrieves meetings ordered by creation time with a total count
func (s *meetingService) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	meetings, total, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, apperrors.ErrDBQueryFailed("list meetings", err)
	}
	return meetings, total, nil
}

// analyzeWithCache reuses a cached analysis for identical input, running the
// engine on a miss
func (s *meetingService) analyzeWithCache(ctx context.Context, input ProcessInput) (*entities.AnalysisResult, error) {
	key := analysisCacheKey(input)

	if s.store != nil {
		cached, found, err := s.store.Get(ctx, key)
		if err != nil && s.logger != nil {
			s.logger.Warn("cache lookup failed", zap.Error(err))
		}
		if found {
			var result entities.AnalysisResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				if s.logger != nil {
					s.logger.Info("analysis cache hit", zap.String("key", key))
				}
				return &result, nil
			}
		}
	}

	result, err := s.engine.Analyze(ctx, input.Transcript, input.Participants, input.MeetingType, input.Duration)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		ttl := time.Hour
		if s.cfg != nil && s.cfg.Cache.AnalysisTTL > 0 {
			ttl = s.cfg.Cache.AnalysisTTL
		}
		if data, err := json.Marshal(result); err == nil {
			if err := s.store.Set(ctx, key, string(data), ttl); err != nil && s.logger != nil {
				s.logger.Warn("failed to cache analysis", zap.Error(err))
			}
		}
	}

	return result, nil
}

// validateInput enforces the request invariants for transcript processing
func validateInput(input ProcessInput) error {
	if len(strings.TrimSpace(input.Transcript)) < minTranscriptLength {
		return apperrors.ErrTranscriptTooShort(minTranscriptLength)
	}
	if !entities.IsValidMeetingType(input.MeetingType) {
		return apperrors.ErrInvalidMeetingType(input.MeetingType)
	}
	if len(input.Participants) == 0 {
		return apperrors.ErrInvalidArgument("At least one participant is required")
	}
	if input.Duration <= 0 {
		return apperrors.ErrInvalidArgument("Duration must be positive")
	}
	return nil
}

// analysisCacheKey hashes everything that influences the analysis outcome
func analysisCacheKey(input ProcessInput) string {
	h := sha256.New()
	h.Write([]byte(input.Transcript))
	h.Write([]byte(input.MeetingType))
	h.Write([]byte(strings.Join(input.Participants, ",")))
	h.Write([]byte(fmt.Sprintf("%d", input.Duration)))
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}

// meetingTitle falls back to a generated title when none was provided
func meetingTitle(input ProcessInput) string {
	if strings.TrimSpace(input.Title) != "" {
		return input.Title
	}
	label := strings.ReplaceAll(input.MeetingType, "_", " ")
	return fmt.Sprintf("%s meeting %s", strings.ToUpper(label[:1])+label[1:], time.Now().Format("2006-01-02"))
}
