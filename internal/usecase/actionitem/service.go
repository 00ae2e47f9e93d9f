package actionitem

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/minutemeet/errors"
	"github.com/johnquangdev/minutemeet/internal/domain/entities"
	"github.com/johnquangdev/minutemeet/internal/domain/repositories"
)

// CreateInput carries the fields for a manually created action item
type CreateInput struct {
	MeetingID string
	Task      string
	Assignee  string
	DueDate   string
	Priority  string
}

// UpdateInput carries the updatable fields of an action item. Nil fields
// are left unchanged.
type UpdateInput struct {
	Task     *string
	Assignee *string
	DueDate  *string
	Priority *string
	Status   *string
}

// Service defines action item CRUD operations
type Service interface {
	List(ctx context.Context) ([]*entities.ActionItem, error)
	Create(ctx context.Context, input CreateInput) (*entities.ActionItem, error)
	Update(ctx context.Context, id string, input UpdateInput) (*entities.ActionItem, error)
	Delete(ctx context.Context, id string) error
}

type actionItemService struct {
	itemRepo    repositories.ActionItemRepository
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// NewService constructs an action item service
func NewService(itemRepo repositories.ActionItemRepository, meetingRepo repositories.MeetingRepository, logger *zap.Logger) Service {
	return &actionItemService{
		itemRepo:    itemRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// List retrieves all action items, newest first
func (s *actionItemService) List(ctx context.Context) ([]*entities.ActionItem, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list action items", err)
	}
	return items, nil
}

// Create creates an action item attached to an existing meeting
func (s *actionItemService) Create(ctx context.Context, input CreateInput) (*entities.ActionItem, error) {
	if input.Task == "" {
		return nil, apperrors.ErrInvalidArgument("Task is required")
	}

	mid, err := uuid.Parse(input.MeetingID)
	if err != nil {
		return nil, apperrors.ErrMeetingNotFound(input.MeetingID)
	}
	if _, err := s.meetingRepo.FindByID(ctx, mid); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrMeetingNotFound(input.MeetingID)
		}
		return nil, apperrors.ErrDBQueryFailed("find meeting", err)
	}

	item := entities.NewActionItem(mid, input.Task)
	if input.Assignee != "" {
		item.Assignee = input.Assignee
	}
	if input.DueDate != "" {
		item.DueDate = input.DueDate
	}
	if input.Priority != "" {
		item.Priority = input.Priority
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create action item", err)
	}

	if s.logger != nil {
		s.logger.Info("action item created",
			zap.String("item_id", item.ID.String()),
			zap.String("meeting_id", mid.String()),
		)
	}
	return item, nil
}

// Update applies partial changes to an action item
func (s *actionItemService) Update(ctx context.Context, id string, input UpdateInput) (*entities.ActionItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrActionItemNotFound(id)
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrActionItemNotFound(id)
		}
		return nil, apperrors.ErrDBQueryFailed("find action item", err)
	}

	if input.Task != nil {
		item.Task = *input.Task
	}
	if input.Assignee != nil {
		item.Assignee = *input.Assignee
	}
	if input.DueDate != nil {
		item.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		item.Priority = *input.Priority
	}
	if input.Status != nil {
		item.Status = *input.Status
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, apperrors.ErrDBQueryFailed("update action item", err)
	}
	return item, nil
}

// Delete removes an action item
func (s *actionItemService) Delete(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.ErrActionItemNotFound(id)
	}

	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrActionItemNotFound(id)
		}
		return apperrors.ErrDBQueryFailed("find action item", err)
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return apperrors.ErrDBQueryFailed("delete action item", err)
	}
	return nil
}
