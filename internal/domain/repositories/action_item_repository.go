package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	Create(ctx context.Context, item *entities.ActionItem) error
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)
	List(ctx context.Context) ([]*entities.ActionItem, error)
	Update(ctx context.Context, item *entities.ActionItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
