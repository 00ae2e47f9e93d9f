package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// MeetingFilters defines filtering and pagination options for listing meetings
type MeetingFilters struct {
	MeetingType string
	Limit       int
	Offset      int
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)
	Update(ctx context.Context, meeting *entities.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error
}
