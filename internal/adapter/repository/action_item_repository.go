package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
	"github.com/johnquangdev/minutemeet/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create creates a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateBatch creates multiple action items in one insert
func (r *actionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

// FindByID retrieves an action item by its ID
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByMeetingID retrieves all action items for a meeting
func (r *actionItemRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}
	return items, nil
}

// List retrieves all action items, newest first
func (r *actionItemRepository) List(ctx context.Context) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates an existing action item
func (r *actionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes an action item
func (r *actionItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.ActionItem{}, id).Error
}
