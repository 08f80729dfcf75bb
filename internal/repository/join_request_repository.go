package repository

import (
	"context"

	"gorm.io/gorm"

	"bellator/internal/model"
)

// JoinRequestRepository defines membership intake persistence operations.
type JoinRequestRepository interface {
	Create(ctx context.Context, req *model.JoinRequest) error
	ListPending(ctx context.Context) ([]model.JoinRequest, error)
}

type joinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository builds a GORM-backed repository.
func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(ctx context.Context, req *model.JoinRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// ListPending returns intake requests oldest-first, matching the review queue
// ordering used for prayers.
func (r *joinRequestRepository) ListPending(ctx context.Context) ([]model.JoinRequest, error) {
	var reqs []model.JoinRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.JoinStatusPending).
		Order("submitted_at ASC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}
