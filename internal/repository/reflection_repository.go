package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bellator/internal/model"
)

// ReflectionRepository defines reflection persistence operations.
type ReflectionRepository interface {
	Create(ctx context.Context, reflection *model.Reflection) error
	ListPublished(ctx context.Context, limit int) ([]model.Reflection, error)
	// FindDaily returns the published daily reflection for a date, or nil.
	FindDaily(ctx context.Context, publishDate string) (*model.Reflection, error)
}

type reflectionRepository struct {
	db *gorm.DB
}

// NewReflectionRepository builds a GORM-backed repository.
func NewReflectionRepository(db *gorm.DB) ReflectionRepository {
	return &reflectionRepository{db: db}
}

func (r *reflectionRepository) Create(ctx context.Context, reflection *model.Reflection) error {
	return r.db.WithContext(ctx).Create(reflection).Error
}

func (r *reflectionRepository) ListPublished(ctx context.Context, limit int) ([]model.Reflection, error) {
	var reflections []model.Reflection
	if err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("publish_date DESC").
		Limit(limit).
		Find(&reflections).Error; err != nil {
		return nil, err
	}
	return reflections, nil
}

func (r *reflectionRepository) FindDaily(ctx context.Context, publishDate string) (*model.Reflection, error) {
	var reflection model.Reflection
	err := r.db.WithContext(ctx).
		Where("is_daily = ? AND publish_date = ? AND is_published = ?", true, publishDate, true).
		First(&reflection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reflection, nil
}
