package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	ListUpcoming(ctx context.Context, fromDate string) ([]model.Event, error)
	// Register inserts an attendee under the (event, email) uniqueness
	// constraint and bumps the participant counter, enforcing capacity.
	Register(ctx context.Context, reg *model.EventRegistration) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, fromDate string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND date >= ?", true, fromDate).
		Order("date ASC, time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Register runs in one transaction. Capacity is enforced with a conditional
// atomic increment so two concurrent registrations cannot oversell the last
// seat; the unique index rejects a repeat email for the same event.
func (r *eventRepository) Register(ctx context.Context, reg *model.EventRegistration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, reg.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEventNotFound
			}
			return err
		}

		if err := tx.Create(reg).Error; err != nil {
			if isDuplicateKey(err) {
				return apperrors.ErrAlreadyRegistered
			}
			return err
		}

		bump := tx.Model(&model.Event{}).Where("id = ?", reg.EventID)
		if event.MaxParticipants > 0 {
			bump = bump.Where("current_participants < ?", event.MaxParticipants)
		}
		res := bump.UpdateColumn("current_participants", gorm.Expr("current_participants + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Rolls back the registration row as well.
			return apperrors.ErrEventFull
		}
		return nil
	})
}
