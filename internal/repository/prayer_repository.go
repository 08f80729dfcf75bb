package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
)

// PrayerRepository defines prayer persistence operations.
type PrayerRepository interface {
	Create(ctx context.Context, prayer *model.Prayer) error
	FindByID(ctx context.Context, id uint) (*model.Prayer, error)
	ListApproved(ctx context.Context, limit int) ([]model.Prayer, error)
	ListPending(ctx context.Context) ([]model.Prayer, error)
	// Approve marks a pending prayer approved. Absent ids return
	// ErrPrayerNotFound; an already-approved prayer reports
	// alreadyApproved=true without touching the row.
	Approve(ctx context.Context, id uint, approvedAt time.Time) (alreadyApproved bool, err error)
	// AddSupport records a supporter for a prayer under the storage-level
	// uniqueness constraint and, on first support, atomically increments the
	// prayer's counter.
	AddSupport(ctx context.Context, prayerID uint, supporterIP string) (alreadySupported bool, err error)
}

type prayerRepository struct {
	db *gorm.DB
}

// NewPrayerRepository builds a GORM-backed repository.
func NewPrayerRepository(db *gorm.DB) PrayerRepository {
	return &prayerRepository{db: db}
}

func (r *prayerRepository) Create(ctx context.Context, prayer *model.Prayer) error {
	return r.db.WithContext(ctx).Create(prayer).Error
}

func (r *prayerRepository) FindByID(ctx context.Context, id uint) (*model.Prayer, error) {
	var prayer model.Prayer
	if err := r.db.WithContext(ctx).First(&prayer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPrayerNotFound
		}
		return nil, err
	}
	return &prayer, nil
}

func (r *prayerRepository) ListApproved(ctx context.Context, limit int) ([]model.Prayer, error) {
	var prayers []model.Prayer
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&prayers).Error; err != nil {
		return nil, err
	}
	return prayers, nil
}

// ListPending returns the moderation queue oldest-first so early submissions
// are not starved behind newer ones.
func (r *prayerRepository) ListPending(ctx context.Context) ([]model.Prayer, error) {
	var prayers []model.Prayer
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&prayers).Error; err != nil {
		return nil, err
	}
	return prayers, nil
}

// Approve is a conditional update: only a pending row transitions, so the
// approval timestamp is stamped once and never rewritten.
func (r *prayerRepository) Approve(ctx context.Context, id uint, approvedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Prayer{}).
		Where("id = ? AND is_approved = ?", id, false).
		Updates(map[string]interface{}{
			"is_approved": true,
			"approved_at": approvedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	// No pending row matched: either already approved or absent.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Prayer{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, apperrors.ErrPrayerNotFound
	}
	return true, nil
}

// AddSupport inserts the (prayer, supporter) pair and increments the counter
// in one transaction. The unique index is the sole dedup mechanism: two
// concurrent calls for the same pair insert exactly one row, so the counter
// moves by exactly one. The increment is a single SQL expression, never a
// read-modify-write.
func (r *prayerRepository) AddSupport(ctx context.Context, prayerID uint, supporterIP string) (bool, error) {
	var already bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Prayer{}).
			Where("id = ?", prayerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrPrayerNotFound
		}

		support := &model.PrayerSupport{PrayerID: prayerID, SupporterIP: supporterIP}
		if err := tx.Create(support).Error; err != nil {
			if isDuplicateKey(err) {
				already = true
				return nil
			}
			return err
		}

		return tx.Model(&model.Prayer{}).
			Where("id = ?", prayerID).
			UpdateColumn("support_count", gorm.Expr("support_count + ?", 1)).Error
	})
	if err != nil {
		return false, err
	}
	return already, nil
}
