package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
)

// UserRepository defines user persistence operations. Lookups only return
// active users; inactive accounts behave as absent.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindActiveByID(ctx context.Context, id uint) (*model.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user. The email unique index is the authoritative
// duplicate guard; a violated index surfaces as ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return apperrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) FindActiveByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
