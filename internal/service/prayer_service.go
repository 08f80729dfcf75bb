package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bellator/internal/cache"
	apperrors "bellator/internal/errors"
	"bellator/internal/model"
	"bellator/internal/repository"
)

const (
	// DefaultApprovedLimit caps the public prayer wall when no limit is given.
	DefaultApprovedLimit = 50

	approvedCacheTTL = 1 * time.Minute
)

// SubmitPrayerInput carries the fields of a prayer submission.
type SubmitPrayerInput struct {
	Title       string
	Content     string
	Category    string
	SubmittedBy string
	Email       string
	Anonymous   bool
}

// SupportResult reports the outcome of a support attempt. A repeat supporter
// is the expected steady state, not an error.
type SupportResult struct {
	AlreadySupported bool `json:"already_supported"`
}

// PrayerService implements the moderation workflow: submissions enter a
// pending queue and become publicly listed only after admin approval.
type PrayerService interface {
	Submit(ctx context.Context, in SubmitPrayerInput) (uint, error)
	Approve(ctx context.Context, id uint) error
	ListApproved(ctx context.Context, limit int) ([]model.Prayer, error)
	ListPending(ctx context.Context) ([]model.Prayer, error)
	AddSupport(ctx context.Context, prayerID uint, supporterIP string) (SupportResult, error)
}

type prayerService struct {
	prayers repository.PrayerRepository
	cache   *cache.Client
}

// NewPrayerService builds a PrayerService with repository and cache.
func NewPrayerService(prayers repository.PrayerRepository, cache *cache.Client) PrayerService {
	return &prayerService{prayers: prayers, cache: cache}
}

func approvedCacheKey(limit int) string {
	return fmt.Sprintf("prayers:approved:%d", limit)
}

func (s *prayerService) Submit(ctx context.Context, in SubmitPrayerInput) (uint, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	submittedBy := strings.TrimSpace(in.SubmittedBy)
	if title == "" || content == "" || in.Category == "" || submittedBy == "" {
		return 0, apperrors.ErrMissingFields
	}
	if !model.ValidCategory(in.Category) {
		return 0, apperrors.ErrInvalidCategory
	}

	prayer := &model.Prayer{
		Title:       title,
		Content:     content,
		Category:    in.Category,
		SubmittedBy: submittedBy,
		Email:       strings.TrimSpace(in.Email),
		Anonymous:   in.Anonymous,
	}
	if err := s.prayers.Create(ctx, prayer); err != nil {
		return 0, fmt.Errorf("create prayer: %w", err)
	}
	return prayer.ID, nil
}

// Approve moves a prayer into the public wall. Re-approving is a no-op
// success; the approval timestamp is never re-stamped.
func (s *prayerService) Approve(ctx context.Context, id uint) error {
	already, err := s.prayers.Approve(ctx, id, time.Now())
	if err != nil {
		return err
	}
	if !already {
		s.invalidateApproved(ctx)
	}
	return nil
}

func (s *prayerService) ListApproved(ctx context.Context, limit int) ([]model.Prayer, error) {
	if limit <= 0 {
		limit = DefaultApprovedLimit
	}

	key := approvedCacheKey(limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Prayer
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	prayers, err := s.prayers.ListApproved(ctx, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(prayers); err == nil {
		_ = s.cache.Set(ctx, key, payload, approvedCacheTTL)
	}
	return prayers, nil
}

func (s *prayerService) ListPending(ctx context.Context) ([]model.Prayer, error) {
	return s.prayers.ListPending(ctx)
}

func (s *prayerService) AddSupport(ctx context.Context, prayerID uint, supporterIP string) (SupportResult, error) {
	already, err := s.prayers.AddSupport(ctx, prayerID, supporterIP)
	if err != nil {
		return SupportResult{}, err
	}
	if !already {
		s.invalidateApproved(ctx)
	}
	return SupportResult{AlreadySupported: already}, nil
}

// invalidateApproved drops the cached default wall page. Non-default limits
// age out with the short TTL.
func (s *prayerService) invalidateApproved(ctx context.Context) {
	_ = s.cache.Delete(ctx, approvedCacheKey(DefaultApprovedLimit))
}
