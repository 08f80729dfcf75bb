package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
	"bellator/internal/repository"
)

// JoinRequestInput carries a membership intake submission.
type JoinRequestInput struct {
	Name           string
	Email          string
	Phone          string
	Age            int
	Interests      string
	VolunteerAreas string
	Message        string
}

// MembershipService handles the membership intake queue.
type MembershipService interface {
	Submit(ctx context.Context, in JoinRequestInput) (uint, error)
	ListPending(ctx context.Context) ([]model.JoinRequest, error)
}

type membershipService struct {
	requests repository.JoinRequestRepository
}

// NewMembershipService builds a MembershipService.
func NewMembershipService(requests repository.JoinRequestRepository) MembershipService {
	return &membershipService{requests: requests}
}

func (s *membershipService) Submit(ctx context.Context, in JoinRequestInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return 0, apperrors.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return 0, apperrors.ErrInvalidEmail
	}

	req := &model.JoinRequest{
		Name:           name,
		Email:          email,
		Phone:          strings.TrimSpace(in.Phone),
		Age:            in.Age,
		Interests:      strings.TrimSpace(in.Interests),
		VolunteerAreas: strings.TrimSpace(in.VolunteerAreas),
		Message:        strings.TrimSpace(in.Message),
		Status:         model.JoinStatusPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return 0, fmt.Errorf("create join request: %w", err)
	}
	return req.ID, nil
}

func (s *membershipService) ListPending(ctx context.Context) ([]model.JoinRequest, error) {
	return s.requests.ListPending(ctx)
}
