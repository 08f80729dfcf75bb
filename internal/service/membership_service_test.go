package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
)

// MockJoinRequestRepository is a mock implementation of JoinRequestRepository.
type MockJoinRequestRepository struct {
	mock.Mock
}

func (m *MockJoinRequestRepository) Create(ctx context.Context, req *model.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockJoinRequestRepository) ListPending(ctx context.Context) ([]model.JoinRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JoinRequest), args.Error(1)
}

func TestSubmitJoinRequest(t *testing.T) {
	repo := new(MockJoinRequestRepository)
	svc := NewMembershipService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.JoinRequest) bool {
		return r.Name == "Ann" && r.Email == "ann@example.com" && r.Status == model.JoinStatusPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.JoinRequest).ID = 5
	}).Return(nil)

	id, err := svc.Submit(context.Background(), JoinRequestInput{Name: "Ann", Email: "Ann@Example.com"})
	assert.NoError(t, err)
	assert.Equal(t, uint(5), id)
}

func TestSubmitJoinRequest_Validation(t *testing.T) {
	repo := new(MockJoinRequestRepository)
	svc := NewMembershipService(repo)
	ctx := context.Background()

	_, err := svc.Submit(ctx, JoinRequestInput{Email: "ann@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)

	_, err = svc.Submit(ctx, JoinRequestInput{Name: "Ann", Email: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListPendingJoinRequests(t *testing.T) {
	repo := new(MockJoinRequestRepository)
	svc := NewMembershipService(repo)
	ctx := context.Background()

	pending := []model.JoinRequest{{ID: 1}, {ID: 2}}
	repo.On("ListPending", ctx).Return(pending, nil)

	got, err := svc.ListPending(ctx)
	assert.NoError(t, err)
	assert.Equal(t, pending, got)
}
