package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
)

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ListUpcoming(ctx context.Context, fromDate string) ([]model.Event, error) {
	args := m.Called(ctx, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) Register(ctx context.Context, reg *model.EventRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func validEvent() CreateEventInput {
	return CreateEventInput{
		Title:       "Community Rosary",
		Description: "Evening rosary at the chapel.",
		EventType:   "prayer",
		Date:        "2026-10-01",
		Time:        "19:00",
		Location:    "Main Chapel",
		CreatedBy:   "Administrator",
	}
}

func TestCreateEvent(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.Title == "Community Rosary" && e.Active && e.CurrentParticipants == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Event).ID = 3
	}).Return(nil)

	id, err := svc.Create(context.Background(), validEvent())
	assert.NoError(t, err)
	assert.Equal(t, uint(3), id)
}

func TestCreateEvent_MissingFields(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	in := validEvent()
	in.Location = ""
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterForEvent(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("Register", mock.Anything, mock.MatchedBy(func(r *model.EventRegistration) bool {
		return r.EventID == 3 && r.Email == "ann@example.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.EventRegistration).ID = 11
	}).Return(nil)

	id, err := svc.Register(context.Background(), RegisterEventInput{
		EventID: 3,
		Name:    "Ann",
		Email:   "Ann@Example.COM",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(11), id)
}

func TestRegisterForEvent_Failures(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterEventInput{EventID: 3, Name: "Ann", Email: "bad-email"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = svc.Register(ctx, RegisterEventInput{Name: "Ann", Email: "ann@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)

	repo.On("Register", ctx, mock.Anything).Return(apperrors.ErrAlreadyRegistered).Once()
	_, err = svc.Register(ctx, RegisterEventInput{EventID: 3, Name: "Ann", Email: "ann@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)

	repo.On("Register", ctx, mock.Anything).Return(apperrors.ErrEventFull).Once()
	_, err = svc.Register(ctx, RegisterEventInput{EventID: 3, Name: "Bea", Email: "bea@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrEventFull)
}
