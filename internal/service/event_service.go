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
	upcomingCacheKey = "events:upcoming"
	upcomingCacheTTL = 1 * time.Minute
)

// CreateEventInput carries the fields of an admin event creation.
type CreateEventInput struct {
	Title                string
	Description          string
	EventType            string
	Date                 string
	Time                 string
	Location             string
	ContactInfo          string
	RegistrationRequired bool
	MaxParticipants      int
	CreatedBy            string
}

// RegisterEventInput carries one attendee signup.
type RegisterEventInput struct {
	EventID uint
	Name    string
	Email   string
	Phone   string
	Message string
}

// EventService handles event listing and registration.
type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (uint, error)
	ListUpcoming(ctx context.Context) ([]model.Event, error)
	Register(ctx context.Context, in RegisterEventInput) (uint, error)
}

type eventService struct {
	events repository.EventRepository
	cache  *cache.Client
}

// NewEventService builds an EventService with repository and cache.
func NewEventService(events repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{events: events, cache: cache}
}

func (s *eventService) Create(ctx context.Context, in CreateEventInput) (uint, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" ||
		in.EventType == "" || in.Date == "" || in.Time == "" ||
		strings.TrimSpace(in.Location) == "" || strings.TrimSpace(in.CreatedBy) == "" {
		return 0, apperrors.ErrMissingFields
	}

	event := &model.Event{
		Title:                strings.TrimSpace(in.Title),
		Description:          strings.TrimSpace(in.Description),
		EventType:            in.EventType,
		Date:                 in.Date,
		Time:                 in.Time,
		Location:             strings.TrimSpace(in.Location),
		ContactInfo:          strings.TrimSpace(in.ContactInfo),
		RegistrationRequired: in.RegistrationRequired,
		MaxParticipants:      in.MaxParticipants,
		CreatedBy:            strings.TrimSpace(in.CreatedBy),
		Active:               true,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	_ = s.cache.Delete(ctx, upcomingCacheKey)
	return event.ID, nil
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]model.Event, error) {
	if data, _ := s.cache.Get(ctx, upcomingCacheKey); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	today := time.Now().Format("2006-01-02")
	events, err := s.events.ListUpcoming(ctx, today)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, upcomingCacheKey, payload, upcomingCacheTTL)
	}
	return events, nil
}

func (s *eventService) Register(ctx context.Context, in RegisterEventInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if in.EventID == 0 || name == "" || email == "" {
		return 0, apperrors.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return 0, apperrors.ErrInvalidEmail
	}

	reg := &model.EventRegistration{
		EventID: in.EventID,
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.events.Register(ctx, reg); err != nil {
		return 0, err
	}
	_ = s.cache.Delete(ctx, upcomingCacheKey)
	return reg.ID, nil
}
