package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "bellator/internal/errors"
	"bellator/internal/model"
	"bellator/internal/repository"
)

// DefaultReflectionLimit caps the published list when no limit is given.
const DefaultReflectionLimit = 20

// CreateReflectionInput carries the fields of an admin reflection post.
type CreateReflectionInput struct {
	Title              string
	Content            string
	ScriptureReference string
	Category           string
	Author             string
	Daily              bool
	PublishDate        string
}

// ReflectionService handles devotional content.
type ReflectionService interface {
	Create(ctx context.Context, in CreateReflectionInput) (uint, error)
	ListPublished(ctx context.Context, limit int) ([]model.Reflection, error)
	Daily(ctx context.Context, publishDate string) (*model.Reflection, error)
}

type reflectionService struct {
	reflections repository.ReflectionRepository
}

// NewReflectionService builds a ReflectionService.
func NewReflectionService(reflections repository.ReflectionRepository) ReflectionService {
	return &reflectionService{reflections: reflections}
}

func (s *reflectionService) Create(ctx context.Context, in CreateReflectionInput) (uint, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" ||
		in.Category == "" || strings.TrimSpace(in.Author) == "" || in.PublishDate == "" {
		return 0, apperrors.ErrMissingFields
	}

	reflection := &model.Reflection{
		Title:              strings.TrimSpace(in.Title),
		Content:            strings.TrimSpace(in.Content),
		ScriptureReference: strings.TrimSpace(in.ScriptureReference),
		Category:           in.Category,
		Author:             strings.TrimSpace(in.Author),
		Daily:              in.Daily,
		PublishDate:        in.PublishDate,
		Published:          true,
	}
	if err := s.reflections.Create(ctx, reflection); err != nil {
		return 0, fmt.Errorf("create reflection: %w", err)
	}
	return reflection.ID, nil
}

func (s *reflectionService) ListPublished(ctx context.Context, limit int) ([]model.Reflection, error) {
	if limit <= 0 {
		limit = DefaultReflectionLimit
	}
	return s.reflections.ListPublished(ctx, limit)
}

func (s *reflectionService) Daily(ctx context.Context, publishDate string) (*model.Reflection, error) {
	return s.reflections.FindDaily(ctx, publishDate)
}
