package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseEntry is a persisted exercise merged with the owning user's
// display name, echoed back to the caller after ingestion.
type ExerciseEntry struct {
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// --- Service Interface ---
type ExerciseService interface {
	AddExercise(ctx context.Context, userID, description, duration, date string) (*ExerciseEntry, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// AddExercise validates and persists a new exercise for an existing user.
// Validation fails fast on the first offending field, before any store
// interaction. A missing or unparsable date defaults to the current
// server time, captured once per call.
func (s *exerciseService) AddExercise(ctx context.Context, userID, description, duration, date string) (*ExerciseEntry, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if description == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	minutes, err := strconv.Atoi(duration)
	if err != nil || minutes <= 0 {
		return nil, &ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}

	// An id that is not a valid ObjectID cannot match any stored user.
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        domain.NormalizeDate(date, time.Now().UTC()),
	}

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		// Propagate: the echoed entry must describe data that was saved.
		return nil, err
	}

	return &ExerciseEntry{
		UserID:      user.ID.Hex(),
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}
