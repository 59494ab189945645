package service

import (
	"context"
	"errors"
	"strconv"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultLogLimit caps a log query that names no explicit limit.
const defaultLogLimit = 9999

// ExerciseLog is the filtered, ordered, bounded view of a user's
// exercises. Count always matches the returned slice, never the
// pre-truncation total.
type ExerciseLog struct {
	UserID    string            `json:"userId"`
	Username  string            `json:"username"`
	Count     int               `json:"count"`
	Exercises []domain.Exercise `json:"exercises"`
}

// --- Service Interface ---
type LogService interface {
	GetLog(ctx context.Context, userID, from, to, limit string) (*ExerciseLog, error)
}

// logService implements the LogService interface.
type logService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewLogService creates a new instance of logService.
func NewLogService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) LogService {
	return &logService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// GetLog resolves the user and returns their exercises within the
// requested date window, oldest first, truncated to the limit.
//
// from and to are parsed permissively: an absent or unparsable bound
// falls back to the default window (2000-01-01 .. 3000-01-01) instead
// of failing the request. The limit defaults to 9999 when absent but a
// present, non-positive or non-numeric limit is rejected.
func (s *logService) GetLog(ctx context.Context, userID, from, to, limit string) (*ExerciseLog, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	bound := int64(defaultLogLimit)
	if limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil || n <= 0 {
			return nil, ErrInvalidLimit
		}
		bound = n
	}

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

	fromDate := domain.NormalizeDate(from, domain.LogWindowStart)
	toDate := domain.NormalizeDate(to, domain.LogWindowEnd)

	exercises, err := s.exerciseRepo.GetByUserAndDateRange(ctx, user.ID, fromDate, toDate, bound)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	return &ExerciseLog{
		UserID:    user.ID.Hex(),
		Username:  user.Username,
		Count:     len(exercises),
		Exercises: exercises,
	}, nil
}
