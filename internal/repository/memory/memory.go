// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds in-process user and exercise data behind a single lock.
type Store struct {
	mu        sync.Mutex
	users     []domain.User
	exercises []domain.Exercise
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Users returns the store's user repository view.
func (s *Store) Users() repository.UserRepository {
	return &userRepo{store: s}
}

// Exercises returns the store's exercise repository view.
func (s *Store) Exercises() repository.ExerciseRepository {
	return &exerciseRepo{store: s}
}

type userRepo struct {
	store *Store
}

type exerciseRepo struct {
	store *Store
}

// Ensure interfaces are met.
var _ repository.UserRepository = (*userRepo)(nil)
var _ repository.ExerciseRepository = (*exerciseRepo)(nil)

// --- UserRepository ---

// Create stores a new user and assigns it an ID.
func (r *userRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.store.users = append(r.store.users, *user)
	return user.ID, nil
}

// GetByID returns the user with the given ID.
func (r *userRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll returns every user in insertion order.
func (r *userRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]domain.User, len(r.store.users))
	copy(users, r.store.users)
	return users, nil
}

// --- ExerciseRepository ---

// Create stores a new exercise and assigns it an ID.
func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	r.store.exercises = append(r.store.exercises, *exercise)
	return exercise.ID, nil
}

// GetByUserAndDateRange returns the user's exercises within [from, to],
// sorted by date then insertion order, truncated to limit.
func (r *exerciseRepo) GetByUserAndDateRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]domain.Exercise, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []domain.Exercise
	for _, ex := range r.store.exercises {
		if ex.UserID != userID {
			continue
		}
		if ex.Date.Before(from) || ex.Date.After(to) {
			continue
		}
		matched = append(matched, ex)
	}

	// The slice is already in insertion order; a stable sort by date
	// keeps it as the tie-break.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	if limit >= 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
