package service_test

import (
	"context"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	createFn  func(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	getByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	getAllFn  func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

type mockExerciseRepo struct {
	createFn func(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	rangeFn  func(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]domain.Exercise, error)

	createCalls int
}

func (m *mockExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, exercise)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockExerciseRepo) GetByUserAndDateRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]domain.Exercise, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, from, to, limit)
	}
	return nil, nil
}

// knownUser returns a user repo that resolves exactly one user.
func knownUser(user *domain.User) *mockUserRepo {
	return &mockUserRepo{
		getByIDFn: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}
