package repository

import (
	"alcyxob/x3-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDuplicate    = RepositoryError("duplicate record")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// SetStartDate records the user's program day 0. The filter only matches
	// users without a start date, so a second call cannot overwrite it.
	SetStartDate(ctx context.Context, id primitive.ObjectID, startDate string) error
	UpdateTimezone(ctx context.Context, id primitive.ObjectID, timezone string) error
	UpdateTier(ctx context.Context, id primitive.ObjectID, tier domain.Tier) error
}

// ExerciseLogRepository defines the interface for interacting with logged
// exercise sets. The completion record the scheduler consumes is derived
// from this collection.
type ExerciseLogRepository interface {
	Create(ctx context.Context, entry *domain.ExerciseEntry) (primitive.ObjectID, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, localDate string) ([]domain.ExerciseEntry, error)
	// GetByUserAndExercise returns entries for one exercise, newest first.
	// A limit of 0 means no limit.
	GetByUserAndExercise(ctx context.Context, userID primitive.ObjectID, exerciseName string, limit int64) ([]domain.ExerciseEntry, error)
	GetAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ExerciseEntry, error)
	// CompletedDates returns the distinct calendar days (YYYY-MM-DD) on which
	// the user logged at least one set: one entry per completed day.
	CompletedDates(ctx context.Context, userID primitive.ObjectID) ([]string, error)
}

// DemoVideoRepository defines the interface for exercise demo clip metadata.
type DemoVideoRepository interface {
	Upsert(ctx context.Context, video *domain.DemoVideo) error
	GetByExercise(ctx context.Context, exerciseName string) (*domain.DemoVideo, error)
}
