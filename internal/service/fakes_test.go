package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- In-memory fakes backing the service tests ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now().UTC()
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) SetStartDate(ctx context.Context, id primitive.ObjectID, startDate string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if u.StartDate != "" {
		return repository.ErrUpdateFailed
	}
	u.StartDate = startDate
	return nil
}

func (r *fakeUserRepo) UpdateTimezone(ctx context.Context, id primitive.ObjectID, timezone string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Timezone = timezone
	return nil
}

func (r *fakeUserRepo) UpdateTier(ctx context.Context, id primitive.ObjectID, tier domain.Tier) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Tier = tier
	return nil
}

type fakeExerciseLogRepo struct {
	entries []domain.ExerciseEntry
}

func newFakeExerciseLogRepo() *fakeExerciseLogRepo {
	return &fakeExerciseLogRepo{}
}

func (r *fakeExerciseLogRepo) Create(ctx context.Context, entry *domain.ExerciseEntry) (primitive.ObjectID, error) {
	stored := *entry
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, stored)
	return stored.ID, nil
}

// newestFirst matches the mongo repository's sort: localDate desc, then
// insertion order desc.
func (r *fakeExerciseLogRepo) newestFirst(filter func(domain.ExerciseEntry) bool) []domain.ExerciseEntry {
	var out []domain.ExerciseEntry
	for _, e := range r.entries {
		if filter(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LocalDate != out[j].LocalDate {
			return out[i].LocalDate > out[j].LocalDate
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeExerciseLogRepo) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, localDate string) ([]domain.ExerciseEntry, error) {
	return r.newestFirst(func(e domain.ExerciseEntry) bool {
		return e.UserID == userID && e.LocalDate == localDate
	}), nil
}

func (r *fakeExerciseLogRepo) GetByUserAndExercise(ctx context.Context, userID primitive.ObjectID, exerciseName string, limit int64) ([]domain.ExerciseEntry, error) {
	out := r.newestFirst(func(e domain.ExerciseEntry) bool {
		return e.UserID == userID && e.ExerciseName == exerciseName
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeExerciseLogRepo) GetAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ExerciseEntry, error) {
	return r.newestFirst(func(e domain.ExerciseEntry) bool {
		return e.UserID == userID
	}), nil
}

func (r *fakeExerciseLogRepo) CompletedDates(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	seen := make(map[string]struct{})
	var dates []string
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		if _, dup := seen[e.LocalDate]; dup {
			continue
		}
		seen[e.LocalDate] = struct{}{}
		dates = append(dates, e.LocalDate)
	}
	return dates, nil
}

type fakeDemoVideoRepo struct {
	videos map[string]*domain.DemoVideo
}

func newFakeDemoVideoRepo() *fakeDemoVideoRepo {
	return &fakeDemoVideoRepo{videos: make(map[string]*domain.DemoVideo)}
}

func (r *fakeDemoVideoRepo) Upsert(ctx context.Context, video *domain.DemoVideo) error {
	stored := *video
	if existing, ok := r.videos[video.ExerciseName]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = primitive.NewObjectID()
	}
	r.videos[video.ExerciseName] = &stored
	return nil
}

func (r *fakeDemoVideoRepo) GetByExercise(ctx context.Context, exerciseName string) (*domain.DemoVideo, error) {
	v, ok := r.videos[exerciseName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

type fakeFileStorage struct {
	deletedKeys []string
}

func (s *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/upload/%s", objectKey), nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/download/%s", objectKey), nil
}

func (s *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	s.deletedKeys = append(s.deletedKeys, objectKey)
	return nil
}
