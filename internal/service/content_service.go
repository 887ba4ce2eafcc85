package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/repository"
	"alcyxob/x3-tracker/internal/storage"

	"github.com/google/uuid" // For generating unique identifiers for S3 keys
)

// --- Error Definitions ---
var (
	ErrDemoVideoNotFound = errors.New("no demo video for this exercise")
	ErrInvalidVideoType  = errors.New("unsupported video content type")
)

// --- Service Interface ---
type ContentService interface {
	// DemoVideoURL returns a presigned download URL for an exercise's
	// instructional clip.
	DemoVideoURL(ctx context.Context, exerciseName string) (string, error)
	// PrepareDemoVideoUpload generates a presigned upload URL for seeding an
	// exercise's clip and records its metadata.
	PrepareDemoVideoUpload(ctx context.Context, exerciseName, contentType string) (uploadURL string, err error)
}

// contentService implements the ContentService interface.
type contentService struct {
	videoRepo   repository.DemoVideoRepository
	fileStorage storage.FileStorage
}

// NewContentService creates a new instance of contentService.
func NewContentService(videoRepo repository.DemoVideoRepository, fileStorage storage.FileStorage) ContentService {
	return &contentService{
		videoRepo:   videoRepo,
		fileStorage: fileStorage,
	}
}

func (s *contentService) DemoVideoURL(ctx context.Context, exerciseName string) (string, error) {
	if _, known := domain.KnownExercise(exerciseName); !known {
		return "", ErrUnknownExercise
	}

	video, err := s.videoRepo.GetByExercise(ctx, exerciseName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrDemoVideoNotFound
		}
		return "", err
	}

	return s.fileStorage.GeneratePresignedDownloadURL(ctx, video.ObjectKey, storage.DefaultPresignedURLExpiry)
}

func (s *contentService) PrepareDemoVideoUpload(ctx context.Context, exerciseName, contentType string) (string, error) {
	if _, known := domain.KnownExercise(exerciseName); !known {
		return "", ErrUnknownExercise
	}
	if !strings.HasPrefix(contentType, "video/") {
		return "", ErrInvalidVideoType
	}

	// Unique key per upload so a re-seed never collides with the clip a
	// client may still be streaming.
	objectKey := fmt.Sprintf("demo-videos/%s/%s", slugify(exerciseName), uuid.NewString())

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}

	video := &domain.DemoVideo{
		ExerciseName: exerciseName,
		ObjectKey:    objectKey,
		ContentType:  contentType,
	}
	if err := s.videoRepo.Upsert(ctx, video); err != nil {
		return "", err
	}

	return uploadURL, nil
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
