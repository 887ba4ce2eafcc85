package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentFixture() (ContentService, *fakeDemoVideoRepo) {
	videos := newFakeDemoVideoRepo()
	return NewContentService(videos, &fakeFileStorage{}), videos
}

func TestDemoVideoURL(t *testing.T) {
	svc, _ := newContentFixture()
	ctx := context.Background()

	_, err := svc.DemoVideoURL(ctx, "Leg Press")
	assert.ErrorIs(t, err, ErrUnknownExercise)

	_, err = svc.DemoVideoURL(ctx, "Chest Press")
	assert.ErrorIs(t, err, ErrDemoVideoNotFound)
}

func TestPrepareDemoVideoUpload(t *testing.T) {
	svc, videos := newContentFixture()
	ctx := context.Background()

	_, err := svc.PrepareDemoVideoUpload(ctx, "Leg Press", "video/mp4")
	assert.ErrorIs(t, err, ErrUnknownExercise)

	_, err = svc.PrepareDemoVideoUpload(ctx, "Chest Press", "image/png")
	assert.ErrorIs(t, err, ErrInvalidVideoType)

	uploadURL, err := svc.PrepareDemoVideoUpload(ctx, "Chest Press", "video/mp4")
	require.NoError(t, err)
	assert.Contains(t, uploadURL, "demo-videos/chest-press/")

	video, err := videos.GetByExercise(ctx, "Chest Press")
	require.NoError(t, err)
	assert.Contains(t, video.ObjectKey, "demo-videos/chest-press/")
	assert.Equal(t, "video/mp4", video.ContentType)

	// After upload, downloads resolve against the stored key.
	downloadURL, err := svc.DemoVideoURL(ctx, "Chest Press")
	require.NoError(t, err)
	assert.Contains(t, downloadURL, video.ObjectKey)
}
