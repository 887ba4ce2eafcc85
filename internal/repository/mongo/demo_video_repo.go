// internal/repository/mongo/demo_video_repo.go
package mongo

import (
	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const demoVideoCollectionName = "demo_videos"

// mongoDemoVideoRepository implements repository.DemoVideoRepository
type mongoDemoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoDemoVideoRepository creates a new demo video metadata repository.
func NewMongoDemoVideoRepository(db *mongo.Database) repository.DemoVideoRepository {
	return &mongoDemoVideoRepository{
		collection: db.Collection(demoVideoCollectionName),
	}
}

// Upsert stores or replaces the clip metadata for one exercise. Each
// exercise has at most one demo clip.
func (r *mongoDemoVideoRepository) Upsert(ctx context.Context, video *domain.DemoVideo) error {
	if video.ExerciseName == "" || video.ObjectKey == "" {
		return errors.New("demo video requires exerciseName and objectKey")
	}

	now := time.Now().UTC()
	filter := bson.M{"exerciseName": video.ExerciseName}
	update := bson.M{
		"$set": bson.M{
			"objectKey":   video.ObjectKey,
			"contentType": video.ContentType,
			"sizeBytes":   video.SizeBytes,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"exerciseName": video.ExerciseName,
			"createdAt":    now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByExercise retrieves the clip metadata for one exercise.
func (r *mongoDemoVideoRepository) GetByExercise(ctx context.Context, exerciseName string) (*domain.DemoVideo, error) {
	var video domain.DemoVideo
	filter := bson.M{"exerciseName": exerciseName}

	err := r.collection.FindOne(ctx, filter).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// EnsureDemoVideoIndexes creates necessary indexes. Call during startup.
func EnsureDemoVideoIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "exerciseName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
