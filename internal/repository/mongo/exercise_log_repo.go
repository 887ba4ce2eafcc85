// internal/repository/mongo/exercise_log_repo.go
package mongo

import (
	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseLogCollectionName = "workout_exercises"

// mongoExerciseLogRepository implements repository.ExerciseLogRepository
type mongoExerciseLogRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseLogRepository creates a new exercise log repository.
func NewMongoExerciseLogRepository(db *mongo.Database) repository.ExerciseLogRepository {
	return &mongoExerciseLogRepository{
		collection: db.Collection(exerciseLogCollectionName),
	}
}

// Create inserts one logged set.
func (r *mongoExerciseLogRepository) Create(ctx context.Context, entry *domain.ExerciseEntry) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.ExerciseName == "" || entry.LocalDate == "" {
		return primitive.NilObjectID, errors.New("exercise entry requires userId, exerciseName, and localDate")
	}

	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted entry ID")
	}
	return insertedID, nil
}

// GetByUserAndDate retrieves all sets logged on one calendar day.
func (r *mongoExerciseLogRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, localDate string) ([]domain.ExerciseEntry, error) {
	filter := bson.M{"userId": userID, "localDate": localDate}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, filter, findOptions)
}

// GetByUserAndExercise retrieves entries for one exercise, newest first.
func (r *mongoExerciseLogRepository) GetByUserAndExercise(ctx context.Context, userID primitive.ObjectID, exerciseName string, limit int64) ([]domain.ExerciseEntry, error) {
	filter := bson.M{"userId": userID, "exerciseName": exerciseName}
	findOptions := options.Find().SetSort(bson.D{{Key: "localDate", Value: -1}, {Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	return r.find(ctx, filter, findOptions)
}

// GetAllByUser retrieves the user's full exercise history, newest first.
func (r *mongoExerciseLogRepository) GetAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ExerciseEntry, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "localDate", Value: -1}, {Key: "createdAt", Value: -1}})
	return r.find(ctx, filter, findOptions)
}

// CompletedDates returns the distinct calendar days with at least one logged
// set. This is the completion record the scheduler consumes, pre-filtered to
// one entry per day by the distinct query.
func (r *mongoExerciseLogRepository) CompletedDates(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	filter := bson.M{"userId": userID}
	raw, err := r.collection.Distinct(ctx, "localDate", filter)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			dates = append(dates, s)
		}
	}
	return dates, nil
}

func (r *mongoExerciseLogRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.ExerciseEntry, error) {
	var entries []domain.ExerciseEntry
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	// Return empty slice if nothing was logged
	return entries, nil
}

// EnsureExerciseLogIndexes creates necessary indexes. Call during startup.
func EnsureExerciseLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Completion record and per-day queries
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "localDate", Value: 1}},
			Options: options.Index(),
		},
		{
			// Exercise history / personal best queries
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "exerciseName", Value: 1}, {Key: "localDate", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
