// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseEntry represents one saved set of one exercise within a workout
// session. A calendar day counts as a completed workout when at least one
// entry exists for it.
type ExerciseEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutType WorkoutType        `bson:"workoutType" json:"workoutType"` // Push or Pull
	WeekNumber  int                `bson:"weekNumber" json:"weekNumber"`   // Calendar program week when logged

	ExerciseName string    `bson:"exerciseName" json:"exerciseName"` // From the fixed X3 catalog
	BandColor    BandColor `bson:"bandColor" json:"bandColor"`
	FullReps     int       `bson:"fullReps" json:"fullReps"`
	PartialReps  int       `bson:"partialReps" json:"partialReps"` // Partial-range reps after full-range failure
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`

	// LocalDate is the workout's calendar day (YYYY-MM-DD) in the user's
	// timezone. This, not CreatedAt, drives the completion record.
	LocalDate string `bson:"localDate" json:"localDate"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PersonalBest is the strongest recorded performance for one exercise.
type PersonalBest struct {
	ExerciseName string    `bson:"exerciseName" json:"exerciseName"`
	BandColor    BandColor `bson:"bandColor" json:"bandColor"`
	FullReps     int       `bson:"fullReps" json:"fullReps"`
	PartialReps  int       `bson:"partialReps" json:"partialReps"`
	LocalDate    string    `bson:"localDate" json:"localDate"`
}

// Beats reports whether p outperforms other: a higher band rank always wins,
// then more full reps, then more partial reps.
func (p PersonalBest) Beats(other PersonalBest) bool {
	if p.BandColor.Rank() != other.BandColor.Rank() {
		return p.BandColor.Rank() > other.BandColor.Rank()
	}
	if p.FullReps != other.FullReps {
		return p.FullReps > other.FullReps
	}
	return p.PartialReps > other.PartialReps
}
