// internal/domain/demo_video.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DemoVideo holds the storage metadata for an exercise's instructional clip.
// The actual bytes live in object storage; ObjectKey identifies them there.
type DemoVideo struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"` // From the fixed X3 catalog, unique
	ObjectKey    string             `bson:"objectKey" json:"-"`               // Key within the bucket, not exposed
	ContentType  string             `bson:"contentType" json:"contentType"`   // e.g., "video/mp4"
	SizeBytes    int64              `bson:"sizeBytes,omitempty" json:"sizeBytes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
