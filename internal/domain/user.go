package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tier type to distinguish between subscription levels
type Tier string

// Define constants for subscription tiers
const (
	TierFoundation Tier = "foundation"
	TierMomentum   Tier = "momentum"
	TierMastery    Tier = "mastery"
)

// tierLevels orders tiers so gating checks can compare them.
var tierLevels = map[Tier]int{
	TierFoundation: 1,
	TierMomentum:   2,
	TierMastery:    3,
}

// AtLeast reports whether t grants everything the required tier grants.
func (t Tier) AtLeast(required Tier) bool {
	return tierLevels[t] >= tierLevels[required]
}

// IsValid reports whether t is one of the three known tiers.
func (t Tier) IsValid() bool {
	_, ok := tierLevels[t]
	return ok
}

// User represents an X3 Tracker account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Tier         Tier               `bson:"tier" json:"tier"`

	// StartDate marks day 0 of the user's program as a YYYY-MM-DD string.
	// Immutable once set; empty until the user begins the program.
	StartDate string `bson:"startDate,omitempty" json:"startDate,omitempty"`

	// Timezone is the IANA zone used to resolve the user's "today".
	// Empty means the server's configured reference zone applies.
	Timezone string `bson:"timezone,omitempty" json:"timezone,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasStarted reports whether the user has begun the program.
func (u *User) HasStarted() bool {
	return u.StartDate != ""
}
