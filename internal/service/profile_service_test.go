package service

import (
	"context"
	"testing"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProfileFixture(t *testing.T) (ProfileService, primitive.ObjectID) {
	t.Helper()
	users := newFakeUserRepo()
	userID, err := users.Create(context.Background(), &domain.User{
		Name:  "Alice",
		Email: "alice@example.com",
		Tier:  domain.TierFoundation,
	})
	require.NoError(t, err)
	return NewProfileService(users), userID
}

func TestGetProfile_UnknownUser(t *testing.T) {
	svc, _ := newProfileFixture(t)

	_, err := svc.GetProfile(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetStartDate(t *testing.T) {
	svc, userID := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.SetStartDate(ctx, userID, "May 28th 2024")
	assert.ErrorIs(t, err, schedule.ErrMalformedDate)

	user, err := svc.SetStartDate(ctx, userID, "2024-05-28")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-28", user.StartDate)
	assert.True(t, user.HasStarted())

	// The start date anchors all schedule history; it can never move.
	_, err = svc.SetStartDate(ctx, userID, "2024-06-01")
	assert.ErrorIs(t, err, ErrStartDateAlreadySet)
}

func TestUpdateTimezone(t *testing.T) {
	svc, userID := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateTimezone(ctx, userID, "Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	_, err = svc.UpdateTimezone(ctx, userID, "")
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	user, err := svc.UpdateTimezone(ctx, userID, "Europe/Amsterdam")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Amsterdam", user.Timezone)
}

func TestUpdateTier(t *testing.T) {
	svc, userID := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateTier(ctx, userID, domain.Tier("platinum"))
	assert.ErrorIs(t, err, ErrInvalidTier)

	user, err := svc.UpdateTier(ctx, userID, domain.TierMastery)
	require.NoError(t, err)
	assert.Equal(t, domain.TierMastery, user.Tier)
	assert.True(t, user.Tier.AtLeast(domain.TierMomentum))
}
