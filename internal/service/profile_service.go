package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/repository"
	"alcyxob/x3-tracker/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrStartDateAlreadySet = errors.New("program start date is already set")
	ErrInvalidTimezone     = errors.New("invalid timezone")
	ErrInvalidTier         = errors.New("invalid subscription tier")
)

// --- Service Interface ---
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	// SetStartDate records program day 0. Fails with ErrStartDateAlreadySet
	// once set: the start date anchors all schedule history and must not move.
	SetStartDate(ctx context.Context, userID primitive.ObjectID, startDate string) (*domain.User, error)
	UpdateTimezone(ctx context.Context, userID primitive.ObjectID, timezone string) (*domain.User, error)
	UpdateTier(ctx context.Context, userID primitive.ObjectID, tier domain.Tier) (*domain.User, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *profileService) SetStartDate(ctx context.Context, userID primitive.ObjectID, startDate string) (*domain.User, error) {
	// Malformed dates are a hard failure; silently substituting "now" would
	// corrupt every schedule computation that follows.
	parsed, err := schedule.ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HasStarted() {
		return nil, ErrStartDateAlreadySet
	}

	if err := s.userRepo.SetStartDate(ctx, userID, parsed.String()); err != nil {
		if errors.Is(err, repository.ErrUpdateFailed) {
			// Lost a race with a concurrent set; the date is immutable either way.
			return nil, ErrStartDateAlreadySet
		}
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *profileService) UpdateTimezone(ctx context.Context, userID primitive.ObjectID, timezone string) (*domain.User, error) {
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return nil, ErrInvalidTimezone
	}

	if err := s.userRepo.UpdateTimezone(ctx, userID, timezone); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *profileService) UpdateTier(ctx context.Context, userID primitive.ObjectID, tier domain.Tier) (*domain.User, error) {
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}

	if err := s.userRepo.UpdateTier(ctx, userID, tier); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
