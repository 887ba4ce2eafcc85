package service

import (
	"context"
	"time"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/repository"
	"alcyxob/x3-tracker/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStats is the single source of truth for every stats surface, so the
// dashboard, workout, and stats views can never disagree with each other.
type UserStats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	// CurrentWeek is the calendar program week; missed sessions don't move it.
	CurrentWeek   int `json:"currentWeek"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`

	WorkoutStatus schedule.Result `json:"workoutStatus"`

	TotalExercises         int                            `json:"totalExercises"`
	CompletedThisWeek      int                            `json:"completedThisWeek"`
	AverageRepsPerExercise float64                        `json:"averageRepsPerExercise"`
	MostUsedBand           domain.BandColor               `json:"mostUsedBand"`
	WorkoutsByType         map[domain.WorkoutType]int     `json:"workoutsByType"`
	PersonalBests          map[string]domain.PersonalBest `json:"personalBests"`

	StartDate       string `json:"startDate"`
	LastWorkoutDate string `json:"lastWorkoutDate,omitempty"`
}

// --- Service Interface ---
type StatsService interface {
	GetUserStats(ctx context.Context, userID primitive.ObjectID) (*UserStats, error)
}

// statsService implements the StatsService interface.
type statsService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseLogRepository
	defaultZone  *time.Location
	now          func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseLogRepository, defaultZone *time.Location) StatsService {
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	return &statsService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		defaultZone:  defaultZone,
		now:          time.Now,
	}
}

func (s *statsService) GetUserStats(ctx context.Context, userID primitive.ObjectID) (*UserStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !user.HasStarted() {
		return nil, ErrStartDateNotSet
	}
	start, err := schedule.ParseDate(user.StartDate)
	if err != nil {
		return nil, err
	}

	entries, err := s.exerciseRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := s.defaultZone
	if user.Timezone != "" {
		if userLoc, locErr := time.LoadLocation(user.Timezone); locErr == nil {
			loc = userLoc
		}
	}
	today := schedule.DateOf(s.now(), loc)

	completed := make(schedule.DateSet, len(entries))
	for _, e := range entries {
		d, parseErr := schedule.ParseDate(e.LocalDate)
		if parseErr != nil {
			return nil, parseErr
		}
		completed[d] = struct{}{}
	}

	workoutStatus := schedule.EffectiveWorkout(start, today, completed)
	streaks := schedule.Streaks(start, today, completed)

	stats := &UserStats{
		TotalWorkouts:  len(completed),
		CurrentWeek:    workoutStatus.Week,
		CurrentStreak:  streaks.CurrentStreak,
		LongestStreak:  streaks.LongestStreak,
		WorkoutStatus:  workoutStatus,
		TotalExercises: len(entries),
		MostUsedBand:   domain.BandWhite, // Everyone starts on White
		WorkoutsByType: map[domain.WorkoutType]int{domain.WorkoutPush: 0, domain.WorkoutPull: 0},
		PersonalBests:  make(map[string]domain.PersonalBest),
		StartDate:      user.StartDate,
	}

	if len(entries) == 0 {
		return stats, nil
	}

	// Entries come back newest first, so the first one carries the most
	// recent workout date.
	stats.LastWorkoutDate = entries[0].LocalDate

	// Completed-this-week counts completed days inside the current calendar
	// program week, which starts at day (week-1)*7 from program day 0.
	weekStart := start.AddDays((workoutStatus.Week - 1) * 7)
	for d := range completed {
		if !d.Before(weekStart) && !today.Before(d) {
			stats.CompletedThisWeek++
		}
	}

	totalReps := 0
	bandCounts := make(map[domain.BandColor]int)
	byTypeDays := make(map[domain.WorkoutType]schedule.DateSet)
	for _, e := range entries {
		totalReps += e.FullReps + e.PartialReps
		bandCounts[e.BandColor]++

		if e.WorkoutType.IsTraining() {
			if byTypeDays[e.WorkoutType] == nil {
				byTypeDays[e.WorkoutType] = make(schedule.DateSet)
			}
			if d, parseErr := schedule.ParseDate(e.LocalDate); parseErr == nil {
				byTypeDays[e.WorkoutType][d] = struct{}{}
			}
		}

		candidate := domain.PersonalBest{
			ExerciseName: e.ExerciseName,
			BandColor:    e.BandColor,
			FullReps:     e.FullReps,
			PartialReps:  e.PartialReps,
			LocalDate:    e.LocalDate,
		}
		best, seen := stats.PersonalBests[e.ExerciseName]
		if !seen || candidate.Beats(best) {
			stats.PersonalBests[e.ExerciseName] = candidate
		}
	}

	stats.AverageRepsPerExercise = float64(totalReps) / float64(len(entries))
	for t, days := range byTypeDays {
		stats.WorkoutsByType[t] = len(days)
	}

	mostUsed, mostCount := stats.MostUsedBand, 0
	for band, count := range bandCounts {
		if count > mostCount || (count == mostCount && band.Rank() > mostUsed.Rank()) {
			mostUsed, mostCount = band, count
		}
	}
	stats.MostUsedBand = mostUsed

	return stats, nil
}
