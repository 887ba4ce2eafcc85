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
	ErrStartDateNotSet  = errors.New("program start date is not set")
	ErrUnknownExercise  = errors.New("exercise is not part of the X3 catalog")
	ErrInvalidBand      = errors.New("invalid band color")
	ErrInvalidReps      = errors.New("rep counts cannot be negative")
	ErrInvalidDateRange = errors.New("invalid calendar date range")
)

// Calendar queries are bounded to keep the day walk cheap.
const maxCalendarRangeDays = 366

// CalendarDay is one day of the calendar view.
type CalendarDay struct {
	Date        string             `json:"date"`
	Week        int                `json:"week"`
	WorkoutType domain.WorkoutType `json:"workoutType"`
	// Status is "completed", "missed", or "rest" for past days, the
	// effective schedule status for today, and "scheduled" for future days.
	Status string `json:"status"`
}

// LogExerciseInput carries one set to be saved.
type LogExerciseInput struct {
	ExerciseName string
	BandColor    string
	FullReps     int
	PartialReps  int
	Notes        string
	// LocalDate optionally backdates the set (YYYY-MM-DD in the user's
	// timezone). Empty means today.
	LocalDate string
}

// --- Service Interface ---
type WorkoutService interface {
	// TodayWorkout returns the completion-aware schedule for the user's
	// current calendar day.
	TodayWorkout(ctx context.Context, userID primitive.ObjectID) (*schedule.Result, error)
	// Calendar returns per-day schedule and completion statuses for an
	// inclusive date range.
	Calendar(ctx context.Context, userID primitive.ObjectID, from, to string) ([]CalendarDay, error)
	LogExercise(ctx context.Context, userID primitive.ObjectID, input LogExerciseInput) (*domain.ExerciseEntry, error)
	ExerciseHistory(ctx context.Context, userID primitive.ObjectID, exerciseName string, limit int64) ([]domain.ExerciseEntry, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseLogRepository
	defaultZone  *time.Location
	// now is replaceable in tests; the scheduler itself never reads clocks.
	now func() time.Time
}

// NewWorkoutService creates a new instance of workoutService. defaultZone is
// the reference timezone for users who have not picked their own.
func NewWorkoutService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseLogRepository, defaultZone *time.Location) WorkoutService {
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	return &workoutService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		defaultZone:  defaultZone,
		now:          time.Now,
	}
}

// userLocation resolves the timezone a user's "today" is measured in.
func (s *workoutService) userLocation(user *domain.User) *time.Location {
	if user.Timezone != "" {
		if loc, err := time.LoadLocation(user.Timezone); err == nil {
			return loc
		}
	}
	return s.defaultZone
}

// startDateOf loads and parses the user's program start date.
func (s *workoutService) startDateOf(ctx context.Context, userID primitive.ObjectID) (*domain.User, schedule.Date, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, schedule.Date{}, ErrUserNotFound
		}
		return nil, schedule.Date{}, err
	}
	if !user.HasStarted() {
		return nil, schedule.Date{}, ErrStartDateNotSet
	}
	start, err := schedule.ParseDate(user.StartDate)
	if err != nil {
		return nil, schedule.Date{}, err
	}
	return user, start, nil
}

// completionRecord builds the scheduler's completion set from the exercise log.
func (s *workoutService) completionRecord(ctx context.Context, userID primitive.ObjectID) (schedule.DateSet, error) {
	dates, err := s.exerciseRepo.CompletedDates(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.ParseDateSet(dates)
}

func (s *workoutService) TodayWorkout(ctx context.Context, userID primitive.ObjectID) (*schedule.Result, error) {
	user, start, err := s.startDateOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.completionRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := schedule.DateOf(s.now(), s.userLocation(user))
	res := schedule.EffectiveWorkout(start, today, completed)
	return &res, nil
}

func (s *workoutService) Calendar(ctx context.Context, userID primitive.ObjectID, from, to string) ([]CalendarDay, error) {
	fromDate, err := schedule.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := schedule.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) || schedule.DaysBetween(fromDate, toDate) > maxCalendarRangeDays {
		return nil, ErrInvalidDateRange
	}

	user, start, err := s.startDateOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.completionRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := schedule.DateOf(s.now(), s.userLocation(user))

	days := make([]CalendarDay, 0, schedule.DaysBetween(fromDate, toDate)+1)
	for d := fromDate; !toDate.Before(d); d = d.AddDays(1) {
		nominal := schedule.ScheduledWorkout(start, d)
		day := CalendarDay{
			Date:        d.String(),
			Week:        nominal.Week,
			WorkoutType: nominal.WorkoutType,
		}

		switch {
		case d.Before(today):
			switch {
			case !nominal.WorkoutType.IsTraining():
				day.Status = "rest"
			case completed.Contains(d):
				day.Status = "completed"
			default:
				day.Status = "missed"
			}
		case d == today:
			effective := schedule.EffectiveWorkout(start, d, completed)
			day.WorkoutType = effective.WorkoutType
			day.Status = string(effective.Status)
		default:
			day.Status = string(schedule.StatusScheduled)
		}

		days = append(days, day)
	}
	return days, nil
}

func (s *workoutService) LogExercise(ctx context.Context, userID primitive.ObjectID, input LogExerciseInput) (*domain.ExerciseEntry, error) {
	workoutType, known := domain.KnownExercise(input.ExerciseName)
	if !known {
		return nil, ErrUnknownExercise
	}
	band, ok := domain.ParseBandColor(input.BandColor)
	if !ok {
		return nil, ErrInvalidBand
	}
	if input.FullReps < 0 || input.PartialReps < 0 {
		return nil, ErrInvalidReps
	}

	user, start, err := s.startDateOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	localDate := schedule.DateOf(s.now(), s.userLocation(user))
	if input.LocalDate != "" {
		localDate, err = schedule.ParseDate(input.LocalDate)
		if err != nil {
			return nil, err
		}
	}

	entry := &domain.ExerciseEntry{
		UserID:       userID,
		WorkoutType:  workoutType,
		WeekNumber:   schedule.ScheduledWorkout(start, localDate).Week,
		ExerciseName: input.ExerciseName,
		BandColor:    band,
		FullReps:     input.FullReps,
		PartialReps:  input.PartialReps,
		Notes:        input.Notes,
		LocalDate:    localDate.String(),
	}

	entryID, err := s.exerciseRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

func (s *workoutService) ExerciseHistory(ctx context.Context, userID primitive.ObjectID, exerciseName string, limit int64) ([]domain.ExerciseEntry, error) {
	if _, known := domain.KnownExercise(exerciseName); !known {
		return nil, ErrUnknownExercise
	}
	return s.exerciseRepo.GetByUserAndExercise(ctx, userID, exerciseName, limit)
}
