package domain

import "strings"

// WorkoutType is the kind of session the X3 program assigns to a day.
type WorkoutType string

const (
	WorkoutPush WorkoutType = "Push"
	WorkoutPull WorkoutType = "Pull"
	WorkoutRest WorkoutType = "Rest"
)

// IsTraining reports whether this workout type requires the user to actually
// train. Rest days are never logged and can never be "missed".
func (w WorkoutType) IsTraining() bool {
	return w == WorkoutPush || w == WorkoutPull
}

// BandColor identifies one of the six X3 resistance bands.
type BandColor string

const (
	BandUltraLight BandColor = "Ultra Light"
	BandWhite      BandColor = "White"
	BandLightGray  BandColor = "Light Gray"
	BandDarkGray   BandColor = "Dark Gray"
	BandBlack      BandColor = "Black"
	BandElite      BandColor = "Elite"
)

// bandRanks orders bands by resistance. Used for personal-best comparisons:
// reps on a stronger band always beat any count on a weaker one.
var bandRanks = map[BandColor]int{
	BandUltraLight: 1,
	BandWhite:      2,
	BandLightGray:  3,
	BandDarkGray:   4,
	BandBlack:      5,
	BandElite:      6,
}

// Rank returns the band's position in the resistance hierarchy (1 = weakest).
// Unknown bands rank 0.
func (b BandColor) Rank() int {
	return bandRanks[b]
}

// IsValid reports whether b is one of the six known bands.
func (b BandColor) IsValid() bool {
	_, ok := bandRanks[b]
	return ok
}

// ParseBandColor matches user input against the known bands, case-insensitively.
// The second return value is false when no band matches.
func ParseBandColor(input string) (BandColor, bool) {
	for band := range bandRanks {
		if strings.EqualFold(string(band), input) {
			return band, true
		}
	}
	return "", false
}

// Exercise catalogs for the two training days. The X3 protocol is fixed:
// four movements per session, always in this order.
var (
	PushExercises = []string{"Chest Press", "Tricep Press", "Overhead Press", "Front Squat"}
	PullExercises = []string{"Deadlift", "Bent Row", "Bicep Curl", "Calf Raise"}
)

// ExercisesForType returns the exercise list for a training day, or nil for Rest.
func ExercisesForType(t WorkoutType) []string {
	switch t {
	case WorkoutPush:
		return PushExercises
	case WorkoutPull:
		return PullExercises
	default:
		return nil
	}
}

// KnownExercise reports whether name belongs to either catalog, and if so,
// which workout type it belongs to.
func KnownExercise(name string) (WorkoutType, bool) {
	for _, ex := range PushExercises {
		if ex == name {
			return WorkoutPush, true
		}
	}
	for _, ex := range PullExercises {
		if ex == name {
			return WorkoutPull, true
		}
	}
	return "", false
}
