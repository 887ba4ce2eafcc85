package schedule

import (
	"testing"

	"alcyxob/x3-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeTrainingDays builds a completion record covering every nominal
// Push/Pull day from start through start+days inclusive.
func completeTrainingDays(start Date, days int) DateSet {
	set := make(DateSet)
	for day := 0; day <= days; day++ {
		week := day/7 + 1
		if TemplateForWeek(week)[day%7].IsTraining() {
			set[start.AddDays(day)] = struct{}{}
		}
	}
	return set
}

func TestTemplateForWeek(t *testing.T) {
	adaptation := TemplateForWeek(1)
	assert.Equal(t, Template{
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutRest,
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutRest,
		domain.WorkoutRest,
	}, adaptation)

	for week := 2; week <= 4; week++ {
		assert.Equal(t, adaptation, TemplateForWeek(week), "week %d", week)
	}

	full := TemplateForWeek(5)
	assert.NotEqual(t, adaptation, full)
	assert.Equal(t, Template{
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutPush,
		domain.WorkoutPull, domain.WorkoutPush, domain.WorkoutPull,
		domain.WorkoutRest,
	}, full)

	for week := 6; week <= 52; week++ {
		assert.Equal(t, full, TemplateForWeek(week), "week %d", week)
	}
}

func TestDaysSinceStart_ClampsFutureStart(t *testing.T) {
	start := MustParseDate("2024-06-10")
	assert.Equal(t, 0, DaysSinceStart(start, MustParseDate("2024-06-01")))
	assert.Equal(t, 0, DaysSinceStart(start, start))
	assert.Equal(t, 3, DaysSinceStart(start, MustParseDate("2024-06-13")))
}

func TestScheduledWorkout_DayZero(t *testing.T) {
	start := MustParseDate("2024-05-28")
	res := ScheduledWorkout(start, start)
	assert.Equal(t, 1, res.Week)
	assert.Equal(t, 0, res.DayInWeek)
	assert.Equal(t, domain.WorkoutPush, res.WorkoutType)
}

func TestScheduledWorkout_WeekRollover(t *testing.T) {
	start := MustParseDate("2024-05-28")

	// Day 6 is the last rest day of week 1, day 7 is Push of week 2.
	res := ScheduledWorkout(start, start.AddDays(6))
	assert.Equal(t, 1, res.Week)
	assert.Equal(t, 6, res.DayInWeek)
	assert.Equal(t, domain.WorkoutRest, res.WorkoutType)

	res = ScheduledWorkout(start, start.AddDays(7))
	assert.Equal(t, 2, res.Week)
	assert.Equal(t, 0, res.DayInWeek)
	assert.Equal(t, domain.WorkoutPush, res.WorkoutType)

	// Day 28 crosses into week 5 and the six-day template.
	res = ScheduledWorkout(start, start.AddDays(28))
	assert.Equal(t, 5, res.Week)
	assert.Equal(t, domain.WorkoutPush, res.WorkoutType)

	res = ScheduledWorkout(start, start.AddDays(30))
	assert.Equal(t, 5, res.Week)
	assert.Equal(t, 2, res.DayInWeek)
	assert.Equal(t, domain.WorkoutPush, res.WorkoutType,
		"week 5 trains on the mid-week day that weeks 1-4 rest on")
}

func TestEffectiveWorkout_BaseCase(t *testing.T) {
	for _, startStr := range []string{"2024-05-28", "2024-12-31", "2025-02-28"} {
		start := MustParseDate(startStr)
		res := EffectiveWorkout(start, start, nil)
		assert.Equal(t, 1, res.Week, "start %s", startStr)
		assert.Equal(t, 0, res.DayInWeek, "start %s", startStr)
		assert.Equal(t, domain.WorkoutPush, res.WorkoutType, "start %s", startStr)
		assert.Equal(t, StatusCurrent, res.Status, "start %s", startStr)
		assert.Equal(t, 0, res.MissedWorkouts, "start %s", startStr)
	}
}

func TestEffectiveWorkout_FullAdherenceStaysCurrent(t *testing.T) {
	start := MustParseDate("2024-05-28")
	completed := completeTrainingDays(start, 60)

	for day := 0; day <= 60; day++ {
		asOf := start.AddDays(day)
		res := EffectiveWorkout(start, asOf, completed)
		assert.Equal(t, StatusCurrent, res.Status, "day %d", day)
		assert.Equal(t, 0, res.MissedWorkouts, "day %d", day)
		assert.Equal(t, ScheduledWorkout(start, asOf).WorkoutType, res.WorkoutType, "day %d", day)
	}
}

func TestEffectiveWorkout_SingleMissShiftsOneSlot(t *testing.T) {
	start := MustParseDate("2024-05-28")
	completed := completeTrainingDays(start, 60)
	// Miss the week 2 Pull (day 8).
	delete(completed, start.AddDays(8))

	for day := 9; day <= 60; day++ {
		res := EffectiveWorkout(start, start.AddDays(day), completed)
		require.Equal(t, StatusCatchUp, res.Status, "day %d", day)
		require.Equal(t, 1, res.MissedWorkouts, "day %d", day)

		week := day/7 + 1
		expected := TemplateForWeek(week)[(day%7+1)%7]
		assert.Equal(t, expected, res.WorkoutType,
			"day %d: one miss shifts the template lookup by exactly one slot", day)
	}
}

func TestEffectiveWorkout_EmptyRecordAfterOneWeek(t *testing.T) {
	// One full week elapsed with nothing logged: the four training days of
	// week 1 (days 0, 1, 3, 4) are all owed. The shifted lookup wraps to
	// slot 4 of the week 2 template.
	start := MustParseDate("2024-05-28")
	res := EffectiveWorkout(start, MustParseDate("2024-06-04"), nil)
	assert.Equal(t, 2, res.Week)
	assert.Equal(t, 0, res.DayInWeek)
	assert.Equal(t, 4, res.MissedWorkouts)
	assert.Equal(t, StatusCatchUp, res.Status)
	assert.Equal(t, domain.WorkoutPull, res.WorkoutType)
}

func TestEffectiveWorkout_MissesCompoundAcrossWeeks(t *testing.T) {
	start := MustParseDate("2024-05-28")

	// Three empty weeks: 4 training days per adaptation week.
	res := EffectiveWorkout(start, start.AddDays(21), nil)
	assert.Equal(t, 12, res.MissedWorkouts, "backlog accumulates without cap")
	assert.Equal(t, StatusCatchUp, res.Status)
	// Shift wraps modulo 7: (0 + 12) mod 7 = 5.
	assert.Equal(t, TemplateForWeek(4)[5], res.WorkoutType)

	// Rest days never join the backlog, however long the gap.
	resLonger := EffectiveWorkout(start, start.AddDays(28), nil)
	assert.Equal(t, 16, resLonger.MissedWorkouts,
		"four empty adaptation weeks owe four sessions each")
}

func TestEffectiveWorkout_LongRunFullAdherence(t *testing.T) {
	// 66 days in with every training day completed: week 10, day 3 of the
	// six-day template, which is a Pull day.
	start := MustParseDate("2025-05-28")
	asOf := MustParseDate("2025-08-02")
	require.Equal(t, 66, DaysBetween(start, asOf))

	completed := completeTrainingDays(start, 66)
	res := EffectiveWorkout(start, asOf, completed)
	assert.Equal(t, 10, res.Week)
	assert.Equal(t, 3, res.DayInWeek)
	assert.Equal(t, domain.WorkoutPull, res.WorkoutType)
	assert.Equal(t, StatusCurrent, res.Status)
	assert.Equal(t, 0, res.MissedWorkouts)
}

func TestEffectiveWorkout_Idempotent(t *testing.T) {
	start := MustParseDate("2024-05-28")
	asOf := MustParseDate("2024-07-15")
	completed := NewDateSet(
		MustParseDate("2024-05-28"),
		MustParseDate("2024-05-29"),
		MustParseDate("2024-06-03"),
	)

	first := EffectiveWorkout(start, asOf, completed)
	second := EffectiveWorkout(start, asOf, completed)
	assert.Equal(t, first, second)
	assert.Len(t, completed, 3, "the completion set is never mutated")
}
