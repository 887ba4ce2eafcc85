// Package schedule computes which X3 workout is due on a given day.
//
// The X3 program runs on a fixed weekly template starting at the user's
// program start date: four weeks of Push/Pull with interleaved rest, then
// six training days a week from week five on. Everything here is a pure
// computation over the start date, an "as of" date, and the set of calendar
// days the user actually completed; there is no I/O, no clock access, and no
// state between calls.
package schedule

import "alcyxob/x3-tracker/internal/domain"

// Status describes how the returned workout relates to the nominal program.
type Status string

const (
	// StatusCurrent means the user is exactly on schedule.
	StatusCurrent Status = "current"
	// StatusCatchUp means missed sessions have pushed the program back.
	StatusCatchUp Status = "catch_up"
	// StatusScheduled marks a nominal (or future-dated) assignment that is
	// not yet adjusted for completion history.
	StatusScheduled Status = "scheduled"
)

// Template is one program week: seven workout types indexed by day-in-week.
type Template [7]domain.WorkoutType

var (
	// Weeks 1-4 ease in with two rest days mid-week plus the weekend day.
	adaptationTemplate = Template{
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutRest,
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutRest,
		domain.WorkoutRest,
	}
	// Weeks 5+ train six days out of seven.
	fullTemplate = Template{
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutPush,
		domain.WorkoutPull, domain.WorkoutPush, domain.WorkoutPull,
		domain.WorkoutRest,
	}
)

// TemplateForWeek returns the weekly template in force for a calendar program
// week. Weeks 1-4 use the adaptation template, week 5 onward the full one;
// there is no other week-dependent variation.
func TemplateForWeek(week int) Template {
	if week <= 4 {
		return adaptationTemplate
	}
	return fullTemplate
}

// DaysSinceStart returns the number of whole days from start to asOf,
// clamped to 0 when asOf precedes start. A future-dated program start is a
// data-entry mistake the scheduler tolerates rather than rejects.
func DaysSinceStart(start, asOf Date) int {
	days := DaysBetween(start, asOf)
	if days < 0 {
		return 0
	}
	return days
}

// Result is the scheduler's answer for one day.
type Result struct {
	// Week is the calendar program week, 1-based, derived purely from
	// elapsed days. Missed sessions never change it.
	Week int `json:"week"`
	// DayInWeek is the position within the program week, 0-6.
	DayInWeek int `json:"dayInWeek"`
	// WorkoutType is the session due on this day.
	WorkoutType domain.WorkoutType `json:"workoutType"`
	// Status reports whether the user is on schedule or catching up.
	Status Status `json:"status"`
	// MissedWorkouts counts the Push/Pull days before asOf with no logged
	// completion. Rest days never count.
	MissedWorkouts int `json:"missedWorkouts"`
}

// ScheduledWorkout computes the nominal schedule for asOf: the workout the
// template assigns from elapsed days alone, ignoring completion history.
// Identical inputs always yield identical output.
func ScheduledWorkout(start, asOf Date) Result {
	days := DaysSinceStart(start, asOf)
	week := days/7 + 1
	dayInWeek := days % 7
	return Result{
		Week:        week,
		DayInWeek:   dayInWeek,
		WorkoutType: TemplateForWeek(week)[dayInWeek],
		Status:      StatusScheduled,
	}
}

// EffectiveWorkout computes the completion-aware schedule for asOf: the
// session the user actually owes. Every missed Push/Pull day before asOf
// pushes the remaining sessions back by one template slot, so the user is
// never skipped past an unperformed workout. The shift wraps modulo 7 and
// accumulates without bound across consecutive missed weeks; the program
// always owes exactly the next undone session in sequence, no matter how
// much calendar time has passed.
func EffectiveWorkout(start, asOf Date, completed DateSet) Result {
	res := ScheduledWorkout(start, asOf)
	res.MissedWorkouts = countMissed(start, asOf, completed)
	if res.MissedWorkouts > 0 {
		shifted := (res.DayInWeek + res.MissedWorkouts) % 7
		res.WorkoutType = TemplateForWeek(res.Week)[shifted]
		res.Status = StatusCatchUp
	} else {
		res.Status = StatusCurrent
	}
	return res
}

// countMissed walks day by day from start up to (not including) asOf and
// counts nominal Push/Pull days absent from the completion set.
func countMissed(start, asOf Date, completed DateSet) int {
	missed := 0
	days := DaysSinceStart(start, asOf)
	for day := 0; day < days; day++ {
		week := day/7 + 1
		nominal := TemplateForWeek(week)[day%7]
		if nominal.IsTraining() && !completed.Contains(start.AddDays(day)) {
			missed++
		}
	}
	return missed
}
