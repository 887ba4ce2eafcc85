package schedule

// StreakResult summarizes a user's adherence over the full walked range.
type StreakResult struct {
	// CurrentStreak is the contiguous run of satisfied days ending at the
	// as-of date. Zero when that date itself is a missed training day.
	CurrentStreak int `json:"currentStreak"`
	// LongestStreak is the longest contiguous run observed anywhere between
	// start and the as-of date.
	LongestStreak int `json:"longestStreak"`
}

// Streaks walks every day from start through asOf inclusive. A day keeps a
// streak alive when it is a nominal Rest day or a completed Push/Pull day;
// the first uncompleted training day resets the running count to zero. The
// walk never stops early: later days still feed LongestStreak even after a
// break has capped the current run.
func Streaks(start, asOf Date, completed DateSet) StreakResult {
	if asOf.Before(start) {
		return StreakResult{}
	}

	var res StreakResult
	run := 0
	days := DaysSinceStart(start, asOf)
	for day := 0; day <= days; day++ {
		week := day/7 + 1
		nominal := TemplateForWeek(week)[day%7]

		satisfied := !nominal.IsTraining() || completed.Contains(start.AddDays(day))
		if satisfied {
			run++
			if run > res.LongestStreak {
				res.LongestStreak = run
			}
		} else {
			run = 0
		}
	}
	res.CurrentStreak = run
	return res
}
