package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-28")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.May, Day: 28}, d)
	assert.Equal(t, "2024-05-28", d.String())
}

func TestParseDate_Malformed(t *testing.T) {
	for _, input := range []string{
		"",
		"today",
		"2024-5-28",
		"28-05-2024",
		"2024-13-01",
		"2024-02-30",
		"2024-05-28T00:00:00Z",
	} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", input)
	}
}

func TestAddDays(t *testing.T) {
	d := MustParseDate("2024-02-27")
	assert.Equal(t, "2024-02-29", d.AddDays(2).String(), "2024 is a leap year")
	assert.Equal(t, "2024-03-01", d.AddDays(3).String())
	assert.Equal(t, "2024-02-26", d.AddDays(-1).String())

	assert.Equal(t, "2025-01-01", MustParseDate("2024-12-31").AddDays(1).String())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(MustParseDate("2024-05-28"), MustParseDate("2024-05-28")))
	assert.Equal(t, 7, DaysBetween(MustParseDate("2024-05-28"), MustParseDate("2024-06-04")))
	assert.Equal(t, -7, DaysBetween(MustParseDate("2024-06-04"), MustParseDate("2024-05-28")))

	// Spans the US spring-forward (2024-03-10) and fall-back (2024-11-03)
	// transitions; naive dates must count exactly one day per calendar day.
	assert.Equal(t, 4, DaysBetween(MustParseDate("2024-03-08"), MustParseDate("2024-03-12")))
	assert.Equal(t, 4, DaysBetween(MustParseDate("2024-11-01"), MustParseDate("2024-11-05")))
}

func TestDateOf(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// 03:30 UTC is still the previous evening in Chicago.
	instant := time.Date(2024, time.June, 5, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-05", DateOf(instant, time.UTC).String())
	assert.Equal(t, "2024-06-04", DateOf(instant, chicago).String())
}

func TestParseDateSet(t *testing.T) {
	set, err := ParseDateSet([]string{"2024-05-28", "2024-05-30", "2024-05-28"})
	require.NoError(t, err)
	assert.Len(t, set, 2, "duplicates collapse")
	assert.True(t, set.Contains(MustParseDate("2024-05-28")))
	assert.False(t, set.Contains(MustParseDate("2024-05-29")))

	_, err = ParseDateSet([]string{"2024-05-28", "nope"})
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestDateSet_NilContainsNothing(t *testing.T) {
	var set DateSet
	assert.False(t, set.Contains(MustParseDate("2024-05-28")))
}
