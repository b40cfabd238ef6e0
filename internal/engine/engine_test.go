package engine_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
	"github.com/hinahinako39/hour-percent-clock/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Fraction Tests
// -----------------------------------------------------------------------------

func TestHourFraction_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected float64
		delta    float64
	}{
		{
			name:     "Top of the hour",
			instant:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			expected: 0.0,
		},
		{
			name:     "Half past",
			instant:  time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			expected: 0.5,
		},
		{
			name:     "Just before the next hour",
			instant:  time.Date(2024, 3, 1, 12, 59, 59, 999_000_000, time.UTC),
			expected: 1.0,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.HourFraction(tt.instant)
			assert.InDelta(t, tt.expected, got, tt.delta+1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestDayFraction_Boundaries(t *testing.T) {
	midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, engine.DayFraction(midnight), "Local midnight is exactly zero")

	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 0.5, engine.DayFraction(noon), 1e-9)

	almostOver := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
	assert.Greater(t, engine.DayFraction(almostOver), 0.999)
	assert.LessOrEqual(t, engine.DayFraction(almostOver), 1.0)
}

// TestDayFraction_DSTSpringForward verifies that the denominator is the
// actual wall-clock day length, not a fixed 24 hours. On 2024-03-31 the
// Paris day is 23 hours long, so noon lies past its halfway point.
func TestDayFraction_DSTSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}

	noon := time.Date(2024, 3, 31, 12, 0, 0, 0, loc)
	got := engine.DayFraction(noon)

	// 11 wall-clock hours elapsed out of 23.
	assert.InDelta(t, 11.0/23.0, got, 1e-9)
}

// -----------------------------------------------------------------------------
// Life Stats Tests
// -----------------------------------------------------------------------------

func TestComputeLifeStats_MilestoneTieBreak(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		daysAgo       int
		wantAlive     int
		wantCountdown int
	}{
		{"Born today", 0, 0, 100},
		{"Exactly one milestone", 100, 100, 100},
		{"Halfway past a milestone", 150, 150, 50},
		{"One day short", 99, 99, 1},
		{"One day past", 101, 101, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth := now.AddDate(0, 0, -tt.daysAgo)
			stats, ok := engine.ComputeLifeStats(now, birth)

			require.True(t, ok)
			assert.Equal(t, tt.wantAlive, stats.DaysAlive)
			assert.Equal(t, tt.wantCountdown, stats.DaysToMilestone)
			assert.Equal(t, stats.DaysAlive+stats.DaysToMilestone, stats.NextMilestone)
			assert.Zero(t, stats.NextMilestone%config.MilestoneStep)
		})
	}
}

func TestComputeLifeStats_FutureBirthDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	_, ok := engine.ComputeLifeStats(now, tomorrow)
	assert.False(t, ok, "A birth date of tomorrow must be reported unavailable")

	// Later today is still "today" in calendar days, hence day zero.
	laterToday := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	stats, ok := engine.ComputeLifeStats(now, laterToday)
	require.True(t, ok)
	assert.Equal(t, 0, stats.DaysAlive)
}

// TestComputeLifeStats_DailyMonotonicity checks that days-alive advances by
// exactly one per elapsed local day.
func TestComputeLifeStats_DailyMonotonicity(t *testing.T) {
	birth := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 2, 1, 9, 15, 0, 0, time.UTC)

	prev, ok := engine.ComputeLifeStats(now, birth)
	require.True(t, ok)

	for i := 0; i < 400; i++ {
		now = now.AddDate(0, 0, 1)
		cur, ok := engine.ComputeLifeStats(now, birth)
		require.True(t, ok)
		assert.Equal(t, prev.DaysAlive+1, cur.DaysAlive)
		prev = cur
	}
}

// -----------------------------------------------------------------------------
// Snapshot Tests
// -----------------------------------------------------------------------------

func TestComputeSnapshot_EndToEnd(t *testing.T) {
	// Reference example: 2024-03-01T12:30:00 local with a 2024-01-01 birthday.
	clock := MockClock{CurrentTime: time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)}

	snap := engine.ComputeSnapshot(clock.Now(), "2024-01-01")

	assert.InDelta(t, 0.5, snap.HourFraction, 1e-9)
	assert.InDelta(t, 12.5/24.0, snap.DayFraction, 1e-9)

	require.NotNil(t, snap.Life)
	assert.Equal(t, 60, snap.Life.DaysAlive)
	assert.Equal(t, 40, snap.Life.DaysToMilestone)
}

func TestComputeSnapshot_UnavailableInputs(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		birth string
	}{
		{"Absent", ""},
		{"Malformed", "not-a-date"},
		{"Wrong layout", "01/02/2024"},
		{"Future", now.AddDate(0, 0, 1).Format(config.DateFormatISO)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := engine.ComputeSnapshot(now, tt.birth)
			assert.Nil(t, snap.Life, "Unavailable input must never raise, only yield nil stats")
			assert.GreaterOrEqual(t, snap.HourFraction, 0.0)
		})
	}
}

func TestComputeSnapshot_Idempotence(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)

	first := engine.ComputeSnapshot(now, "2000-11-14")
	second := engine.ComputeSnapshot(now, "2000-11-14")

	assert.Equal(t, first.HourFraction, second.HourFraction)
	assert.Equal(t, first.DayFraction, second.DayFraction)
	require.NotNil(t, first.Life)
	require.NotNil(t, second.Life)
	assert.Equal(t, *first.Life, *second.Life)
}

// -----------------------------------------------------------------------------
// Milestone Calendar Tests
// -----------------------------------------------------------------------------

func TestMilestoneSchedule(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	birth := now.AddDate(0, 0, -150)

	entries := engine.MilestoneSchedule(now, birth, 3)
	require.Len(t, entries, 3)

	assert.Equal(t, 200, entries[0].Day)
	assert.Equal(t, 50, entries[0].DaysUntil)
	assert.Equal(t, time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), entries[0].Date)

	assert.Equal(t, 300, entries[1].Day)
	assert.Equal(t, 150, entries[1].DaysUntil)
	assert.Equal(t, 400, entries[2].Day)
}

func TestMilestoneSchedule_FutureBirth(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Nil(t, engine.MilestoneSchedule(now, now.AddDate(0, 0, 5), 3))
}

func TestBuildMilestoneCalendar(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	birth := now.AddDate(0, 0, -150)

	ics, err := engine.BuildMilestoneCalendar(now, birth, 2, nil)
	require.NoError(t, err)

	icsStr := string(ics)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "SUMMARY:Day 200")
	assert.Contains(t, icsStr, "SUMMARY:Day 300")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240420")
}

func TestBuildMilestoneCalendar_Deterministic(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	birth := now.AddDate(0, 0, -150)

	first, err := engine.BuildMilestoneCalendar(now, birth, 2, nil)
	require.NoError(t, err)
	second, err := engine.BuildMilestoneCalendar(now, birth, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "Identical inputs must produce identical UIDs and bytes")
}

func TestBuildMilestoneCalendar_LocalizedSummary(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	birth := now.AddDate(0, 0, -50)

	ics, err := engine.BuildMilestoneCalendar(now, birth, 1, func(day int) string {
		return fmt.Sprintf("Jour %d", day)
	})
	require.NoError(t, err)
	assert.Contains(t, string(ics), "SUMMARY:Jour 100")
}

func TestBuildMilestoneCalendar_Unavailable(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := engine.BuildMilestoneCalendar(now, now.AddDate(0, 0, 1), 3, nil)
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------
// vCard Import Tests
// -----------------------------------------------------------------------------

func TestReadBirthDateFromVCard(t *testing.T) {
	vcardContent := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:John Doe\r\nBDAY:2000-01-01\r\nEND:VCARD\r\n"

	got, err := engine.ReadBirthDateFromVCard(strings.NewReader(vcardContent))
	require.NoError(t, err)
	assert.Equal(t, 2000, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestReadBirthDateFromVCard_SkipsYearlessDates(t *testing.T) {
	// The first card has no year (useless for a days-alive count), the
	// second carries a full basic-format date.
	vcardContent := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:No Year\r\nBDAY:--02-29\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Full Date\r\nBDAY:19991231\r\nEND:VCARD\r\n"

	got, err := engine.ReadBirthDateFromVCard(strings.NewReader(vcardContent))
	require.NoError(t, err)
	assert.Equal(t, 1999, got.Year())
	assert.Equal(t, 31, got.Day())
}

func TestReadBirthDateFromVCard_NoUsableDate(t *testing.T) {
	vcardContent := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Jane Doe\r\nEND:VCARD\r\n"

	_, err := engine.ReadBirthDateFromVCard(strings.NewReader(vcardContent))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrBirthNotFound)
}
