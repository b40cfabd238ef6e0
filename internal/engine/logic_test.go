package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestCalendarDays verifies the whole-day counting that underpins the
// days-alive statistic, including spans crossing DST transitions.
func TestCalendarDays(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "Same day",
			from:     time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "One day, time of day irrelevant",
			from:     time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			to:       time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Leap year February",
			from:     time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "Negative when from is later",
			from:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: -1,
		},
		{
			name:     "Jan 1 to Mar 1 2024 (leap year)",
			from:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			expected: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendarDays(tt.from, tt.to))
		})
	}
}

// TestCalendarDays_AcrossDST ensures a 23-hour local day still counts as one
// calendar day.
func TestCalendarDays_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2024-03-31 in Paris is 23 hours long (spring forward).
	before := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	after := time.Date(2024, 4, 1, 12, 0, 0, 0, loc)

	assert.Equal(t, 2, calendarDays(before, after))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.0, clamp01(0))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(1))
	assert.Equal(t, 1.0, clamp01(1.7))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 1, 18, 42, 13, 999, time.UTC)
	got := startOfDay(in)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, in.Location(), got.Location())
}

func TestParseVCardDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		year    int
	}{
		{"Dashed", "2000-01-01", false, 2000},
		{"Basic", "20000101", false, 2000},
		{"Full timestamp", "2000-01-01T08:30:00Z", false, 2000},
		{"Year unknown", "--01-01", true, 0},
		{"Garbage", "not-a-date", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVCardDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
			// Imported dates are normalized to local midnight.
			assert.Zero(t, got.Hour())
			assert.Zero(t, got.Minute())
		})
	}
}
