package engine

import (
	"time"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
)

// LifeStats describes progress towards the next 100-day milestone.
type LifeStats struct {
	// DaysAlive is the number of whole calendar days between the birth date
	// and the current local day.
	DaysAlive int

	// DaysToMilestone is always in [1, MilestoneStep]. A DaysAlive that is
	// itself an exact multiple of the step (including zero) reports a full
	// countdown to the next milestone, never zero.
	DaysToMilestone int

	// NextMilestone is the milestone day number being counted down to.
	NextMilestone int
}

// Snapshot is the result of one refresh cycle. It is recomputed every tick
// and never stored.
type Snapshot struct {
	Now          time.Time
	HourFraction float64
	DayFraction  float64

	// Life is nil when no valid birth date is available (absent, unparseable
	// or in the future).
	Life *LifeStats
}

// HourFraction reports how much of the current local hour has elapsed,
// clamped to [0, 1]. Hour length is constant except across a DST transition,
// where the clamp guards the edge.
func HourFraction(t time.Time) float64 {
	start := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return clamp01(float64(t.Sub(start)) / float64(time.Hour))
}

// DayFraction reports how much of the current local day has elapsed, clamped
// to [0, 1]. The denominator is the actual wall-clock length of the day:
// next local midnight minus current local midnight, which is 23 or 25 hours
// on a DST-transition day. A shortened or lengthened day therefore advances
// at a correspondingly different rate.
func DayFraction(t time.Time) float64 {
	start := startOfDay(t)
	end := start.AddDate(0, 0, 1)
	length := end.Sub(start)
	if length <= 0 {
		return 0
	}
	return clamp01(float64(t.Sub(start)) / float64(length))
}

// ComputeLifeStats derives the days-alive count and milestone countdown for
// the given instant. It reports false when the birth date lies in the future
// relative to the instant's local day.
func ComputeLifeStats(now, birth time.Time) (LifeStats, bool) {
	daysAlive := calendarDays(birth, now)
	if daysAlive < 0 {
		return LifeStats{}, false
	}

	mod := daysAlive % config.MilestoneStep
	toMilestone := config.MilestoneStep
	if mod != 0 {
		toMilestone = config.MilestoneStep - mod
	}

	return LifeStats{
		DaysAlive:       daysAlive,
		DaysToMilestone: toMilestone,
		NextMilestone:   daysAlive + toMilestone,
	}, true
}

// ParseBirthDate parses a stored ISO date string in the local time zone.
// Callers treat any error identically to "unset".
func ParseBirthDate(value string) (time.Time, error) {
	return time.ParseInLocation(config.DateFormatISO, value, time.Local)
}

// ComputeSnapshot produces the full per-tick result for the given instant and
// the raw stored birth-date string. A missing or unparseable birth date, or
// one in the future, yields a snapshot with Life == nil; no error is ever
// raised.
func ComputeSnapshot(now time.Time, birthValue string) Snapshot {
	snap := Snapshot{
		Now:          now,
		HourFraction: HourFraction(now),
		DayFraction:  DayFraction(now),
	}

	if birthValue == "" {
		return snap
	}
	birth, err := ParseBirthDate(birthValue)
	if err != nil {
		return snap
	}
	if stats, ok := ComputeLifeStats(now, birth); ok {
		snap.Life = &stats
	}
	return snap
}

// startOfDay truncates an instant to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDays counts whole calendar days from one local date to another.
// Both dates are normalized to UTC midnights before dividing, so DST
// anomalies in the span never skew the count: each elapsed local day
// contributes exactly one.
func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
