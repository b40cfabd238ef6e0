package engine

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
)

// MilestoneEntry is one upcoming 100-day milestone, precomputed for display
// and export.
type MilestoneEntry struct {
	// Day is the days-alive count reached on Date (a multiple of the step).
	Day int

	// Date is the local calendar day on which the milestone falls.
	Date time.Time

	// DaysUntil is how many days away the milestone is from "today".
	DaysUntil int
}

// MilestoneSchedule returns the next count milestones relative to now.
// It returns nil when the birth date lies in the future.
func MilestoneSchedule(now, birth time.Time, count int) []MilestoneEntry {
	stats, ok := ComputeLifeStats(now, birth)
	if !ok || count <= 0 {
		return nil
	}

	today := startOfDay(now)
	entries := make([]MilestoneEntry, 0, count)
	for i := 0; i < count; i++ {
		day := stats.NextMilestone + i*config.MilestoneStep
		until := day - stats.DaysAlive
		entries = append(entries, MilestoneEntry{
			Day:       day,
			Date:      today.AddDate(0, 0, until),
			DaysUntil: until,
		})
	}
	return entries
}

// BuildMilestoneCalendar encodes the upcoming milestones as an iCalendar of
// all-day events, suitable for importing into any calendar application.
// formatSummary lets the UI inject a localized event title; a nil formatter
// falls back to the default English summary.
func BuildMilestoneCalendar(now, birth time.Time, count int, formatSummary func(day int) string) ([]byte, error) {
	entries := MilestoneSchedule(now, birth, count)
	if len(entries) == 0 {
		return nil, errors.New(config.ErrNoLifeStats)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Milestones are defined by the local calendar date; only the DTSTAMP is
	// converted to UTC for wire format compliance.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	birthISO := birth.Format(config.DateFormatISO)

	for _, entry := range entries {
		event := ical.NewEvent()

		// Deterministic UID generation for stability across exports.
		input := fmt.Sprintf(config.FormatHashInput, birthISO, entry.Day, config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, entry.Day, config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackEvtSummary, entry.Day)
		if formatSummary != nil {
			summary = formatSummary(entry.Day)
		}
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(entry.Date)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
