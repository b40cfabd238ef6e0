package engine

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/hinahinako39/hour-percent-clock/internal/config"
)

// ReadBirthDateFromVCard scans a vCard stream for the first card carrying a
// BDAY field with a full date (year included) and returns it parsed in the
// local time zone. Malformed cards are skipped to maximize data recovery;
// an error is returned only when the whole stream yields no usable date.
func ReadBirthDateFromVCard(r io.Reader) (time.Time, error) {
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		t, err := parseVCardDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}
		return t, nil
	}

	return time.Time{}, errors.New(config.ErrBirthNotFound)
}

// parseVCardDate handles the vCard date formats that carry a year.
// Year-less forms (--MM-DD) are useless for a days-alive count and are
// rejected.
func parseVCardDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatISO,
		config.DateFormatBasic,
		config.DateFormatRFC,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.ParseInLocation(f, value, time.Local); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
