package service

import (
	"errors"
	"fmt"
	"time"
)

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
	monthLayout    = "2006-01"
)

var ErrInvalidDateTime = errors.New("invalid date-time")

var dateTimeInputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateTimeLayout,
	dateLayout,
}

func parseDateTime(input string) (time.Time, error) {
	for _, layout := range dateTimeInputLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, input)
}

// normalizeDateTime truncates an ISO-8601-ish input to a timezone-naive
// UTC "YYYY-MM-DD HH:MM:SS" string. Empty input normalizes to nil, not
// to "now".
func normalizeDateTime(input string) (*string, error) {
	if input == "" {
		return nil, nil
	}

	t, err := parseDateTime(input)
	if err != nil {
		return nil, err
	}

	formatted := t.UTC().Format(dateTimeLayout)

	return &formatted, nil
}
