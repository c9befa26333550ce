package dto

import (
	"fmt"
	"strings"
	"time"

	"event-hub/core/constants"
)

// DateTime is a UTC timestamp encoded as "2006-01-02 15:04:05".
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

// NewDateTimePtr returns nil for nil input.
func NewDateTimePtr(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	dt := NewDateTime(*t)
	return &dt
}

func ParseDateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.StatsDateTimeLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q, expected format %s", value, constants.StatsDateTimeLayout)
	}
	return t, nil
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(constants.StatsDateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + FormatDateTime(d.Time) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
