package localtime

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	derr "github.com/ozzus/footdash/internal/domain/errors"
)

const (
	DefaultZone   = "America/Sao_Paulo"
	DisplayLayout = "02/01/2006 15:04"
	DayLayout     = "2006-01-02"
)

type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format local time %q: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return derr.ErrMalformedTimestamp
}

type Formatter struct {
	loc *time.Location
}

func NewFormatter(zone string) (*Formatter, error) {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", zone, err)
	}

	return &Formatter{loc: loc}, nil
}

func (f *Formatter) Location() *time.Location {
	return f.loc
}

// ToLocalDisplay renders an absolute upstream timestamp as DD/MM/YYYY HH:MM in
// the formatter's zone.
func (f *Formatter) ToLocalDisplay(isoUTC string) (string, error) {
	t, err := ParseTimestamp(isoUTC)
	if err != nil {
		return "", &FormatError{Value: isoUTC, Err: err}
	}
	return t.In(f.loc).Format(DisplayLayout), nil
}

func (f *Formatter) Today(now time.Time) string {
	return now.In(f.loc).Format(DayLayout)
}

// ParseTimestamp accepts RFC 3339 and the offset-less form, which is read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}

	trimmed := strings.TrimSpace(value)
	for _, layout := range layouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported datetime format: %q", value)
}

// ParseDay validates a YYYY-MM-DD calendar day.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", derr.ErrInvalidDate, value)
	}
	return t, nil
}
