package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for day buckets.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks)$`)

// Parser resolves calendar dates relative to "now" in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) string {
	return now.In(p.location).Format(DateLayout)
}

// Resolve turns a date reference into YYYY-MM-DD. Accepts an absolute date,
// "today", "tomorrow", "yesterday", "in N days|weeks" and "next <weekday>".
func (p *Parser) Resolve(ref string, now time.Time) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	base := p.startOfDay(now)

	switch ref {
	case "today":
		return base.Format(DateLayout), nil
	case "tomorrow":
		return base.AddDate(0, 0, 1).Format(DateLayout), nil
	case "yesterday":
		return base.AddDate(0, 0, -1).Format(DateLayout), nil
	}

	if m := inDurationPattern.FindStringSubmatch(ref); len(m) == 3 {
		amount, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			amount *= 7
		}
		return base.AddDate(0, 0, amount).Format(DateLayout), nil
	}

	if strings.HasPrefix(ref, "next ") {
		return p.nextWeekday(strings.TrimPrefix(ref, "next "), base)
	}

	if _, err := ParseDate(ref); err != nil {
		return "", err
	}
	return ref, nil
}

// Compare reports whether date is before (-1), on (0) or after (1) today.
func (p *Parser) Compare(date string, now time.Time) (int, error) {
	if _, err := ParseDate(date); err != nil {
		return 0, err
	}
	// YYYY-MM-DD sorts lexically
	return strings.Compare(date, p.Today(now)), nil
}

// At returns the instant of a clock offset (minutes since midnight) on date.
func (p *Parser) At(date string, minutes int) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d.Add(time.Duration(minutes) * time.Minute), nil
}

func (p *Parser) nextWeekday(dayName string, base time.Time) (string, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	target, ok := weekdays[dayName]
	if !ok {
		return "", fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil).Format(DateLayout), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d, nil
}

// AddDays returns date shifted by n calendar days.
func AddDays(date string, n int) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(DateLayout), nil
}
