package flight

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var ErrInvalidClockTime = errors.New("invalid clock time")

// ClockTime is a local wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

func MustClockTime(hour, minute int) ClockTime {
	c, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf reads the wall clock of t in its own location.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

// ParseClockTime accepts "HH:MM" and "HH:MM:SS" in 24-hour notation.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return NewClockTime(hour, minute)
}

// ParseDisplayTime parses page-formatted times such as "6:10 AM", "11:05 PM+1"
// or "7:45 PM EST +1". Timezone labels are dropped and a "+N" marker becomes
// the returned day offset.
func ParseDisplayTime(s string) (ClockTime, int, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ClockTime{}, 0, fmt.Errorf("%w: empty", ErrInvalidClockTime)
	}

	dayOffset := 0
	if idx := strings.Index(raw, "+"); idx >= 0 {
		marker := strings.TrimSpace(raw[idx+1:])
		dayOffset = 1
		if digits := leadingDigits(marker); digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return ClockTime{}, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
			}
			dayOffset = n
		}
		raw = strings.TrimSpace(raw[:idx])
	}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ClockTime{}, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	value := fields[0]
	if len(fields) > 1 {
		if meridiem := normalizeMeridiem(fields[1]); meridiem != "" {
			value += " " + meridiem
		}
	}
	value = strings.ToUpper(value)

	for _, layout := range []string{"3:04 PM", "3:04PM", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return ClockOf(t), dayOffset, nil
		}
	}
	return ClockTime{}, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
}

func normalizeMeridiem(token string) string {
	switch strings.ToUpper(strings.ReplaceAll(token, ".", "")) {
	case "AM":
		return "AM"
	case "PM":
		return "PM"
	default:
		return ""
	}
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func (c ClockTime) Hour() int         { return c.minutes / 60 }
func (c ClockTime) Minute() int       { return c.minutes % 60 }
func (c ClockTime) MinutesOfDay() int { return c.minutes }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On places the clock time on the calendar day of date.
func (c ClockTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, time.UTC)
}

// AbsDiff is the distance in minutes between two times of day, without wrap-around.
func (c ClockTime) AbsDiff(other ClockTime) int {
	diff := c.minutes - other.minutes
	if diff < 0 {
		return -diff
	}
	return diff
}

// ParseDate parses a travel date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid travel date %q: %w", s, err)
	}
	return t, nil
}
