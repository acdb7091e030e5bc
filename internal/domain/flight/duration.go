package flight

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidStops    = errors.New("invalid stop count")
)

var (
	isoDurationRe  = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+(?:\.\d+)?S)?)?$`)
	textDurationRe = regexp.MustCompile(`^(?:(\d+)\s*h[a-z]*)?\s*(?:(\d+)\s*m[a-z]*)?$`)
)

// ParseDuration turns "2h 15m", "2 h 15 m", "2 hr 15 min" or "PT2H15M" into minutes.
func ParseDuration(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "P") {
		m := isoDurationRe.FindStringSubmatch(upper)
		if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		return atoiOrZero(m[1])*minutesPerDay + atoiOrZero(m[2])*60 + atoiOrZero(m[3]), nil
	}

	m := textDurationRe.FindStringSubmatch(strings.ToLower(trimmed))
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return atoiOrZero(m[1])*60 + atoiOrZero(m[2]), nil
}

// FormatDuration renders minutes as "Xh YYm".
func FormatDuration(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh %02dm", sign, minutes/60, minutes%60)
}

// ParseStops reads "Nonstop", "1 stop" or "2 stops".
func ParseStops(s string) (int, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch lower {
	case "nonstop", "non-stop", "direct":
		return 0, nil
	}

	fields := strings.Fields(lower)
	if len(fields) >= 2 && strings.HasPrefix(fields[1], "stop") {
		n, err := strconv.Atoi(fields[0])
		if err == nil && n >= 0 {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStops, s)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
