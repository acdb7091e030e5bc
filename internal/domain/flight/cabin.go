package flight

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	CabinMain     = "main"
	CabinBusiness = "business"
	CabinFirst    = "first"
)

// Unit is the denomination of every value in one Costs table.
type Unit string

const (
	UnitUSD   Unit = "USD"
	UnitMiles Unit = "miles"
)

var (
	ErrInvalidCost = errors.New("invalid cost")
	ErrUnknownUnit = errors.New("unknown cost unit")
)

// CanonicalCabin maps a free-text cabin label onto main/business/first.
// Labels matching none of them are kept as given so no fare is lost.
func CanonicalCabin(label string) string {
	trimmed := strings.TrimSpace(label)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, CabinFirst):
		return CabinFirst
	case strings.Contains(lower, CabinBusiness):
		return CabinBusiness
	case strings.Contains(lower, CabinMain):
		return CabinMain
	default:
		return trimmed
	}
}

// ParseCost reads "20K", "12.5K", "20,000" (miles) or "$120.50", "120.50" (currency).
// A K suffix is only meaningful for miles.
func ParseCost(unit Unit, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if head, _, found := strings.Cut(s, "+"); found {
		// "20K + $5.60": taxes are not part of the mileage cost
		s = strings.TrimSpace(head)
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCost)
	}

	multiplier := 1.0
	switch unit {
	case UnitMiles:
		if strings.HasSuffix(s, "K") || strings.HasSuffix(s, "k") {
			s = s[:len(s)-1]
			multiplier = 1000
		}
	case UnitUSD:
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCost, raw)
	}
	return v * multiplier, nil
}

// Costs is a cabin → cost table in a single unit.
type Costs struct {
	unit   Unit
	values map[string]float64
}

func NewCosts(unit Unit, values map[string]float64) (Costs, error) {
	if unit != UnitUSD && unit != UnitMiles {
		return Costs{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	out := make(map[string]float64, len(values))
	for cabin, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Costs{}, fmt.Errorf("%w: %s=%v", ErrInvalidCost, cabin, v)
		}
		out[cabin] = v
	}
	return Costs{unit: unit, values: out}, nil
}

// ParseCosts canonicalizes labels and parses values. When two labels land on
// the same cabin the cheaper one is kept.
func ParseCosts(unit Unit, raw map[string]string) (Costs, error) {
	values := make(map[string]float64, len(raw))
	for label, text := range raw {
		v, err := ParseCost(unit, text)
		if err != nil {
			return Costs{}, fmt.Errorf("cabin %q: %w", label, err)
		}
		cabin := CanonicalCabin(label)
		if existing, ok := values[cabin]; ok && existing <= v {
			continue
		}
		values[cabin] = v
	}
	return NewCosts(unit, values)
}

func (c Costs) Unit() Unit { return c.unit }
func (c Costs) Len() int   { return len(c.values) }

func (c Costs) Get(cabin string) (float64, bool) {
	v, ok := c.values[cabin]
	return v, ok
}

// Primary is the main-cabin cost, falling back to the cheapest cabin listed.
func (c Costs) Primary() (float64, bool) {
	if v, ok := c.values[CabinMain]; ok {
		return v, true
	}
	best, found := 0.0, false
	for _, v := range c.values {
		if !found || v < best {
			best, found = v, true
		}
	}
	return best, found
}

func (c Costs) Cabins() []string {
	cabins := make([]string, 0, len(c.values))
	for cabin := range c.values {
		cabins = append(cabins, cabin)
	}
	sort.Strings(cabins)
	return cabins
}
