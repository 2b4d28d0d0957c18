package grid

import (
	"fmt"
	"math"
	"strings"
)

// Breakpoint is a named viewport-width tier. Values are ordered by width, so
// Mobile < Narrow < Mid < Full.
type Breakpoint int

const (
	Mobile Breakpoint = iota
	Narrow
	Mid
	Full
)

// breakpointCount is the number of declared tiers.
const breakpointCount = 4

// Default width thresholds in pixels.
const (
	DefaultMobileMax = 600
	DefaultNarrowMax = 800
	DefaultMidMax    = 1000
)

var breakpointNames = [breakpointCount]string{
	Mobile: "mobile",
	Narrow: "narrow",
	Mid:    "mid",
	Full:   "full",
}

// Breakpoints returns every tier from narrowest to widest.
func Breakpoints() []Breakpoint {
	return []Breakpoint{Mobile, Narrow, Mid, Full}
}

// Valid reports whether b is one of the declared tiers.
func (b Breakpoint) Valid() bool {
	return b >= Mobile && b <= Full
}

func (b Breakpoint) String() string {
	if !b.Valid() {
		return fmt.Sprintf("breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// Label returns the capitalised name used in headers.
func (b Breakpoint) Label() string {
	s := b.String()
	if !b.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseBreakpoint maps a case-insensitive tier name to its Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for i, n := range breakpointNames {
		if n == trimmed {
			return Breakpoint(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown breakpoint %q", ErrInvalidBreakpointConfig, name)
}

// Thresholds holds the closed upper bound, in pixels, of each tier below Full.
type Thresholds struct {
	MobileMax float64
	NarrowMax float64
	MidMax    float64
}

// DefaultThresholds returns the 600/800/1000 cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MobileMax: DefaultMobileMax,
		NarrowMax: DefaultNarrowMax,
		MidMax:    DefaultMidMax,
	}
}

// Validate checks that 0 < mobile < narrow < mid and that every value is finite.
func (t Thresholds) Validate() error {
	for _, v := range []float64{t.MobileMax, t.NarrowMax, t.MidMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: thresholds must be finite, got %v/%v/%v",
				ErrInvalidBreakpointConfig, t.MobileMax, t.NarrowMax, t.MidMax)
		}
	}
	if t.MobileMax <= 0 {
		return fmt.Errorf("%w: mobile_max must be positive, got %v", ErrInvalidBreakpointConfig, t.MobileMax)
	}
	if !(t.MobileMax < t.NarrowMax && t.NarrowMax < t.MidMax) {
		return fmt.Errorf("%w: thresholds must be strictly ordered mobile < narrow < mid, got %v/%v/%v",
			ErrInvalidBreakpointConfig, t.MobileMax, t.NarrowMax, t.MidMax)
	}
	return nil
}

// UpperBound returns the closed upper bound of b, or +Inf for Full.
func (t Thresholds) UpperBound(b Breakpoint) float64 {
	switch b {
	case Mobile:
		return t.MobileMax
	case Narrow:
		return t.NarrowMax
	case Mid:
		return t.MidMax
	default:
		return math.Inf(1)
	}
}

// Classifier maps viewport widths to breakpoints. The zero value is not
// usable; build one with NewClassifier.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier validates t and returns a classifier using it.
func NewClassifier(t Thresholds) (Classifier, error) {
	if err := t.Validate(); err != nil {
		return Classifier{}, err
	}
	return Classifier{thresholds: t}, nil
}

// DefaultClassifier returns a classifier using DefaultThresholds.
func DefaultClassifier() Classifier {
	return Classifier{thresholds: DefaultThresholds()}
}

// Thresholds returns the cutoffs the classifier was built with.
func (c Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify returns the narrowest tier whose upper bound is >= width.
// Negative and NaN widths are treated as 0.
func (c Classifier) Classify(width float64) Breakpoint {
	if math.IsNaN(width) || width < 0 {
		width = 0
	}
	switch {
	case width <= c.thresholds.MobileMax:
		return Mobile
	case width <= c.thresholds.NarrowMax:
		return Narrow
	case width <= c.thresholds.MidMax:
		return Mid
	default:
		return Full
	}
}

// Classify classifies width with the default thresholds.
func Classify(width float64) Breakpoint {
	return DefaultClassifier().Classify(width)
}
