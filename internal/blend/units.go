package blend

import (
	"fmt"
	"strings"
)

// UnitPreference selects the volume unit used for input and display.
// Internal computation is always in milliliters.
type UnitPreference int

const (
	// Milliliters is the canonical unit.
	Milliliters UnitPreference = iota

	// Liters scales volumes by 1000 at the edges.
	Liters
)

// String returns the short unit name used in config files and flags.
func (u UnitPreference) String() string {
	switch u {
	case Milliliters:
		return "ml"
	case Liters:
		return "l"
	default:
		return fmt.Sprintf("UnitPreference(%d)", int(u))
	}
}

// Suffix returns the display suffix ("mL" or "L").
func (u UnitPreference) Suffix() string {
	if u == Liters {
		return "L"
	}
	return "mL"
}

// factor returns how many milliliters one unit holds.
func (u UnitPreference) factor() float64 {
	if u == Liters {
		return MLPerL
	}
	return 1
}

// ToML converts a volume expressed in u to milliliters.
func (u UnitPreference) ToML(v float64) float64 {
	return v * u.factor()
}

// FromML converts a volume in milliliters to u.
func (u UnitPreference) FromML(ml float64) float64 {
	return ml / u.factor()
}

// MarshalText implements encoding.TextMarshaler.
func (u UnitPreference) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UnitPreference) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit parses a unit name case-insensitively. Accepted values:
// ml, milliliters, millilitres, mililitros, l, liters, litres, litros.
// An empty string parses as Milliliters.
func ParseUnit(s string) (UnitPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ml", "milliliters", "millilitres", "mililitros":
		return Milliliters, nil
	case "l", "liters", "litres", "litros":
		return Liters, nil
	default:
		return Milliliters, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}
