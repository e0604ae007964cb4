// Package recipe is the input boundary in front of the blend calculator.
//
// It holds the values a producer enters (in the unit they chose), enforces
// the input bounds the calculator relies on, and reads recipes from YAML.
package recipe

import (
	"errors"
	"fmt"
	"math"

	"github.com/nosoynormal/vermutcalc/internal/blend"
)

// Input bounds for alcohol content, in % v/v.
const (
	MaxWineABV       = 20.0
	MaxMacerationABV = 96.0
	MaxSolutionABV   = 96.0
)

// Component is a liquid component as entered, with the volume in the
// recipe's unit.
type Component struct {
	Volume float64 `json:"volume" yaml:"volume"`
	ABV    float64 `json:"abv" yaml:"abv"`
}

// Input is a complete set of blend inputs.
type Input struct {
	Name       string               `json:"name,omitempty"`
	Unit       blend.UnitPreference `json:"unit"`
	Wine       Component            `json:"wine"`
	Maceration Component            `json:"maceration"`
	Solution   Component            `json:"solution"`
	SugarGrams float64              `json:"sugar_grams"`
}

// Defaults returns the starting values offered to a new user: 750 mL of 12 %
// wine, 120 mL of 60 % maceration, 10 mL of 96 % solution and 100 g sugar.
func Defaults() Input {
	return Input{
		Unit:       blend.Milliliters,
		Wine:       Component{Volume: 750, ABV: 12},
		Maceration: Component{Volume: 120, ABV: 60},
		Solution:   Component{Volume: 10, ABV: 96},
		SugarGrams: 100,
	}
}

// WithUnit returns a copy of in expressed in unit u, with volumes rescaled.
func (in Input) WithUnit(u blend.UnitPreference) Input {
	out := in
	out.Unit = u
	out.Wine.Volume = u.FromML(in.Unit.ToML(in.Wine.Volume))
	out.Maceration.Volume = u.FromML(in.Unit.ToML(in.Maceration.Volume))
	out.Solution.Volume = u.FromML(in.Unit.ToML(in.Solution.Volume))
	return out
}

// Measurements converts the input to the calculator's milliliter-based values.
func (in Input) Measurements() (wine, maceration, solution blend.ComponentMeasurement, sugar blend.SugarInput) {
	toMeasurement := func(c Component) blend.ComponentMeasurement {
		return blend.ComponentMeasurement{VolumeML: in.Unit.ToML(c.Volume), ABV: c.ABV}
	}
	return toMeasurement(in.Wine),
		toMeasurement(in.Maceration),
		toMeasurement(in.Solution),
		blend.SugarInput{MassGrams: in.SugarGrams}
}

// Compute validates the input and runs the calculator.
func (in Input) Compute() (blend.BlendResult, error) {
	if err := in.Validate(); err != nil {
		return blend.BlendResult{}, err
	}
	wine, mac, sol, sugar := in.Measurements()
	return blend.Compute(wine, mac, sol, sugar), nil
}

// Validate checks every field against its bounds and returns all violations
// joined. Each violation wraps one of the package sentinel errors.
func (in Input) Validate() error {
	var errs []error

	errs = append(errs, validateComponent("wine", in.Wine, MaxWineABV)...)
	errs = append(errs, validateComponent("maceration", in.Maceration, MaxMacerationABV)...)
	errs = append(errs, validateComponent("solution", in.Solution, MaxSolutionABV)...)

	switch {
	case !isFinite(in.SugarGrams):
		errs = append(errs, fmt.Errorf("sugar_grams: %w", ErrNotFinite))
	case in.SugarGrams < 0:
		errs = append(errs, fmt.Errorf("sugar_grams: %w (got %g)", ErrNegativeSugar, in.SugarGrams))
	}

	return errors.Join(errs...)
}

func validateComponent(name string, c Component, maxABV float64) []error {
	var errs []error

	switch {
	case !isFinite(c.Volume):
		errs = append(errs, fmt.Errorf("%s.volume: %w", name, ErrNotFinite))
	case c.Volume < 0:
		errs = append(errs, fmt.Errorf("%s.volume: %w (got %g)", name, ErrNegativeVolume, c.Volume))
	}

	switch {
	case !isFinite(c.ABV):
		errs = append(errs, fmt.Errorf("%s.abv: %w", name, ErrNotFinite))
	case c.ABV < 0 || c.ABV > maxABV:
		errs = append(errs, fmt.Errorf("%s.abv: %w (got %g, want 0-%g)", name, ErrABVOutOfRange, c.ABV, maxABV))
	}

	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
