package blend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Float(t *testing.T) {
	f := NewFormatter("en", Milliliters)

	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"two decimals", 982.0408, 2, "982.04"},
		{"one decimal", 10.18288, 1, "10.2"},
		{"zero decimals", 101.8288, 0, "102"},
		{"negative precision clamps", 7.4, -1, "7"},
		{"zero", 0, 2, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Float(tt.value, tt.precision))
		})
	}
}

func TestFormatter_ResultFields(t *testing.T) {
	res := Compute(
		ComponentMeasurement{VolumeML: 750, ABV: 12},
		ComponentMeasurement{VolumeML: 120, ABV: 60},
		ComponentMeasurement{VolumeML: 10, ABV: 96},
		SugarInput{MassGrams: 100},
	)

	ml := NewFormatter("en", Milliliters)
	assert.Equal(t, "982.04 mL", ml.Volume(res.TotalVolumeML))
	assert.Equal(t, "17.47 % v/v", ml.ABV(res.FinalABVPercent))
	assert.Equal(t, "76.4 %", ml.WinePercent(res.WinePercent))
	assert.Equal(t, "10.2 °Bx → semi-dulce (102 g/L)", ml.Sweetness(res))

	l := NewFormatter("en", Liters)
	assert.Equal(t, "0.98 L", l.Volume(res.TotalVolumeML))
	assert.Equal(t, Liters, l.Unit())
}

func TestFormatter_InvalidLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale!!", Milliliters)
	assert.Equal(t, "17.47", f.Float(17.4738, 2))

	empty := NewFormatter("", Milliliters)
	assert.Equal(t, "17.47", empty.Float(17.4738, 2))
}

func TestFormatter_ClassRange(t *testing.T) {
	f := NewFormatter("en", Milliliters)
	assert.Equal(t, "[30, 50)", f.ClassRange(SugarClassRule{LowerGPerL: 30, UpperGPerL: 50}))
	assert.Equal(t, "[180, ∞)", f.ClassRange(SugarClassRule{LowerGPerL: 180, UpperGPerL: math.Inf(1)}))
}

func TestFormatter_LocaleSeparators(t *testing.T) {
	tests := []struct {
		locale string
		value  float64
		want   string
	}{
		{"en", 1234.567, "1,234.57"},
		{"es", 1234.567, "1.234,57"},
		{"de", 1234.567, "1.234,57"},
		{"es", 17.4738, "17,47"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFormatter(tt.locale, Milliliters).Float(tt.value, 2))
		})
	}
}

func TestFormatter_SpanishResultFields(t *testing.T) {
	f := NewFormatter("es", Milliliters)
	assert.Equal(t, "982,04 mL", f.Volume(982.0408))
	assert.Equal(t, "17,47 % v/v", f.ABV(17.4738))
	assert.Equal(t, "0,98 L", NewFormatter("es", Liters).Volume(982.0408))
}
