package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    UnitPreference
		wantErr bool
	}{
		{"", Milliliters, false},
		{"ml", Milliliters, false},
		{"mL", Milliliters, false},
		{"ML", Milliliters, false},
		{"mililitros", Milliliters, false},
		{" milliliters ", Milliliters, false},
		{"l", Liters, false},
		{"L", Liters, false},
		{"litros", Liters, false},
		{"liters", Liters, false},
		{"gallons", Milliliters, true},
		{"cl", Milliliters, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitPreference_Scaling(t *testing.T) {
	assert.InDelta(t, 750.0, Milliliters.ToML(750), 0)
	assert.InDelta(t, 750.0, Liters.ToML(0.75), floatTolerance)
	assert.InDelta(t, 0.98204, Liters.FromML(982.04), floatTolerance)
	assert.InDelta(t, 982.04, Milliliters.FromML(982.04), 0)

	for _, v := range []float64{0, 0.001, 1.5, 750, 12345.678} {
		assert.InDelta(t, v, Liters.FromML(Liters.ToML(v)), floatTolerance)
	}
}

func TestUnitPreference_Names(t *testing.T) {
	assert.Equal(t, "ml", Milliliters.String())
	assert.Equal(t, "l", Liters.String())
	assert.Equal(t, "mL", Milliliters.Suffix())
	assert.Equal(t, "L", Liters.Suffix())
	assert.Equal(t, "UnitPreference(7)", UnitPreference(7).String())
}

func TestUnitPreference_TextRoundTrip(t *testing.T) {
	var u UnitPreference
	require.NoError(t, u.UnmarshalText([]byte("litros")))
	assert.Equal(t, Liters, u)

	text, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "l", string(text))

	assert.ErrorIs(t, u.UnmarshalText([]byte("pints")), ErrInvalidUnit)
}
