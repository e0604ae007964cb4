package recipe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosoynormal/vermutcalc/internal/blend"
)

func TestDefaults(t *testing.T) {
	in := Defaults()
	require.NoError(t, in.Validate())

	res, err := in.Compute()
	require.NoError(t, err)
	assert.Equal(t, "semi-dulce", res.SugarLabel)
	assert.False(t, res.BelowLegalWineThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
		wantMsg string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Input) {},
		},
		{
			name:   "all zero is valid",
			mutate: func(in *Input) { *in = Input{} },
		},
		{
			name:   "upper abv bounds are inclusive",
			mutate: func(in *Input) {
				in.Wine.ABV = 20
				in.Maceration.ABV = 96
				in.Solution.ABV = 96
			},
		},
		{
			name:    "negative wine volume",
			mutate:  func(in *Input) { in.Wine.Volume = -1 },
			wantErr: ErrNegativeVolume,
			wantMsg: "wine.volume",
		},
		{
			name:    "wine abv above 20",
			mutate:  func(in *Input) { in.Wine.ABV = 20.1 },
			wantErr: ErrABVOutOfRange,
			wantMsg: "wine.abv",
		},
		{
			name:    "maceration abv above 96",
			mutate:  func(in *Input) { in.Maceration.ABV = 97 },
			wantErr: ErrABVOutOfRange,
			wantMsg: "maceration.abv",
		},
		{
			name:    "negative solution abv",
			mutate:  func(in *Input) { in.Solution.ABV = -0.5 },
			wantErr: ErrABVOutOfRange,
			wantMsg: "solution.abv",
		},
		{
			name:    "negative sugar",
			mutate:  func(in *Input) { in.SugarGrams = -10 },
			wantErr: ErrNegativeSugar,
			wantMsg: "sugar_grams",
		},
		{
			name:    "NaN volume",
			mutate:  func(in *Input) { in.Maceration.Volume = math.NaN() },
			wantErr: ErrNotFinite,
			wantMsg: "maceration.volume",
		},
		{
			name:    "infinite sugar",
			mutate:  func(in *Input) { in.SugarGrams = math.Inf(1) },
			wantErr: ErrNotFinite,
			wantMsg: "sugar_grams",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Defaults()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	in := Input{
		Wine:       Component{Volume: -1, ABV: 30},
		SugarGrams: -5,
	}

	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeVolume)
	assert.ErrorIs(t, err, ErrABVOutOfRange)
	assert.ErrorIs(t, err, ErrNegativeSugar)
}

func TestCompute_RejectsInvalid(t *testing.T) {
	in := Defaults()
	in.Wine.Volume = -750

	_, err := in.Compute()
	assert.ErrorIs(t, err, ErrNegativeVolume)
}

func TestMeasurements_ScalesLiters(t *testing.T) {
	in := Input{
		Unit:       blend.Liters,
		Wine:       Component{Volume: 0.75, ABV: 12},
		Maceration: Component{Volume: 0.12, ABV: 60},
		Solution:   Component{Volume: 0.01, ABV: 96},
		SugarGrams: 100,
	}

	wine, mac, sol, sugar := in.Measurements()
	assert.InDelta(t, 750.0, wine.VolumeML, 1e-9)
	assert.InDelta(t, 120.0, mac.VolumeML, 1e-9)
	assert.InDelta(t, 10.0, sol.VolumeML, 1e-9)
	assert.InDelta(t, 12.0, wine.ABV, 0)
	assert.InDelta(t, 100.0, sugar.MassGrams, 0, "sugar is never unit-scaled")

	inLiters, err := in.Compute()
	require.NoError(t, err)
	inML, err := Defaults().Compute()
	require.NoError(t, err)
	assert.InDelta(t, inML.FinalABVPercent, inLiters.FinalABVPercent, 1e-9)
	assert.InDelta(t, inML.TotalVolumeML, inLiters.TotalVolumeML, 1e-9)
}

func TestWithUnit(t *testing.T) {
	in := Defaults().WithUnit(blend.Liters)
	assert.Equal(t, blend.Liters, in.Unit)
	assert.InDelta(t, 0.75, in.Wine.Volume, 1e-12)
	assert.InDelta(t, 12.0, in.Wine.ABV, 0)

	back := in.WithUnit(blend.Milliliters)
	assert.InDelta(t, 750.0, back.Wine.Volume, 1e-9)
	assert.InDelta(t, 100.0, back.SugarGrams, 0)
}
