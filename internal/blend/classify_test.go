package blend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSugarLabel(t *testing.T) {
	tests := []struct {
		gPerL float64
		want  string
	}{
		{0, "extra seco"},
		{29.999, "extra seco"},
		{30, "seco"},
		{49.9, "seco"},
		{50, "semi-seco"},
		{89.99, "semi-seco"},
		{90, "semi-dulce"},
		{101.83, "semi-dulce"},
		{130, "dulce"},
		{179.999, "dulce"},
		{180, "extra dulce"},
		{1e12, "extra dulce"},
		{-0.001, UnclassifiedLabel},
		{math.NaN(), UnclassifiedLabel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SugarLabel(tt.gPerL), "g/L %v", tt.gPerL)
	}
}

func TestSugarClasses_ContiguousAndExhaustive(t *testing.T) {
	classes := SugarClasses()
	require.Len(t, classes, 6)

	assert.Zero(t, classes[0].LowerGPerL, "table must start at zero")
	assert.True(t, math.IsInf(classes[len(classes)-1].UpperGPerL, 1), "last rule must be unbounded")

	for i := 1; i < len(classes); i++ {
		assert.Equal(t, classes[i-1].UpperGPerL, classes[i].LowerGPerL,
			"gap or overlap between %q and %q", classes[i-1].Label, classes[i].Label)
	}
}

func TestSugarClasses_ExactlyOneMatch(t *testing.T) {
	classes := SugarClasses()

	for g := 0.0; g <= 400; g += 0.25 {
		matches := 0
		for _, rule := range classes {
			if rule.Contains(g) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "g/L %v", g)
	}
}

func TestSugarClasses_ReturnsCopy(t *testing.T) {
	classes := SugarClasses()
	classes[0].Label = "mutated"

	assert.Equal(t, "extra seco", SugarLabel(0))
}

func TestClassify(t *testing.T) {
	rule, ok := Classify(95)
	require.True(t, ok)
	assert.Equal(t, "semi-dulce", rule.Label)
	assert.InDelta(t, 90.0, rule.LowerGPerL, 0)
	assert.InDelta(t, 130.0, rule.UpperGPerL, 0)

	_, ok = Classify(-1)
	assert.False(t, ok)
}
