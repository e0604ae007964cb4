package blend

import "math"

// sugarClasses is ordered by bound and covers [0, +Inf) without gaps.
//
//nolint:gochecknoglobals // Fixed lookup table.
var sugarClasses = [...]SugarClassRule{
	{LowerGPerL: 0, UpperGPerL: 30, Label: "extra seco"},
	{LowerGPerL: 30, UpperGPerL: 50, Label: "seco"},
	{LowerGPerL: 50, UpperGPerL: 90, Label: "semi-seco"},
	{LowerGPerL: 90, UpperGPerL: 130, Label: "semi-dulce"},
	{LowerGPerL: 130, UpperGPerL: 180, Label: "dulce"},
	{LowerGPerL: 180, UpperGPerL: math.Inf(1), Label: "extra dulce"},
}

// SugarClasses returns a copy of the sweetness classification table in
// ascending order.
func SugarClasses() []SugarClassRule {
	out := make([]SugarClassRule, len(sugarClasses))
	copy(out, sugarClasses[:])
	return out
}

// Classify returns the rule whose range contains gPerL.
// It returns false for negative or NaN concentrations.
func Classify(gPerL float64) (SugarClassRule, bool) {
	for _, rule := range sugarClasses {
		if rule.Contains(gPerL) {
			return rule, true
		}
	}
	return SugarClassRule{}, false
}

// SugarLabel returns the sweetness label for gPerL, or UnclassifiedLabel.
func SugarLabel(gPerL float64) string {
	rule, ok := Classify(gPerL)
	if !ok {
		return UnclassifiedLabel
	}
	return rule.Label
}
