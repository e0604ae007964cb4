// Package blend computes the properties of a vermouth blend.
//
// A blend is made of a base wine, an herbal maceration, a hydro-alcoholic
// reinforcing solution and sugar dissolved as syrup. Compute derives the
// final volume, alcohol by volume, sugar concentration with its sweetness
// label, and the wine share of the blend. All arithmetic is done in
// milliliters and grams; UnitPreference only scales values at the edges.
package blend

// ComponentMeasurement is one liquid component of the blend.
type ComponentMeasurement struct {
	// VolumeML is the component volume in milliliters.
	VolumeML float64 `json:"volume_ml" yaml:"volume_ml"`

	// ABV is the alcohol content in % v/v, in [0,100].
	ABV float64 `json:"abv" yaml:"abv"`
}

// EthanolML returns the volume of pure ethanol the component contributes.
func (c ComponentMeasurement) EthanolML() float64 {
	return c.VolumeML * c.ABV / percentScale
}

// SugarInput is the sugar added to the blend.
type SugarInput struct {
	MassGrams float64 `json:"mass_grams" yaml:"mass_grams"`
}

// SyrupVolumeML returns the syrup volume in milliliters that carries the sugar.
func (s SugarInput) SyrupVolumeML() float64 {
	return s.MassGrams * SyrupVolumePerGramL * MLPerL
}

// SugarClassRule maps a half-open sugar concentration range to a sweetness label.
type SugarClassRule struct {
	// LowerGPerL is the inclusive lower bound in g/L.
	LowerGPerL float64 `json:"lower_g_per_l"`

	// UpperGPerL is the exclusive upper bound in g/L. The last rule is unbounded.
	UpperGPerL float64 `json:"upper_g_per_l"`

	// Label is the sweetness class name.
	Label string `json:"label"`
}

// Contains reports whether gPerL falls in [LowerGPerL, UpperGPerL).
func (r SugarClassRule) Contains(gPerL float64) bool {
	return gPerL >= r.LowerGPerL && gPerL < r.UpperGPerL
}

// BlendResult holds the derived metrics of a blend.
type BlendResult struct {
	// TotalVolumeML is the final blend volume including syrup.
	TotalVolumeML float64 `json:"total_volume_ml"`

	// FinalABVPercent is the blend alcohol content in % v/v.
	FinalABVPercent float64 `json:"final_abv_percent"`

	// SugarGPerL is grams of sugar per liter of blend.
	SugarGPerL float64 `json:"sugar_g_per_l"`

	// Brix is SugarGPerL / 10.
	Brix float64 `json:"brix"`

	// SugarLabel is the sweetness class for SugarGPerL.
	SugarLabel string `json:"sugar_label"`

	// WinePercent is the share of wine in the final volume.
	WinePercent float64 `json:"wine_percent"`

	// BelowLegalWineThreshold is true when WinePercent < LegalWineThresholdPercent.
	BelowLegalWineThreshold bool `json:"below_legal_wine_threshold"`

	// SyrupVolumeML is the volume contributed by the sugar syrup.
	SyrupVolumeML float64 `json:"syrup_volume_ml"`

	// EthanolVolumeML is the pure ethanol volume in the blend.
	EthanolVolumeML float64 `json:"ethanol_volume_ml"`
}
