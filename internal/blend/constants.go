package blend

// Syrup model constants.
//
// Sugar is assumed to be dissolved as a 2:1 (sugar:water, by mass) syrup at
// 20 °C. One gram of sugar therefore carries half a gram of water, giving
// 1.5 g of syrup per gram of sugar, which occupies 1.5 / 1.47 mL:
//
//	syrup_mL = sugar_g * SyrupVolumePerGramL * 1000
//
// Volume contraction on mixing is not modelled.
const (
	// SyrupDensity2to1 is the density of a 2:1 sugar syrup in g/mL at 20 °C.
	SyrupDensity2to1 = 1.47

	// SyrupMassPerGramSugar is the mass of 2:1 syrup (g) that holds one gram of sugar.
	SyrupMassPerGramSugar = 1.5

	// SyrupVolumePerGramL is the syrup volume in liters contributed per gram
	// of sugar (≈ 0.0010204 L/g).
	SyrupVolumePerGramL = (SyrupMassPerGramSugar / SyrupDensity2to1) / MLPerL
)

// Unit conversion constants.
const (
	// MLPerL converts liters to milliliters.
	MLPerL = 1000.0

	// LPerML converts milliliters to liters.
	LPerML = 1 / MLPerL

	// percentScale converts a fraction to a percentage.
	percentScale = 100.0
)

// Blend thresholds.
const (
	// LegalWineThresholdPercent is the minimum wine share many jurisdictions
	// require for a product to be labelled vermouth.
	LegalWineThresholdPercent = 75.0

	// BrixDivisor is the linear g/L to °Bx approximation divisor.
	// This is not a refractometric conversion.
	BrixDivisor = 10.0
)

// Display precisions (decimal places) used by the result formatters.
const (
	VolumePrecision      = 2
	ABVPrecision         = 2
	BrixPrecision        = 1
	SugarGPerLPrecision  = 0
	WinePercentPrecision = 1
)

// UnclassifiedLabel is returned for concentrations no rule covers
// (negative or NaN input).
const UnclassifiedLabel = "sin clasificar"
