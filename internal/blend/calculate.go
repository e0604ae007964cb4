package blend

// Compute derives the blend metrics for the given components and sugar.
//
// Volumes are in milliliters and sugar in grams. A blend with zero total
// volume yields zero for every ratio (ABV, g/L, wine share) instead of
// dividing by zero. Inputs are expected to be validated by the caller:
// non-negative volumes and ABV within [0,100].
//
// Example:
//
//	res := Compute(
//	    ComponentMeasurement{VolumeML: 750, ABV: 12},
//	    ComponentMeasurement{VolumeML: 120, ABV: 60},
//	    ComponentMeasurement{VolumeML: 10, ABV: 96},
//	    SugarInput{MassGrams: 100},
//	)
//	// res.FinalABVPercent ≈ 17.47, res.SugarLabel == "semi-dulce"
func Compute(wine, maceration, solution ComponentMeasurement, sugar SugarInput) BlendResult {
	syrupML := sugar.SyrupVolumeML()
	totalML := wine.VolumeML + maceration.VolumeML + solution.VolumeML + syrupML
	ethanolML := wine.EthanolML() + maceration.EthanolML() + solution.EthanolML()

	gPerL := safeDiv(sugar.MassGrams, totalML*LPerML)
	winePct := safeDiv(wine.VolumeML, totalML) * percentScale

	return BlendResult{
		TotalVolumeML:           totalML,
		FinalABVPercent:         safeDiv(ethanolML, totalML) * percentScale,
		SugarGPerL:              gPerL,
		Brix:                    gPerL / BrixDivisor,
		SugarLabel:              SugarLabel(gPerL),
		WinePercent:             winePct,
		BelowLegalWineThreshold: winePct < LegalWineThresholdPercent,
		SyrupVolumeML:           syrupML,
		EthanolVolumeML:         ethanolML,
	}
}

// safeDiv returns num/den, or 0 when den is 0.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
