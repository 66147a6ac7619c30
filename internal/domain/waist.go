package domain

// WaistRisk is the band of a waist-to-height ratio.
type WaistRisk string

const (
	WaistRiskLow       WaistRisk = "low"
	WaistRiskHealthy   WaistRisk = "healthy"
	WaistRiskIncreased WaistRisk = "increased"
	WaistRiskHigh      WaistRisk = "high"
)

// WaistRatio is waist circumference over height with its risk band.
type WaistRatio struct {
	Ratio float64   `json:"ratio"`
	Risk  WaistRisk `json:"risk"`
}

// WaistToHeight computes the ratio and band. Both lengths are in cm.
func WaistToHeight(waistCm, heightCm float64) WaistRatio {
	r := waistCm / heightCm
	var risk WaistRisk
	switch {
	case r < 0.4:
		risk = WaistRiskLow
	case r < 0.5:
		risk = WaistRiskHealthy
	case r < 0.6:
		risk = WaistRiskIncreased
	default:
		risk = WaistRiskHigh
	}
	return WaistRatio{Ratio: r, Risk: risk}
}
