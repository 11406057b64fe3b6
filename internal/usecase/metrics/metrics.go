package metrics

import (
	"math"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// Summarize derives the headline figures of a projection.
// Every ratio is guarded: a non-positive principal or net value yields 0
// instead of NaN or Inf.
func Summarize(principal float64, years int, projections []domain.YearProjection) domain.Summary {
	s := domain.Summary{
		Principal: finite(principal),
		Years:     years,
	}
	if len(projections) == 0 {
		return s
	}

	last := projections[len(projections)-1]
	s.Years = last.Year
	s.FinalValue = finite(last.Value)
	s.NetFinalValue = finite(last.NetValue)
	s.TotalCosts = finite(last.CumulativeCosts)
	s.TotalReinvested = finite(last.CumulativeReinvested)
	s.TotalReturnPct = TotalReturnPct(s.NetFinalValue, principal)
	s.AnnualizedReturnPct, s.AnnualizedDefined = AnnualizedReturnPct(s.NetFinalValue, principal, s.Years)
	s.Multiple = Multiple(s.NetFinalValue, principal)
	return s
}

// TotalReturnPct is (final/principal - 1) * 100, or 0 when principal <= 0
func TotalReturnPct(final, principal float64) float64 {
	if !(principal > 0) {
		return 0
	}
	return finite((final/principal - 1) * 100)
}

// AnnualizedReturnPct is the compound annual growth rate in percent.
// The second result is false when the rate is undefined (non-positive final
// value, principal or years); the rate is then reported as 0.
func AnnualizedReturnPct(final, principal float64, years int) (float64, bool) {
	if !(principal > 0) || !(final > 0) || years < 1 {
		return 0, false
	}
	r := (math.Pow(final/principal, 1/float64(years)) - 1) * 100
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

// Multiple is final/principal, or 0 when principal <= 0
func Multiple(final, principal float64) float64 {
	if !(principal > 0) {
		return 0
	}
	return finite(final / principal)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
