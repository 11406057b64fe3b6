package accumulator

import (
	"math"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// Project runs the year-by-year projection for the given parameters.
//
// Logic, for year = 1..HoldingPeriodYears:
//  1. Move this year's share of undeployed capital into the holding
//  2. Adjust the effective rate by sin(year*Phase)*FactorPct
//  3. Compound the value (never below zero)
//  4. Charge costs: principal-basis kinds against the purchase price,
//     value-basis kinds against the appreciated value
//  5. Reinvest per the reinvestment basis
//  6. Record the YearProjection; cumulative totals carry forward
//
// Degenerate parameters (principal <= 0, no years, non-finite rate) return an
// empty slice. Non-finite volatility, cost or reinvestment inputs are treated
// as disabled.
func Project(p domain.ProjectionParameters) []domain.YearProjection {
	if p.IsDegenerate() {
		return []domain.YearProjection{}
	}

	effectiveRate := p.EffectiveRate()
	if !finite(effectiveRate) {
		return []domain.YearProjection{}
	}

	deploymentYears := p.DeploymentYears
	if deploymentYears < 0 {
		deploymentYears = 0
	}

	value := p.Principal
	undeployed := 0.0
	deployed := p.Principal
	if deploymentYears > 0 {
		value = 0
		undeployed = p.Principal
		deployed = 0
	}

	projections := make([]domain.YearProjection, 0, p.HoldingPeriodYears)
	cumulativeCosts := 0.0
	cumulativeReinvested := 0.0

	for year := 1; year <= p.HoldingPeriodYears; year++ {
		// Step 1: capital call
		if year <= deploymentYears {
			call := p.Principal / float64(deploymentYears)
			if call > undeployed {
				call = undeployed
			}
			undeployed -= call
			deployed += call
			value += call
		}

		// Step 2-3: compound
		before := value
		value *= 1 + AdjustedRate(effectiveRate, p.Volatility, year)/100
		if value < 0 {
			value = 0
		}

		// Step 4: costs
		costs := make(map[domain.CostKind]float64, len(p.Costs))
		for _, c := range p.Costs {
			if !(c.RatePct > 0) || !finite(c.RatePct) {
				continue
			}
			basis := p.Principal
			if c.Kind.Basis() == domain.BasisCurrentValue {
				basis = value
			}
			amount := basis * c.RatePct / 100
			costs[c.Kind] += amount
			cumulativeCosts += amount
		}

		// Step 5: reinvestment
		reinvested := reinvestment(p.Reinvestment, before, value)
		value += reinvested
		cumulativeReinvested += reinvested

		projections = append(projections, domain.YearProjection{
			Year:                 year,
			Value:                value,
			PeriodicCosts:        costs,
			CumulativeCosts:      cumulativeCosts,
			Reinvested:           reinvested,
			CumulativeReinvested: cumulativeReinvested,
			Deployed:             deployed,
			NetValue:             value + undeployed - cumulativeCosts,
		})
	}

	return projections
}

// AdjustedRate applies the deterministic volatility term for a year
func AdjustedRate(effectiveRate float64, o domain.Oscillation, year int) float64 {
	if !o.Enabled() {
		return effectiveRate
	}
	return effectiveRate + math.Sin(float64(year)*o.Phase)*o.FactorPct
}

// reinvestment returns the amount put back into the holding this year
func reinvestment(r domain.Reinvestment, before, after float64) float64 {
	if !(r.RatePct > 0) || !finite(r.RatePct) {
		return 0
	}
	share := math.Min(r.RatePct, 100) / 100

	switch r.Basis {
	case domain.ReinvestOfValue:
		if !(r.YieldPct > 0) || !finite(r.YieldPct) {
			return 0
		}
		return after * r.YieldPct / 100 * share
	default:
		gain := after - before
		if gain <= 0 {
			return 0
		}
		return gain * share
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
