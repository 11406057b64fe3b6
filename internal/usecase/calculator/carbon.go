package calculator

import (
	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/accumulator"
)

const carbonPhase = 1.3

// CarbonYear adds credit price and holdings to a projected year
type CarbonYear struct {
	Year         int
	CreditPrice  float64
	CreditsOwned float64
}

// CarbonCreditResult is the output of the carbon credit calculator
type CarbonCreditResult struct {
	Result
	Params            domain.CarbonCreditParams
	InitialCredits    float64
	FinalCreditsOwned float64
	FinalCreditPrice  float64
	TonnesOffset      float64
	Years             []CarbonYear
}

// ProjectCarbonCredits runs the carbon credit calculator.
//
// The credit price compounds at the effective rate. The portfolio earns a
// yield on its current value and the reinvestment rate decides how much of
// that yield buys additional credits at the year's price. Reinvestment is
// therefore a share of current value, not of the year's gain.
func ProjectCarbonCredits(p domain.CarbonCreditParams) CarbonCreditResult {
	p = p.Normalize()

	volatility := domain.Oscillation{FactorPct: p.VolatilityPct, Phase: carbonPhase}
	if p.DisableVolatilityCurve {
		volatility = domain.Oscillation{}
	}

	params := domain.ProjectionParameters{
		Principal:            p.InvestmentAmount,
		HoldingPeriodYears:   p.HoldingPeriodYears,
		BaseAnnualGrowthRate: p.PriceGrowthPct,
		Modifiers:            []domain.Modifier{p.ProjectType, p.Verification},
		Costs: []domain.CostRate{
			{Kind: domain.CostManagement, RatePct: p.RegistryFeePct},
		},
		Reinvestment: domain.Reinvestment{
			RatePct:  p.ReinvestmentPct,
			Basis:    domain.ReinvestOfValue,
			YieldPct: p.CreditYieldPct,
		},
		Volatility: volatility,
	}

	result := CarbonCreditResult{
		Result:           run(domain.AssetCarbonCredits, params),
		Params:           p,
		InitialCredits:   p.InvestmentAmount / p.CreditPrice,
		FinalCreditPrice: p.CreditPrice,
	}
	result.FinalCreditsOwned = result.InitialCredits

	price := p.CreditPrice
	credits := result.InitialCredits
	effective := params.EffectiveRate()
	result.Years = make([]CarbonYear, 0, len(result.Projections))
	for _, y := range result.Projections {
		price *= 1 + accumulator.AdjustedRate(effective, volatility, y.Year)/100
		if price < 0 {
			price = 0
		}
		if price > 0 {
			credits = y.Value / price
		}
		result.Years = append(result.Years, CarbonYear{
			Year:         y.Year,
			CreditPrice:  price,
			CreditsOwned: credits,
		})
	}

	if n := len(result.Years); n > 0 {
		result.FinalCreditsOwned = result.Years[n-1].CreditsOwned
		result.FinalCreditPrice = result.Years[n-1].CreditPrice
	}
	result.TonnesOffset = result.FinalCreditsOwned

	return result
}
