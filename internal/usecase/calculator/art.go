package calculator

import "github.com/simaogato/tokenvest-backend/internal/domain"

// artPhase spaces the appreciation swings of the art market
const artPhase = 0.9

// ArtResult is the output of the art calculator
type ArtResult struct {
	Result
	Params domain.ArtParams
}

// ProjectArt runs the art calculator.
// Storage is charged on the purchase price, insurance on the current value.
// Art is not reinvested.
func ProjectArt(p domain.ArtParams) ArtResult {
	p = p.Normalize()

	volatility := domain.Oscillation{FactorPct: p.VolatilityPct, Phase: artPhase}
	if p.DisableVolatilityCurve {
		volatility = domain.Oscillation{}
	}

	return ArtResult{
		Result: run(domain.AssetArt, domain.ProjectionParameters{
			Principal:            p.PurchasePrice,
			HoldingPeriodYears:   p.HoldingPeriodYears,
			BaseAnnualGrowthRate: p.BaseAppreciationPct,
			Modifiers:            []domain.Modifier{p.Reputation, p.Condition, p.MarketTrend, p.Authenticity},
			Costs: []domain.CostRate{
				{Kind: domain.CostStorage, RatePct: p.StoragePct},
				{Kind: domain.CostInsurance, RatePct: p.InsurancePct},
			},
			Volatility: volatility,
		}),
		Params: p,
	}
}
