package calculator

import (
	"math"

	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/metrics"
)

const privateEquityPhase = 0.6

// PrivateEquityResult is the output of the private equity calculator
type PrivateEquityResult struct {
	Result
	Params          domain.PrivateEquityParams
	CapitalCalls    []float64 // index = year - 1
	HurdleGain      float64
	CarriedInterest float64
	NetDistribution float64
	TVPI            float64
	IRRPct          float64
	IRRDefined      bool
}

// ProjectPrivateEquity runs the private equity calculator.
//
// Committed capital is drawn evenly over the deployment years and only
// deployed capital compounds. A share of each year's gain is reinvested.
// At exit the manager keeps the carried interest on gains above the hurdle.
func ProjectPrivateEquity(p domain.PrivateEquityParams) PrivateEquityResult {
	p = p.Normalize()

	volatility := domain.Oscillation{FactorPct: p.VolatilityPct, Phase: privateEquityPhase}
	if p.DisableVolatilityCurve {
		volatility = domain.Oscillation{}
	}

	result := PrivateEquityResult{
		Result: run(domain.AssetPrivateEquity, domain.ProjectionParameters{
			Principal:            p.Commitment,
			HoldingPeriodYears:   p.HoldingPeriodYears,
			BaseAnnualGrowthRate: p.TargetReturnPct,
			Modifiers:            []domain.Modifier{p.Stage, p.Sector, p.Manager},
			Costs: []domain.CostRate{
				{Kind: domain.CostManagement, RatePct: p.ManagementFeePct},
			},
			Reinvestment: domain.Reinvestment{
				RatePct: p.ReinvestmentPct,
				Basis:   domain.ReinvestOfGain,
			},
			Volatility:      volatility,
			DeploymentYears: p.DeploymentYears,
		}),
		Params: p,
	}

	n := len(result.Projections)
	if n == 0 {
		return result
	}

	// Capital calls per year from the deployment schedule
	result.CapitalCalls = make([]float64, n)
	prevDeployed := 0.0
	for i, y := range result.Projections {
		result.CapitalCalls[i] = y.Deployed - prevDeployed
		prevDeployed = y.Deployed
	}

	last := result.Projections[n-1]
	undeployed := p.Commitment - last.Deployed
	called := last.Deployed

	gain := last.NetValue - p.Commitment
	// Preferred return accrues on called capital only
	result.HurdleGain = called * (math.Pow(1+p.HurdleRatePct/100, float64(n)) - 1)
	if excess := gain - result.HurdleGain; excess > 0 {
		result.CarriedInterest = excess * p.CarriedInterestPct / 100
	}
	result.NetDistribution = last.NetValue - result.CarriedInterest
	result.TVPI = metrics.Multiple(result.NetDistribution, p.Commitment)

	// Cash flows: calls at the start of each year, distribution at exit.
	// Capital never called is not part of the investor's cash flows.
	cashflows := make([]float64, n+1)
	for i, call := range result.CapitalCalls {
		cashflows[i] -= call
	}
	cashflows[n] += result.NetDistribution - undeployed
	result.IRRPct, result.IRRDefined = metrics.IRR(cashflows)

	return result
}
