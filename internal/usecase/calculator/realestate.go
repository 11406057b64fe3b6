package calculator

import (
	"math"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// RealEstateYear adds mortgage state to a projected year
type RealEstateYear struct {
	Year        int
	LoanBalance float64
	Equity      float64 // NetValue - LoanBalance
}

// RealEstateResult is the output of the real estate calculator
type RealEstateResult struct {
	Result
	Params                domain.RealEstateParams
	DownPayment           float64
	LoanAmount            float64
	MonthlyPayment        float64
	Years                 []RealEstateYear
	FinalEquity           float64
	EquityMultiple        float64 // FinalEquity / DownPayment, 0 without a down payment
	TotalMortgagePayments float64
}

// ProjectRealEstate runs the real estate calculator.
// Property values do not oscillate; maintenance follows the purchase price
// while insurance and management fees follow the appreciated value.
func ProjectRealEstate(p domain.RealEstateParams) RealEstateResult {
	p = p.Normalize()

	result := RealEstateResult{
		Result: run(domain.AssetRealEstate, domain.ProjectionParameters{
			Principal:            p.PropertyPrice,
			HoldingPeriodYears:   p.HoldingPeriodYears,
			BaseAnnualGrowthRate: p.AnnualAppreciationPct,
			Modifiers:            []domain.Modifier{p.PropertyType, p.Location, p.MarketTrend},
			Costs: []domain.CostRate{
				{Kind: domain.CostMaintenance, RatePct: p.MaintenancePct},
				{Kind: domain.CostInsurance, RatePct: p.InsurancePct},
				{Kind: domain.CostManagement, RatePct: p.ManagementFeePct},
			},
		}),
		Params:      p,
		DownPayment: p.PropertyPrice * p.DownPaymentPct / 100,
	}
	result.LoanAmount = p.PropertyPrice - result.DownPayment
	result.MonthlyPayment = MonthlyPayment(result.LoanAmount, p.MortgageRatePct, p.MortgageTermYears)

	result.Years = make([]RealEstateYear, 0, len(result.Projections))
	for _, y := range result.Projections {
		balance := LoanBalance(result.LoanAmount, p.MortgageRatePct, p.MortgageTermYears, y.Year*12)
		result.Years = append(result.Years, RealEstateYear{
			Year:        y.Year,
			LoanBalance: balance,
			Equity:      y.NetValue - balance,
		})
	}

	if n := len(result.Years); n > 0 {
		result.FinalEquity = result.Years[n-1].Equity
		paidMonths := math.Min(float64(n*12), float64(p.MortgageTermYears*12))
		result.TotalMortgagePayments = result.MonthlyPayment * paidMonths
	}
	if result.DownPayment > 0 {
		result.EquityMultiple = result.FinalEquity / result.DownPayment
	}

	return result
}

// MonthlyPayment is the fixed payment of a fully amortising loan
func MonthlyPayment(loan, ratePct float64, termYears int) float64 {
	n := float64(termYears * 12)
	if !(loan > 0) || n <= 0 {
		return 0
	}
	r := ratePct / 100 / 12
	if r == 0 {
		return loan / n
	}
	return loan * r / (1 - math.Pow(1+r, -n))
}

// LoanBalance is the outstanding principal after the given number of payments
func LoanBalance(loan, ratePct float64, termYears, months int) float64 {
	n := termYears * 12
	if !(loan > 0) || months >= n {
		return 0
	}
	if months <= 0 {
		return loan
	}
	payment := MonthlyPayment(loan, ratePct, termYears)
	r := ratePct / 100 / 12
	if r == 0 {
		return math.Max(0, loan-payment*float64(months))
	}
	growth := math.Pow(1+r, float64(months))
	return math.Max(0, loan*growth-payment*(growth-1)/r)
}
