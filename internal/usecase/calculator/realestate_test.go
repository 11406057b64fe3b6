package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

func TestProjectRealEstate_TenYearResidentialScenario(t *testing.T) {
	// $500,000 residential, 20% down, 5% appreciation, 1% maintenance
	p := domain.DefaultRealEstateParams()
	p.PropertyPrice = 500_000
	p.DownPaymentPct = 20
	p.AnnualAppreciationPct = 5
	p.HoldingPeriodYears = 10
	p.PropertyType = domain.PropertyResidential
	p.MaintenancePct = 1
	p.InsurancePct = 0
	p.ManagementFeePct = 0

	result := ProjectRealEstate(p)

	require.Len(t, result.Projections, 10)
	require.Len(t, result.Years, 10)
	assert.Equal(t, 5.0, result.EffectiveRatePct)

	final := result.Projections[9]
	assert.InDelta(t, 814_447, final.Value, 1)
	assert.InEpsilon(t, 500_000*math.Pow(1.05, 10), final.Value, 1e-9)
	assert.InDelta(t, 50_000, final.CumulativeCosts, 1e-6)

	assert.InDelta(t, 100_000, result.DownPayment, 1e-9)
	assert.InDelta(t, 400_000, result.LoanAmount, 1e-9)
	assert.InDelta(t, 2_528.27, result.MonthlyPayment, 0.01)
	assert.InDelta(t, 339_104.51, result.Years[9].LoanBalance, 0.5)

	assert.Greater(t, result.FinalEquity, result.DownPayment)
	assert.InDelta(t, final.NetValue-result.Years[9].LoanBalance, result.FinalEquity, 1e-6)
	assert.InDelta(t, result.FinalEquity/100_000, result.EquityMultiple, 1e-12)
	assert.InDelta(t, 2_528.272094*120, result.TotalMortgagePayments, 0.01)
}

func TestProjectRealEstate_ModifiersScaleAppreciation(t *testing.T) {
	p := domain.DefaultRealEstateParams()
	p.AnnualAppreciationPct = 5
	p.PropertyType = domain.PropertyCommercial
	p.Location = domain.LocationPrime
	p.MarketTrend = domain.TrendDeclining

	result := ProjectRealEstate(p)

	assert.InDelta(t, 5*1.2*1.25*0.5, result.EffectiveRatePct, 1e-9)
}

func TestProjectRealEstate_LoanPaidOffWithinHolding(t *testing.T) {
	p := domain.DefaultRealEstateParams()
	p.MortgageTermYears = 5
	p.HoldingPeriodYears = 8

	result := ProjectRealEstate(p)

	require.Len(t, result.Years, 8)
	assert.Equal(t, 0.0, result.Years[4].LoanBalance)
	assert.Equal(t, 0.0, result.Years[7].LoanBalance)
	assert.InDelta(t, result.MonthlyPayment*60, result.TotalMortgagePayments, 1e-6)
	assert.InDelta(t, result.Projections[7].NetValue, result.FinalEquity, 1e-9)
}

func TestProjectRealEstate_AllCashPurchase(t *testing.T) {
	p := domain.DefaultRealEstateParams()
	p.DownPaymentPct = 100

	result := ProjectRealEstate(p)

	assert.Equal(t, 0.0, result.LoanAmount)
	assert.Equal(t, 0.0, result.MonthlyPayment)
	for _, y := range result.Years {
		assert.Equal(t, 0.0, y.LoanBalance)
	}
}

func TestProjectRealEstate_NoDownPayment(t *testing.T) {
	p := domain.DefaultRealEstateParams()
	p.DownPaymentPct = 0

	result := ProjectRealEstate(p)

	assert.Equal(t, 0.0, result.EquityMultiple)
	assert.False(t, math.IsNaN(result.FinalEquity))
}

func TestMonthlyPayment(t *testing.T) {
	assert.InDelta(t, 2_528.27, MonthlyPayment(400_000, 6.5, 30), 0.01)
	assert.InDelta(t, 1_000, MonthlyPayment(120_000, 0, 10), 1e-9)
	assert.Equal(t, 0.0, MonthlyPayment(0, 6.5, 30))
	assert.Equal(t, 0.0, MonthlyPayment(100_000, 6.5, 0))
}

func TestLoanBalance(t *testing.T) {
	assert.Equal(t, 400_000.0, LoanBalance(400_000, 6.5, 30, 0))
	assert.Equal(t, 0.0, LoanBalance(400_000, 6.5, 30, 360))
	assert.Equal(t, 0.0, LoanBalance(400_000, 6.5, 30, 500))
	assert.InDelta(t, 60_000, LoanBalance(120_000, 0, 10, 60), 1e-9)
	assert.InDelta(t, 339_104.51, LoanBalance(400_000, 6.5, 30, 120), 0.5)

	prev := 400_000.0
	for m := 12; m <= 360; m += 12 {
		b := LoanBalance(400_000, 6.5, 30, m)
		assert.Less(t, b, prev)
		prev = b
	}
}
