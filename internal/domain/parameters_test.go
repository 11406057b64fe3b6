package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10, 1))
	assert.Equal(t, 10.0, Clamp(42, 0, 10, 1))
	assert.Equal(t, 1.0, Clamp(math.NaN(), 0, 10, 1))
	assert.Equal(t, 10.0, Clamp(math.Inf(1), 0, 10, 1))

	assert.Equal(t, 1, ClampInt(0, 1, 30))
	assert.Equal(t, 30, ClampInt(99, 1, 30))
	assert.Equal(t, 12, ClampInt(12, 1, 30))
}

func TestCostKind_Basis(t *testing.T) {
	assert.Equal(t, BasisPrincipal, CostStorage.Basis())
	assert.Equal(t, BasisPrincipal, CostMaintenance.Basis())
	assert.Equal(t, BasisCurrentValue, CostInsurance.Basis())
	assert.Equal(t, BasisCurrentValue, CostManagement.Basis())
}

func TestParseAssetClass(t *testing.T) {
	tests := []struct {
		in     string
		want   AssetClass
		wantOK bool
	}{
		{"REAL_ESTATE", AssetRealEstate, true},
		{"real estate", AssetRealEstate, true},
		{"Art", AssetArt, true},
		{"carbon-credits", AssetCarbonCredits, true},
		{"PE", AssetPrivateEquity, true},
		{"crypto", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAssetClass(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectionParameters_IsDegenerate(t *testing.T) {
	base := ProjectionParameters{Principal: 1000, HoldingPeriodYears: 5, BaseAnnualGrowthRate: 5}
	assert.False(t, base.IsDegenerate())

	zero := base
	zero.Principal = 0
	assert.True(t, zero.IsDegenerate())

	negative := base
	negative.Principal = -10
	assert.True(t, negative.IsDegenerate())

	noYears := base
	noYears.HoldingPeriodYears = 0
	assert.True(t, noYears.IsDegenerate())

	nanRate := base
	nanRate.BaseAnnualGrowthRate = math.NaN()
	assert.True(t, nanRate.IsDegenerate())

	nanPrincipal := base
	nanPrincipal.Principal = math.NaN()
	assert.True(t, nanPrincipal.IsDegenerate())
}

func TestRealEstateParams_Normalize(t *testing.T) {
	p := RealEstateParams{
		PropertyPrice:         -5,
		DownPaymentPct:        140,
		MortgageRatePct:       math.NaN(),
		MortgageTermYears:     0,
		HoldingPeriodYears:    55,
		AnnualAppreciationPct: 500,
		MaintenancePct:        -1,
		PropertyType:          PropertyType("castle"),
		Location:              LocationPrime,
	}.Normalize()

	assert.Equal(t, MinPrincipal, p.PropertyPrice)
	assert.Equal(t, 100.0, p.DownPaymentPct)
	assert.Equal(t, 6.5, p.MortgageRatePct)
	assert.Equal(t, 1, p.MortgageTermYears)
	assert.Equal(t, MaxHoldingYears, p.HoldingPeriodYears)
	assert.Equal(t, MaxGrowthRate, p.AnnualAppreciationPct)
	assert.Equal(t, 0.0, p.MaintenancePct)
	assert.Equal(t, PropertyResidential, p.PropertyType)
	assert.Equal(t, LocationPrime, p.Location)
	assert.Equal(t, TrendGrowing, p.MarketTrend)
}

func TestDefaultParams_AreStableUnderNormalize(t *testing.T) {
	assert.Equal(t, DefaultRealEstateParams(), DefaultRealEstateParams().Normalize())
	assert.Equal(t, DefaultArtParams(), DefaultArtParams().Normalize())
	assert.Equal(t, DefaultCarbonCreditParams(), DefaultCarbonCreditParams().Normalize())
	assert.Equal(t, DefaultPrivateEquityParams(), DefaultPrivateEquityParams().Normalize())
}

func TestCarbonCreditParams_Normalize(t *testing.T) {
	p := CarbonCreditParams{
		InvestmentAmount: 1e12,
		CreditPrice:      0,
		ReinvestmentPct:  250,
		ProjectType:      ProjectType("geoengineering"),
		Verification:     VerificationGoldStandard,
	}.Normalize()

	assert.Equal(t, MaxPrincipal, p.InvestmentAmount)
	assert.Equal(t, 1.0, p.CreditPrice)
	assert.Equal(t, 100.0, p.ReinvestmentPct)
	assert.Equal(t, 1, p.HoldingPeriodYears)
	assert.Equal(t, ProjectRenewable, p.ProjectType)
	assert.Equal(t, VerificationGoldStandard, p.Verification)
}

func TestPrivateEquityParams_Normalize(t *testing.T) {
	p := PrivateEquityParams{
		Commitment:         500_000,
		HoldingPeriodYears: 8,
		DeploymentYears:    25,
		CarriedInterestPct: 90,
		Stage:              StageGrowth,
	}.Normalize()

	assert.Equal(t, 10, p.DeploymentYears)
	assert.Equal(t, 50.0, p.CarriedInterestPct)
	assert.Equal(t, StageGrowth, p.Stage)
	assert.Equal(t, SectorIndustrials, p.Sector)
	assert.Equal(t, ManagerMedian, p.Manager)
}

func TestOscillation_Enabled(t *testing.T) {
	tests := []struct {
		name string
		osc  Oscillation
		want bool
	}{
		{"zero", Oscillation{}, false},
		{"factor only", Oscillation{FactorPct: 3}, false},
		{"factor and phase", Oscillation{FactorPct: 3, Phase: 0.9}, true},
		{"nan factor", Oscillation{FactorPct: math.NaN(), Phase: 0.9}, false},
		{"infinite factor", Oscillation{FactorPct: math.Inf(-1), Phase: 0.9}, false},
		{"nan phase", Oscillation{FactorPct: 3, Phase: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.osc.Enabled())
		})
	}
}
