package domain

import "math"

// AssetClass identifies a calculator or a dashboard market
type AssetClass string

const (
	AssetRealEstate    AssetClass = "REAL_ESTATE"
	AssetArt           AssetClass = "ART"
	AssetCarbonCredits AssetClass = "CARBON_CREDITS"
	AssetPrivateEquity AssetClass = "PRIVATE_EQUITY"
)

// ParseAssetClass returns false for anything that is not a known asset class
func ParseAssetClass(s string) (AssetClass, bool) {
	switch normalizeCategory(s) {
	case "realestate":
		return AssetRealEstate, true
	case "art":
		return AssetArt, true
	case "carboncredits", "carbon":
		return AssetCarbonCredits, true
	case "privateequity", "pe":
		return AssetPrivateEquity, true
	default:
		return "", false
	}
}

// CostKind is a recurring annual holding cost
type CostKind string

const (
	CostStorage     CostKind = "STORAGE"
	CostMaintenance CostKind = "MAINTENANCE"
	CostInsurance   CostKind = "INSURANCE"
	CostManagement  CostKind = "MANAGEMENT"
)

// CostBasis is the amount a cost rate is levied against
type CostBasis int

const (
	// BasisPrincipal charges a fixed share of the purchase price every year
	BasisPrincipal CostBasis = iota
	// BasisCurrentValue charges a share of the appreciated value
	BasisCurrentValue
)

// Basis reports what the cost kind is levied against.
// Storage and maintenance follow the purchase price; insurance and
// management fees grow with the asset.
func (k CostKind) Basis() CostBasis {
	switch k {
	case CostInsurance, CostManagement:
		return BasisCurrentValue
	default:
		return BasisPrincipal
	}
}

// CostRate is an annual cost expressed as a percentage of its basis
type CostRate struct {
	Kind    CostKind
	RatePct float64
}

// ReinvestBasis selects what a reinvestment rate is applied to
type ReinvestBasis int

const (
	// ReinvestOfGain reinvests a share of the year's appreciation
	ReinvestOfGain ReinvestBasis = iota
	// ReinvestOfValue reinvests a share of the yield earned on current value
	ReinvestOfValue
)

// Reinvestment describes how much of each year's return is put back to work
type Reinvestment struct {
	RatePct  float64
	Basis    ReinvestBasis
	YieldPct float64 // only used with ReinvestOfValue
}

// Oscillation is the deterministic volatility term sin(year*Phase)*FactorPct
type Oscillation struct {
	FactorPct float64
	Phase     float64
}

// Enabled reports whether the oscillation changes the growth rate at all.
// A non-finite factor or phase disables it.
func (o Oscillation) Enabled() bool {
	return o.FactorPct != 0 && o.Phase != 0 &&
		!math.IsNaN(o.FactorPct) && !math.IsInf(o.FactorPct, 0) &&
		!math.IsNaN(o.Phase) && !math.IsInf(o.Phase, 0)
}

// ProjectionParameters is the asset-class independent input of the accumulator
type ProjectionParameters struct {
	Principal            float64
	HoldingPeriodYears   int
	BaseAnnualGrowthRate float64 // percent
	Modifiers            []Modifier
	Costs                []CostRate
	Reinvestment         Reinvestment
	Volatility           Oscillation
	DeploymentYears      int // 0 = fully invested at year 0
}

// EffectiveRate is the base growth rate after all modifiers
func (p ProjectionParameters) EffectiveRate() float64 {
	return EffectiveRate(p.BaseAnnualGrowthRate, p.Modifiers...)
}

// IsDegenerate reports inputs that can only yield an empty projection
func (p ProjectionParameters) IsDegenerate() bool {
	return !(p.Principal > 0) || p.HoldingPeriodYears < 1 ||
		math.IsInf(p.Principal, 0) ||
		math.IsNaN(p.BaseAnnualGrowthRate) || math.IsInf(p.BaseAnnualGrowthRate, 0)
}

// Slider bounds shared by every calculator
const (
	MinPrincipal    = 1_000.0
	MaxPrincipal    = 100_000_000.0
	MinHoldingYears = 1
	MaxHoldingYears = 30
	MinGrowthRate   = -50.0
	MaxGrowthRate   = 100.0
	MaxCostRate     = 20.0

	DefaultHoldingYears = 10
)

// Clamp pins v into [lo, hi]; NaN becomes def
func Clamp(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt pins v into [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RealEstateParams holds the real estate calculator sliders
type RealEstateParams struct {
	PropertyPrice         float64
	DownPaymentPct        float64
	MortgageRatePct       float64
	MortgageTermYears     int
	HoldingPeriodYears    int
	AnnualAppreciationPct float64
	MaintenancePct        float64
	InsurancePct          float64
	ManagementFeePct      float64
	PropertyType          PropertyType
	Location              LocationQuality
	MarketTrend           MarketTrend
}

// DefaultRealEstateParams returns the slider positions shown on page load
func DefaultRealEstateParams() RealEstateParams {
	return RealEstateParams{
		PropertyPrice:         500_000,
		DownPaymentPct:        20,
		MortgageRatePct:       6.5,
		MortgageTermYears:     30,
		HoldingPeriodYears:    DefaultHoldingYears,
		AnnualAppreciationPct: 5,
		MaintenancePct:        1,
		InsurancePct:          0.35,
		ManagementFeePct:      0,
		PropertyType:          PropertyResidential,
		Location:              LocationSuburban,
		MarketTrend:           TrendGrowing,
	}
}

// Normalize clamps every slider into range and resets unknown categories
func (p RealEstateParams) Normalize() RealEstateParams {
	d := DefaultRealEstateParams()
	p.PropertyPrice = Clamp(p.PropertyPrice, MinPrincipal, MaxPrincipal, d.PropertyPrice)
	p.DownPaymentPct = Clamp(p.DownPaymentPct, 0, 100, d.DownPaymentPct)
	p.MortgageRatePct = Clamp(p.MortgageRatePct, 0, 20, d.MortgageRatePct)
	p.MortgageTermYears = ClampInt(p.MortgageTermYears, 1, 40)
	p.HoldingPeriodYears = ClampInt(p.HoldingPeriodYears, MinHoldingYears, MaxHoldingYears)
	p.AnnualAppreciationPct = Clamp(p.AnnualAppreciationPct, MinGrowthRate, MaxGrowthRate, d.AnnualAppreciationPct)
	p.MaintenancePct = Clamp(p.MaintenancePct, 0, MaxCostRate, d.MaintenancePct)
	p.InsurancePct = Clamp(p.InsurancePct, 0, MaxCostRate, d.InsurancePct)
	p.ManagementFeePct = Clamp(p.ManagementFeePct, 0, MaxCostRate, d.ManagementFeePct)
	p.PropertyType = ParsePropertyType(string(p.PropertyType))
	p.Location = ParseLocationQuality(string(p.Location))
	p.MarketTrend = ParseMarketTrend(string(p.MarketTrend))
	return p
}

// ArtParams holds the art calculator sliders
type ArtParams struct {
	PurchasePrice          float64
	HoldingPeriodYears     int
	BaseAppreciationPct    float64
	StoragePct             float64
	InsurancePct           float64
	Reputation             ArtistReputation
	Condition              ArtworkCondition
	MarketTrend            MarketTrend
	Authenticity           Authenticity
	VolatilityPct          float64
	DisableVolatilityCurve bool
}

// DefaultArtParams returns the slider positions shown on page load
func DefaultArtParams() ArtParams {
	return ArtParams{
		PurchasePrice:       50_000,
		HoldingPeriodYears:  DefaultHoldingYears,
		BaseAppreciationPct: 8,
		StoragePct:          1,
		InsurancePct:        0.5,
		Reputation:          ReputationEstablished,
		Condition:           ConditionExcellent,
		MarketTrend:         TrendGrowing,
		Authenticity:        AuthenticityCertified,
		VolatilityPct:       2.5,
	}
}

// Normalize clamps every slider into range and resets unknown categories
func (p ArtParams) Normalize() ArtParams {
	d := DefaultArtParams()
	p.PurchasePrice = Clamp(p.PurchasePrice, MinPrincipal, MaxPrincipal, d.PurchasePrice)
	p.HoldingPeriodYears = ClampInt(p.HoldingPeriodYears, MinHoldingYears, MaxHoldingYears)
	p.BaseAppreciationPct = Clamp(p.BaseAppreciationPct, MinGrowthRate, MaxGrowthRate, d.BaseAppreciationPct)
	p.StoragePct = Clamp(p.StoragePct, 0, MaxCostRate, d.StoragePct)
	p.InsurancePct = Clamp(p.InsurancePct, 0, MaxCostRate, d.InsurancePct)
	p.VolatilityPct = Clamp(p.VolatilityPct, 0, 25, d.VolatilityPct)
	p.Reputation = ParseArtistReputation(string(p.Reputation))
	p.Condition = ParseArtworkCondition(string(p.Condition))
	p.MarketTrend = ParseMarketTrend(string(p.MarketTrend))
	p.Authenticity = ParseAuthenticity(string(p.Authenticity))
	return p
}

// CarbonCreditParams holds the carbon credit calculator sliders
type CarbonCreditParams struct {
	InvestmentAmount       float64
	CreditPrice            float64 // per tonne of CO2e
	HoldingPeriodYears     int
	PriceGrowthPct         float64
	CreditYieldPct         float64
	ReinvestmentPct        float64
	RegistryFeePct         float64
	ProjectType            ProjectType
	Verification           VerificationStandard
	VolatilityPct          float64
	DisableVolatilityCurve bool
}

// DefaultCarbonCreditParams returns the slider positions shown on page load
func DefaultCarbonCreditParams() CarbonCreditParams {
	return CarbonCreditParams{
		InvestmentAmount:   10_000,
		CreditPrice:        25,
		HoldingPeriodYears: DefaultHoldingYears,
		PriceGrowthPct:     12,
		CreditYieldPct:     5,
		ReinvestmentPct:    0,
		RegistryFeePct:     0.5,
		ProjectType:        ProjectRenewable,
		Verification:       VerificationVerra,
		VolatilityPct:      3,
	}
}

// Normalize clamps every slider into range and resets unknown categories
func (p CarbonCreditParams) Normalize() CarbonCreditParams {
	d := DefaultCarbonCreditParams()
	p.InvestmentAmount = Clamp(p.InvestmentAmount, MinPrincipal, MaxPrincipal, d.InvestmentAmount)
	p.CreditPrice = Clamp(p.CreditPrice, 1, 1_000, d.CreditPrice)
	p.HoldingPeriodYears = ClampInt(p.HoldingPeriodYears, MinHoldingYears, MaxHoldingYears)
	p.PriceGrowthPct = Clamp(p.PriceGrowthPct, MinGrowthRate, MaxGrowthRate, d.PriceGrowthPct)
	p.CreditYieldPct = Clamp(p.CreditYieldPct, 0, 50, d.CreditYieldPct)
	p.ReinvestmentPct = Clamp(p.ReinvestmentPct, 0, 100, d.ReinvestmentPct)
	p.RegistryFeePct = Clamp(p.RegistryFeePct, 0, MaxCostRate, d.RegistryFeePct)
	p.VolatilityPct = Clamp(p.VolatilityPct, 0, 25, d.VolatilityPct)
	p.ProjectType = ParseProjectType(string(p.ProjectType))
	p.Verification = ParseVerificationStandard(string(p.Verification))
	return p
}

// PrivateEquityParams holds the private equity calculator sliders
type PrivateEquityParams struct {
	Commitment             float64
	HoldingPeriodYears     int
	TargetReturnPct        float64
	DeploymentYears        int
	ManagementFeePct       float64
	CarriedInterestPct     float64
	HurdleRatePct          float64
	ReinvestmentPct        float64
	Stage                  FundStage
	Sector                 Sector
	Manager                ManagerTier
	VolatilityPct          float64
	DisableVolatilityCurve bool
}

// DefaultPrivateEquityParams returns the slider positions shown on page load
func DefaultPrivateEquityParams() PrivateEquityParams {
	return PrivateEquityParams{
		Commitment:         250_000,
		HoldingPeriodYears: DefaultHoldingYears,
		TargetReturnPct:    15,
		DeploymentYears:    3,
		ManagementFeePct:   2,
		CarriedInterestPct: 20,
		HurdleRatePct:      8,
		ReinvestmentPct:    0,
		Stage:              StageBuyout,
		Sector:             SectorIndustrials,
		Manager:            ManagerMedian,
		VolatilityPct:      4,
	}
}

// Normalize clamps every slider into range and resets unknown categories
func (p PrivateEquityParams) Normalize() PrivateEquityParams {
	d := DefaultPrivateEquityParams()
	p.Commitment = Clamp(p.Commitment, MinPrincipal, MaxPrincipal, d.Commitment)
	p.HoldingPeriodYears = ClampInt(p.HoldingPeriodYears, MinHoldingYears, MaxHoldingYears)
	p.TargetReturnPct = Clamp(p.TargetReturnPct, MinGrowthRate, MaxGrowthRate, d.TargetReturnPct)
	p.DeploymentYears = ClampInt(p.DeploymentYears, 0, 10)
	p.ManagementFeePct = Clamp(p.ManagementFeePct, 0, MaxCostRate, d.ManagementFeePct)
	p.CarriedInterestPct = Clamp(p.CarriedInterestPct, 0, 50, d.CarriedInterestPct)
	p.HurdleRatePct = Clamp(p.HurdleRatePct, 0, 30, d.HurdleRatePct)
	p.ReinvestmentPct = Clamp(p.ReinvestmentPct, 0, 100, d.ReinvestmentPct)
	p.VolatilityPct = Clamp(p.VolatilityPct, 0, 25, d.VolatilityPct)
	p.Stage = ParseFundStage(string(p.Stage))
	p.Sector = ParseSector(string(p.Sector))
	p.Manager = ParseManagerTier(string(p.Manager))
	return p
}
