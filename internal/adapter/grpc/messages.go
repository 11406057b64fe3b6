package grpc

// ChartOptions sizes the pixel coordinates returned alongside the numbers.
// Zero values fall back to a 640x320 box with 24px padding.
type ChartOptions struct {
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Padding float64 `json:"padding,omitempty"`
}

// Amounts and rates travel as decimal strings. An empty string or a nil
// integer keeps the calculator default for that slider.

type ProjectRealEstateRequest struct {
	PropertyPrice         string       `json:"property_price,omitempty"`
	DownPaymentPct        string       `json:"down_payment_pct,omitempty"`
	MortgageRatePct       string       `json:"mortgage_rate_pct,omitempty"`
	MortgageTermYears     *int         `json:"mortgage_term_years,omitempty"`
	HoldingPeriodYears    *int         `json:"holding_period_years,omitempty"`
	AnnualAppreciationPct string       `json:"annual_appreciation_pct,omitempty"`
	MaintenancePct        string       `json:"maintenance_pct,omitempty"`
	InsurancePct          string       `json:"insurance_pct,omitempty"`
	ManagementFeePct      string       `json:"management_fee_pct,omitempty"`
	PropertyType          string       `json:"property_type,omitempty"`
	Location              string       `json:"location,omitempty"`
	MarketTrend           string       `json:"market_trend,omitempty"`
	Chart                 ChartOptions `json:"chart"`
}

type ProjectArtRequest struct {
	PurchasePrice          string       `json:"purchase_price,omitempty"`
	HoldingPeriodYears     *int         `json:"holding_period_years,omitempty"`
	BaseAppreciationPct    string       `json:"base_appreciation_pct,omitempty"`
	StoragePct             string       `json:"storage_pct,omitempty"`
	InsurancePct           string       `json:"insurance_pct,omitempty"`
	Reputation             string       `json:"reputation,omitempty"`
	Condition              string       `json:"condition,omitempty"`
	MarketTrend            string       `json:"market_trend,omitempty"`
	Authenticity           string       `json:"authenticity,omitempty"`
	VolatilityPct          string       `json:"volatility_pct,omitempty"`
	DisableVolatilityCurve bool         `json:"disable_volatility_curve,omitempty"`
	Chart                  ChartOptions `json:"chart"`
}

type ProjectCarbonCreditsRequest struct {
	InvestmentAmount       string       `json:"investment_amount,omitempty"`
	CreditPrice            string       `json:"credit_price,omitempty"`
	HoldingPeriodYears     *int         `json:"holding_period_years,omitempty"`
	PriceGrowthPct         string       `json:"price_growth_pct,omitempty"`
	CreditYieldPct         string       `json:"credit_yield_pct,omitempty"`
	ReinvestmentPct        string       `json:"reinvestment_pct,omitempty"`
	RegistryFeePct         string       `json:"registry_fee_pct,omitempty"`
	ProjectType            string       `json:"project_type,omitempty"`
	Verification           string       `json:"verification,omitempty"`
	VolatilityPct          string       `json:"volatility_pct,omitempty"`
	DisableVolatilityCurve bool         `json:"disable_volatility_curve,omitempty"`
	Chart                  ChartOptions `json:"chart"`
}

type ProjectPrivateEquityRequest struct {
	Commitment             string       `json:"commitment,omitempty"`
	HoldingPeriodYears     *int         `json:"holding_period_years,omitempty"`
	TargetReturnPct        string       `json:"target_return_pct,omitempty"`
	DeploymentYears        *int         `json:"deployment_years,omitempty"`
	ManagementFeePct       string       `json:"management_fee_pct,omitempty"`
	CarriedInterestPct     string       `json:"carried_interest_pct,omitempty"`
	HurdleRatePct          string       `json:"hurdle_rate_pct,omitempty"`
	ReinvestmentPct        string       `json:"reinvestment_pct,omitempty"`
	Stage                  string       `json:"stage,omitempty"`
	Sector                 string       `json:"sector,omitempty"`
	Manager                string       `json:"manager,omitempty"`
	VolatilityPct          string       `json:"volatility_pct,omitempty"`
	DisableVolatilityCurve bool         `json:"disable_volatility_curve,omitempty"`
	Chart                  ChartOptions `json:"chart"`
}

// YearRow is one row of the projection table
type YearRow struct {
	Year            int    `json:"year"`
	Value           string `json:"value"`
	NetValue        string `json:"net_value"`
	PeriodCosts     string `json:"period_costs"`
	CumulativeCosts string `json:"cumulative_costs"`
	Reinvested      string `json:"reinvested"`
	Deployed        string `json:"deployed"`
	ValueDisplay    string `json:"value_display"`
	NetValueDisplay string `json:"net_value_display"`
}

type SummaryDisplay struct {
	Principal            string `json:"principal"`
	FinalValue           string `json:"final_value"`
	NetFinalValue        string `json:"net_final_value"`
	NetFinalValueCompact string `json:"net_final_value_compact"`
	TotalCosts           string `json:"total_costs"`
	TotalReturn          string `json:"total_return"`
	AnnualizedReturn     string `json:"annualized_return"`
}

type Summary struct {
	Principal           string         `json:"principal"`
	Years               int            `json:"years"`
	FinalValue          string         `json:"final_value"`
	NetFinalValue       string         `json:"net_final_value"`
	TotalCosts          string         `json:"total_costs"`
	TotalReinvested     string         `json:"total_reinvested"`
	TotalReturnPct      string         `json:"total_return_pct"`
	AnnualizedReturnPct string         `json:"annualized_return_pct"`
	AnnualizedDefined   bool           `json:"annualized_defined"`
	Multiple            string         `json:"multiple"`
	Display             SummaryDisplay `json:"display"`
}

type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projection is shared by every calculator response
type Projection struct {
	AssetClass       string       `json:"asset_class"`
	EffectiveRatePct string       `json:"effective_rate_pct"`
	Years            []YearRow    `json:"years"`
	Summary          Summary      `json:"summary"`
	Chart            []ChartPoint `json:"chart"`
}

type EquityRow struct {
	Year        int    `json:"year"`
	LoanBalance string `json:"loan_balance"`
	Equity      string `json:"equity"`
}

type ProjectRealEstateResponse struct {
	Projection
	DownPayment           string      `json:"down_payment"`
	LoanAmount            string      `json:"loan_amount"`
	MonthlyPayment        string      `json:"monthly_payment"`
	MonthlyPaymentDisplay string      `json:"monthly_payment_display"`
	FinalEquity           string      `json:"final_equity"`
	FinalEquityDisplay    string      `json:"final_equity_display"`
	EquityMultiple        string      `json:"equity_multiple"`
	TotalMortgagePayments string      `json:"total_mortgage_payments"`
	Equity                []EquityRow `json:"equity"`
}

type ProjectArtResponse struct {
	Projection
}

type CreditRow struct {
	Year         int    `json:"year"`
	CreditPrice  string `json:"credit_price"`
	CreditsOwned string `json:"credits_owned"`
}

type ProjectCarbonCreditsResponse struct {
	Projection
	InitialCredits    string      `json:"initial_credits"`
	FinalCreditsOwned string      `json:"final_credits_owned"`
	FinalCreditPrice  string      `json:"final_credit_price"`
	TonnesOffset      string      `json:"tonnes_offset"`
	TonnesDisplay     string      `json:"tonnes_display"`
	Credits           []CreditRow `json:"credits"`
}

type ProjectPrivateEquityResponse struct {
	Projection
	CapitalCalls           []string `json:"capital_calls"`
	HurdleGain             string   `json:"hurdle_gain"`
	CarriedInterest        string   `json:"carried_interest"`
	CarriedInterestDisplay string   `json:"carried_interest_display"`
	NetDistribution        string   `json:"net_distribution"`
	NetDistributionDisplay string   `json:"net_distribution_display"`
	TVPI                   string   `json:"tvpi"`
	IRRPct                 string   `json:"irr_pct"`
	IRRDefined             bool     `json:"irr_defined"`
	IRRDisplay             string   `json:"irr_display"`
}

// GenerateSeriesRequest generates a catalog region's series when RegionID is
// set, or an ad-hoc series from BasePrice otherwise. Seed 0 is unseeded.
type GenerateSeriesRequest struct {
	RegionID   string       `json:"region_id,omitempty"`
	BasePrice  string       `json:"base_price,omitempty"`
	Volatility string       `json:"volatility,omitempty"`
	BaseVolume string       `json:"base_volume,omitempty"`
	Timeframe  string       `json:"timeframe,omitempty"`
	Seed       uint64       `json:"seed,omitempty"`
	Chart      ChartOptions `json:"chart"`
}

type PricePoint struct {
	Index  int    `json:"index"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

type CandleCoords struct {
	X          float64 `json:"x"`
	Width      float64 `json:"width"`
	BodyTop    float64 `json:"body_top"`
	BodyBottom float64 `json:"body_bottom"`
	WickTop    float64 `json:"wick_top"`
	WickBottom float64 `json:"wick_bottom"`
	Up         bool    `json:"up"`
}

type GenerateSeriesResponse struct {
	RegionID   string         `json:"region_id,omitempty"`
	RegionName string         `json:"region_name,omitempty"`
	Timeframe  string         `json:"timeframe"`
	Points     []PricePoint   `json:"points"`
	Candles    []CandleCoords `json:"candles"`
}

type GetMarketDashboardRequest struct {
	Market string `json:"market"`
	Seed   uint64 `json:"seed,omitempty"`
}

type RegionSnapshot struct {
	RegionID            string                  `json:"region_id"`
	Name                string                  `json:"name"`
	AveragePrice        string                  `json:"average_price"`
	AveragePriceDisplay string                  `json:"average_price_display"`
	Inventory           int                     `json:"inventory"`
	GrowthRate          string                  `json:"growth_rate"`
	GrowthRateDisplay   string                  `json:"growth_rate_display"`
	PriceData           map[string][]PricePoint `json:"price_data"`
}

type GlobalSnapshot struct {
	RegionCount         int                     `json:"region_count"`
	AveragePrice        string                  `json:"average_price"`
	AveragePriceDisplay string                  `json:"average_price_display"`
	Inventory           int                     `json:"inventory"`
	InventoryDisplay    string                  `json:"inventory_display"`
	GrowthRate          string                  `json:"growth_rate"`
	GrowthRateDisplay   string                  `json:"growth_rate_display"`
	PriceData           map[string][]PricePoint `json:"price_data"`
}

type GetMarketDashboardResponse struct {
	Market  string           `json:"market"`
	Global  GlobalSnapshot   `json:"global"`
	Regions []RegionSnapshot `json:"regions"`
}
