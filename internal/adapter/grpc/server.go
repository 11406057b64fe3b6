package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/tokenvest-backend/internal/adapter/presenter"
	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/allocator"
	"github.com/simaogato/tokenvest-backend/internal/usecase/calculator"
	"github.com/simaogato/tokenvest-backend/internal/usecase/dashboard"
	"github.com/simaogato/tokenvest-backend/internal/usecase/series"
)

// Server implements the ProjectionService gRPC server
type Server struct {
	CalculatorService *calculator.CalculatorService
	DashboardService  *dashboard.DashboardService
	Formatter         *presenter.Formatter
	// DefaultSeed is used when a request leaves its seed at 0
	DefaultSeed uint64
}

var _ ProjectionServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	calculatorService *calculator.CalculatorService,
	dashboardService *dashboard.DashboardService,
	formatter *presenter.Formatter,
) *Server {
	return &Server{
		CalculatorService: calculatorService,
		DashboardService:  dashboardService,
		Formatter:         formatter,
	}
}

// ProjectRealEstate handles the ProjectRealEstate RPC
func (s *Server) ProjectRealEstate(ctx context.Context, req *ProjectRealEstateRequest) (*ProjectRealEstateResponse, error) {
	// Start from the page-load sliders and override what the request sets
	params := domain.DefaultRealEstateParams()
	if err := parseAmounts(
		amountField{"property_price", req.PropertyPrice, &params.PropertyPrice},
		amountField{"down_payment_pct", req.DownPaymentPct, &params.DownPaymentPct},
		amountField{"mortgage_rate_pct", req.MortgageRatePct, &params.MortgageRatePct},
		amountField{"annual_appreciation_pct", req.AnnualAppreciationPct, &params.AnnualAppreciationPct},
		amountField{"maintenance_pct", req.MaintenancePct, &params.MaintenancePct},
		amountField{"insurance_pct", req.InsurancePct, &params.InsurancePct},
		amountField{"management_fee_pct", req.ManagementFeePct, &params.ManagementFeePct},
	); err != nil {
		return nil, err
	}
	setInt(req.MortgageTermYears, &params.MortgageTermYears)
	setInt(req.HoldingPeriodYears, &params.HoldingPeriodYears)
	setCategory(req.PropertyType, &params.PropertyType)
	setCategory(req.Location, &params.Location)
	setCategory(req.MarketTrend, &params.MarketTrend)

	result, err := s.CalculatorService.RealEstate(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	equity := make([]EquityRow, 0, len(result.Years))
	for _, y := range result.Years {
		equity = append(equity, EquityRow{
			Year:        y.Year,
			LoanBalance: money(y.LoanBalance),
			Equity:      money(y.Equity),
		})
	}

	return &ProjectRealEstateResponse{
		Projection:            s.projectionToMessage(result.Result, req.Chart),
		DownPayment:           money(result.DownPayment),
		LoanAmount:            money(result.LoanAmount),
		MonthlyPayment:        money(result.MonthlyPayment),
		MonthlyPaymentDisplay: s.Formatter.Currency(result.MonthlyPayment),
		FinalEquity:           money(result.FinalEquity),
		FinalEquityDisplay:    s.Formatter.Currency(result.FinalEquity),
		EquityMultiple:        fixed(result.EquityMultiple, 4),
		TotalMortgagePayments: money(result.TotalMortgagePayments),
		Equity:                equity,
	}, nil
}

// ProjectArt handles the ProjectArt RPC
func (s *Server) ProjectArt(ctx context.Context, req *ProjectArtRequest) (*ProjectArtResponse, error) {
	params := domain.DefaultArtParams()
	if err := parseAmounts(
		amountField{"purchase_price", req.PurchasePrice, &params.PurchasePrice},
		amountField{"base_appreciation_pct", req.BaseAppreciationPct, &params.BaseAppreciationPct},
		amountField{"storage_pct", req.StoragePct, &params.StoragePct},
		amountField{"insurance_pct", req.InsurancePct, &params.InsurancePct},
		amountField{"volatility_pct", req.VolatilityPct, &params.VolatilityPct},
	); err != nil {
		return nil, err
	}
	setInt(req.HoldingPeriodYears, &params.HoldingPeriodYears)
	setCategory(req.Reputation, &params.Reputation)
	setCategory(req.Condition, &params.Condition)
	setCategory(req.MarketTrend, &params.MarketTrend)
	setCategory(req.Authenticity, &params.Authenticity)
	params.DisableVolatilityCurve = req.DisableVolatilityCurve

	result, err := s.CalculatorService.Art(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	return &ProjectArtResponse{
		Projection: s.projectionToMessage(result.Result, req.Chart),
	}, nil
}

// ProjectCarbonCredits handles the ProjectCarbonCredits RPC
func (s *Server) ProjectCarbonCredits(ctx context.Context, req *ProjectCarbonCreditsRequest) (*ProjectCarbonCreditsResponse, error) {
	params := domain.DefaultCarbonCreditParams()
	if err := parseAmounts(
		amountField{"investment_amount", req.InvestmentAmount, &params.InvestmentAmount},
		amountField{"credit_price", req.CreditPrice, &params.CreditPrice},
		amountField{"price_growth_pct", req.PriceGrowthPct, &params.PriceGrowthPct},
		amountField{"credit_yield_pct", req.CreditYieldPct, &params.CreditYieldPct},
		amountField{"reinvestment_pct", req.ReinvestmentPct, &params.ReinvestmentPct},
		amountField{"registry_fee_pct", req.RegistryFeePct, &params.RegistryFeePct},
		amountField{"volatility_pct", req.VolatilityPct, &params.VolatilityPct},
	); err != nil {
		return nil, err
	}
	setInt(req.HoldingPeriodYears, &params.HoldingPeriodYears)
	setCategory(req.ProjectType, &params.ProjectType)
	setCategory(req.Verification, &params.Verification)
	params.DisableVolatilityCurve = req.DisableVolatilityCurve

	result, err := s.CalculatorService.CarbonCredits(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	credits := make([]CreditRow, 0, len(result.Years))
	for _, y := range result.Years {
		credits = append(credits, CreditRow{
			Year:         y.Year,
			CreditPrice:  money(y.CreditPrice),
			CreditsOwned: fixed(y.CreditsOwned, 4),
		})
	}

	return &ProjectCarbonCreditsResponse{
		Projection:        s.projectionToMessage(result.Result, req.Chart),
		InitialCredits:    fixed(result.InitialCredits, 4),
		FinalCreditsOwned: fixed(result.FinalCreditsOwned, 4),
		FinalCreditPrice:  money(result.FinalCreditPrice),
		TonnesOffset:      fixed(result.TonnesOffset, 4),
		TonnesDisplay:     s.Formatter.Compact(result.TonnesOffset, false),
		Credits:           credits,
	}, nil
}

// ProjectPrivateEquity handles the ProjectPrivateEquity RPC
func (s *Server) ProjectPrivateEquity(ctx context.Context, req *ProjectPrivateEquityRequest) (*ProjectPrivateEquityResponse, error) {
	params := domain.DefaultPrivateEquityParams()
	if err := parseAmounts(
		amountField{"commitment", req.Commitment, &params.Commitment},
		amountField{"target_return_pct", req.TargetReturnPct, &params.TargetReturnPct},
		amountField{"management_fee_pct", req.ManagementFeePct, &params.ManagementFeePct},
		amountField{"carried_interest_pct", req.CarriedInterestPct, &params.CarriedInterestPct},
		amountField{"hurdle_rate_pct", req.HurdleRatePct, &params.HurdleRatePct},
		amountField{"reinvestment_pct", req.ReinvestmentPct, &params.ReinvestmentPct},
		amountField{"volatility_pct", req.VolatilityPct, &params.VolatilityPct},
	); err != nil {
		return nil, err
	}
	setInt(req.HoldingPeriodYears, &params.HoldingPeriodYears)
	setInt(req.DeploymentYears, &params.DeploymentYears)
	setCategory(req.Stage, &params.Stage)
	setCategory(req.Sector, &params.Sector)
	setCategory(req.Manager, &params.Manager)
	params.DisableVolatilityCurve = req.DisableVolatilityCurve

	result, err := s.CalculatorService.PrivateEquity(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	// Capital calls are whole cents that add up to the deployed capital
	deployed := 0.0
	for _, c := range result.CapitalCalls {
		deployed += c
	}
	calls := make([]string, 0, len(result.CapitalCalls))
	if len(result.CapitalCalls) > 0 {
		allocation, err := allocator.Allocate(decimal.NewFromFloat(finite(deployed)), result.CapitalCalls)
		if err != nil {
			return nil, mapError(err)
		}
		for _, c := range allocation {
			calls = append(calls, c.StringFixed(allocator.CentPlaces))
		}
	}

	irrDisplay := "n/a"
	if result.IRRDefined {
		irrDisplay = s.Formatter.Percent(result.IRRPct)
	}

	return &ProjectPrivateEquityResponse{
		Projection:             s.projectionToMessage(result.Result, req.Chart),
		CapitalCalls:           calls,
		HurdleGain:             money(result.HurdleGain),
		CarriedInterest:        money(result.CarriedInterest),
		CarriedInterestDisplay: s.Formatter.Currency(result.CarriedInterest),
		NetDistribution:        money(result.NetDistribution),
		NetDistributionDisplay: s.Formatter.Currency(result.NetDistribution),
		TVPI:                   fixed(result.TVPI, 4),
		IRRPct:                 fixed(result.IRRPct, 2),
		IRRDefined:             result.IRRDefined,
		IRRDisplay:             irrDisplay,
	}, nil
}

func (s *Server) seed(requested uint64) uint64 {
	if requested != 0 {
		return requested
	}
	return s.DefaultSeed
}

// GenerateSeries handles the GenerateSeries RPC
func (s *Server) GenerateSeries(ctx context.Context, req *GenerateSeriesRequest) (*GenerateSeriesResponse, error) {
	tf := domain.ParseTimeframe(req.Timeframe)
	seed := s.seed(req.Seed)

	// Catalog region
	if req.RegionID != "" {
		regionID, err := uuid.Parse(req.RegionID)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid region_id format: %v", err)
		}

		region, points, err := s.DashboardService.Series(ctx, regionID, tf, seed)
		if err != nil {
			return nil, mapError(err)
		}

		return &GenerateSeriesResponse{
			RegionID:   region.ID.String(),
			RegionName: region.Name,
			Timeframe:  string(tf),
			Points:     pricePointsToMessage(points),
			Candles:    candlesToMessage(points, req.Chart),
		}, nil
	}

	// Ad-hoc series
	if req.BasePrice == "" {
		return nil, status.Error(codes.InvalidArgument, "either region_id or base_price must be set")
	}
	in := series.Input{Volatility: 1}
	if err := parseAmounts(
		amountField{"base_price", req.BasePrice, &in.BasePrice},
		amountField{"volatility", req.Volatility, &in.Volatility},
		amountField{"base_volume", req.BaseVolume, &in.BaseVolume},
	); err != nil {
		return nil, err
	}

	gen := series.New()
	if seed != 0 {
		gen = series.NewSeeded(seed)
	}
	points := gen.Generate(tf, in)

	return &GenerateSeriesResponse{
		Timeframe: string(tf),
		Points:    pricePointsToMessage(points),
		Candles:   candlesToMessage(points, req.Chart),
	}, nil
}

// GetMarketDashboard handles the GetMarketDashboard RPC
func (s *Server) GetMarketDashboard(ctx context.Context, req *GetMarketDashboardRequest) (*GetMarketDashboardResponse, error) {
	market, ok := domain.ParseAssetClass(req.Market)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "invalid market: %q", req.Market)
	}

	dash, err := s.DashboardService.MarketDashboard(ctx, market, s.seed(req.Seed))
	if err != nil {
		return nil, mapError(err)
	}

	f := s.Formatter
	regions := make([]RegionSnapshot, 0, len(dash.Regions))
	for _, r := range dash.Regions {
		regions = append(regions, RegionSnapshot{
			RegionID:            r.RegionID,
			Name:                r.Name,
			AveragePrice:        r.AveragePrice.StringFixed(2),
			AveragePriceDisplay: f.Currency(r.AveragePrice.InexactFloat64()),
			Inventory:           r.Inventory,
			GrowthRate:          fixed(r.GrowthRate, 2),
			GrowthRateDisplay:   f.Percent(r.GrowthRate),
			PriceData:           priceDataToMessage(r.PriceData),
		})
	}

	g := dash.Global
	return &GetMarketDashboardResponse{
		Market: string(market),
		Global: GlobalSnapshot{
			RegionCount:         g.RegionCount,
			AveragePrice:        g.AveragePrice.StringFixed(2),
			AveragePriceDisplay: f.Currency(g.AveragePrice.InexactFloat64()),
			Inventory:           g.Inventory,
			InventoryDisplay:    f.Compact(float64(g.Inventory), false),
			GrowthRate:          fixed(g.GrowthRate, 2),
			GrowthRateDisplay:   f.Percent(g.GrowthRate),
			PriceData:           priceDataToMessage(g.PriceData),
		},
		Regions: regions,
	}, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, domain.ErrRegionNotFound):
		return status.Error(codes.NotFound, err.Error())
	}

	errorMsg := err.Error()

	// Map validation errors to InvalidArgument
	if strings.Contains(errorMsg, "must be positive") ||
		strings.Contains(errorMsg, "invalid") ||
		strings.Contains(errorMsg, "cannot be") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Map "not found" errors to NotFound
	if strings.Contains(errorMsg, "not found") {
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
