package calculator

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/accumulator"
	"github.com/simaogato/tokenvest-backend/internal/usecase/metrics"
)

const tracerName = "github.com/simaogato/tokenvest-backend/internal/usecase/calculator"

// Result is the part of every calculator output shared across asset classes
type Result struct {
	AssetClass       domain.AssetClass
	EffectiveRatePct float64
	Projections      []domain.YearProjection
	Summary          domain.Summary
}

// run projects generic parameters and summarizes them
func run(class domain.AssetClass, p domain.ProjectionParameters) Result {
	projections := accumulator.Project(p)
	return Result{
		AssetClass:       class,
		EffectiveRatePct: p.EffectiveRate(),
		Projections:      projections,
		Summary:          metrics.Summarize(p.Principal, p.HoldingPeriodYears, projections),
	}
}

// CalculatorService exposes the asset-class calculators.
// It holds no state; every call recomputes from its parameters.
type CalculatorService struct {
	tracer trace.Tracer
}

// NewCalculatorService creates a new CalculatorService instance
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{
		tracer: otel.Tracer(tracerName),
	}
}

func (s *CalculatorService) start(ctx context.Context, class domain.AssetClass, principal float64, years int) (context.Context, trace.Span) {
	log.Printf("calculator: class=%s principal=%.2f years=%d", class, principal, years)
	return s.tracer.Start(ctx, "calculator.project",
		trace.WithAttributes(
			attribute.String("asset_class", string(class)),
			attribute.Float64("principal", principal),
			attribute.Int("holding_years", years),
		),
	)
}

// RealEstate projects a real estate holding
func (s *CalculatorService) RealEstate(ctx context.Context, p domain.RealEstateParams) (*RealEstateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := s.start(ctx, domain.AssetRealEstate, p.PropertyPrice, p.HoldingPeriodYears)
	defer span.End()

	result := ProjectRealEstate(p)
	span.SetAttributes(attribute.Float64("net_final_value", result.Summary.NetFinalValue))
	return &result, nil
}

// Art projects an artwork holding
func (s *CalculatorService) Art(ctx context.Context, p domain.ArtParams) (*ArtResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := s.start(ctx, domain.AssetArt, p.PurchasePrice, p.HoldingPeriodYears)
	defer span.End()

	result := ProjectArt(p)
	span.SetAttributes(attribute.Float64("net_final_value", result.Summary.NetFinalValue))
	return &result, nil
}

// CarbonCredits projects a carbon credit portfolio
func (s *CalculatorService) CarbonCredits(ctx context.Context, p domain.CarbonCreditParams) (*CarbonCreditResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := s.start(ctx, domain.AssetCarbonCredits, p.InvestmentAmount, p.HoldingPeriodYears)
	defer span.End()

	result := ProjectCarbonCredits(p)
	span.SetAttributes(attribute.Float64("final_credits", result.FinalCreditsOwned))
	return &result, nil
}

// PrivateEquity projects a private equity commitment
func (s *CalculatorService) PrivateEquity(ctx context.Context, p domain.PrivateEquityParams) (*PrivateEquityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := s.start(ctx, domain.AssetPrivateEquity, p.Commitment, p.HoldingPeriodYears)
	defer span.End()

	result := ProjectPrivateEquity(p)
	span.SetAttributes(attribute.Float64("tvpi", result.TVPI))
	return &result, nil
}
