package dashboard

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/series"
)

const tracerName = "github.com/simaogato/tokenvest-backend/internal/usecase/dashboard"

// MarketDashboard is everything a market page renders
type MarketDashboard struct {
	Market  domain.AssetClass
	Global  domain.GlobalSnapshot
	Regions []domain.RegionSnapshot
}

// DashboardService builds market dashboards from the region catalog
type DashboardService struct {
	RegionRepo domain.RegionRepository
	tracer     trace.Tracer
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(regionRepo domain.RegionRepository) *DashboardService {
	return &DashboardService{
		RegionRepo: regionRepo,
		tracer:     otel.Tracer(tracerName),
	}
}

// generator returns a fresh generator for one call.
// A zero seed means unseeded generation.
func generator(seed uint64) *series.Generator {
	if seed == 0 {
		return series.New()
	}
	return series.NewSeeded(seed)
}

func input(r *domain.Region) series.Input {
	return series.Input{
		BasePrice:  r.AveragePrice.InexactFloat64(),
		Volatility: r.Volatility,
		BaseVolume: r.BaseVolume,
	}
}

// RegionSnapshots builds the snapshot of every region of a market
func (s *DashboardService) RegionSnapshots(ctx context.Context, market domain.AssetClass, seed uint64) ([]domain.RegionSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.region_snapshots",
		trace.WithAttributes(attribute.String("market", string(market))),
	)
	defer span.End()

	regions, err := s.RegionRepo.List(ctx, market)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	gen := generator(seed)
	snapshots := make([]domain.RegionSnapshot, 0, len(regions))
	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, domain.RegionSnapshot{
			RegionID:     r.ID.String(),
			Name:         r.Name,
			Market:       r.Market,
			AveragePrice: r.AveragePrice,
			Inventory:    r.Inventory,
			GrowthRate:   r.GrowthRate,
			PriceData:    gen.GenerateAll(input(r)),
		})
	}

	span.SetAttributes(attribute.Int("regions", len(snapshots)))
	return snapshots, nil
}

// GlobalSnapshot aggregates every region of a market
func (s *DashboardService) GlobalSnapshot(ctx context.Context, market domain.AssetClass, seed uint64) (*domain.GlobalSnapshot, error) {
	snapshots, err := s.RegionSnapshots(ctx, market, seed)
	if err != nil {
		return nil, err
	}
	global := Aggregate(market, snapshots)
	return &global, nil
}

// MarketDashboard builds the regions and their aggregate in one pass
func (s *DashboardService) MarketDashboard(ctx context.Context, market domain.AssetClass, seed uint64) (*MarketDashboard, error) {
	snapshots, err := s.RegionSnapshots(ctx, market, seed)
	if err != nil {
		return nil, err
	}

	log.Printf("dashboard: market=%s regions=%d seed=%d", market, len(snapshots), seed)

	return &MarketDashboard{
		Market:  market,
		Global:  Aggregate(market, snapshots),
		Regions: snapshots,
	}, nil
}

// Series generates one timeframe for one region
func (s *DashboardService) Series(ctx context.Context, regionID uuid.UUID, tf domain.Timeframe, seed uint64) (*domain.Region, []domain.PricePoint, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.series",
		trace.WithAttributes(
			attribute.String("region_id", regionID.String()),
			attribute.String("timeframe", string(tf)),
		),
	)
	defer span.End()

	region, err := s.RegionRepo.GetByID(ctx, regionID)
	if err != nil {
		span.RecordError(err)
		return nil, nil, fmt.Errorf("failed to get region: %w", err)
	}

	return region, generator(seed).Generate(tf, input(region)), nil
}
