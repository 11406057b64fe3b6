//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpcadapter "github.com/simaogato/tokenvest-backend/internal/adapter/grpc"
	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/seeder"
)

var (
	grpcClient *grpcadapter.ProjectionServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain connects to a running server
func TestMain(m *testing.M) {
	var err error
	grpcConn, err = grpc.NewClient(getGRPCAddress(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}

	grpcClient = grpcadapter.NewProjectionServiceClient(grpcConn)

	code := m.Run()
	grpcConn.Close()
	os.Exit(code)
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	token := os.Getenv("API_TOKEN")
	if token == "" {
		token = "dev-token"
	}
	md := metadata.New(map[string]string{
		"authorization": token,
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "not a decimal: %q", s)
	return d
}

func TestHealth(t *testing.T) {
	resp, err := healthpb.NewHealthClient(grpcConn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: grpcadapter.ProjectionServiceName,
	})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

// TestCalculators runs every calculator with page-load defaults
func TestCalculators(t *testing.T) {
	ctx := getAuthContext()

	t.Run("real estate", func(t *testing.T) {
		resp, err := grpcClient.ProjectRealEstate(ctx, &grpcadapter.ProjectRealEstateRequest{})
		require.NoError(t, err)

		assert.Len(t, resp.Years, domain.DefaultHoldingYears)
		assert.True(t, mustDecimal(t, resp.FinalEquity).GreaterThan(decimal.NewFromInt(100_000)))
	})

	t.Run("art", func(t *testing.T) {
		resp, err := grpcClient.ProjectArt(ctx, &grpcadapter.ProjectArtRequest{Reputation: "BLUE_CHIP"})
		require.NoError(t, err)

		assert.True(t, mustDecimal(t, resp.EffectiveRatePct).Equal(decimal.RequireFromString("6.4")))
	})

	t.Run("carbon credits", func(t *testing.T) {
		low, err := grpcClient.ProjectCarbonCredits(ctx, &grpcadapter.ProjectCarbonCreditsRequest{ReinvestmentPct: "0"})
		require.NoError(t, err)
		high, err := grpcClient.ProjectCarbonCredits(ctx, &grpcadapter.ProjectCarbonCreditsRequest{ReinvestmentPct: "100"})
		require.NoError(t, err)

		assert.True(t, mustDecimal(t, high.FinalCreditsOwned).GreaterThanOrEqual(mustDecimal(t, low.FinalCreditsOwned)))
	})

	t.Run("private equity", func(t *testing.T) {
		resp, err := grpcClient.ProjectPrivateEquity(ctx, &grpcadapter.ProjectPrivateEquityRequest{})
		require.NoError(t, err)

		total := decimal.Zero
		for _, call := range resp.CapitalCalls {
			total = total.Add(mustDecimal(t, call))
		}
		assert.True(t, total.Equal(mustDecimal(t, resp.Summary.Principal)), "capital calls %s", total)
	})
}

// TestDashboards reads every market dashboard and a region series
func TestDashboards(t *testing.T) {
	ctx := getAuthContext()

	for _, market := range []domain.AssetClass{
		domain.AssetRealEstate,
		domain.AssetArt,
		domain.AssetCarbonCredits,
		domain.AssetPrivateEquity,
	} {
		t.Run(string(market), func(t *testing.T) {
			resp, err := grpcClient.GetMarketDashboard(ctx, &grpcadapter.GetMarketDashboardRequest{Market: string(market), Seed: 11})
			require.NoError(t, err)

			assert.Equal(t, len(resp.Regions), resp.Global.RegionCount)
			for tf, want := range map[string]int{"1D": 24, "1W": 7, "1M": 30, "1Y": 12} {
				assert.Len(t, resp.Global.PriceData[tf], want, tf)
			}
		})
	}

	// Only valid when the server runs the built-in catalog
	if os.Getenv("REGION_CATALOG_PATH") == "" {
		resp, err := grpcClient.GenerateSeries(ctx, &grpcadapter.GenerateSeriesRequest{
			RegionID:  seeder.RegionID(domain.AssetArt, "Paris").String(),
			Timeframe: "1M",
		})
		require.NoError(t, err)
		assert.Equal(t, "Paris", resp.RegionName)
		assert.Len(t, resp.Points, 30)
	}
}

// TestNegativeScenarios tests error handling
func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()

	t.Run("missing token", func(t *testing.T) {
		_, err := grpcClient.ProjectArt(context.Background(), &grpcadapter.ProjectArtRequest{})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("malformed amount", func(t *testing.T) {
		_, err := grpcClient.ProjectRealEstate(ctx, &grpcadapter.ProjectRealEstateRequest{PropertyPrice: "lots"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown market", func(t *testing.T) {
		_, err := grpcClient.GetMarketDashboard(ctx, &grpcadapter.GetMarketDashboardRequest{Market: "crypto"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
