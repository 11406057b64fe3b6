package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/tokenvest-backend/internal/adapter/grpc"
	"github.com/simaogato/tokenvest-backend/internal/adapter/presenter"
	"github.com/simaogato/tokenvest-backend/internal/adapter/repository/memory"
	"github.com/simaogato/tokenvest-backend/internal/config"
	"github.com/simaogato/tokenvest-backend/internal/platform/otel"
	"github.com/simaogato/tokenvest-backend/internal/usecase/calculator"
	"github.com/simaogato/tokenvest-backend/internal/usecase/dashboard"
	"github.com/simaogato/tokenvest-backend/internal/usecase/seeder"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// 2. Setup tracing (no-op unless an endpoint is configured)
	shutdownTracing, err := otel.Setup(ctx, cfg.ServiceName, cfg.OTELEndpoint, cfg.OTELEnabled)
	if err != nil {
		log.Fatalf("Failed to setup tracing: %v", err)
	}

	// 3. Initialize Repositories (in-memory region catalog)
	store := memory.NewStore()
	regionRepo := memory.NewRegionRepository(store)

	// Seed the region catalog
	regionSeeder := seeder.NewRegionSeeder(regionRepo)
	if cfg.RegionCatalogPath != "" {
		err = regionSeeder.SeedFile(ctx, cfg.RegionCatalogPath)
	} else {
		err = regionSeeder.SeedDefaults(ctx)
	}
	if err != nil {
		log.Fatalf("Failed to seed region catalog: %v", err)
	}
	log.Println("Region catalog seeded successfully")

	// 4. Initialize Services (Use Cases)
	calculatorService := calculator.NewCalculatorService()
	dashboardService := dashboard.NewDashboardService(regionRepo)
	formatter := presenter.NewFormatter(cfg.DisplayLocale)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.StatsHandler(otelgrpc.NewServerHandler()),
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.AuthInterceptor(cfg.APIToken, grpcadapter.HealthCheckMethod),
		),
	)

	grpcAdapter := grpcadapter.NewServer(calculatorService, dashboardService, formatter)
	grpcAdapter.DefaultSeed = cfg.SeriesSeed
	grpcadapter.RegisterProjectionServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcadapter.ProjectionServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s (locale %s)", cfg.GRPCAddr, formatter.Locale())
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, healthServer)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
