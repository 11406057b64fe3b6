package seeder

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// RegionNamespace derives stable region IDs from market and name
var RegionNamespace = uuid.MustParse("5b0f7a52-3c1e-4d8a-9f5e-2a6b1c9d4e70")

// RegionID returns the stable ID of a catalog region
func RegionID(market domain.AssetClass, name string) uuid.UUID {
	return uuid.NewSHA1(RegionNamespace, []byte(string(market)+"/"+name))
}

// CatalogRegion is one region entry of a YAML catalog file
type CatalogRegion struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Market       string  `yaml:"market"`
	AveragePrice float64 `yaml:"average_price"`
	Inventory    int     `yaml:"inventory"`
	GrowthRate   float64 `yaml:"growth_rate"`
	Volatility   float64 `yaml:"volatility"`
	BaseVolume   float64 `yaml:"base_volume"`
}

// Catalog is the root of a YAML catalog file
type Catalog struct {
	Regions []CatalogRegion `yaml:"regions"`
}

// RegionSeeder handles seeding of the dashboard region catalog
type RegionSeeder struct {
	repo domain.RegionRepository
}

// NewRegionSeeder creates a new RegionSeeder instance
func NewRegionSeeder(repo domain.RegionRepository) *RegionSeeder {
	return &RegionSeeder{
		repo: repo,
	}
}

// Seed ensures every given region exists in the catalog
// If a region doesn't exist, it creates it
func (s *RegionSeeder) Seed(ctx context.Context, regions []domain.Region) error {
	for i := range regions {
		region := regions[i]

		// Try to get the region by ID
		if _, err := s.repo.GetByID(ctx, region.ID); err == nil {
			continue
		}

		// Validate before creating
		if err := region.Validate(); err != nil {
			return fmt.Errorf("region %q: %w", region.Name, err)
		}

		if err := s.repo.Create(ctx, &region); err != nil {
			return err
		}
	}

	return nil
}

// SeedDefaults seeds the built-in catalog
func (s *RegionSeeder) SeedDefaults(ctx context.Context) error {
	return s.Seed(ctx, DefaultRegions())
}

// SeedFile seeds the catalog described by a YAML file
func (s *RegionSeeder) SeedFile(ctx context.Context, path string) error {
	regions, err := LoadCatalog(path)
	if err != nil {
		return err
	}
	return s.Seed(ctx, regions)
}

// LoadCatalog reads a YAML catalog file
func LoadCatalog(path string) ([]domain.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read region catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog data.
// Entries without an id get the stable ID derived from market and name.
func ParseCatalog(data []byte) ([]domain.Region, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse region catalog: %w", err)
	}

	regions := make([]domain.Region, 0, len(catalog.Regions))
	for _, entry := range catalog.Regions {
		market, ok := domain.ParseAssetClass(entry.Market)
		if !ok {
			return nil, fmt.Errorf("region %q: invalid market %q", entry.Name, entry.Market)
		}

		id := RegionID(market, entry.Name)
		if entry.ID != "" {
			parsed, err := uuid.Parse(entry.ID)
			if err != nil {
				return nil, fmt.Errorf("region %q: invalid id: %w", entry.Name, err)
			}
			id = parsed
		}

		volatility := entry.Volatility
		if volatility == 0 {
			volatility = 1
		}

		regions = append(regions, domain.Region{
			ID:           id,
			Name:         entry.Name,
			Market:       market,
			AveragePrice: decimal.NewFromFloat(entry.AveragePrice),
			Inventory:    entry.Inventory,
			GrowthRate:   entry.GrowthRate,
			Volatility:   volatility,
			BaseVolume:   entry.BaseVolume,
		})
	}

	return regions, nil
}
