package seeder

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// DefaultRegions is the catalog shown when no catalog file is configured
func DefaultRegions() []domain.Region {
	regions := []domain.Region{
		// Real estate: average price per property
		{Name: "New York", Market: domain.AssetRealEstate, AveragePrice: decimal.NewFromInt(1_250_000), Inventory: 340, GrowthRate: 4.2, Volatility: 1.1, BaseVolume: 1_200},
		{Name: "London", Market: domain.AssetRealEstate, AveragePrice: decimal.NewFromInt(980_000), Inventory: 410, GrowthRate: 3.1, Volatility: 0.9, BaseVolume: 1_050},
		{Name: "Tokyo", Market: domain.AssetRealEstate, AveragePrice: decimal.NewFromInt(720_000), Inventory: 520, GrowthRate: 2.4, Volatility: 0.7, BaseVolume: 1_400},
		{Name: "Dubai", Market: domain.AssetRealEstate, AveragePrice: decimal.NewFromInt(640_000), Inventory: 290, GrowthRate: 7.8, Volatility: 1.6, BaseVolume: 900},
		{Name: "Singapore", Market: domain.AssetRealEstate, AveragePrice: decimal.NewFromInt(1_100_000), Inventory: 180, GrowthRate: 3.6, Volatility: 0.8, BaseVolume: 650},
		{Name: "Lisbon", Market: domain.AssetRealEstate, AveragePrice: decimal.NewFromInt(420_000), Inventory: 230, GrowthRate: 6.1, Volatility: 1.2, BaseVolume: 500},

		// Art: average hammer price per lot
		{Name: "New York", Market: domain.AssetArt, AveragePrice: decimal.NewFromInt(185_000), Inventory: 95, GrowthRate: 7.5, Volatility: 1.4, BaseVolume: 60},
		{Name: "London", Market: domain.AssetArt, AveragePrice: decimal.NewFromInt(150_000), Inventory: 80, GrowthRate: 6.2, Volatility: 1.3, BaseVolume: 55},
		{Name: "Hong Kong", Market: domain.AssetArt, AveragePrice: decimal.NewFromInt(210_000), Inventory: 45, GrowthRate: 9.1, Volatility: 1.8, BaseVolume: 35},
		{Name: "Paris", Market: domain.AssetArt, AveragePrice: decimal.NewFromInt(120_000), Inventory: 70, GrowthRate: 5.4, Volatility: 1.2, BaseVolume: 40},

		// Carbon credits: price per tonne CO2e
		{Name: "North America", Market: domain.AssetCarbonCredits, AveragePrice: decimal.NewFromInt(28), Inventory: 1_800_000, GrowthRate: 11.5, Volatility: 1.5, BaseVolume: 250_000},
		{Name: "Europe", Market: domain.AssetCarbonCredits, AveragePrice: decimal.NewFromInt(82), Inventory: 2_400_000, GrowthRate: 9.2, Volatility: 1.2, BaseVolume: 410_000},
		{Name: "Asia Pacific", Market: domain.AssetCarbonCredits, AveragePrice: decimal.NewFromInt(14), Inventory: 3_100_000, GrowthRate: 14.8, Volatility: 1.9, BaseVolume: 320_000},
		{Name: "Latin America", Market: domain.AssetCarbonCredits, AveragePrice: decimal.NewFromInt(11), Inventory: 1_200_000, GrowthRate: 16.3, Volatility: 2.1, BaseVolume: 140_000},
		{Name: "Africa", Market: domain.AssetCarbonCredits, AveragePrice: decimal.NewFromInt(9), Inventory: 900_000, GrowthRate: 18.0, Volatility: 2.4, BaseVolume: 90_000},

		// Private equity: average fund unit NAV
		{Name: "North America", Market: domain.AssetPrivateEquity, AveragePrice: decimal.NewFromInt(1_000), Inventory: 1_250, GrowthRate: 13.2, Volatility: 1.0, BaseVolume: 3_000},
		{Name: "Europe", Market: domain.AssetPrivateEquity, AveragePrice: decimal.NewFromInt(1_000), Inventory: 860, GrowthRate: 11.4, Volatility: 0.9, BaseVolume: 2_100},
		{Name: "Asia", Market: domain.AssetPrivateEquity, AveragePrice: decimal.NewFromInt(1_000), Inventory: 640, GrowthRate: 15.7, Volatility: 1.3, BaseVolume: 1_700},
	}

	for i := range regions {
		regions[i].ID = RegionID(regions[i].Market, regions[i].Name)
	}
	return regions
}
