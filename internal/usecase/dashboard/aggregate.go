package dashboard

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// Aggregate derives the global snapshot of a market from its regions.
// Prices and growth are simple averages, inventory and volume are sums.
// OHLC series are averaged point by point up to the shortest region series;
// an averaged candle that breaks the OHLC ordering is repaired.
func Aggregate(market domain.AssetClass, regions []domain.RegionSnapshot) domain.GlobalSnapshot {
	global := domain.GlobalSnapshot{
		Market:      market,
		RegionCount: len(regions),
		PriceData:   make(map[domain.Timeframe][]domain.PricePoint, len(domain.Timeframes)),
	}
	if len(regions) == 0 {
		for _, tf := range domain.Timeframes {
			global.PriceData[tf] = []domain.PricePoint{}
		}
		return global
	}

	n := float64(len(regions))
	priceSum := decimal.Zero
	growthSum := 0.0
	for _, r := range regions {
		priceSum = priceSum.Add(r.AveragePrice)
		growthSum += r.GrowthRate
		global.Inventory += r.Inventory
	}
	global.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(len(regions))))
	global.GrowthRate = growthSum / n

	for _, tf := range domain.Timeframes {
		global.PriceData[tf] = aggregateSeries(regions, tf)
	}
	return global
}

func aggregateSeries(regions []domain.RegionSnapshot, tf domain.Timeframe) []domain.PricePoint {
	length := math.MaxInt
	for _, r := range regions {
		length = min(length, len(r.PriceData[tf]))
	}

	n := float64(len(regions))
	points := make([]domain.PricePoint, length)
	for i := 0; i < length; i++ {
		p := domain.PricePoint{Index: i}
		for _, r := range regions {
			src := r.PriceData[tf][i]
			p.Open += src.Open / n
			p.High += src.High / n
			p.Low += src.Low / n
			p.Close += src.Close / n
			p.Volume += src.Volume
		}
		if !p.Valid() {
			p = p.Repaired()
		}
		points[i] = p
	}
	return points
}
