package series

import (
	"math"
	"math/rand/v2"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

const (
	cyclicalAmplitude   = 0.12
	randomWalkAmplitude = 0.15
	upTrendProbability  = 0.8
	defaultBaseVolume   = 1_000.0
)

// Profile holds the shape constants of one timeframe
type Profile struct {
	Points          int
	Trend           float64 // fraction of the base price gained over the window
	Cycles          float64 // half-sine cycles over the window
	DailyVolatility float64 // open/close jitter band
}

var profiles = map[domain.Timeframe]Profile{
	domain.Timeframe1D: {Points: 24, Trend: 0.02, Cycles: 2, DailyVolatility: 0.004},
	domain.Timeframe1W: {Points: 7, Trend: 0.05, Cycles: 1, DailyVolatility: 0.01},
	domain.Timeframe1M: {Points: 30, Trend: 0.10, Cycles: 2, DailyVolatility: 0.015},
	domain.Timeframe1Y: {Points: 12, Trend: 0.25, Cycles: 3, DailyVolatility: 0.03},
}

// ProfileFor returns the profile of tf; unknown timeframes use 1M
func ProfileFor(tf domain.Timeframe) Profile {
	if p, ok := profiles[tf]; ok {
		return p
	}
	return profiles[domain.Timeframe1M]
}

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Input describes the instrument a series is generated for
type Input struct {
	BasePrice  float64
	Volatility float64 // relative, 1.0 = baseline
	BaseVolume float64
}

// Generator produces synthetic OHLCV series for dashboard charts.
// A Generator is not safe for concurrent use; create one per computation.
type Generator struct {
	src Source
}

// New returns an unseeded generator; output differs on every run
func New() *Generator {
	return NewSeeded(rand.Uint64())
}

// NewSeeded returns a generator whose output is reproducible for a seed
func NewSeeded(seed uint64) *Generator {
	return &Generator{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewWithSource wraps an arbitrary random source
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate builds the series of one timeframe.
//
// For each index i of n points:
//
//	cyclical   = sin(i/n * cycles * pi) * base * volatility * 0.12
//	randomWalk = (rand - 0.5) * base * volatility * 0.15
//	trend      = i/n * trendMagnitude * base * direction
//	price      = base + cyclical + randomWalk + trend
//
// The direction is drawn once per series and is up 80% of the time.
// Open and close jitter around price; high and low extend them by a
// non-negative extra so low <= open,close <= high always holds.
func (g *Generator) Generate(tf domain.Timeframe, in Input) []domain.PricePoint {
	profile := ProfileFor(tf)
	base := in.BasePrice
	if !(base > domain.MinPrice) || math.IsInf(base, 0) {
		base = domain.MinPrice
	}
	volatility := in.Volatility
	if !(volatility > 0) || math.IsInf(volatility, 0) {
		volatility = 0
	}
	baseVolume := in.BaseVolume
	if !(baseVolume > 0) || math.IsInf(baseVolume, 0) {
		baseVolume = defaultBaseVolume
	}

	direction := 1.0
	if g.src.Float64() >= upTrendProbability {
		direction = -1.0
	}

	n := float64(profile.Points)
	points := make([]domain.PricePoint, 0, profile.Points)

	for i := 0; i < profile.Points; i++ {
		progress := float64(i) / n

		cyclical := math.Sin(progress*profile.Cycles*math.Pi) * base * volatility * cyclicalAmplitude
		randomWalk := (g.src.Float64() - 0.5) * base * volatility * randomWalkAmplitude
		trend := progress * profile.Trend * base * direction
		price := floor(base + cyclical + randomWalk + trend)

		open := floor(price * (1 + (g.src.Float64()-0.5)*profile.DailyVolatility))
		closePrice := floor(price * (1 + (g.src.Float64()-0.5)*profile.DailyVolatility))

		extraHigh := price * g.src.Float64() * profile.DailyVolatility * 0.5
		extraLow := price * g.src.Float64() * profile.DailyVolatility * 0.5

		points = append(points, domain.PricePoint{
			Index:  i,
			Open:   open,
			Close:  closePrice,
			High:   math.Max(open, closePrice) + extraHigh,
			Low:    floor(math.Min(open, closePrice) - extraLow),
			Volume: baseVolume * (0.5 + g.src.Float64()),
		})
	}

	return points
}

// GenerateAll builds a series for every timeframe
func (g *Generator) GenerateAll(in Input) map[domain.Timeframe][]domain.PricePoint {
	out := make(map[domain.Timeframe][]domain.PricePoint, len(domain.Timeframes))
	for _, tf := range domain.Timeframes {
		out[tf] = g.Generate(tf, in)
	}
	return out
}

// floor keeps prices strictly positive
func floor(v float64) float64 {
	if math.IsNaN(v) || v < domain.MinPrice {
		return domain.MinPrice
	}
	return v
}
