package grpc

import (
	"math"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/tokenvest-backend/internal/adapter/presenter"
	"github.com/simaogato/tokenvest-backend/internal/domain"
	"github.com/simaogato/tokenvest-backend/internal/usecase/calculator"
)

const (
	defaultChartWidth   = 640
	defaultChartHeight  = 320
	defaultChartPadding = 24
)

// parseAmount overwrites dst with the decimal in s; an empty s keeps dst
func parseAmount(field, s string, dst *float64) error {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	*dst = d.InexactFloat64()
	return nil
}

// parseAmounts applies parseAmount to each field in order
func parseAmounts(fields ...amountField) error {
	for _, f := range fields {
		if err := parseAmount(f.name, f.value, f.dst); err != nil {
			return err
		}
	}
	return nil
}

type amountField struct {
	name  string
	value string
	dst   *float64
}

func setInt(src *int, dst *int) {
	if src != nil {
		*dst = *src
	}
}

func setCategory[T ~string](src string, dst *T) {
	if src != "" {
		*dst = T(src)
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// fixed renders v as a decimal string with the given places
func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(finite(v)).StringFixed(places)
}

func money(v float64) string {
	return fixed(v, 2)
}

func chartBox(opts ChartOptions) (width, height, padding float64) {
	width, height, padding = opts.Width, opts.Height, opts.Padding
	if !(width > 0) {
		width = defaultChartWidth
	}
	if !(height > 0) {
		height = defaultChartHeight
	}
	if !(padding >= 0) || padding*2 >= math.Min(width, height) {
		padding = defaultChartPadding
	}
	return width, height, padding
}

func (s *Server) projectionToMessage(r calculator.Result, chart ChartOptions) Projection {
	f := s.Formatter
	years := make([]YearRow, 0, len(r.Projections))
	netValues := make([]float64, 0, len(r.Projections))
	for _, y := range r.Projections {
		years = append(years, YearRow{
			Year:            y.Year,
			Value:           money(y.Value),
			NetValue:        money(y.NetValue),
			PeriodCosts:     money(y.TotalCosts()),
			CumulativeCosts: money(y.CumulativeCosts),
			Reinvested:      money(y.Reinvested),
			Deployed:        money(y.Deployed),
			ValueDisplay:    f.Currency(y.Value),
			NetValueDisplay: f.Currency(y.NetValue),
		})
		netValues = append(netValues, y.NetValue)
	}

	width, height, padding := chartBox(chart)
	points := presenter.LinePoints(netValues, width, height, padding)
	coords := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		coords = append(coords, ChartPoint{X: p.X, Y: p.Y})
	}

	sum := r.Summary
	return Projection{
		AssetClass:       string(r.AssetClass),
		EffectiveRatePct: fixed(r.EffectiveRatePct, 4),
		Years:            years,
		Summary: Summary{
			Principal:           money(sum.Principal),
			Years:               sum.Years,
			FinalValue:          money(sum.FinalValue),
			NetFinalValue:       money(sum.NetFinalValue),
			TotalCosts:          money(sum.TotalCosts),
			TotalReinvested:     money(sum.TotalReinvested),
			TotalReturnPct:      fixed(sum.TotalReturnPct, 2),
			AnnualizedReturnPct: fixed(sum.AnnualizedReturnPct, 2),
			AnnualizedDefined:   sum.AnnualizedDefined,
			Multiple:            fixed(sum.Multiple, 4),
			Display: SummaryDisplay{
				Principal:            f.Currency(sum.Principal),
				FinalValue:           f.Currency(sum.FinalValue),
				NetFinalValue:        f.Currency(sum.NetFinalValue),
				NetFinalValueCompact: f.Compact(sum.NetFinalValue, true),
				TotalCosts:           f.Currency(sum.TotalCosts),
				TotalReturn:          f.Percent(sum.TotalReturnPct),
				AnnualizedReturn:     f.Percent(sum.AnnualizedReturnPct),
			},
		},
		Chart: coords,
	}
}

func pricePointsToMessage(points []domain.PricePoint) []PricePoint {
	out := make([]PricePoint, 0, len(points))
	for _, p := range points {
		out = append(out, PricePoint{
			Index:  p.Index,
			Open:   money(p.Open),
			High:   money(p.High),
			Low:    money(p.Low),
			Close:  money(p.Close),
			Volume: fixed(p.Volume, 0),
		})
	}
	return out
}

func priceDataToMessage(data map[domain.Timeframe][]domain.PricePoint) map[string][]PricePoint {
	out := make(map[string][]PricePoint, len(data))
	for tf, points := range data {
		out[string(tf)] = pricePointsToMessage(points)
	}
	return out
}

func candlesToMessage(points []domain.PricePoint, chart ChartOptions) []CandleCoords {
	width, height, padding := chartBox(chart)
	candles := presenter.CandleCoords(points, width, height, padding)
	out := make([]CandleCoords, 0, len(candles))
	for _, c := range candles {
		out = append(out, CandleCoords{
			X:          c.X,
			Width:      c.Width,
			BodyTop:    c.BodyTop,
			BodyBottom: c.BodyBottom,
			WickTop:    c.WickTop,
			WickBottom: c.WickBottom,
			Up:         c.Up,
		})
	}
	return out
}
