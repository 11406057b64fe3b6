package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

func TestSummarize(t *testing.T) {
	projections := []domain.YearProjection{
		{Year: 1, Value: 1_100, CumulativeCosts: 10, NetValue: 1_090},
		{Year: 2, Value: 1_210, CumulativeCosts: 20, CumulativeReinvested: 5, NetValue: 1_190},
	}

	s := Summarize(1_000, 2, projections)

	assert.Equal(t, 1_000.0, s.Principal)
	assert.Equal(t, 2, s.Years)
	assert.Equal(t, 1_210.0, s.FinalValue)
	assert.Equal(t, 1_190.0, s.NetFinalValue)
	assert.Equal(t, 20.0, s.TotalCosts)
	assert.Equal(t, 5.0, s.TotalReinvested)
	assert.InDelta(t, 19, s.TotalReturnPct, 1e-9)
	assert.True(t, s.AnnualizedDefined)
	assert.InDelta(t, (math.Sqrt(1.19)-1)*100, s.AnnualizedReturnPct, 1e-9)
	assert.InDelta(t, 1.19, s.Multiple, 1e-12)
}

func TestSummarize_ZeroPrincipal(t *testing.T) {
	s := Summarize(0, 10, []domain.YearProjection{})

	assert.Equal(t, domain.Summary{Years: 10}, s)
	for _, v := range []float64{s.FinalValue, s.NetFinalValue, s.TotalReturnPct, s.AnnualizedReturnPct, s.Multiple} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestSummarize_NegativeNetValueHasNoAnnualizedRate(t *testing.T) {
	projections := []domain.YearProjection{
		{Year: 1, Value: 0, CumulativeCosts: 300, NetValue: -300},
	}

	s := Summarize(1_000, 1, projections)

	assert.False(t, s.AnnualizedDefined)
	assert.Equal(t, 0.0, s.AnnualizedReturnPct)
	assert.InDelta(t, -130, s.TotalReturnPct, 1e-9)
}

func TestRatioGuards(t *testing.T) {
	assert.Equal(t, 0.0, TotalReturnPct(100, 0))
	assert.Equal(t, 0.0, TotalReturnPct(100, -5))
	assert.Equal(t, 0.0, TotalReturnPct(100, math.NaN()))
	assert.Equal(t, 0.0, Multiple(100, 0))

	r, ok := AnnualizedReturnPct(0, 100, 5)
	assert.False(t, ok)
	assert.Equal(t, 0.0, r)

	r, ok = AnnualizedReturnPct(200, 100, 0)
	assert.False(t, ok)
	assert.Equal(t, 0.0, r)

	r, ok = AnnualizedReturnPct(200, 100, 1)
	assert.True(t, ok)
	assert.InDelta(t, 100, r, 1e-9)
}

func TestIRR(t *testing.T) {
	tests := []struct {
		name      string
		cashflows []float64
		want      float64
		wantOK    bool
	}{
		{"one year 10%", []float64{-100, 110}, 10, true},
		{"two years 10%", []float64{-100, 0, 121}, 10, true},
		{"staged calls", []float64{-50, -50, 0, 127.05}, 10, true},
		{"total loss has no root", []float64{-100, 0}, 0, false},
		{"no outflow", []float64{100, 110}, 0, false},
		{"single flow", []float64{-100}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IRR(tt.cashflows)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestNPV(t *testing.T) {
	assert.InDelta(t, 0, NPV(0.1, []float64{-100, 110}), 1e-9)
	assert.InDelta(t, 10, NPV(0, []float64{-100, 110}), 1e-9)
}
