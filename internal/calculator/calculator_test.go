package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func seriesFromCloses(closes []float64) []model.Bar {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestReturns_FlatSeries(t *testing.T) {
	bars := seriesFromCloses([]float64{100, 95, 103, 100})
	total, annual, err := Returns(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected zero total return when first == last close, got %g", total)
	}
	if annual != 0 {
		t.Errorf("expected zero annual return, got %g", annual)
	}
}

func TestReturns_OneTradingYear(t *testing.T) {
	closes := make([]float64, TradingDaysPerYear)
	for i := range closes {
		closes[i] = 100 + 100*float64(i)/float64(TradingDaysPerYear-1)
	}
	total, annual, err := Returns(seriesFromCloses(closes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("expected total return 1.0, got %g", total)
	}
	// 252 bars is exactly one trading year, so annual == total.
	if math.Abs(annual-total) > 1e-9 {
		t.Errorf("expected annual == total for a one-year series, got %g vs %g", annual, total)
	}
}

func TestReturns_InsufficientData(t *testing.T) {
	for _, closes := range [][]float64{nil, {100}} {
		if _, _, err := Returns(seriesFromCloses(closes)); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%d bars: expected ErrInsufficientData, got %v", len(closes), err)
		}
	}
}

func TestAnnualVolatility_ConstantSeries(t *testing.T) {
	vol, err := AnnualVolatility(seriesFromCloses([]float64{100, 100, 100, 100}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vol != 0 {
		t.Errorf("expected zero volatility for constant closes, got %g", vol)
	}
}

func TestAnnualVolatility_KnownValue(t *testing.T) {
	// Daily changes are {+10%, -10%}, mean 0, sample stddev sqrt(0.02).
	vol, err := AnnualVolatility(seriesFromCloses([]float64{100, 110, 99}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt(0.02) * math.Sqrt(TradingDaysPerYear)
	if math.Abs(vol-want) > 1e-9 {
		t.Errorf("expected volatility %g, got %g", want, vol)
	}
}

func TestAnnualVolatility_InsufficientData(t *testing.T) {
	for _, closes := range [][]float64{{100}, {100, 110}} {
		if _, err := AnnualVolatility(seriesFromCloses(closes)); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%d bars: expected ErrInsufficientData, got %v", len(closes), err)
		}
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"monotonic increase", []float64{100, 101, 102, 110}, 0},
		{"flat", []float64{100, 100, 100}, 0},
		{"half loss", []float64{100, 50, 60}, -0.5},
		{"recovers after dip", []float64{100, 80, 120, 90}, -0.25},
	}
	for _, tt := range tests {
		got, err := MaxDrawdown(seriesFromCloses(tt.closes))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected drawdown %g, got %g", tt.name, tt.want, got)
		}
		if got > 0 || got < -1 {
			t.Errorf("%s: drawdown %g out of [-1, 0]", tt.name, got)
		}
	}
}

func TestMaxDrawdown_InsufficientData(t *testing.T) {
	if _, err := MaxDrawdown(seriesFromCloses([]float64{100})); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for single-bar series, got %v", err)
	}
}
