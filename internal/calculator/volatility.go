package calculator

import (
	"fmt"
	"math"

	"StockScope/internal/model"
)

// AnnualVolatility computes the annualized volatility of a series: the
// sample standard deviation of day-over-day close changes scaled by √252.
// Requires at least 2 daily-change observations (3 bars).
func AnnualVolatility(bars []model.Bar) (float64, error) {
	closes := model.Closes(bars)
	if len(closes) < 3 {
		return 0, fmt.Errorf("need at least 2 daily changes, got %d: %w", max(len(closes)-1, 0), ErrInsufficientData)
	}

	changes := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		changes = append(changes, closes[i]/closes[i-1]-1)
	}

	var sum float64
	for _, c := range changes {
		sum += c
	}
	mean := sum / float64(len(changes))

	var sq float64
	for _, c := range changes {
		sq += (c - mean) * (c - mean)
	}
	stddev := math.Sqrt(sq / float64(len(changes)-1))

	return stddev * math.Sqrt(TradingDaysPerYear), nil
}
