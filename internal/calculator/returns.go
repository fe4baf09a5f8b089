// Package calculator derives return and risk statistics from cleaned
// daily price series.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"StockScope/internal/model"
)

// TradingDaysPerYear is the trading-day count used for annualization.
const TradingDaysPerYear = 252

// ErrInsufficientData indicates a series too short for the requested statistic.
var ErrInsufficientData = errors.New("insufficient data")

// Returns computes the total and annualized return over a cleaned series.
// Requires at least 2 bars.
func Returns(bars []model.Bar) (total, annual float64, err error) {
	if len(bars) < 2 {
		return 0, 0, fmt.Errorf("need at least 2 bars, got %d: %w", len(bars), ErrInsufficientData)
	}

	first := bars[0].Close
	last := bars[len(bars)-1].Close
	if first <= 0 {
		return 0, 0, fmt.Errorf("non-positive initial close %.4f: %w", first, ErrInsufficientData)
	}
	total = last/first - 1

	years := float64(len(bars)) / TradingDaysPerYear
	if years <= 0 {
		return 0, 0, fmt.Errorf("zero-length trading window: %w", ErrInsufficientData)
	}
	annual = math.Pow(1+total, 1/years) - 1
	return total, annual, nil
}
