package calculator

import (
	"fmt"

	"StockScope/internal/model"
)

// MaxDrawdown computes the largest percentage decline from a running peak
// of the close price. The result is in [-1, 0]; 0 for a monotonically
// non-decreasing series. Requires at least 2 bars.
func MaxDrawdown(bars []model.Bar) (float64, error) {
	if len(bars) < 2 {
		return 0, fmt.Errorf("need at least 2 bars, got %d: %w", len(bars), ErrInsufficientData)
	}

	peak := bars[0].Close
	maxDD := 0.0
	for _, b := range bars {
		if b.Close > peak {
			peak = b.Close
		}
		dd := (b.Close - peak) / peak
		if dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD, nil
}
