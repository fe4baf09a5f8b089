// Package cleaner validates and normalizes raw price series before they
// reach the analytics.
package cleaner

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"StockScope/internal/model"
)

// ErrInvalidData indicates a series with no usable bars.
var ErrInvalidData = errors.New("invalid price data")

// Clean removes any bar with a missing (NaN/Inf) or out-of-range value in
// any field, sorts ascending by date and drops duplicate dates. No
// interpolation. Fails rather than silently dropping the whole series.
func Clean(bars []model.Bar) ([]model.Bar, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("empty series: %w", ErrInvalidData)
	}

	out := make([]model.Bar, 0, len(bars))
	for _, b := range bars {
		if !valid(b) {
			continue
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable bars after cleaning %d rows: %w", len(bars), ErrInvalidData)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	// Dates must be unique within a series; keep the first occurrence.
	dedup := out[:1]
	for _, b := range out[1:] {
		if b.Date.Equal(dedup[len(dedup)-1].Date) {
			continue
		}
		dedup = append(dedup, b)
	}
	return dedup, nil
}

// valid reports whether every field of the bar is a usable number.
// Close must be strictly positive; it is used as a denominator downstream.
func valid(b model.Bar) bool {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return b.Close > 0 && !b.Date.IsZero()
}
