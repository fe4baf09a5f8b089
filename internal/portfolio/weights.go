// Package portfolio parses weight specifications and aggregates
// per-security metrics into portfolio-level results.
package portfolio

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSpec indicates a malformed portfolio weight specification.
var ErrInvalidSpec = errors.New("invalid portfolio spec")

// ParseSpec parses a comma-separated weight specification. Each item is
// either "SYMBOL:WEIGHT" or a bare "SYMBOL". Symbols without an explicit
// weight share the unallocated remainder (1 - sum of explicit weights)
// equally. When every weight is explicit the values are used exactly as
// given, even if they do not sum to 1: over/under-100% allocations
// legitimately model leverage or cash drag.
func ParseSpec(spec string) (map[string]float64, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("empty input: %w", ErrInvalidSpec)
	}

	weights := make(map[string]float64)
	var placeholders []string
	explicitSum := 0.0

	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, fmt.Errorf("empty item: %w", ErrInvalidSpec)
		}

		sym, weightStr, hasColon := strings.Cut(item, ":")
		sym = strings.TrimSpace(sym)
		if sym == "" {
			return nil, fmt.Errorf("item %q has no symbol: %w", item, ErrInvalidSpec)
		}
		if _, dup := weights[sym]; dup {
			return nil, fmt.Errorf("duplicate symbol %s: %w", sym, ErrInvalidSpec)
		}

		if !hasColon {
			weights[sym] = 0
			placeholders = append(placeholders, sym)
			continue
		}

		weightStr = strings.TrimSpace(weightStr)
		if weightStr == "" {
			return nil, fmt.Errorf("item %q has no weight: %w", item, ErrInvalidSpec)
		}
		w, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q is not numeric: %w", weightStr, ErrInvalidSpec)
		}
		if w < 0 {
			return nil, fmt.Errorf("weight %q is negative: %w", weightStr, ErrInvalidSpec)
		}
		weights[sym] = w
		explicitSum += w
	}

	if len(placeholders) > 0 {
		perSymbol := (1.0 - explicitSum) / float64(len(placeholders))
		for _, sym := range placeholders {
			weights[sym] = perSymbol
		}
	}
	return weights, nil
}

// FormatWeights renders a weight map back into the spec grammar, sorted by
// symbol. Round-trips through ParseSpec.
func FormatWeights(weights map[string]float64) string {
	symbols := make([]string, 0, len(weights))
	for sym := range weights {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	items := make([]string, len(symbols))
	for i, sym := range symbols {
		items[i] = fmt.Sprintf("%s:%g", sym, weights[sym])
	}
	return strings.Join(items, ",")
}

// WeightedReturn sums returns[s] * weights[s] over the symbols present in
// both maps. A symbol missing from either map is skipped, not an error: a
// security whose return failed to compute is simply excluded.
func WeightedReturn(returns, weights map[string]float64) float64 {
	total := 0.0
	for sym, r := range returns {
		w, ok := weights[sym]
		if !ok {
			continue
		}
		total += r * w
	}
	return total
}
