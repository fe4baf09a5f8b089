package portfolio

import (
	"fmt"
	"log"

	"StockScope/internal/calculator"
	"StockScope/internal/cleaner"
	"StockScope/internal/collector"
	"StockScope/internal/model"
)

// Analyzer runs the fetch → clean → analyze pipeline for each security of
// a portfolio specification.
type Analyzer struct {
	Fetcher *collector.Fetcher
}

// NewAnalyzer creates an Analyzer on top of the given fetcher.
func NewAnalyzer(f *collector.Fetcher) *Analyzer {
	return &Analyzer{Fetcher: f}
}

// Analyze parses the weight specification and computes per-symbol and
// portfolio-level metrics. A symbol that fails at any stage is recorded in
// the result's Failed map and excluded from the weighted return; the
// remaining symbols still produce valid results. Analyze errors only on a
// malformed specification or when every symbol failed.
func (a *Analyzer) Analyze(spec string) (*model.PortfolioResult, error) {
	weights, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}

	result := &model.PortfolioResult{
		Weights:   weights,
		PerSymbol: make(map[string]model.SymbolMetrics),
		Failed:    make(map[string]error),
	}
	returns := make(map[string]float64)

	for sym := range weights {
		metrics, err := a.analyzeSymbol(sym)
		if err != nil {
			log.Printf("[WARN] analyze %s: %v", sym, err)
			result.Failed[sym] = err
			continue
		}
		result.PerSymbol[sym] = metrics
		returns[sym] = metrics.TotalReturn
	}

	if len(result.PerSymbol) == 0 {
		return nil, fmt.Errorf("all %d symbols failed to analyze", len(weights))
	}

	result.WeightedReturn = WeightedReturn(returns, weights)
	return result, nil
}

func (a *Analyzer) analyzeSymbol(sym string) (model.SymbolMetrics, error) {
	var metrics model.SymbolMetrics

	series, err := a.Fetcher.Fetch(sym)
	if err != nil {
		return metrics, err
	}
	bars, err := cleaner.Clean(series.Bars)
	if err != nil {
		return metrics, err
	}

	total, annual, err := calculator.Returns(bars)
	if err != nil {
		return metrics, err
	}
	vol, err := calculator.AnnualVolatility(bars)
	if err != nil {
		return metrics, err
	}
	dd, err := calculator.MaxDrawdown(bars)
	if err != nil {
		return metrics, err
	}

	metrics.TotalReturn = total
	metrics.AnnualReturn = annual
	metrics.AnnualVolatility = vol
	metrics.MaxDrawdown = dd
	return metrics, nil
}
