package model

// SymbolMetrics holds the per-security statistics of one analysis run.
type SymbolMetrics struct {
	TotalReturn      float64
	AnnualReturn     float64
	AnnualVolatility float64
	MaxDrawdown      float64
}

// PortfolioResult is the outcome of analyzing one portfolio specification.
// Symbols that failed to resolve are listed in Failed with their cause and
// excluded from WeightedReturn.
type PortfolioResult struct {
	Weights        map[string]float64
	PerSymbol      map[string]SymbolMetrics
	Failed         map[string]error
	WeightedReturn float64
}

// SavedPortfolio is a named weight specification persisted by the store.
type SavedPortfolio struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   string
	Weights     map[string]float64
}
