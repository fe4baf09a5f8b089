// Package report formats analysis results for the terminal.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"StockScope/internal/model"
)

// FormatResult formats a portfolio analysis into a plain-text report.
func FormatResult(res *model.PortfolioResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Portfolio analysis | %s\n\n", time.Now().Format("2006-01-02")))

	symbols := make([]string, 0, len(res.PerSymbol))
	for sym := range res.PerSymbol {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	for _, sym := range symbols {
		m := res.PerSymbol[sym]
		b.WriteString(fmt.Sprintf("%s (weight %.2f)\n", sym, res.Weights[sym]))
		b.WriteString(fmt.Sprintf("  total return:      %+.2f%%\n", m.TotalReturn*100))
		b.WriteString(fmt.Sprintf("  annual return:     %+.2f%%\n", m.AnnualReturn*100))
		b.WriteString(fmt.Sprintf("  annual volatility: %.2f%%\n", m.AnnualVolatility*100))
		b.WriteString(fmt.Sprintf("  max drawdown:      %.2f%%\n\n", m.MaxDrawdown*100))
	}

	if len(res.Failed) > 0 {
		failed := make([]string, 0, len(res.Failed))
		for sym := range res.Failed {
			failed = append(failed, sym)
		}
		sort.Strings(failed)
		b.WriteString("Excluded from the portfolio return:\n")
		for _, sym := range failed {
			b.WriteString(fmt.Sprintf("  %s: %v\n", sym, res.Failed[sym]))
		}
		b.WriteString("\n")
	}

	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("Portfolio weighted return: %+.2f%%\n", res.WeightedReturn*100))
	return b.String()
}
