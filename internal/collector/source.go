package collector

import (
	"time"

	"StockScope/internal/model"
)

// Source defines the interface for fetching daily bars from a remote
// price provider. History may return zero rows for an unknown symbol;
// that is not an error at this boundary.
type Source interface {
	History(symbol string, start, end time.Time) ([]model.Bar, error)
	Name() string
}
