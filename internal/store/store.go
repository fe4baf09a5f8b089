// Package store provides durable persistence for daily price bars and
// saved portfolio specifications.
package store

import (
	"time"

	"StockScope/internal/model"
)

// Store is the cache contract consumed by the fetcher. Get returns bars
// whose date falls within [start, end] inclusive, ascending. ok reports
// whether the store holds any rows at all for the symbol; ok with an empty
// slice means the symbol is known but nothing overlaps the window. Put is a
// full replace: a later write for the same symbol supersedes all prior bars.
type Store interface {
	Get(symbol string, start, end time.Time) (bars []model.Bar, ok bool, err error)
	Put(symbol string, bars []model.Bar) error
	SavePortfolio(name, description string, weights map[string]float64) (int64, error)
	GetPortfolio(id int64) (*model.SavedPortfolio, error)
	Close() error
}
