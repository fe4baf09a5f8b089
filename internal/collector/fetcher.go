// Package collector retrieves historical price series, consulting the
// persistent store first and falling back to a remote source.
package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/store"
	"StockScope/internal/symbol"
)

// ErrDataUnavailable indicates that neither the cache nor the remote
// source yielded any data for a symbol.
var ErrDataUnavailable = errors.New("no data available")

// DefaultYears is the default history window when none is configured.
const DefaultYears = 10

// Fetcher orchestrates cache-first retrieval of price series.
type Fetcher struct {
	Store  store.Store
	Source Source
	Years  int
}

// NewFetcher creates a Fetcher. years <= 0 falls back to DefaultYears.
func NewFetcher(st store.Store, src Source, years int) *Fetcher {
	if years <= 0 {
		years = DefaultYears
	}
	return &Fetcher{Store: st, Source: src, Years: years}
}

func (f *Fetcher) window() (start, end time.Time) {
	end = time.Now()
	start = end.AddDate(0, 0, -f.Years*365)
	return start, end
}

// Fetch returns the price series for ticker over the configured window.
// Cached data is served without a remote call; on a cache miss the remote
// source is queried and the result persisted (full replace) before return.
func (f *Fetcher) Fetch(ticker string) (*model.PriceSeries, error) {
	sym, err := symbol.Normalize(ticker)
	if err != nil {
		return nil, fmt.Errorf("normalize %q: %w", ticker, err)
	}
	start, end := f.window()

	bars, ok, err := f.Store.Get(sym, start, end)
	if err != nil {
		log.Printf("[WARN] cache read for %s failed: %v, falling back to %s", sym, err, f.Source.Name())
	} else if ok && len(bars) > 0 {
		return &model.PriceSeries{Symbol: sym, Bars: bars, FetchedAt: time.Now()}, nil
	}

	return f.fetchRemote(sym, start, end)
}

// Refresh bypasses the cache, pulls the window from the remote source and
// persists the result. Used to pick up newly available days.
func (f *Fetcher) Refresh(ticker string) (*model.PriceSeries, error) {
	sym, err := symbol.Normalize(ticker)
	if err != nil {
		return nil, fmt.Errorf("normalize %q: %w", ticker, err)
	}
	start, end := f.window()
	return f.fetchRemote(sym, start, end)
}

func (f *Fetcher) fetchRemote(sym string, start, end time.Time) (*model.PriceSeries, error) {
	bars, err := f.Source.History(sym, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s history for %s: %w: %v", f.Source.Name(), sym, ErrDataUnavailable, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s returned no rows for %s: %w", f.Source.Name(), sym, ErrDataUnavailable)
	}

	if err := f.Store.Put(sym, bars); err != nil {
		return nil, fmt.Errorf("persist %s: %w", sym, err)
	}
	log.Printf("[INFO] fetched %d bars for %s from %s", len(bars), sym, f.Source.Name())

	return &model.PriceSeries{Symbol: sym, Bars: bars, FetchedAt: time.Now()}, nil
}
