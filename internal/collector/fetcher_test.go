package collector

import (
	"errors"
	"testing"

	"StockScope/internal/store"
)

func TestFetch_CacheMissThenHit(t *testing.T) {
	src := &MockSource{Bars: GenerateBars(100, 30)}
	f := NewFetcher(store.NewMemoryStore(), src, 1)

	first, err := f.Fetch("aapl")
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if first.Symbol != "AAPL" {
		t.Errorf("expected normalized symbol AAPL, got %s", first.Symbol)
	}
	if src.HistoryCalls != 1 {
		t.Fatalf("expected 1 remote call after cache miss, got %d", src.HistoryCalls)
	}

	second, err := f.Fetch("AAPL")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if src.HistoryCalls != 1 {
		t.Errorf("expected second fetch served from cache, got %d remote calls", src.HistoryCalls)
	}
	if len(second.Bars) != len(first.Bars) {
		t.Fatalf("cache returned %d bars, remote returned %d", len(second.Bars), len(first.Bars))
	}
	for i := range first.Bars {
		if first.Bars[i] != second.Bars[i] {
			t.Fatalf("bar %d differs between cache and remote: %+v vs %+v", i, first.Bars[i], second.Bars[i])
		}
	}
}

func TestFetch_DataUnavailable(t *testing.T) {
	f := NewFetcher(store.NewMemoryStore(), &MockSource{}, 1)
	if _, err := f.Fetch("UNKNOWN"); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable for zero-row symbol, got %v", err)
	}
}

func TestFetch_TransportError(t *testing.T) {
	src := &MockSource{Err: errors.New("connection reset")}
	f := NewFetcher(store.NewMemoryStore(), src, 1)
	if _, err := f.Fetch("AAPL"); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected transport error mapped to ErrDataUnavailable, got %v", err)
	}
}

func TestRefresh_ForcesRemote(t *testing.T) {
	src := &MockSource{Bars: GenerateBars(100, 30)}
	f := NewFetcher(store.NewMemoryStore(), src, 1)

	if _, err := f.Fetch("AAPL"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, err := f.Refresh("AAPL"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if src.HistoryCalls != 2 {
		t.Errorf("expected refresh to bypass the cache, got %d remote calls", src.HistoryCalls)
	}
}

func TestFetch_EmptyTicker(t *testing.T) {
	f := NewFetcher(store.NewMemoryStore(), &MockSource{}, 1)
	if _, err := f.Fetch("  "); err == nil {
		t.Error("expected error for empty ticker")
	}
}
