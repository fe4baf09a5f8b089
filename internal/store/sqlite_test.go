package store

import (
	"path/filepath"
	"testing"
	"time"

	"StockScope/internal/model"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testBars(start time.Time, closes ...float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c - 1,
			High:   c + 2,
			Low:    c - 2,
			Close:  c,
			Volume: float64(1000 + i),
		}
	}
	return bars
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bars := testBars(start, 100, 101.5, 99.25)

	if err := s.Put("AAPL", bars); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get("AAPL", start, start.AddDate(0, 0, 10))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected symbol to be present")
	}
	if len(got) != len(bars) {
		t.Fatalf("expected %d bars, got %d", len(bars), len(got))
	}
	for i := range bars {
		if got[i] != bars[i] {
			t.Errorf("bar %d: got %+v, want %+v", i, got[i], bars[i])
		}
	}
}

func TestSQLiteStore_AbsentVsEmptyRange(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := s.Put("AAPL", testBars(start, 100, 101)); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Unknown symbol: absent.
	if _, ok, err := s.Get("GOOGL", start, start.AddDate(0, 0, 10)); err != nil || ok {
		t.Errorf("unknown symbol: expected ok=false, got ok=%v err=%v", ok, err)
	}

	// Known symbol, non-overlapping window: present but empty.
	got, ok, err := s.Get("AAPL", start.AddDate(1, 0, 0), start.AddDate(1, 0, 10))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Error("known symbol outside range: expected ok=true")
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for non-overlapping range, got %d bars", len(got))
	}
}

func TestSQLiteStore_PutReplacesFully(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	if err := s.Put("AAPL", testBars(start, 100, 101, 102)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	// Later write with a shifted window supersedes all prior bars.
	later := start.AddDate(0, 1, 0)
	if err := s.Put("AAPL", testBars(later, 200, 201)); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, ok, err := s.Get("AAPL", start, later.AddDate(0, 0, 10))
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 {
		t.Fatalf("expected full replace to leave 2 bars, got %d", len(got))
	}
	if got[0].Close != 200 {
		t.Errorf("expected bars from the second write only, got close %g", got[0].Close)
	}
}

func TestSQLiteStore_RangeBoundsInclusive(t *testing.T) {
	s := openTestStore(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := s.Put("AAPL", testBars(start, 100, 101, 102, 103, 104)); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, _, err := s.Get("AAPL", start.AddDate(0, 0, 1), start.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 bars in [start+1, start+3], got %d", len(got))
	}
	if got[0].Close != 101 || got[2].Close != 103 {
		t.Errorf("inclusive bounds broken: got closes %g..%g", got[0].Close, got[len(got)-1].Close)
	}
}

func TestSQLiteStore_Portfolios(t *testing.T) {
	s := openTestStore(t)
	weights := map[string]float64{"AAPL": 0.4, "GOOGL": 0.6}

	id, err := s.SavePortfolio("tech", "AAPL:0.4,GOOGL:0.6", weights)
	if err != nil {
		t.Fatalf("save portfolio: %v", err)
	}

	got, err := s.GetPortfolio(id)
	if err != nil {
		t.Fatalf("get portfolio: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved portfolio")
	}
	if got.Name != "tech" {
		t.Errorf("expected name tech, got %q", got.Name)
	}
	if len(got.Weights) != 2 || got.Weights["AAPL"] != 0.4 || got.Weights["GOOGL"] != 0.6 {
		t.Errorf("unexpected weights: %v", got.Weights)
	}

	missing, err := s.GetPortfolio(id + 99)
	if err != nil {
		t.Fatalf("get missing portfolio: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}
}
