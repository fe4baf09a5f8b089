package store

import (
	"sync"
	"time"

	"StockScope/internal/model"
)

// MemoryStore is a map-backed Store used when no SQLite path is configured
// and in tests. Data does not survive the process.
type MemoryStore struct {
	mu         sync.Mutex
	bars       map[string][]model.Bar
	portfolios []*model.SavedPortfolio
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bars: make(map[string][]model.Bar)}
}

func (m *MemoryStore) Get(symbol string, start, end time.Time) ([]model.Bar, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, ok := m.bars[symbol]
	if !ok {
		return nil, false, nil
	}
	var out []model.Bar
	for _, b := range all {
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out, true, nil
}

func (m *MemoryStore) Put(symbol string, bars []model.Bar) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bars[symbol] = append([]model.Bar(nil), bars...)
	return nil
}

func (m *MemoryStore) SavePortfolio(name, description string, weights map[string]float64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := make(map[string]float64, len(weights))
	for k, v := range weights {
		w[k] = v
	}
	id := int64(len(m.portfolios) + 1)
	m.portfolios = append(m.portfolios, &model.SavedPortfolio{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().Format("2006-01-02 15:04:05"),
		Weights:     w,
	})
	return id, nil
}

func (m *MemoryStore) GetPortfolio(id int64) (*model.SavedPortfolio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.portfolios {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) Close() error { return nil }
