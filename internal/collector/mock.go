package collector

import (
	"time"

	"StockScope/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
// HistoryCalls counts remote invocations so tests can observe cache hits.
type MockSource struct {
	Bars         []model.Bar
	Err          error
	HistoryCalls int
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) History(_ string, start, end time.Time) ([]model.Bar, error) {
	m.HistoryCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		var out []model.Bar
		for _, b := range m.Bars {
			if b.Date.Before(start) || b.Date.After(end) {
				continue
			}
			out = append(out, b)
		}
		return out, nil
	}
	return nil, nil
}

// GenerateBars builds a synthetic ascending daily series ending today,
// drifting around basePrice.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
