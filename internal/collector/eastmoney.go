package collector

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"StockScope/internal/model"
)

const eastMoneyKLineURL = "https://push2his.eastmoney.com/api/qt/stock/kline/get"

// EastMoneySource implements Source using the EastMoney history kline API.
// It only covers mainland A-share symbols (".SS"/".SZ" suffix).
type EastMoneySource struct {
	Client *http.Client
}

// NewEastMoneySource creates a new EastMoney source with optional proxy support.
func NewEastMoneySource(proxyURL string) *EastMoneySource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &EastMoneySource{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *EastMoneySource) Name() string { return "eastmoney" }

// secID converts a normalized symbol to an EastMoney secid:
// Shanghai 1.600519, Shenzhen 0.000001.
func secID(symbol string) (string, error) {
	switch {
	case strings.HasSuffix(symbol, ".SS"):
		return "1." + strings.TrimSuffix(symbol, ".SS"), nil
	case strings.HasSuffix(symbol, ".SZ"):
		return "0." + strings.TrimSuffix(symbol, ".SZ"), nil
	default:
		return "", fmt.Errorf("eastmoney: unsupported symbol %q", symbol)
	}
}

// History fetches forward-adjusted daily klines for symbol within [start, end].
// fields2 order: f51 date, f52 open, f53 close, f54 high, f55 low, f56 volume.
func (f *EastMoneySource) History(symbol string, start, end time.Time) ([]model.Bar, error) {
	sid, err := secID(symbol)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?secid=%s&fields1=f1,f2,f3,f4,f5,f6&fields2=f51,f52,f53,f54,f55,f56&klt=101&fqt=1&beg=%s&end=%s",
		eastMoneyKLineURL, sid, start.Format("20060102"), end.Format("20060102"))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Referer", "https://quote.eastmoney.com/")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eastmoney fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("eastmoney read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eastmoney: status %d", resp.StatusCode)
	}

	klines := gjson.GetBytes(body, "data.klines")
	if !klines.Exists() || !klines.IsArray() {
		return nil, nil // unknown symbol, zero rows
	}

	arr := klines.Array()
	bars := make([]model.Bar, 0, len(arr))
	for _, v := range arr {
		parts := strings.Split(strings.TrimSpace(v.String()), ",")
		if len(parts) < 6 {
			continue
		}
		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			continue
		}
		open, _ := strconv.ParseFloat(parts[1], 64)
		closeVal, _ := strconv.ParseFloat(parts[2], 64)
		high, _ := strconv.ParseFloat(parts[3], 64)
		low, _ := strconv.ParseFloat(parts[4], 64)
		volume, _ := strconv.ParseFloat(parts[5], 64)
		bars = append(bars, model.Bar{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closeVal,
			Volume: volume,
		})
	}
	return bars, nil
}
