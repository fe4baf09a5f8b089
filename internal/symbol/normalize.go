// Package symbol maps user-supplied tickers to the canonical identifiers
// used by the remote data sources and the price store.
package symbol

import (
	"errors"
	"strings"
)

// Normalize trims and uppercases a raw ticker. Tickers without a market
// suffix get one inferred from the leading digit: mainland codes starting
// with '6' trade on Shanghai (.SS), '0' and '3' on Shenzhen (.SZ). Tickers
// that already carry a suffix pass through unchanged.
func Normalize(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" {
		return "", errors.New("empty ticker")
	}
	if strings.Contains(ticker, ".") {
		return ticker, nil
	}
	switch ticker[0] {
	case '6':
		ticker += ".SS"
	case '0', '3':
		ticker += ".SZ"
	}
	return ticker, nil
}
