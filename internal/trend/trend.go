// Package trend classifies per-symbol price movement between two consecutive
// refreshes so the table can color prices by direction.
package trend

import (
	"strconv"

	"coinwatch/internal/market"
)

const (
	DirUp   = "UP"
	DirDown = "DOWN"
	DirFlat = "FLAT"
)

func direction(prev, next float64) string {
	if next > prev {
		return DirUp
	}
	if next < prev {
		return DirDown
	}
	return DirFlat
}

// Evaluate compares the previous and next row sets and returns a direction
// per symbol. Symbols without a previous quote, and prices that fail to
// parse, come out flat.
func Evaluate(prev, next []market.PriceRow) map[string]string {
	last := make(map[string]float64, len(prev))
	for _, r := range prev {
		if p, err := strconv.ParseFloat(r.Price, 64); err == nil {
			last[r.Symbol] = p
		}
	}

	result := make(map[string]string, len(next))
	for _, r := range next {
		result[r.Symbol] = DirFlat

		p, err := strconv.ParseFloat(r.Price, 64)
		if err != nil {
			continue
		}
		if old, ok := last[r.Symbol]; ok {
			result[r.Symbol] = direction(old, p)
		}
	}
	return result
}
