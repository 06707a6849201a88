// Package market provides spot prices from the exchange. The dashboard only
// ever sees tradable pairs quoted in the configured settlement asset.
package market

import (
	"context"
	"strings"
)

// PriceRow is one displayed (symbol, price) entry. The exchange quotes the
// price as a decimal string and it is kept verbatim; rows are immutable once
// fetched and the full set is replaced wholesale on every refresh.
type PriceRow struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// PriceProvider is the market-data collaborator. An empty filter keeps every
// pair ending in the settlement suffix; a non-empty filter additionally
// requires the symbol to start with it.
type PriceProvider interface {
	Prices(ctx context.Context, filter string) ([]PriceRow, error)
}

// Keep applies the filter semantics to a raw ticker listing. Row order is
// preserved as returned by the exchange.
func Keep(rows []PriceRow, filter, suffix string) []PriceRow {
	out := make([]PriceRow, 0, len(rows))
	for _, r := range rows {
		if !strings.HasSuffix(r.Symbol, suffix) {
			continue
		}
		if filter != "" && !strings.HasPrefix(r.Symbol, filter) {
			continue
		}
		out = append(out, r)
	}
	return out
}
