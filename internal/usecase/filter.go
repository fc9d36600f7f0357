package usecase

import (
	"strings"

	"github.com/vitos/nordic_stock_data/internal/domain"
)

// FilterInstruments returns the instruments whose short or full name contains
// the query, case-insensitively. No match is an empty result, not an error.
func FilterInstruments(instruments []domain.Instrument, query string) []domain.Instrument {
	query = strings.ToLower(strings.TrimSpace(query))

	var result []domain.Instrument
	for _, in := range instruments {
		name := strings.ToLower(strings.TrimSpace(in.Name))
		fullName := strings.ToLower(strings.TrimSpace(in.FullName))

		if strings.Contains(name, query) || strings.Contains(fullName, query) {
			result = append(result, in)
		}
	}

	return result
}
