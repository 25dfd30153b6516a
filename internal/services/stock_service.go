package services

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

// StockService answers the "which tires can I mount" question: in-stock
// tires plus free-text filtering over serial, manufacturer, model and
// dimension. Matching is accent-insensitive so "Micheln São" finds
// "Michelin Sao Paulo" and vice versa.
type StockService struct {
	tires tire.Store
}

func NewStockService(tires tire.Store) *StockService {
	return &StockService{tires: tires}
}

// InStock lists every tire currently available for mounting, ordered by
// serial for a stable picker.
func (svc *StockService) InStock(ctx context.Context) ([]entities.Tire, error) {
	tires, err := svc.tires.TiresByStatus(ctx, entities.TireInStock)
	if err != nil {
		return nil, err
	}
	sort.Slice(tires, func(i, j int) bool { return tires[i].Serial < tires[j].Serial })
	return tires, nil
}

// Search filters tires by a free-text query. Every whitespace separated
// term must match at least one of the searchable fields. Without an
// explicit status set it covers the tires an operator can plan with:
// in stock plus away at the recapper.
func (svc *StockService) Search(ctx context.Context, query string, statuses ...entities.TireStatus) ([]entities.Tire, error) {
	if len(statuses) == 0 {
		statuses = []entities.TireStatus{entities.TireInStock, entities.TireInRecap}
	}
	tires, err := svc.ByStatus(ctx, statuses...)
	if err != nil {
		return nil, err
	}

	terms := strings.Fields(foldAccents(strings.ToLower(query)))
	if len(terms) == 0 {
		return tires, nil
	}

	var out []entities.Tire
	for _, t := range tires {
		haystack := foldAccents(strings.ToLower(strings.Join([]string{
			t.Serial, t.Manufacturer, t.Model, t.Dimension, t.DOTCode,
		}, " ")))
		if matchesAll(haystack, terms) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ByStatus lists tires in any of the given lifecycle statuses, for the
// stock, recapping and scrapped screens.
func (svc *StockService) ByStatus(ctx context.Context, statuses ...entities.TireStatus) ([]entities.Tire, error) {
	tires, err := svc.tires.TiresByStatus(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	sort.Slice(tires, func(i, j int) bool { return tires[i].Serial < tires[j].Serial })
	return tires, nil
}

func matchesAll(haystack string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents strips combining marks so "pirelli citroën" and
// "pirelli citroen" compare equal.
func foldAccents(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return folded
}
