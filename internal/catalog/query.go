package catalog

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"farmlink_front_end/internal/models"
)

// All est la sentinelle qui court-circuite le filtre catégorie.
// Le frontend historique utilisait ALL_PRODUCTS ; "ALL" et vide sont
// acceptés comme équivalents.
const All = "ALL_PRODUCTS"

type Sort string

const (
	SortNone Sort = "none"
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

func ParseSort(value string) (Sort, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(SortNone):
		return SortNone, true
	case string(SortAsc):
		return SortAsc, true
	case string(SortDesc):
		return SortDesc, true
	default:
		return "", false
	}
}

// Fetcher est la source des produits publics (client backend, ou cache
// redis par-dessus)
type Fetcher interface {
	PublicProducts(ctx context.Context, category string) ([]models.CatalogItem, error)
}

// Query récupère le catalogue filtré par catégorie puis le trie côté
// client par prix d'offre minimum. En cas d'échec réseau, la liste
// précédente est conservée et rendue avec l'erreur, sans retry
// automatique.
type Query struct {
	mu      sync.Mutex
	fetcher Fetcher
	last    []models.CatalogItem
}

func NewQuery(fetcher Fetcher) *Query {
	return &Query{fetcher: fetcher}
}

func (q *Query) Run(ctx context.Context, category string, order Sort) ([]models.CatalogItem, error) {
	items, err := q.fetcher.PublicProducts(ctx, NormalizeCategory(category))

	q.mu.Lock()
	defer q.mu.Unlock()
	if err != nil {
		return append([]models.CatalogItem(nil), q.last...), err
	}
	q.last = items
	return SortItems(items, order), nil
}

// NormalizeCategory mappe les sentinelles sur "tout le catalogue"
func NormalizeCategory(category string) string {
	normalized := strings.ToUpper(strings.TrimSpace(category))
	if normalized == "" || normalized == "ALL" || normalized == All {
		return ""
	}
	return normalized
}

// SortItems réordonne la liste par prix d'offre minimum. Un produit sans
// offre compte +Inf : dernier en croissant, premier en décroissant, ce
// qui garde asc et desc exactement inverses. Tri stable, donc idempotent
// et sans effet pour SortNone.
func SortItems(items []models.CatalogItem, order Sort) []models.CatalogItem {
	sorted := append([]models.CatalogItem(nil), items...)
	if order == SortNone {
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a := minOrInf(sorted[i])
		b := minOrInf(sorted[j])
		if order == SortAsc {
			return a < b
		}
		return a > b
	})
	return sorted
}

func minOrInf(item models.CatalogItem) float64 {
	if min, ok := item.MinOfferPrice(); ok {
		return min
	}
	return math.Inf(1)
}
