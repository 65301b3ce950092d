package catalog

import (
	"context"
	"errors"
	"testing"

	"farmlink_front_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	items    []models.CatalogItem
	err      error
	category string
	calls    int
}

func (s *stubFetcher) PublicProducts(ctx context.Context, category string) ([]models.CatalogItem, error) {
	s.calls++
	s.category = category
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func item(name string, prices ...float64) models.CatalogItem {
	offers := make([]models.FarmerOffer, 0, len(prices))
	for i, p := range prices {
		offers = append(offers, models.FarmerOffer{FarmerID: int64(i + 1), Name: "F", BargainPrice: p})
	}
	return models.CatalogItem{ProductName: name, Farmers: offers}
}

func names(items []models.CatalogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ProductName
	}
	return out
}

func sample() []models.CatalogItem {
	return []models.CatalogItem{
		item("tomates", 40, 30),
		item("pommes", 10),
		item("graines"), // aucune offre
		item("carottes", 20, 50),
	}
}

func TestSortAscendingByMinOffer(t *testing.T) {
	sorted := SortItems(sample(), SortAsc)
	// minimum par produit : pommes 10, carottes 20, tomates 30, graines +Inf
	assert.Equal(t, []string{"pommes", "carottes", "tomates", "graines"}, names(sorted))
}

func TestSortAscDescAreInverses(t *testing.T) {
	input := sample()
	asc := SortItems(input, SortAsc)
	desc := SortItems(input, SortDesc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ProductName, desc[len(desc)-1-i].ProductName)
	}
}

func TestSortNonePreservesFetchOrder(t *testing.T) {
	input := sample()
	assert.Equal(t, names(input), names(SortItems(input, SortNone)))
}

func TestSortIsIdempotent(t *testing.T) {
	once := SortItems(sample(), SortAsc)
	twice := SortItems(once, SortAsc)
	assert.Equal(t, names(once), names(twice))

	onceDesc := SortItems(sample(), SortDesc)
	twiceDesc := SortItems(onceDesc, SortDesc)
	assert.Equal(t, names(onceDesc), names(twiceDesc))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := sample()
	before := names(input)
	SortItems(input, SortAsc)
	assert.Equal(t, before, names(input))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "", NormalizeCategory(""))
	assert.Equal(t, "", NormalizeCategory("ALL"))
	assert.Equal(t, "", NormalizeCategory("all"))
	assert.Equal(t, "", NormalizeCategory("ALL_PRODUCTS"))
	assert.Equal(t, "VEGETABLES", NormalizeCategory("vegetables"))
	assert.Equal(t, "FRUITS", NormalizeCategory(" Fruits "))
}

func TestParseSort(t *testing.T) {
	for raw, want := range map[string]Sort{"": SortNone, "none": SortNone, "asc": SortAsc, "ASC": SortAsc, "desc": SortDesc} {
		got, ok := ParseSort(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := ParseSort("sideways")
	assert.False(t, ok)
}

func TestQueryPassesNormalizedCategory(t *testing.T) {
	fetcher := &stubFetcher{items: sample()}
	query := NewQuery(fetcher)

	_, err := query.Run(context.Background(), "ALL_PRODUCTS", SortNone)
	require.NoError(t, err)
	assert.Equal(t, "", fetcher.category)

	_, err = query.Run(context.Background(), "vegetables", SortNone)
	require.NoError(t, err)
	assert.Equal(t, "VEGETABLES", fetcher.category)
}

// Un échec réseau rend la liste précédente avec l'erreur : l'UI garde son
// affichage et montre le bandeau, pas de retry automatique
func TestQueryKeepsPreviousListOnFailure(t *testing.T) {
	fetcher := &stubFetcher{items: sample()}
	query := NewQuery(fetcher)

	first, err := query.Run(context.Background(), "", SortNone)
	require.NoError(t, err)
	require.Len(t, first, 4)

	fetcher.err = errors.New("backend injoignable")
	stale, err := query.Run(context.Background(), "", SortNone)
	require.Error(t, err)
	assert.Equal(t, names(first), names(stale), "liste précédente conservée")
	assert.Equal(t, 2, fetcher.calls, "un seul essai par requête")
}

func TestQueryFailureBeforeAnySuccessYieldsEmptyList(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("boom")}
	query := NewQuery(fetcher)

	stale, err := query.Run(context.Background(), "", SortAsc)
	require.Error(t, err)
	assert.Empty(t, stale)
}
