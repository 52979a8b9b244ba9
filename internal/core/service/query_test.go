package service_test

import (
	"testing"

	"github.com/craftly/storefront/internal/adapter/catalog"
	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listing fixture: Bowl(10, A), Vase(30, A, featured), Mug(20, B)
func newQueryService(t *testing.T) *service.ProductQueryService {
	t.Helper()

	store, err := catalog.New([]domain.Product{
		testProduct(t, 1, "Bowl", "A", "10", false),
		testProduct(t, 2, "Vase", "A", "30", true),
		testProduct(t, 3, "Mug", "B", "20", false),
	})
	require.NoError(t, err)
	return service.NewProductQuery(store)
}

func titles(ps []domain.Product) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestQuerySourceSelection(t *testing.T) {
	q := newQueryService(t)

	t.Run("DefaultIsFullCatalog", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Category", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{Category: "A"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bowl", "Vase"}, titles(got))
	})

	t.Run("Search", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{SearchText: "vase"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Vase"}, titles(got))
	})

	t.Run("SearchWinsOverCategory", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{
			SearchText: "mug",
			Category:   "A",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Mug"}, titles(got))
	})
}

func TestQueryPriceFilter(t *testing.T) {
	q := newQueryService(t)

	t.Run("InclusiveBounds", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{
			PriceMin: decimal.NewFromInt(10),
			PriceMax: decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bowl", "Mug"}, titles(got))
	})

	t.Run("ExactPricePoint", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{
			PriceMin: decimal.NewFromInt(20),
			PriceMax: decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Mug"}, titles(got))
	})

	t.Run("ZeroRangeMeansUnfiltered", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("CategoryThenPrice", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{
			Category: "A",
			PriceMin: decimal.Zero,
			PriceMax: decimal.NewFromInt(100),
			Sort:     domain.SortPriceAsc,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bowl", "Vase"}, titles(got))
	})
}

func TestQuerySort(t *testing.T) {
	q := newQueryService(t)

	t.Run("PriceAsc", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{Sort: domain.SortPriceAsc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bowl", "Mug", "Vase"}, titles(got))
	})

	t.Run("PriceDesc", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{Sort: domain.SortPriceDesc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Vase", "Mug", "Bowl"}, titles(got))
	})

	t.Run("NameAsc", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{Sort: domain.SortNameAsc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bowl", "Mug", "Vase"}, titles(got))
	})

	t.Run("FeaturedFirstStable", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{Sort: domain.SortFeatured})
		require.NoError(t, err)
		assert.Equal(t, []string{"Vase", "Bowl", "Mug"}, titles(got))
	})

	t.Run("UnknownKeySortsAsFeatured", func(t *testing.T) {
		got, err := q.Query(t.Context(), domain.QueryCriteria{Sort: "newest"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Vase", "Bowl", "Mug"}, titles(got))
	})

	t.Run("StableOnPriceTies", func(t *testing.T) {
		store, err := catalog.New([]domain.Product{
			testProduct(t, 1, "First", "A", "15", false),
			testProduct(t, 2, "Second", "A", "15", false),
			testProduct(t, 3, "Cheap", "A", "5", false),
		})
		require.NoError(t, err)

		got, err := service.NewProductQuery(store).Query(
			t.Context(), domain.QueryCriteria{Sort: domain.SortPriceAsc},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cheap", "First", "Second"}, titles(got))
	})
}

func TestQueryIdempotent(t *testing.T) {
	q := newQueryService(t)
	criteria := domain.QueryCriteria{Category: "A", Sort: domain.SortPriceAsc}

	first, err := q.Query(t.Context(), criteria)
	require.NoError(t, err)
	second, err := q.Query(t.Context(), criteria)
	require.NoError(t, err)

	assert.Equal(t, titles(first), titles(second))
}
