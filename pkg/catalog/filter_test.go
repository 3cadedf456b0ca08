package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floraform.ca/storefront/pkg/models"
)

var testCatalog = []models.Product{
	{ID: 1, Name: "Monstera Deliciosa", Description: "Swiss cheese plant", Category: "Indoor Plants"},
	{ID: 2, Name: "Lavender", Description: "Fragrant Mediterranean herb", Category: "Outdoor Plants"},
	{ID: 3, Name: "Jade Plant", Description: "Succulent said to bring good fortune", Category: "Succulents"},
	{ID: 4, Name: "Peace Lily", Description: "Elegant white spathes", Category: "Flowering Plants"},
}

func TestFilterAllCategoryMatchesEverything(t *testing.T) {
	got := Filter(testCatalog, AllCategories, "")
	assert.Len(t, got, len(testCatalog))
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(testCatalog, "Succulents", "")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(testCatalog, AllCategories, "LAVEND")
	require.Len(t, got, 1)
	assert.Equal(t, "Lavender", got[0].Name)
}

func TestFilterSearchMatchesDescription(t *testing.T) {
	got := Filter(testCatalog, AllCategories, "good fortune")
	require.Len(t, got, 1)
	assert.Equal(t, "Jade Plant", got[0].Name)
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	got := Filter(testCatalog, "Indoor Plants", "lily")
	assert.Empty(t, got)

	got = Filter(testCatalog, "Flowering Plants", "lily")
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	got := Filter(testCatalog, AllCategories, "plant")
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].ID, got[i-1].ID)
	}
}

func TestFilterNoMatchesReturnsEmptySlice(t *testing.T) {
	got := Filter(testCatalog, AllCategories, "bonsai")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
