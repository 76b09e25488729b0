package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFiltersNormalization(t *testing.T) {
	min := "10"
	max := "99.99"

	filters, err := ListProductsRequest{
		Category: "Woodworking",
		MinPrice: &min,
		MaxPrice: &max,
		SortBy:   SortByPrice,
		Order:    OrderAsc,
	}.ToFilters()
	require.NoError(t, err)

	assert.Equal(t, "Woodworking", filters.Category)
	assert.True(t, filters.MinPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, filters.MaxPrice.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, SortByPrice, filters.SortBy)
	assert.Equal(t, OrderAsc, filters.Order)
}

func TestToFiltersCategoryAll(t *testing.T) {
	filters, err := ListProductsRequest{Category: "all"}.ToFilters()
	require.NoError(t, err)
	assert.Empty(t, filters.Category)
}

func TestToFiltersDefaultsUnknownSort(t *testing.T) {
	filters, err := ListProductsRequest{
		SortBy: "price; DROP TABLE products;--",
		Order:  "random",
	}.ToFilters()
	require.NoError(t, err)
	assert.Equal(t, SortByCreatedAt, filters.SortBy)
	assert.Equal(t, OrderDesc, filters.Order)
}

func TestToFiltersRejectsBadPrices(t *testing.T) {
	bad := "abc"
	_, err := ListProductsRequest{MinPrice: &bad}.ToFilters()
	assert.Error(t, err)

	_, err = ListProductsRequest{MaxPrice: &bad}.ToFilters()
	assert.Error(t, err)
}

func TestCreateProductRequestCategoryValidation(t *testing.T) {
	req := CreateProductRequest{
		Name:        "Mug",
		Description: "A mug.",
		Price:       10,
		Category:    "Electronics",
	}
	assert.Error(t, req.Validate())

	req.Category = "Pottery & Ceramics"
	assert.NoError(t, req.Validate())
}
