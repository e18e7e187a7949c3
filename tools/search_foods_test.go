package tools

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usda-mcp/nutrition-api/fdc"
)

func TestSearchFoods_EmptyQuery(t *testing.T) {
	provider := &mockProvider{}
	tool := NewSearchFoods(provider, zerolog.Nop())

	_, _, err := runTool(t, tool, SearchFoodsParams{Query: "   "})

	require.Error(t, err)
	assert.IsType(t, &fdc.InvalidInputError{}, err)
	assert.Zero(t, provider.searchCalls, "no upstream call should be made")
}

func TestSearchFoods_ReshapesAndLimitsResults(t *testing.T) {
	foods := make([]fdc.Food, 0, 15)
	for i := 0; i < 15; i++ {
		foods = append(foods, fdc.Food{
			FDCID:        1000 + i,
			Description:  fmt.Sprintf("Apple variety %d", i),
			DataType:     "Branded",
			FoodCategory: "Fruits and Fruit Juices",
			BrandOwner:   "Orchard Co",
		})
	}
	provider := &mockProvider{
		searchResult: &fdc.SearchResult{
			TotalHits:   1500,
			CurrentPage: 1,
			Foods:       foods,
		},
	}
	tool := NewSearchFoods(provider, zerolog.Nop())

	data, message, err := runTool(t, tool, SearchFoodsParams{Query: "apple"})

	require.NoError(t, err)
	result, ok := data.(SearchFoodsResult)
	require.True(t, ok, "expected SearchFoodsResult, got %T", data)
	assert.Len(t, result.Foods, searchResultLimit)
	assert.Equal(t, 1500, result.TotalResults)
	assert.Equal(t, 1004, result.Foods[4].FDCID)
	assert.Equal(t, "Fruits and Fruit Juices", result.Foods[0].FoodCategory)
	assert.Equal(t, "Found 10 foods matching 'apple'", message)
}

func TestSearchFoods_NoResults(t *testing.T) {
	provider := &mockProvider{
		searchResult: &fdc.SearchResult{},
	}
	tool := NewSearchFoods(provider, zerolog.Nop())

	data, message, err := runTool(t, tool, SearchFoodsParams{Query: "xyzzy"})

	require.NoError(t, err)
	result := data.(SearchFoodsResult)
	assert.Empty(t, result.Foods)
	assert.Equal(t, "No foods found matching 'xyzzy'", message)
}

func TestSearchFoods_UpstreamErrorPropagates(t *testing.T) {
	provider := &mockProvider{
		searchErr: fdc.NewUpstreamError("/foods/search", 502, nil),
	}
	tool := NewSearchFoods(provider, zerolog.Nop())

	_, _, err := runTool(t, tool, SearchFoodsParams{Query: "apple"})

	require.Error(t, err)
	assert.IsType(t, &fdc.UpstreamError{}, err)
}
