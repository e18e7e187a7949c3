package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/nutrition"
)

func amount(v float64) *float64 {
	return &v
}

func mockFood(fdcID int, description string, nutrients ...fdc.FoodNutrient) *fdc.Food {
	return &fdc.Food{
		FDCID:         fdcID,
		Description:   description,
		DataType:      "Foundation",
		FoodNutrients: nutrients,
	}
}

func runTool(t *testing.T, tool Tool, input interface{}) (interface{}, string, error) {
	t.Helper()
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	return tool.Run(context.Background(), json.RawMessage(raw))
}

func TestCompareFoods_TooManyIDs(t *testing.T) {
	provider := &mockProvider{}
	tool := NewCompareFoods(provider, zerolog.Nop())

	_, _, err := runTool(t, tool, CompareFoodsParams{FDCIDs: []int{1, 2, 3, 4, 5, 6}})

	require.Error(t, err)
	assert.IsType(t, &fdc.InvalidInputError{}, err)
	assert.Zero(t, provider.getFoodCalls, "no upstream call should be made")
}

func TestCompareFoods_TooFewIDs(t *testing.T) {
	provider := &mockProvider{}
	tool := NewCompareFoods(provider, zerolog.Nop())

	_, _, err := runTool(t, tool, CompareFoodsParams{FDCIDs: []int{1}})

	require.Error(t, err)
	assert.IsType(t, &fdc.InvalidInputError{}, err)
	assert.Zero(t, provider.getFoodCalls)
}

func TestCompareFoods_PartialFailureIsSkipped(t *testing.T) {
	provider := &mockProvider{
		foods: map[int]*fdc.Food{
			1: mockFood(1, "A desc", fdc.FoodNutrient{
				Nutrient: fdc.Nutrient{ID: 1089, Name: "Iron, Fe", UnitName: "mg"},
				Amount:   amount(2.1),
			}),
			3: mockFood(3, "C desc"),
		},
		foodErrs: map[int]error{
			2: fdc.NewUpstreamError("/food/2", 500, nil),
		},
	}
	tool := NewCompareFoods(provider, zerolog.Nop())

	data, message, err := runTool(t, tool, CompareFoodsParams{FDCIDs: []int{1, 2, 3}})

	require.NoError(t, err)
	comparison, ok := data.(*nutrition.Comparison)
	require.True(t, ok, "expected *nutrition.Comparison, got %T", data)
	assert.Equal(t, 2, comparison.Summary.TotalFoodsCompared)
	assert.Equal(t, []int{1, 2, 3}, provider.getFoodOrder, "fetches follow input order")
	assert.Equal(t, "Successfully compared 2 foods", message)

	ironRow := comparison.NutrientComparison["Iron"]
	require.Len(t, ironRow, 1)
	assert.Equal(t, "A desc", ironRow[0].Food)
}

func TestCompareFoods_AllFetchesFail(t *testing.T) {
	provider := &mockProvider{
		foodErrs: map[int]error{
			1: fdc.NewUpstreamError("/food/1", 500, nil),
			2: fdc.NewUpstreamError("/food/2", 500, nil),
		},
	}
	tool := NewCompareFoods(provider, zerolog.Nop())

	_, _, err := runTool(t, tool, CompareFoodsParams{FDCIDs: []int{1, 2}})

	require.Error(t, err)
	assert.IsType(t, &fdc.EmptyResultError{}, err)
}
