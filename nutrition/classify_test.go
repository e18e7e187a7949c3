package nutrition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usda-mcp/nutrition-api/fdc"
)

func amount(v float64) *float64 {
	return &v
}

func record(id int, name string, amt *float64, unit string) fdc.FoodNutrient {
	return fdc.FoodNutrient{
		Nutrient: fdc.Nutrient{ID: id, Name: name, UnitName: unit},
		Amount:   amt,
	}
}

func TestClassify_Buckets(t *testing.T) {
	classified := Classify([]fdc.FoodNutrient{
		record(1003, "Protein", amount(31), "g"),
		record(9999, "Mystery", amount(5), "mg"),
	})

	require.Len(t, classified.Macronutrients, 1)
	assert.Equal(t, NutrientAmount{Name: "Protein", Amount: 31, Unit: "g"},
		classified.Macronutrients["Protein"])
	assert.Empty(t, classified.Vitamins)
	assert.Empty(t, classified.Minerals)
	require.Len(t, classified.Other, 1)
	assert.Equal(t, NutrientAmount{Name: "Mystery", Amount: 5, Unit: "mg"},
		classified.Other[0])
	assert.Zero(t, classified.OtherDropped)
}

func TestClassify_EveryTableBucketed(t *testing.T) {
	input := []fdc.FoodNutrient{
		record(1008, "Energy", amount(52), "kcal"),
		record(1162, "Vitamin C, total ascorbic acid", amount(4.6), "mg"),
		record(1089, "Iron, Fe", amount(0.12), "mg"),
	}

	classified := Classify(input)

	assert.Contains(t, classified.Macronutrients, "Energy")
	assert.Contains(t, classified.Vitamins, "Vitamin C, total ascorbic acid")
	assert.Contains(t, classified.Minerals, "Iron, Fe")
	assert.Empty(t, classified.Other)

	// No nutrient appears in more than one bucket
	total := len(classified.Macronutrients) + len(classified.Vitamins) +
		len(classified.Minerals) + len(classified.Other)
	assert.Equal(t, len(input), total)
}

func TestClassify_NilAmountsDropped(t *testing.T) {
	classified := Classify([]fdc.FoodNutrient{
		record(1003, "Protein", nil, "g"),
		record(9999, "Mystery", nil, "mg"),
	})

	assert.Empty(t, classified.Macronutrients)
	assert.Empty(t, classified.Other)
	assert.Zero(t, classified.OtherDropped)
}

func TestClassify_OtherCapped(t *testing.T) {
	input := []fdc.FoodNutrient{}
	for i := 0; i < 25; i++ {
		input = append(input, record(5000+i, fmt.Sprintf("Unknown %d", i), amount(1), "mg"))
	}

	classified := Classify(input)

	assert.Len(t, classified.Other, OtherNutrientCap)
	assert.Equal(t, 15, classified.OtherDropped)
	// The first 10 in input order survive
	assert.Equal(t, "Unknown 0", classified.Other[0].Name)
	assert.Equal(t, "Unknown 9", classified.Other[9].Name)
}

func TestClassify_DuplicateNameLastWriteWins(t *testing.T) {
	classified := Classify([]fdc.FoodNutrient{
		record(1003, "Protein", amount(10), "g"),
		record(1003, "Protein", amount(20), "g"),
	})

	require.Len(t, classified.Macronutrients, 1)
	assert.Equal(t, 20.0, classified.Macronutrients["Protein"].Amount)
}
