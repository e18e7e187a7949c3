package nutrition

import (
	"fmt"

	"github.com/usda-mcp/nutrition-api/fdc"
)

// MaxComparisonFoods is the limit on foods in a single comparison
const MaxComparisonFoods = 5

// keyNutrientNames is the fixed allow-list of nutrients that appear
// in comparisons, keyed by FoodData Central nutrient id.
// The display names match the classifier tables
var keyNutrientNames = map[int]string{
	1008: "Energy (kcal)",
	1003: "Protein",
	1004: "Total Fat",
	1005: "Carbohydrate",
	1079: "Fiber",
	1087: "Calcium",
	1089: "Iron",
	1162: "Vitamin C",
}

// Measurement is an amount/unit pair for a single key nutrient
type Measurement struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ComparisonEntry is one food's value in a nutrient comparison row
type ComparisonEntry struct {
	Food   string  `json:"food"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// FoodSummary is the per-food view in a comparison:
// identity fields plus the food's key nutrients
type FoodSummary struct {
	FDCID       int                    `json:"fdc_id"`
	Description string                 `json:"description"`
	DataType    string                 `json:"data_type"`
	Nutrients   map[string]Measurement `json:"nutrients"`
}

// ComparisonSummary carries comparison-wide context for callers
type ComparisonSummary struct {
	TotalFoodsCompared int      `json:"total_foods_compared"`
	ComparisonNotes    []string `json:"comparison_notes"`
}

// Comparison is a side-by-side table of key nutrients across foods.
// Each row contains only the foods that actually report that nutrient,
// in food processing order
type Comparison struct {
	Foods              []FoodSummary                `json:"foods"`
	NutrientComparison map[string][]ComparisonEntry `json:"nutrient_comparison"`
	Summary            ComparisonSummary            `json:"summary"`
}

// Compare pivots the key nutrients of the given foods into a
// nutrient-keyed table for side-by-side comparison.
// The foods are expected to be the successfully-fetched subset;
// more than 5 is an InvalidInputError and zero is an EmptyResultError
func Compare(foods []fdc.Food) (*Comparison, error) {
	if len(foods) > MaxComparisonFoods {
		return nil, fdc.NewInvalidInputError(
			fmt.Sprintf("maximum %d foods can be compared (got %d)", MaxComparisonFoods, len(foods)))
	}
	if len(foods) == 0 {
		return nil, fdc.NewEmptyResultError("compare foods")
	}

	comparison := Comparison{
		Foods:              []FoodSummary{},
		NutrientComparison: map[string][]ComparisonEntry{},
		Summary: ComparisonSummary{
			TotalFoodsCompared: len(foods),
			ComparisonNotes: []string{
				"Values shown are per 100g unless otherwise specified",
				"Use this data to compare foods for your dietary goals",
			},
		},
	}

	for _, food := range foods {
		summary := FoodSummary{
			FDCID:       food.FDCID,
			Description: food.Description,
			DataType:    food.DataType,
			Nutrients:   map[string]Measurement{},
		}

		for _, record := range food.FoodNutrients {
			name, ok := keyNutrientNames[record.Nutrient.ID]
			if !ok {
				continue
			}

			amount := 0.0
			if record.Amount != nil {
				amount = *record.Amount
			}
			unit := record.Nutrient.UnitName

			summary.Nutrients[name] = Measurement{
				Amount: amount,
				Unit:   unit,
			}

			comparison.NutrientComparison[name] = append(comparison.NutrientComparison[name],
				ComparisonEntry{
					Food:   food.Description,
					Amount: amount,
					Unit:   unit,
				})
		}

		comparison.Foods = append(comparison.Foods, summary)
	}

	return &comparison, nil
}
