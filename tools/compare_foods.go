package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/rs/zerolog"

	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/nutrition"
)

// minComparisonFoods is the lower bound on a meaningful comparison
const minComparisonFoods = 2

// CompareFoodsParams are the caller-supplied comparison arguments
type CompareFoodsParams struct {
	FDCIDs []int `json:"fdc_ids"`
}

// CompareFoods fetches each food and pivots their key nutrients
// into a side-by-side table
type CompareFoods struct {
	client fdc.Provider
	logger zerolog.Logger
}

// NewCompareFoods creates the comparison tool
func NewCompareFoods(client fdc.Provider, logger zerolog.Logger) *CompareFoods {
	return &CompareFoods{client: client, logger: logger}
}

func (t *CompareFoods) Name() string { return "compare_foods" }

func (t *CompareFoods) Description() string {
	return "Compare nutritional information between multiple foods"
}

func (t *CompareFoods) InputSchema() *jsonschema.Schema {
	one := 1.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"fdc_ids": {
				Type:        "array",
				Description: "USDA FoodData Central IDs to compare (2 to 5)",
				Items: &jsonschema.Schema{
					Type:    "integer",
					Minimum: &one,
				},
			},
		},
		Required: []string{"fdc_ids"},
	}
}

// Run validates the id list before any upstream call, then fetches
// each food in input order. A food that fails to fetch is logged and
// skipped rather than aborting the comparison; zero fetchable foods
// is an EmptyResultError
func (t *CompareFoods) Run(ctx context.Context, input json.RawMessage) (interface{}, string, error) {
	params := CompareFoodsParams{}
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, "", fdc.NewInvalidInputError("could not parse compare_foods parameters")
	}

	if len(params.FDCIDs) < minComparisonFoods {
		return nil, "", fdc.NewInvalidInputError(
			fmt.Sprintf("at least %d foods are needed for a comparison", minComparisonFoods))
	}
	if len(params.FDCIDs) > nutrition.MaxComparisonFoods {
		return nil, "", fdc.NewInvalidInputError(
			fmt.Sprintf("maximum %d foods can be compared (got %d)",
				nutrition.MaxComparisonFoods, len(params.FDCIDs)))
	}

	foods := make([]fdc.Food, 0, len(params.FDCIDs))
	for _, fdcID := range params.FDCIDs {
		food, err := t.client.GetFood(ctx, fdcID, fdc.FormatAbridged)
		if err != nil {
			t.logger.Warn().
				Err(err).
				Int("fdc_id", fdcID).
				Msg("failed to fetch food for comparison; skipping")
			continue
		}
		foods = append(foods, *food)
	}

	comparison, err := nutrition.Compare(foods)
	if err != nil {
		return nil, "", err
	}

	t.logger.Info().
		Int("requested", len(params.FDCIDs)).
		Int("compared", len(foods)).
		Msg("food comparison completed")

	return comparison, fmt.Sprintf("Successfully compared %d foods", len(foods)), nil
}
