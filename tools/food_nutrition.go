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

// FoodNutritionParams are the caller-supplied detail arguments
type FoodNutritionParams struct {
	FDCID  int    `json:"fdc_id"`
	Format string `json:"format"`
}

// FoodInfo is the identity/serving section of a nutrition summary
type FoodInfo struct {
	FDCID           int      `json:"fdc_id"`
	Description     string   `json:"description"`
	DataType        string   `json:"data_type"`
	FoodCategory    string   `json:"food_category,omitempty"`
	BrandOwner      string   `json:"brand_owner,omitempty"`
	ServingSize     *float64 `json:"serving_size,omitempty"`
	ServingSizeUnit string   `json:"serving_size_unit,omitempty"`
}

// NutritionSummary is the full payload for a single food:
// identity fields plus the classified nutrient buckets
type NutritionSummary struct {
	FoodInfo  FoodInfo             `json:"food_info"`
	Nutrition nutrition.Classified `json:"nutrition"`
}

// FoodNutrition fetches one food and classifies its nutrients
type FoodNutrition struct {
	client fdc.Provider
	logger zerolog.Logger
}

// NewFoodNutrition creates the nutrition detail tool
func NewFoodNutrition(client fdc.Provider, logger zerolog.Logger) *FoodNutrition {
	return &FoodNutrition{client: client, logger: logger}
}

func (t *FoodNutrition) Name() string { return "get_food_nutrition" }

func (t *FoodNutrition) Description() string {
	return "Get detailed nutrition information for a specific food"
}

func (t *FoodNutrition) InputSchema() *jsonschema.Schema {
	one := 1.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"fdc_id": {
				Type:        "integer",
				Description: "USDA FoodData Central ID",
				Minimum:     &one,
			},
			"format": {
				Type:        "string",
				Description: "Response format: 'abridged' or 'full'",
			},
		},
		Required: []string{"fdc_id"},
	}
}

func (t *FoodNutrition) Run(ctx context.Context, input json.RawMessage) (interface{}, string, error) {
	params := FoodNutritionParams{}
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, "", fdc.NewInvalidInputError("could not parse get_food_nutrition parameters")
	}

	if params.FDCID <= 0 {
		return nil, "", fdc.NewInvalidInputError("fdc_id must be a positive integer")
	}
	if params.Format == "" {
		params.Format = fdc.FormatAbridged
	}
	if params.Format != fdc.FormatAbridged && params.Format != fdc.FormatFull {
		return nil, "", fdc.NewInvalidInputError("format must be 'abridged' or 'full'")
	}

	food, err := t.client.GetFood(ctx, params.FDCID, params.Format)
	if err != nil {
		return nil, "", err
	}

	summary := NutritionSummary{
		FoodInfo: FoodInfo{
			FDCID:           food.FDCID,
			Description:     food.Description,
			DataType:        food.DataType,
			FoodCategory:    string(food.FoodCategory),
			BrandOwner:      food.BrandOwner,
			ServingSize:     food.ServingSize,
			ServingSizeUnit: food.ServingSizeUnit,
		},
		Nutrition: nutrition.Classify(food.FoodNutrients),
	}

	t.logger.Info().
		Int("fdc_id", params.FDCID).
		Str("format", params.Format).
		Msg("food nutrition retrieved")

	return summary, fmt.Sprintf("Retrieved nutrition data for %s", food.Description), nil
}
