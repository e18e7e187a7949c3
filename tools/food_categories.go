package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"github.com/usda-mcp/nutrition-api/nutrition"
)

// FoodCategories returns static guidance about the upstream
// database's data types and categories
type FoodCategories struct{}

// NewFoodCategories creates the categories tool
func NewFoodCategories() *FoodCategories {
	return &FoodCategories{}
}

func (t *FoodCategories) Name() string { return "get_food_categories" }

func (t *FoodCategories) Description() string {
	return "Get information about USDA food categories and data types"
}

func (t *FoodCategories) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
}

func (t *FoodCategories) Run(ctx context.Context, input json.RawMessage) (interface{}, string, error) {
	return nutrition.Categories(), "USDA FoodData Central organization and search guidance", nil
}
