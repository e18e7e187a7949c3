package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/rs/zerolog"

	"github.com/usda-mcp/nutrition-api/fdc"
)

// searchResultLimit caps how many reshaped foods a search returns,
// keeping tool responses small for agent consumption
const searchResultLimit = 10

// SearchFoodsParams are the caller-supplied search arguments
type SearchFoodsParams struct {
	Query      string   `json:"query"`
	DataType   []string `json:"data_type"`
	PageSize   int      `json:"page_size"`
	PageNumber int      `json:"page_number"`
}

// SearchFoodResult is one reshaped food in the search response
type SearchFoodResult struct {
	FDCID        int    `json:"fdc_id"`
	Description  string `json:"description"`
	DataType     string `json:"data_type"`
	FoodCategory string `json:"food_category,omitempty"`
	BrandOwner   string `json:"brand_owner,omitempty"`
	Ingredients  string `json:"ingredients,omitempty"`
}

// SearchFoodsResult is the full search response payload
type SearchFoodsResult struct {
	TotalResults int                `json:"total_results"`
	CurrentPage  int                `json:"current_page"`
	Foods        []SearchFoodResult `json:"foods"`
}

// SearchFoods searches the upstream database and reshapes the hits
type SearchFoods struct {
	client fdc.Provider
	logger zerolog.Logger
}

// NewSearchFoods creates the search tool
func NewSearchFoods(client fdc.Provider, logger zerolog.Logger) *SearchFoods {
	return &SearchFoods{client: client, logger: logger}
}

func (t *SearchFoods) Name() string { return "search_foods" }

func (t *SearchFoods) Description() string {
	return "Search for foods in the USDA database by keywords"
}

func (t *SearchFoods) InputSchema() *jsonschema.Schema {
	one := 1.0
	maxPage := float64(fdc.MaxPageSize)
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Search term, e.g. 'apple' or 'chicken breast'",
			},
			"data_type": {
				Type:        "array",
				Description: "Filter by data types, e.g. ['Foundation', 'SR Legacy']",
				Items:       &jsonschema.Schema{Type: "string"},
			},
			"page_size": {
				Type:        "integer",
				Description: "Number of results per page (max 200)",
				Minimum:     &one,
				Maximum:     &maxPage,
			},
			"page_number": {
				Type:        "integer",
				Description: "Page number to retrieve",
				Minimum:     &one,
			},
		},
		Required: []string{"query"},
	}
}

func (t *SearchFoods) Run(ctx context.Context, input json.RawMessage) (interface{}, string, error) {
	params := SearchFoodsParams{}
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, "", fdc.NewInvalidInputError("could not parse search_foods parameters")
	}

	if strings.TrimSpace(params.Query) == "" {
		return nil, "", fdc.NewInvalidInputError("query must not be empty")
	}
	if params.PageSize == 0 {
		params.PageSize = 25
	}
	if params.PageNumber == 0 {
		params.PageNumber = 1
	}

	result, err := t.client.SearchFoods(ctx, params.Query, params.DataType,
		params.PageSize, params.PageNumber)
	if err != nil {
		return nil, "", err
	}

	foods := make([]SearchFoodResult, 0, searchResultLimit)
	for _, food := range result.Foods {
		if len(foods) >= searchResultLimit {
			break
		}
		foods = append(foods, SearchFoodResult{
			FDCID:        food.FDCID,
			Description:  food.Description,
			DataType:     food.DataType,
			FoodCategory: string(food.FoodCategory),
			BrandOwner:   food.BrandOwner,
			Ingredients:  food.Ingredients,
		})
	}

	data := SearchFoodsResult{
		TotalResults: result.TotalHits,
		CurrentPage:  result.CurrentPage,
		Foods:        foods,
	}

	t.logger.Info().
		Str("query", params.Query).
		Int("foods_found", len(foods)).
		Msg("food search completed")

	message := fmt.Sprintf("Found %d foods matching '%s'", len(foods), params.Query)
	if len(foods) == 0 {
		message = fmt.Sprintf("No foods found matching '%s'", params.Query)
	}

	return data, message, nil
}
