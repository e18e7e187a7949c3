package fdc

import (
	"encoding/json"
	"strings"
)

// Nutrient is the nested nutrient taxonomy record
// attached to each reported amount
type Nutrient struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}

// FoodNutrient is a single reported nutrient amount on a food.
// Amount is a pointer because the upstream omits it for some records
type FoodNutrient struct {
	Nutrient Nutrient `json:"nutrient"`
	Amount   *float64 `json:"amount"`
}

// FoodCategory tolerates both shapes the upstream uses for the
// food category field: a plain string (abridged format) and an
// object with a description (full format)
type FoodCategory string

// UnmarshalJSON decodes either shape, defaulting to empty
// rather than failing on anything unexpected
func (c *FoodCategory) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*c = FoodCategory(strings.TrimSpace(asString))
		return nil
	}

	var asObject struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &asObject); err == nil {
		*c = FoodCategory(strings.TrimSpace(asObject.Description))
		return nil
	}

	*c = ""
	return nil
}

// Food is the raw food payload from the upstream API.
// The schema is not contractually guaranteed, so optional fields
// are pointers or default to zero values and unknown fields are ignored
type Food struct {
	FDCID           int            `json:"fdcId"`
	Description     string         `json:"description"`
	DataType        string         `json:"dataType"`
	FoodCategory    FoodCategory   `json:"foodCategory"`
	BrandOwner      string         `json:"brandOwner"`
	Ingredients     string         `json:"ingredients"`
	ServingSize     *float64       `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []FoodNutrient `json:"foodNutrients"`
}

// SearchResult is the raw search payload from the upstream API
type SearchResult struct {
	TotalHits   int    `json:"totalHits"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	Foods       []Food `json:"foods"`
}

// searchRequest is the JSON body for the food search endpoint
type searchRequest struct {
	Query      string   `json:"query"`
	PageSize   int      `json:"pageSize"`
	PageNumber int      `json:"pageNumber"`
	DataType   []string `json:"dataType,omitempty"`
}

// foodsRequest is the JSON body for the batch food fetch endpoint
type foodsRequest struct {
	FDCIDs []int  `json:"fdcIds"`
	Format string `json:"format"`
}
