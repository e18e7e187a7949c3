package nutrition

import "github.com/usda-mcp/nutrition-api/fdc"

// OtherNutrientCap bounds the overflow bucket so responses stay small
const OtherNutrientCap = 10

// Static nutrient-id tables from the FoodData Central taxonomy.
// The three buckets are fixed and non-overlapping; membership is
// decided by id, while entries are keyed by the upstream-reported name
var macronutrientIDs = map[int]string{
	1008: "Energy (kcal)",
	1003: "Protein",
	1004: "Total Fat",
	1005: "Carbohydrate",
	1079: "Fiber",
	2000: "Sugar",
}

var vitaminIDs = map[int]string{
	1106: "Vitamin A",
	1162: "Vitamin C",
	1114: "Vitamin D",
	1109: "Vitamin E",
	1185: "Folate",
}

var mineralIDs = map[int]string{
	1087: "Calcium",
	1089: "Iron",
	1090: "Magnesium",
	1091: "Phosphorus",
	1092: "Potassium",
	1093: "Sodium",
	1095: "Zinc",
}

// NutrientAmount is a single classified nutrient reading
type NutrientAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Classified is the derived bucket view over a food's nutrient list.
// Every nutrient with a reported amount lands in exactly one bucket;
// OtherDropped counts entries truncated past the overflow cap
type Classified struct {
	Macronutrients map[string]NutrientAmount `json:"macronutrients"`
	Vitamins       map[string]NutrientAmount `json:"vitamins"`
	Minerals       map[string]NutrientAmount `json:"minerals"`
	Other          []NutrientAmount          `json:"other_nutrients"`
	OtherDropped   int                       `json:"other_dropped,omitempty"`
}

// Classify maps a flat nutrient list into the three fixed buckets
// plus a bounded overflow bucket, in a single linear pass.
// Records without a reported amount are dropped.
// Buckets are checked in a fixed priority order (macro, vitamin,
// mineral); within a bucket, a recurring name overwrites the
// previous entry
func Classify(nutrients []fdc.FoodNutrient) Classified {
	classified := Classified{
		Macronutrients: map[string]NutrientAmount{},
		Vitamins:       map[string]NutrientAmount{},
		Minerals:       map[string]NutrientAmount{},
		Other:          []NutrientAmount{},
	}

	for _, record := range nutrients {
		if record.Amount == nil {
			continue
		}

		entry := NutrientAmount{
			Name:   record.Nutrient.Name,
			Amount: *record.Amount,
			Unit:   record.Nutrient.UnitName,
		}

		id := record.Nutrient.ID
		if _, ok := macronutrientIDs[id]; ok {
			classified.Macronutrients[entry.Name] = entry
		} else if _, ok := vitaminIDs[id]; ok {
			classified.Vitamins[entry.Name] = entry
		} else if _, ok := mineralIDs[id]; ok {
			classified.Minerals[entry.Name] = entry
		} else if len(classified.Other) < OtherNutrientCap {
			classified.Other = append(classified.Other, entry)
		} else {
			classified.OtherDropped++
		}
	}

	return classified
}
