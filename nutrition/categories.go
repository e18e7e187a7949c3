package nutrition

// DataTypeInfo describes one FoodData Central data type for callers
// deciding which results to trust for their use case
type DataTypeInfo struct {
	Description string `json:"description"`
	Example     string `json:"example"`
	BestFor     string `json:"best_for"`
}

// CategoryInfo is static guidance about how the upstream database
// is organized
type CategoryInfo struct {
	DataTypes        map[string]DataTypeInfo `json:"data_types"`
	SearchTips       []string                `json:"search_tips"`
	CommonCategories []string                `json:"common_categories"`
}

// Categories returns the FoodData Central organization guide:
// data types, search tips, and common category names.
// Purely static, no upstream call
func Categories() CategoryInfo {
	return CategoryInfo{
		DataTypes: map[string]DataTypeInfo{
			"Foundation": {
				Description: "Generic food items with detailed nutrient profiles",
				Example:     "Chicken breast, raw",
				BestFor:     "Getting nutrition data for basic, unbranded foods",
			},
			"Branded": {
				Description: "Commercial food products with UPC codes",
				Example:     "Cheerios Original cereal",
				BestFor:     "Specific brand name products and packaged foods",
			},
			"Survey": {
				Description: "Foods from the Food and Nutrient Database for Dietary Studies",
				Example:     "Pizza, meat topping, regular crust",
				BestFor:     "Foods as typically consumed in surveys",
			},
			"SR Legacy": {
				Description: "Data from the legacy Standard Reference database",
				Example:     "Milk, whole, 3.25% milkfat",
				BestFor:     "Historical data and research comparisons",
			},
		},
		SearchTips: []string{
			"Use simple, descriptive terms for best results",
			"Try both generic names ('chicken') and specific terms ('chicken breast')",
			"Foundation and SR Legacy are good for basic foods",
			"Branded is best for specific commercial products",
		},
		CommonCategories: []string{
			"Dairy and Egg Products",
			"Spices and Herbs",
			"Fats and Oils",
			"Poultry Products",
			"Fruits and Fruit Juices",
			"Vegetables and Vegetable Products",
			"Nut and Seed Products",
			"Beef Products",
			"Beverages",
			"Legumes and Legume Products",
			"Baked Products",
			"Sweets",
			"Cereal Grains and Pasta",
			"Fast Foods",
		},
	}
}
