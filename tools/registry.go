package tools

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/types"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates the registry of nutrition tools backed by the
// given upstream provider
func NewRegistry(client fdc.Provider, logger zerolog.Logger) *Registry {
	tools := map[string]Tool{}
	for _, tool := range []Tool{
		NewSearchFoods(client, logger),
		NewFoodNutrition(client, logger),
		NewCompareFoods(client, logger),
		NewQuestionHelper(),
		NewFoodCategories(),
	} {
		tools[tool.Name()] = tool
	}

	registry := Registry(tools)
	return &registry
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}

	return tool, nil
}

// Describe returns tool metadata for listings,
// sorted by name for a stable order
func (r Registry) Describe() []types.ToolInfo {
	infos := make([]types.ToolInfo, 0, len(r))
	for _, tool := range r {
		infos = append(infos, types.ToolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}
