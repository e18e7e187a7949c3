package tools

import (
	"context"
	"fmt"

	"github.com/usda-mcp/nutrition-api/fdc"
)

// mockProvider is a programmable fdc.Provider for tool tests
type mockProvider struct {
	searchResult *fdc.SearchResult
	searchErr    error
	foods        map[int]*fdc.Food
	foodErrs     map[int]error

	searchCalls  int
	getFoodCalls int
	getFoodOrder []int
}

func (m *mockProvider) IsConfigured() bool {
	return true
}

func (m *mockProvider) HealthCheck(ctx context.Context) bool {
	return true
}

func (m *mockProvider) SearchFoods(ctx context.Context, query string, dataTypes []string,
	pageSize int, pageNumber int) (*fdc.SearchResult, error) {

	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchResult, nil
}

func (m *mockProvider) GetFood(ctx context.Context, fdcID int, format string) (*fdc.Food, error) {
	m.getFoodCalls++
	m.getFoodOrder = append(m.getFoodOrder, fdcID)

	if err, ok := m.foodErrs[fdcID]; ok {
		return nil, err
	}
	if food, ok := m.foods[fdcID]; ok {
		return food, nil
	}
	return nil, fmt.Errorf("no mock food for id %d", fdcID)
}

func (m *mockProvider) GetFoods(ctx context.Context, fdcIDs []int, format string) ([]fdc.Food, error) {
	foods := make([]fdc.Food, 0, len(fdcIDs))
	for _, id := range fdcIDs {
		food, err := m.GetFood(ctx, id, format)
		if err != nil {
			return nil, err
		}
		foods = append(foods, *food)
	}
	return foods, nil
}
