package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/nutrition"
)

// QuestionHelperParams are the caller-supplied question arguments
type QuestionHelperParams struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// QuestionHelper answers free-text nutrition questions with
// suggested searches and tips. Purely local, no upstream call
type QuestionHelper struct{}

// NewQuestionHelper creates the question helper tool
func NewQuestionHelper() *QuestionHelper {
	return &QuestionHelper{}
}

func (t *QuestionHelper) Name() string { return "nutrition_question_helper" }

func (t *QuestionHelper) Description() string {
	return "Get guidance for nutrition questions and food recommendations"
}

func (t *QuestionHelper) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"question": {
				Type:        "string",
				Description: "Nutrition question",
			},
			"context": {
				Type:        "string",
				Description: "Additional context",
			},
		},
		Required: []string{"question"},
	}
}

func (t *QuestionHelper) Run(ctx context.Context, input json.RawMessage) (interface{}, string, error) {
	params := QuestionHelperParams{}
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, "", fdc.NewInvalidInputError("could not parse nutrition_question_helper parameters")
	}

	if strings.TrimSpace(params.Question) == "" {
		return nil, "", fdc.NewInvalidInputError("question must not be empty")
	}

	guidance := nutrition.AnswerQuestion(params.Question)
	return guidance, "Nutrition guidance generated", nil
}
