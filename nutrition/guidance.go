package nutrition

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxKeywordDistance is the edit-distance tolerance for keyword hits
const maxKeywordDistance = 2

// Guidance is the answer shape for free-text nutrition questions:
// food searches worth running plus general tips
type Guidance struct {
	Question          string   `json:"question"`
	SuggestedSearches []string `json:"suggested_searches"`
	Tips              []string `json:"tips"`
}

// guidanceTopic pairs trigger keywords with canned suggestions
type guidanceTopic struct {
	keywords []string
	searches []string
	tips     []string
}

var guidanceTopics = []guidanceTopic{
	{
		keywords: []string{"protein", "muscle", "athlete"},
		searches: []string{"chicken breast", "salmon", "greek yogurt", "lentils"},
		tips: []string{
			"Aim for 1.6-2.2g protein per kg body weight if training regularly",
			"Spread protein intake across meals for better absorption",
		},
	},
	{
		keywords: []string{"vitamin", "immune", "deficiency"},
		searches: []string{"orange", "bell pepper", "spinach", "almonds"},
		tips: []string{
			"Vitamin C rich foods support iron absorption when eaten together",
			"Fat-soluble vitamins (A, D, E) absorb better with a meal containing fat",
		},
	},
	{
		keywords: []string{"iron", "calcium", "mineral", "anemia", "bone"},
		searches: []string{"beef liver", "tofu", "milk", "sardines", "kale"},
		tips: []string{
			"Pair plant iron sources with vitamin C to improve uptake",
			"Calcium and iron compete for absorption; space them out",
		},
	},
	{
		keywords: []string{"weight", "calorie", "diet", "deficit"},
		searches: []string{"broccoli", "oatmeal", "cottage cheese", "apple"},
		tips: []string{
			"High-fiber, high-water foods help satiety at lower calories",
			"Compare energy (kcal) per 100g when choosing between similar foods",
		},
	},
	{
		keywords: []string{"fiber", "digestion", "gut"},
		searches: []string{"black beans", "raspberries", "whole wheat bread", "chia seeds"},
		tips: []string{
			"Increase fiber gradually and drink plenty of water",
			"Both soluble and insoluble fiber matter; vary your sources",
		},
	},
}

var generalTips = []string{
	"Search foods by simple descriptive terms, then compare the top results",
	"Foundation and SR Legacy data types are best for basic unbranded foods",
}

var generalSearches = []string{"chicken breast", "brown rice", "avocado", "broccoli"}

// AnswerQuestion matches a free-text nutrition question against the
// guidance topics and collects suggested searches and tips.
// Matching is fuzzy per word so plurals and inflections still hit.
// Falls back to general guidance when nothing matches
func AnswerQuestion(question string) Guidance {
	guidance := Guidance{
		Question:          question,
		SuggestedSearches: []string{},
		Tips:              []string{},
	}

	seenSearches := map[string]struct{}{}
	seenTips := map[string]struct{}{}
	words := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, topic := range guidanceTopics {
		if !matchesAny(topic.keywords, words) {
			continue
		}

		for _, search := range topic.searches {
			if _, ok := seenSearches[search]; !ok {
				seenSearches[search] = struct{}{}
				guidance.SuggestedSearches = append(guidance.SuggestedSearches, search)
			}
		}
		for _, tip := range topic.tips {
			if _, ok := seenTips[tip]; !ok {
				seenTips[tip] = struct{}{}
				guidance.Tips = append(guidance.Tips, tip)
			}
		}
	}

	if len(guidance.SuggestedSearches) == 0 {
		guidance.SuggestedSearches = append(guidance.SuggestedSearches, generalSearches...)
		guidance.Tips = append(guidance.Tips, generalTips...)
	}

	return guidance
}

// matchesAny reports whether any question word is a close fuzzy match
// for any of the topic keywords
func matchesAny(keywords []string, words []string) bool {
	for _, keyword := range keywords {
		for _, word := range words {
			rank := fuzzy.RankMatchNormalizedFold(keyword, word)
			if rank >= 0 && rank <= maxKeywordDistance {
				return true
			}
		}
	}

	return false
}
