package analysis

import (
	"regexp"
	"strings"
)

var decisionKeywords = []string{
	"decided", "agreed", "concluded", "resolved",
	"approved", "rejected", "confirmed", "finalized",
}

var engagementKeywords = []string{
	"discuss", "review", "analyze", "evaluate",
	"consider", "explore", "brainstorm", "collaborate",
}

var specificityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+`),
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b`),
	regexp.MustCompile(`(?i)\b(?:mon|tues|wednes|thurs|fri|satur|sun)day\b`),
}

// CalculateHealthScore rates meeting productivity on a 1-10 scale from a
// weighted sum of transcript signals: concrete outcomes, participation,
// content density, engagement, questions and specificity.
func CalculateHealthScore(transcript string, actionItemCount, participantCount, durationMinutes int) float64 {
	score := 5.0

	// Concrete outcomes
	if actionItemCount > 0 {
		score += capped(float64(actionItemCount)*0.7, 3.0)
	}

	decisions := countKeywords(transcript, decisionKeywords)
	if decisions > 0 {
		score += capped(float64(decisions)*0.5, 2.5)
	}

	// Participation breadth
	if participantCount > 2 {
		score += capped(float64(participantCount-2)*0.4, 1.5)
	}

	// Content density in words per minute
	if durationMinutes > 0 {
		words := len(strings.Fields(transcript))
		density := float64(words) / float64(durationMinutes)
		if density > 25 {
			score += capped(density/12, 2.0)
		} else if density < 15 {
			score -= 0.8
		}
	}

	// Engagement signals
	engagement := countKeywords(transcript, engagementKeywords)
	if engagement > 0 {
		score += capped(float64(engagement)*0.3, 1.5)
	}

	questions := strings.Count(transcript, "?")
	if questions > 0 {
		score += capped(float64(questions)*0.2, 1.0)
	}

	// Specificity: numbers, dates, weekdays
	specificity := 0
	for _, pattern := range specificityPatterns {
		specificity += len(pattern.FindAllString(transcript, -1))
	}
	if specificity > 0 {
		score += capped(float64(specificity)*0.1, 1.0)
	}

	if score > 10.0 {
		score = 10.0
	}
	if score < 1.0 {
		score = 1.0
	}
	return score
}

func capped(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	return value
}
