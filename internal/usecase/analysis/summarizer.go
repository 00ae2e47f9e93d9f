package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// keywordWeights score sentences by topic relevance during extractive summarization
var keywordWeights = []struct {
	weight   float64
	keywords []string
}{
	{3.0, []string{"will", "going to", "need to", "must", "should", "action", "task", "assign", "responsible", "deadline", "due"}},
	{2.5, []string{"decided", "agreed", "approved", "conclusion", "resolved", "final", "confirmed"}},
	{2.0, []string{"budget", "revenue", "cost", "client", "customer", "project", "launch", "strategy", "goal", "target"}},
	{1.5, []string{"system", "platform", "api", "database", "deploy", "feature", "release", "infrastructure"}},
	{1.0, []string{"discuss", "review", "update", "status", "progress", "plan", "schedule", "agenda"}},
}

var emphasisKeywords = []string{"important", "critical", "key", "main", "priority", "focus"}

var fillerWords = []string{"um", "uh", "like", "you know", "basically", "actually"}

var (
	timeReferenceRe = regexp.MustCompile(`(?i)\b(?:today|tomorrow|week|month|quarter|monday|tuesday|wednesday|thursday|friday)\b`)
	numberRe        = regexp.MustCompile(`\d+`)
)

const (
	summarySentenceLimit = 5
	summaryScoreFloor    = 4.0
)

// meetingTypeContext supplies a closing sentence when extraction yields
// too little material for the given meeting type
var meetingTypeContext = map[string]string{
	entities.MeetingTypeExecutive:      "The executive team reviewed strategic priorities and organizational decisions.",
	entities.MeetingTypeSprintPlanning: "The team planned the upcoming sprint and allocated development tasks.",
	entities.MeetingTypeTechnical:      "The team discussed technical design and implementation details.",
	entities.MeetingTypeBudget:         "Budget allocations and financial planning were reviewed.",
	entities.MeetingTypeClient:         "Client requirements and relationship updates were discussed.",
	entities.MeetingTypeGeneral:        "The team covered project updates and coordination topics.",
}

// ExtractiveSummary builds a summary by scoring sentences on keyword
// relevance, position, length and specificity, keeping the top scorers
// in their original order.
func ExtractiveSummary(transcript, meetingType string) string {
	sentences := splitSentences(transcript)
	if len(sentences) == 0 {
		return fallbackContext(meetingType)
	}

	type scored struct {
		index int
		score float64
		text  string
	}

	var candidates []scored
	for i, sentence := range sentences {
		score := scoreSentence(sentence, i, len(sentences))
		if score > summaryScoreFloor {
			candidates = append(candidates, scored{index: i, score: score, text: sentence})
		}
	}

	if len(candidates) == 0 {
		return fallbackContext(meetingType)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > summarySentenceLimit {
		candidates = candidates[:summarySentenceLimit]
	}

	// Restore transcript order for readability
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].index < candidates[j].index
	})

	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, stripSpeaker(c.text))
	}
	summary := strings.Join(parts, ". ") + "."

	if len(strings.Fields(summary)) < 20 {
		summary += " " + fallbackContext(meetingType)
	}
	return summary
}

// scoreSentence rates a single sentence for summary inclusion
func scoreSentence(sentence string, index, total int) float64 {
	var score float64
	lower := strings.ToLower(sentence)

	for _, group := range keywordWeights {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				score += group.weight
			}
		}
	}

	// Position: openings set context, closings carry conclusions
	switch {
	case index == 0:
		score += 3
	case index == total-1:
		score += 2
	case index < total/5:
		score += 2
	case index > total*4/5:
		score += 1
	}

	words := len(strings.Fields(sentence))
	switch {
	case words >= 15 && words <= 35:
		score += 3
	case words >= 10 && words <= 50:
		score += 2
	case words >= 5 && words <= 60:
		score += 1
	}

	if strings.Contains(sentence, "?") {
		score += 2
	}
	for _, kw := range emphasisKeywords {
		if strings.Contains(lower, kw) {
			score += 2
			break
		}
	}
	if timeReferenceRe.MatchString(sentence) {
		score += 2
	}
	if numberRe.MatchString(sentence) {
		score += 2
	}

	for _, filler := range fillerWords {
		score -= 0.5 * float64(strings.Count(lower, filler))
	}

	return score
}

// stripSpeaker removes a leading "Name:" attribution from a sentence
func stripSpeaker(sentence string) string {
	if m := speakerAttributionRe.FindStringIndex(sentence); m != nil {
		return strings.TrimSpace(sentence[m[1]:])
	}
	return sentence
}

func fallbackContext(meetingType string) string {
	if ctx, ok := meetingTypeContext[meetingType]; ok {
		return ctx
	}
	return meetingTypeContext[entities.MeetingTypeGeneral]
}

// SummaryLengthBounds returns the target token bounds for remote
// summarization based on transcript size
func SummaryLengthBounds(transcript string) (maxLength, minLength int) {
	words := len(strings.Fields(transcript))
	switch {
	case words >= 300:
		return 150, 50
	case words >= 100:
		return 130, 40
	default:
		return 100, 30
	}
}
