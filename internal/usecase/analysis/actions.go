package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

// actionPatterns match common commitment phrasings in meeting speech.
// The capture group holds the task text up to the end of the sentence.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)need(?:s)? to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)should (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)will (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)action item:?\s*(.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)follow up on (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)prepare (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)schedule (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)can you (.+?)(?:\?|\.|$)`),
	regexp.MustCompile(`(?i)please (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)have to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)must (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)going to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)plan to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)responsible for (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)take care of (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)handle (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)work on (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)focus on (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)complete (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)finish (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)deliver (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)implement (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)create (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)develop (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)build (.+?)(?:\.|$)`),
}

// speakerAttributionRe matches the "Name: utterance" transcript convention
var speakerAttributionRe = regexp.MustCompile(`^\s*([A-Za-z]+)\s*:`)

const (
	minTaskLength      = 10
	maxActionItems     = 5
	duplicateThreshold = 0.7
)

var priorityWeights = map[string]int{
	entities.ActionItemPriorityHigh:   3,
	entities.ActionItemPriorityMedium: 2,
	entities.ActionItemPriorityLow:    1,
}

// ExtractActionItems detects action items in a transcript using commitment
// phrase patterns, then resolves assignee, due date and priority per item.
func ExtractActionItems(transcript string, participants []string) []entities.ExtractedActionItem {
	var items []entities.ExtractedActionItem

	for _, sentence := range splitSentences(transcript) {
		for _, pattern := range actionPatterns {
			matches := pattern.FindAllStringSubmatch(sentence, -1)
			for _, m := range matches {
				task := strings.TrimSpace(m[1])
				if len(task) < minTaskLength {
					continue
				}

				item := entities.ExtractedActionItem{
					Task:     task,
					Assignee: resolveAssignee(task, sentence, participants),
					DueDate:  extractDueDate(task, sentence),
					Priority: determinePriority(task, transcript),
				}
				items = append(items, item)
			}
		}
	}

	items = deduplicateItems(items)

	// High priority first
	sort.SliceStable(items, func(i, j int) bool {
		return priorityWeights[items[i].Priority] > priorityWeights[items[j].Priority]
	})

	if len(items) > maxActionItems {
		items = items[:maxActionItems]
	}
	return items
}

// resolveAssignee picks an assignee for a task, preferring a participant named
// in the task itself, then in the surrounding sentence, then the speaker.
func resolveAssignee(task, sentence string, participants []string) string {
	taskLower := strings.ToLower(task)
	for _, p := range participants {
		if p != "" && strings.Contains(taskLower, strings.ToLower(p)) {
			return p
		}
	}

	sentenceLower := strings.ToLower(sentence)
	for _, p := range participants {
		if p != "" && strings.Contains(sentenceLower, strings.ToLower(p)) {
			return p
		}
	}

	// Speaker attribution: "Alice: I'll handle the rollout"
	if m := speakerAttributionRe.FindStringSubmatch(sentence); m != nil {
		speaker := m[1]
		for _, p := range participants {
			if strings.EqualFold(p, speaker) {
				return p
			}
		}
	}

	if len(participants) > 0 && participants[0] != "" {
		return participants[0]
	}
	return "TBD"
}

// dueDatePatterns cover spoken deadline references, most specific first
var dueDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{4}-\d{2}-\d{2})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}/\d{1,2}/\d{4})\b`),
	regexp.MustCompile(`(?i)by ((?:mon|tues|wednes|thurs|fri|satur|sun)day)\b`),
	regexp.MustCompile(`(?i)by (tomorrow|next week|end of week|this week)\b`),
	regexp.MustCompile(`(?i)next ((?:mon|tues|wednes|thurs|fri|satur|sun)day)\b`),
	regexp.MustCompile(`(?i)end of (month|quarter|year)\b`),
	regexp.MustCompile(`(?i)\b((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?)\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}/\d{1,2})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}-\d{1,2})\b`),
	regexp.MustCompile(`(?i)\b(asap|immediately|urgent)\b`),
	regexp.MustCompile(`(?i)\bthe (\d{1,2}(?:st|nd|rd|th))\b`),
}

// extractDueDate finds a deadline mention in the task or its sentence
func extractDueDate(task, sentence string) string {
	for _, text := range []string{task, sentence} {
		for _, pattern := range dueDatePatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				return titleCase(strings.TrimSpace(m[1]))
			}
		}
	}
	return "TBD"
}

var highPriorityKeywords = []string{
	"urgent", "asap", "immediately", "critical", "important", "priority",
	"deadline", "due", "must", "need to", "have to", "essential",
	"emergency", "crisis",
}

var lowPriorityKeywords = []string{
	"when possible", "eventually", "sometime", "later", "optional",
	"nice to have", "no rush", "low priority",
}

// determinePriority weighs urgency keywords in the task against the full
// transcript. Task matches count double, context matches half, and a score
// must exceed 1 to move off the medium default, so a context-only match
// never promotes on its own.
func determinePriority(task, transcript string) string {
	highScore := float64(countKeywords(task, highPriorityKeywords))*2 +
		float64(countKeywords(transcript, highPriorityKeywords))*0.5
	lowScore := float64(countKeywords(task, lowPriorityKeywords))*2 +
		float64(countKeywords(transcript, lowPriorityKeywords))*0.5

	if highScore > lowScore && highScore > 1 {
		return entities.ActionItemPriorityHigh
	}
	if lowScore > highScore && lowScore > 1 {
		return entities.ActionItemPriorityLow
	}
	return entities.ActionItemPriorityMedium
}

// deduplicateItems drops near-duplicate tasks by word-overlap similarity
func deduplicateItems(items []entities.ExtractedActionItem) []entities.ExtractedActionItem {
	var unique []entities.ExtractedActionItem
	for _, item := range items {
		duplicate := false
		for _, kept := range unique {
			if wordSimilarity(item.Task, kept.Task) > duplicateThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, item)
		}
	}
	return unique
}
