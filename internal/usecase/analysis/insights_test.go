package analysis

import (
	"strings"
	"testing"
)

func TestExtractKeyInsights_Categories(t *testing.T) {
	transcript := "We decided to move the launch to next month because the budget was overspent. " +
		"There is a risk that the vendor slips the delivery again."

	insights := ExtractKeyInsights(transcript)
	if len(insights) < 2 {
		t.Fatalf("expected at least 2 insights, got %d", len(insights))
	}
	if !strings.HasPrefix(insights[0], "Decision made: ") {
		t.Fatalf("expected decision insight first, got %q", insights[0])
	}

	found := false
	for _, insight := range insights {
		if strings.HasPrefix(insight, "Risk identified: ") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a risk insight in %v", insights)
	}
}

func TestExtractKeyInsights_ThemeFallback(t *testing.T) {
	transcript := "The platform rollout continues. The platform rollout needs testing tomorrow."

	insights := ExtractKeyInsights(transcript)
	if len(insights) < 2 {
		t.Fatalf("expected at least 2 insights, got %d", len(insights))
	}
	if insights[0] != "Key theme: Platform (mentioned 2 times)" {
		t.Fatalf("unexpected theme insight %q", insights[0])
	}
}

func TestExtractKeyInsights_MinimumTwo(t *testing.T) {
	insights := ExtractKeyInsights("Hi all.")
	if len(insights) < 2 {
		t.Fatalf("expected at least 2 insights for a bare transcript, got %v", insights)
	}
}

func TestExtractKeyInsights_CappedAtFive(t *testing.T) {
	transcript := strings.Repeat(
		"We decided to expand the budget because there is a risk and an opportunity in the revenue numbers. ", 10)
	insights := ExtractKeyInsights(transcript)
	if len(insights) > 5 {
		t.Fatalf("expected at most 5 insights, got %d", len(insights))
	}
}
