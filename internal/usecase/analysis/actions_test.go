package analysis

import (
	"strings"
	"testing"

	"github.com/johnquangdev/minutemeet/internal/domain/entities"
)

func TestExtractActionItems_Basic(t *testing.T) {
	transcript := "Alice: We need to finalize the budget report by Friday. " +
		"Bob: I will prepare the presentation slides for the client. " +
		"Carol: Please review the deployment checklist when possible."
	participants := []string{"Alice", "Bob", "Carol"}

	items := ExtractActionItems(transcript, participants)
	if len(items) == 0 {
		t.Fatal("expected action items, got none")
	}
	if len(items) > 5 {
		t.Fatalf("expected at most 5 items, got %d", len(items))
	}

	first := items[0]
	if !strings.Contains(first.Task, "finalize the budget report") {
		t.Fatalf("unexpected first task %q", first.Task)
	}
	// "need to" only appears as transcript context, which is not enough to
	// promote past the medium default
	if first.Priority != entities.ActionItemPriorityMedium {
		t.Fatalf("expected medium priority, got %s", first.Priority)
	}
	if first.Assignee != "Alice" {
		t.Fatalf("expected assignee Alice, got %s", first.Assignee)
	}
	if first.DueDate != "Friday" {
		t.Fatalf("expected due date Friday, got %s", first.DueDate)
	}
}

func TestExtractActionItems_LowPriority(t *testing.T) {
	transcript := "Carol: Please review the deployment checklist when possible."
	items := ExtractActionItems(transcript, []string{"Carol"})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Priority != entities.ActionItemPriorityLow {
		t.Fatalf("expected low priority, got %s", items[0].Priority)
	}
}

func TestExtractActionItems_SkipsShortTasks(t *testing.T) {
	items := ExtractActionItems("We will go.", nil)
	if len(items) != 0 {
		t.Fatalf("expected no items for short task, got %d", len(items))
	}
}

func TestExtractActionItems_Deduplicates(t *testing.T) {
	transcript := "Bob: I will prepare the quarterly revenue report today. " +
		"Bob: I will prepare the quarterly revenue report today."
	items := ExtractActionItems(transcript, []string{"Bob"})
	if len(items) != 1 {
		t.Fatalf("expected duplicates collapsed to 1 item, got %d", len(items))
	}
}

func TestExtractActionItems_NoParticipants(t *testing.T) {
	items := ExtractActionItems("Someone should update the onboarding documentation.", nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Assignee != "TBD" {
		t.Fatalf("expected assignee TBD, got %s", items[0].Assignee)
	}
	if items[0].DueDate != "TBD" {
		t.Fatalf("expected due date TBD, got %s", items[0].DueDate)
	}
}

func TestExtractActionItems_CommitmentPhraseAloneStaysMedium(t *testing.T) {
	transcript := "Bob: We must review the supplier invoices. " +
		"Carol: You have to update the staging environment."
	items := ExtractActionItems(transcript, []string{"Bob", "Carol"})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Priority != entities.ActionItemPriorityMedium {
			t.Fatalf("expected medium priority for %q, got %s", item.Task, item.Priority)
		}
	}

	steps := GenerateNextSteps(items)
	for _, step := range steps {
		if strings.HasPrefix(step, "Urgent: ") {
			t.Fatalf("commitment phrasing alone must not produce urgent steps, got %q", step)
		}
	}
}

func TestExtractActionItems_UrgencyInTaskIsHigh(t *testing.T) {
	transcript := "Alice: Please fix the login outage asap, this is urgent."
	items := ExtractActionItems(transcript, []string{"Alice"})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Priority != entities.ActionItemPriorityHigh {
		t.Fatalf("expected high priority, got %s", items[0].Priority)
	}
}

func TestDeterminePriority_Thresholds(t *testing.T) {
	cases := []struct {
		name       string
		task       string
		transcript string
		want       string
	}{
		{"context only", "update the onboarding documentation", "We need to update the onboarding documentation.", entities.ActionItemPriorityMedium},
		{"urgency in task", "fix the outage asap, it is critical", "Fix the outage asap, it is critical.", entities.ActionItemPriorityHigh},
		{"deferral in task", "tidy the wiki when possible", "Tidy the wiki when possible.", entities.ActionItemPriorityLow},
		{"no signals", "collect the survey responses", "Collect the survey responses.", entities.ActionItemPriorityMedium},
	}
	for _, tc := range cases {
		if got := determinePriority(tc.task, tc.transcript); got != tc.want {
			t.Errorf("%s: determinePriority = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestExtractDueDate_Formats(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"ship it by tomorrow", "Tomorrow"},
		{"deliver by 2026-09-01 sharp", "2026-09-01"},
		{"finish this asap", "Asap"},
		{"wrap up by end of week", "End Of Week"},
		{"review next monday", "Monday"},
	}
	for _, tc := range cases {
		if got := extractDueDate(tc.text, tc.text); got != tc.want {
			t.Errorf("extractDueDate(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
