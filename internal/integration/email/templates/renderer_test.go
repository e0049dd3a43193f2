package templates

import (
	"strings"
	"testing"
)

func TestRenderer_GoalReminder(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html, text, err := r.Render("goal_reminder", GoalReminderData{
		RecipientName:    "Asha",
		GoalName:         "Bike <new>",
		Saved:            "₹3,000",
		Target:           "₹12,000",
		Remaining:        "₹9,000",
		Progress:         25,
		SuggestedMonthly: "₹750",
		ReminderLabel:    "1st of every month",
		AppURL:           "http://localhost:5173",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(html, "Bike &lt;new&gt;") {
		t.Error("expected goal name to be escaped in HTML")
	}
	for _, want := range []string{"Hi Asha", "₹3,000 of ₹12,000", "25%", "₹750", "1st of every month"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected text to contain %q", want)
		}
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := r.Render("password_reset", nil); err == nil {
		t.Error("expected an error for an unknown template")
	}
}
