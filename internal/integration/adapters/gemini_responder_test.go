package adapters

import (
	"context"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/mysavings/backend/internal/domain/entity"
)

func TestSplitHistory(t *testing.T) {
	history := []entity.ChatMessage{
		entity.NewChatMessage(entity.ChatRoleAssistant, entity.ChatGreeting),
		entity.NewChatMessage(entity.ChatRoleUser, "How do I save for a bike?"),
		entity.NewChatMessage(entity.ChatRoleAssistant, "Put aside ₹750 a month."),
		entity.NewChatMessage(entity.ChatRoleUser, "And for a phone?"),
	}

	past, last, ok := splitHistory(history)
	if !ok {
		t.Fatal("expected a user message")
	}
	if last != "And for a phone?" {
		t.Errorf("unexpected last message %q", last)
	}
	if len(past) != 2 {
		t.Fatalf("expected greeting to be dropped, got %d history items", len(past))
	}
	if past[0].Role != "user" || past[1].Role != "model" {
		t.Errorf("unexpected roles %q, %q", past[0].Role, past[1].Role)
	}

	if _, _, ok := splitHistory(history[:1]); ok {
		t.Error("expected no user message in a greeting-only transcript")
	}
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Save "), genai.Text("weekly. ")}},
		}},
	}
	got, err := extractText(resp)
	if err != nil || got != "Save weekly." {
		t.Errorf("unexpected text %q (%v)", got, err)
	}

	if _, err := extractText(&genai.GenerateContentResponse{}); err == nil {
		t.Error("expected an error for an empty response")
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	g := entity.NewGoal("Vacation", 50000, 24, "30 Jun 2025", entity.ReminderFirstOfMonth)
	g.Record(entity.NewSavingEntry(15000, "", ""))

	prompt := buildSystemPrompt([]entity.Goal{*g})
	for _, want := range []string{"Vacation", "₹15,000 of ₹50,000 (30%)", "ends 30 Jun 2025", "Overall progress is 30%"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}

	if !strings.Contains(buildSystemPrompt(nil), "not created any savings goal") {
		t.Error("expected the empty ledger to be described")
	}
}

func TestGeminiResponder_NotConfigured(t *testing.T) {
	r := NewGeminiResponder("", "", 0, nil)
	if r.IsAvailable() {
		t.Error("expected responder without key to be unavailable")
	}
	if _, err := r.Reply(context.Background(), nil); err == nil {
		t.Error("expected an error without an API key")
	}
}
