// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/application/metrics"
	"github.com/mysavings/backend/internal/domain/entity"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiResponder answers chat messages with Google Gemini.
type GeminiResponder struct {
	apiKey    string
	modelName string
	timeout   time.Duration
	goals     adapter.GoalSnapshotReader
}

// NewGeminiResponder creates a new Gemini responder. goals may be nil.
func NewGeminiResponder(apiKey, modelName string, timeout time.Duration, goals adapter.GoalSnapshotReader) *GeminiResponder {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiResponder{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
		goals:     goals,
	}
}

// IsAvailable checks if the responder has an API key.
func (r *GeminiResponder) IsAvailable() bool {
	return r.apiKey != ""
}

// Reply sends the conversation to Gemini and returns the answer text.
func (r *GeminiResponder) Reply(ctx context.Context, history []entity.ChatMessage) (string, error) {
	if !r.IsAvailable() {
		return "", errors.New("gemini responder is not configured")
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	past, last, ok := splitHistory(history)
	if !ok {
		return "", errors.New("no user message to answer")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(r.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	var goals []entity.Goal
	if r.goals != nil {
		goals = r.goals.ListGoals(ctx)
	}

	model := client.GenerativeModel(r.modelName)
	model.SetTemperature(0.7)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(buildSystemPrompt(goals))},
	}

	cs := model.StartChat()
	cs.History = past

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp)
}

// buildSystemPrompt describes the assistant and the user's goals.
func buildSystemPrompt(goals []entity.Goal) string {
	var sb strings.Builder

	sb.WriteString("You are the savings assistant of the MySavings app. ")
	sb.WriteString("Give short, practical advice about reaching savings goals. ")
	sb.WriteString("Amounts are in Indian rupees and written like ₹50,000.\n\n")

	if len(goals) == 0 {
		sb.WriteString("The user has not created any savings goal yet.\n")
		return sb.String()
	}

	s := metrics.Summarize(goals)
	sb.WriteString(fmt.Sprintf("The user has saved %s in total. Overall progress is %d%%.\n",
		valueobject.FormatRupees(s.TotalSaved), s.OverallProgress))
	sb.WriteString("Goals:\n")
	for i := range goals {
		g := &goals[i]
		sb.WriteString(fmt.Sprintf("- %s: saved %s of %s (%d%%) over %d months",
			g.Name,
			valueobject.FormatRupees(g.SavedAmount),
			valueobject.FormatRupees(g.TargetAmount),
			g.Progress(),
			g.DurationMonths,
		))
		if g.EndDate != "" {
			sb.WriteString(", ends " + g.EndDate)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// splitHistory turns the transcript into Gemini history plus the message to send.
// Assistant lines before the first user message are dropped because the
// conversation must start with the user.
func splitHistory(history []entity.ChatMessage) ([]*genai.Content, string, bool) {
	lastUser := -1
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == entity.ChatRoleUser {
			lastUser = i
			break
		}
	}
	if lastUser < 0 {
		return nil, "", false
	}

	past := make([]*genai.Content, 0, lastUser)
	seenUser := false
	for _, m := range history[:lastUser] {
		role := "model"
		if m.Role == entity.ChatRoleUser {
			role = "user"
			seenUser = true
		}
		if !seenUser {
			continue
		}
		past = append(past, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	return past, history[lastUser].Text, true
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("no text content in response")
	}
	return out, nil
}

var _ adapter.ChatResponder = (*GeminiResponder)(nil)
