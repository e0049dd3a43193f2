package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/mysavings/backend/internal/application/usecase/reminder"
	"github.com/mysavings/backend/internal/integration/persistence/model"
	"github.com/mysavings/backend/test/integration/mock"
)

func registerAppSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the app restarts$`, theAppRestarts)
	ctx.Step(`^I am on the Premium plan$`, iAmOnThePremiumPlan)
	ctx.Step(`^I have a goal "([^"]*)" with target (\d+) over (\d+) months?$`, iHaveAGoal)
	ctx.Step(`^I have a goal "([^"]*)" with target (\d+) over (\d+) months? reminding on the "([^"]*)"$`, iHaveAGoalWithReminder)
	ctx.Step(`^I have saved (\d+) towards "([^"]*)"$`, iHaveSavedTowards)
	ctx.Step(`^I wait for the assistant to reply$`, iWaitForTheAssistantToReply)
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
}

func registerReminderSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^my profile email is "([^"]*)"$`, myProfileEmailIs)
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^the reminder dispatch runs$`, theReminderDispatchRuns)
	ctx.Step(`^(\d+) reminder emails? should have been sent$`, reminderEmailsShouldHaveBeenSent)
	ctx.Step(`^a reminder email should have been sent to "([^"]*)" about "([^"]*)"$`, aReminderEmailShouldHaveBeenSentTo)
	ctx.Step(`^the email queue should hold (\d+) jobs?$`, theEmailQueueShouldHold)
}

// App steps

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theAppRestarts(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.stop()
	return tc.start(ctx)
}

func iAmOnThePremiumPlan(ctx context.Context) error {
	if err := send(ctx, http.MethodPost, "/api/v1/entitlement/upgrade", ""); err != nil {
		return err
	}
	return theResponseStatusShouldBe(ctx, http.StatusOK)
}

func iHaveAGoal(ctx context.Context, name string, target, months int) error {
	return createGoal(ctx, name, target, months, "")
}

func iHaveAGoalWithReminder(ctx context.Context, name string, target, months int, reminderLabel string) error {
	return createGoal(ctx, name, target, months, reminderLabel)
}

func createGoal(ctx context.Context, name string, target, months int, reminderLabel string) error {
	body, _ := json.Marshal(map[string]any{
		"name":            name,
		"target_amount":   target,
		"duration_months": months,
		"reminder":        reminderLabel,
	})
	if err := send(ctx, http.MethodPost, "/api/v1/goals", string(body)); err != nil {
		return err
	}
	if err := theResponseStatusShouldBe(ctx, http.StatusCreated); err != nil {
		return err
	}

	tc := GetTestContext(ctx)
	id, err := lookupField(tc.responseBody, "id")
	if err != nil {
		return err
	}
	tc.goals[name] = fmt.Sprintf("%v", id)
	return nil
}

func iHaveSavedTowards(ctx context.Context, amount int, name string) error {
	body := fmt.Sprintf(`{"amount": %d}`, amount)
	if err := send(ctx, http.MethodPost, "/api/v1/goals/{"+name+"}/savings", body); err != nil {
		return err
	}
	return theResponseStatusShouldBe(ctx, http.StatusCreated)
}

func iWaitForTheAssistantToReply(ctx context.Context) error {
	GetTestContext(ctx).injector.ChatSession.Wait()
	return nil
}

// API steps

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return send(ctx, method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return send(ctx, method, endpoint, body.Content)
}

// send issues a request against the app. "{Name}" in the endpoint is
// replaced by the ID of the goal created with that name.
func send(ctx context.Context, method, endpoint, body string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for name, id := range tc.goals {
		endpoint = strings.ReplaceAll(endpoint, "{"+name+"}", id)
	}

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

// lookupField resolves a dotted path such as "goals.0.name" in a JSON body.
func lookupField(body []byte, path string) (any, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(body))
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}

// Reminder steps

func myProfileEmailIs(ctx context.Context, email string) error {
	body := fmt.Sprintf(`{"name": "Asha", "email": %q}`, email)
	if err := send(ctx, http.MethodPut, "/api/v1/profile", body); err != nil {
		return err
	}
	return theResponseStatusShouldBe(ctx, http.StatusOK)
}

func todayIs(ctx context.Context, date string) error {
	return GetTestContext(ctx).clock.SetDate(date)
}

func theReminderDispatchRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	_, err := tc.injector.UseCases.DispatchReminder.Execute(ctx, reminder.DispatchRemindersInput{Day: tc.clock.Now()})
	if err != nil {
		return err
	}
	tc.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

func reminderEmailsShouldHaveBeenSent(ctx context.Context, count int) error {
	sent := GetTestContext(ctx).resend.GetRequests(http.MethodPost, "/emails")
	if len(sent) != count {
		return fmt.Errorf("expected %d reminder emails, got %d", count, len(sent))
	}
	return nil
}

func aReminderEmailShouldHaveBeenSentTo(ctx context.Context, email, goalName string) error {
	for _, req := range GetTestContext(ctx).resend.GetRequests(http.MethodPost, "/emails") {
		to := fmt.Sprintf("%v", req["to"])
		subject := fmt.Sprintf("%v", req["subject"])
		if strings.Contains(to, email) && strings.Contains(subject, goalName) {
			return nil
		}
	}
	return fmt.Errorf("no reminder email to %s about %s", email, goalName)
}

func theEmailQueueShouldHold(ctx context.Context, count int) error {
	got, err := mock.CountRows(GetTestContext(ctx).injector.Database.DB(), &model.EmailQueueModel{})
	if err != nil {
		return err
	}
	if got != int64(count) {
		return fmt.Errorf("expected %d queued jobs, got %d", count, got)
	}
	return nil
}
