package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"lg/gym-plan-go-api/planner"
)

// errOpenAIDisabled is returned when no API key is configured. Callers treat
// it as "use the rule-based plan" without logging a failure.
var errOpenAIDisabled = errors.New("OPENAI_API_KEY not set")

/* ─── OpenAI prompt constants ────────────────────────────────────────── */

const planSystemPrompt = `You create safe personalized training and nutrition plans.`

// planUserPromptTemplate takes the indented profile JSON.
const planUserPromptTemplate = `You are an elite fitness and nutrition coach. Return VALID JSON only.

User profile:
%s

Build a complete app-ready plan with this schema:
{
  "summary": string,
  "nutrition": {
    "targetCalories": number,
    "macros": { "proteinGrams": number, "carbsGrams": number, "fatsGrams": number },
    "hydrationLiters": number,
    "mealIdeas": string[],
    "mealStructure": [{ "meal": string, "targetProtein": number, "note": string }],
    "groceryList": string[]
  },
  "activity": {
    "weeklySchedule": [{ "day": string, "focus": string, "mainLifts": string[], "accessories": string[], "conditioning": string }],
    "cardio": string,
    "stepTarget": string,
    "progression": string
  },
  "bodyMetrics": {
    "targetRate": string,
    "checkInDays": string[],
    "adjustmentRules": string[]
  },
  "recovery": {
    "sleepHours": string,
    "deload": string,
    "stressManagement": string[]
  },
  "foodLoggerTemplate": {
    "dailyTargets": { "calories": number, "proteinGrams": number, "carbsGrams": number, "fatsGrams": number },
    "prompts": string[]
  }
}

Constraints:
- Keep recommendations realistic and safe.
- Respect injuries/limitations and equipment access.
- Weekly schedule length must match workoutDays.
`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model          string                 `json:"model"`
	Messages       []openAIMessage        `json:"messages"`
	Temperature    float64                `json:"temperature"`
	ResponseFormat map[string]interface{} `json:"response_format"`
}

// callOpenAI sends a chat completions request and returns the raw content string
// from the first choice. Uses raw net/http to avoid pulling in the OpenAI SDK.
func callOpenAI(ctx context.Context, model string, messages []openAIMessage, baseURL string, timeout time.Duration) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errOpenAIDisabled
	}

	reqBody := openAIRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.4,
		ResponseFormat: map[string]interface{}{
			"type": "json_object",
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Parse the response to extract choices[0].message.content
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}

/* ─── Plan generation ────────────────────────────────────────────────── */

// generateAIPlan asks OpenAI for a plan and checks it has the shape the UI
// needs. Any failure is returned so the caller can fall back.
func (h *Handler) generateAIPlan(ctx context.Context, req profileRequest) (planner.Plan, error) {
	profileJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return planner.Plan{}, fmt.Errorf("marshal profile: %w", err)
	}

	timeout := h.openAITimeout
	if timeout <= 0 {
		timeout = defaultOpenAITimeout
	}
	model := h.openAIModel
	if model == "" {
		model = defaultOpenAIModel
	}

	messages := []openAIMessage{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(planUserPromptTemplate, profileJSON)},
	}
	content, err := callOpenAI(ctx, model, messages, h.openAIBaseURL, timeout)
	if err != nil {
		return planner.Plan{}, err
	}

	var plan planner.Plan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return planner.Plan{}, fmt.Errorf("parse plan JSON: %w", err)
	}
	if err := checkAIPlan(plan, req.WorkoutDays); err != nil {
		return planner.Plan{}, err
	}
	return plan, nil
}

// checkAIPlan rejects plans that decode but are missing the parts every
// client relies on.
func checkAIPlan(plan planner.Plan, workoutDays int) error {
	if strings.TrimSpace(plan.Summary) == "" {
		return errors.New("plan has no summary")
	}
	if plan.Nutrition.TargetCalories <= 0 {
		return fmt.Errorf("plan has targetCalories %d", plan.Nutrition.TargetCalories)
	}
	if n := len(plan.Activity.WeeklySchedule); n != workoutDays {
		return fmt.Errorf("plan has %d training days, want %d", n, workoutDays)
	}
	return nil
}

// generatePlan prefers an AI plan and falls back to the rule-based planner on
// any AI failure. Returns the plan and its source.
func (h *Handler) generatePlan(ctx context.Context, req profileRequest) (planner.Plan, string) {
	plan, err := h.generateAIPlan(ctx, req)
	if err == nil {
		return plan, planSourceAI
	}
	if !errors.Is(err, errOpenAIDisabled) {
		log.Printf("[generatePlan] AI plan failed, using rule-based plan: %v", err)
	}
	return planner.Build(req.toProfile()), planSourceRuleBased
}
