package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

const systemPrompt = "You are a safety analysis expert. Analyze street and road images " +
	"for travel hazards. Always return valid JSON."

const analysisPrompt = `Analyze this street/road image for travel safety and road hazards.

Look for: roadwork/construction (barricades, signs, machinery), water/flooding,
obstacles or debris, poor road condition (potholes, broken pavement), traffic hazards.
Also note lighting conditions.

Return a JSON object with exactly this shape:
{
  "road_hazards": {
    "construction_roadwork": true/false,
    "water_flooding": true/false,
    "obstacles_debris": true/false,
    "poor_road_condition": true/false,
    "traffic_hazards": true/false
  },
  "hazard_severity": "none" | "low" | "medium" | "high" | "critical",
  "hazard_description": "brief description of hazards found",
  "lighting": "good" | "moderate" | "poor",
  "travel_safe": true/false,
  "safety_notes": "brief safety concerns for travelers"
}`

// Client - клиент vision-коллаборатора поверх OpenAI-совместимого
// chat completions API (Groq). Изображение уходит как base64 data URL,
// ответ запрашивается в режиме json_object.
type Client struct {
	client *openai.Client
	model  string
	logger *logrus.Logger
}

// NewClient создает vision-клиент с собственным таймаутом HTTP-запросов
func NewClient(apiKey, baseURL, model string, timeout time.Duration, logger *logrus.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// AnalyzeImage отправляет снимок коллаборатору и возвращает сырой отчёт.
// Отказ провайдера - ErrUpstreamUnavailable, непарсируемый ответ -
// ErrMalformedPayload; решает, что с этим делать, вызывающий.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte) (*models.RawHazardReport, error) {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: analysisPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataURL,
						},
					},
				},
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision request failed: %v: %w", err, models.ErrUpstreamUnavailable)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("vision provider returned no choices: %w", models.ErrUpstreamUnavailable)
	}

	content := resp.Choices[0].Message.Content
	report := &models.RawHazardReport{}
	if err := json.Unmarshal([]byte(content), report); err != nil {
		c.logger.WithError(err).Warn("Vision provider returned non-JSON content")
		return nil, fmt.Errorf("failed to parse vision response: %w", models.ErrMalformedPayload)
	}
	return report, nil
}
