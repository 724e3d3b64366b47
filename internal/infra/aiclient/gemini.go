package aiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/modelday/modelday/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	backoffBase = 1 * time.Second
	backoffCap  = 5 * time.Second
)

// UpstreamError reports a generative-AI endpoint failure, carrying the
// upstream HTTP status and message so handlers can surface them.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini request failed with status %d: %s", e.StatusCode, e.Message)
}

// GeminiClient calls the Gemini generateContent REST endpoint. Request and
// response bodies use the official genai wire types; the raw HTTP layer is
// kept so the retry policy stays explicit.
type GeminiClient struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
	Logger     *zap.Logger

	maxRetries      int
	temperature     float32
	maxOutputTokens int

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

func NewGeminiClient(cfg *config.Config, log *zap.Logger) *GeminiClient {
	return &GeminiClient{
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		APIKey:  cfg.Gemini.APIKey,
		HTTPClient: &http.Client{
			Timeout:   5 * time.Minute,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger:          log,
		maxRetries:      cfg.Gemini.MaxRetries,
		temperature:     cfg.Gemini.Temperature,
		maxOutputTokens: cfg.Gemini.MaxOutputTokens,
		sleep:           time.Sleep,
	}
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []*genai.Content       `json:"contents"`
	GenerationConfig *generationConfig      `json:"generationConfig"`
	SafetySettings   []*genai.SafetySetting `json:"safetySettings,omitempty"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Lifestyle prompts mention sleep, meals and family; the default thresholds
// occasionally block them, so all categories are set to BLOCK_NONE.
func relaxedSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, cat := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  cat,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}
	return settings
}

// Generate sends the prompt and returns the raw completion text.
// 429 and 503 are retried with exponential backoff (1s base, doubled, capped
// at 5s) up to the retry budget; every other failure is returned immediately.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxOutputTokens,
		},
		SafetySettings: relaxedSafetySettings(),
	}

	payload, err := sonic.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)

	backoff := backoffBase
	for attempt := 0; ; attempt++ {
		text, retryable, err := c.doOnce(ctx, endpoint, payload)
		if err == nil {
			return text, nil
		}
		if !retryable || attempt >= c.maxRetries {
			return "", err
		}

		c.Logger.Warn("gemini request retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", backoff),
			zap.Error(err))
		c.sleep(backoff)
		backoff *= 2
		if backoff > backoffCap {
			backoff = backoffCap
		}
	}
}

func (c *GeminiClient) doOnce(ctx context.Context, endpoint string, payload []byte) (text string, retryable bool, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", false, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := upstreamMessage(respBody)
		c.Logger.Error("gemini request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", msg))
		retryable := resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode == http.StatusServiceUnavailable
		return "", retryable, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var result genai.GenerateContentResponse
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return "", false, fmt.Errorf("unmarshal response: %w", err)
	}

	text = completionText(&result)
	if text == "" {
		// A 200 without completion text means the model refused or the
		// response shape changed; retrying will not help.
		return "", false, &UpstreamError{StatusCode: resp.StatusCode, Message: "response contains no completion text"}
	}
	return text, false, nil
}

func completionText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			return part.Text
		}
	}
	return ""
}

func upstreamMessage(body []byte) string {
	var apiErr apiError
	if err := sonic.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return string(body)
}
