package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/observability/telemetry"
)

const defaultEndpoint = "https://api.deepseek.com/v1/chat/completions"

const classifyPrompt = `You classify customer messages for an appliance parts store that sells refrigerator and dishwasher parts.
Answer with exactly one of these labels and nothing else:
lookup, compatibility, install, diagnose, cart, order, out_of_scope

lookup: finding or asking about a part
compatibility: whether a part fits an appliance model
install: how to install or replace a part
diagnose: an appliance problem or symptom
cart: managing the shopping cart
order: status of an existing order
out_of_scope: anything else

Message: %s
Label:`

// Client classifies intents through the DeepSeek chat completions API.
// It sits behind a circuit breaker so a flapping upstream stops
// costing a timeout per turn.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *zap.Logger
}

func NewClient(apiKey, model, endpoint string, log *zap.Logger) *Client {
	if model == "" {
		model = "deepseek-chat"
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "deepseek",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("deepseek circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &Client{
		apiKey:     apiKey,
		model:      model,
		endpoint:   endpoint,
		httpClient: &http.Client{},
		breaker:    cb,
		log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ClassifyIntent asks the model for an intent label. The reply is
// parsed defensively: whatever text comes back is matched against the
// known labels, and anything unrecognized maps to out_of_scope.
func (c *Client) ClassifyIntent(ctx context.Context, query string) (domain.Intent, error) {
	if c.apiKey == "" {
		return domain.IntentOutOfScope, fmt.Errorf("deepseek: API key not configured")
	}

	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.complete(ctx, fmt.Sprintf(classifyPrompt, query))
	})
	if err != nil {
		telemetry.LLMFallbackTotal.WithLabelValues("error").Inc()
		return domain.IntentOutOfScope, err
	}

	intent := parseLabel(raw.(string))
	telemetry.LLMFallbackTotal.WithLabelValues("ok").Inc()
	return intent, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:     c.model,
		MaxTokens: 8,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("deepseek: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("deepseek: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepseek: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepseek: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek: status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("deepseek: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("deepseek: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// parseLabel maps free-form model output to a known intent. Longer
// labels are checked first so "out_of_scope" never matches on "order"
// or "cart" by accident.
func parseLabel(raw string) domain.Intent {
	label := strings.ToLower(strings.TrimSpace(raw))
	ordered := []domain.Intent{
		domain.IntentOutOfScope,
		domain.IntentCompatibility,
		domain.IntentDiagnose,
		domain.IntentInstall,
		domain.IntentLookup,
		domain.IntentOrder,
		domain.IntentCart,
	}
	for _, intent := range ordered {
		if strings.Contains(label, string(intent)) {
			return intent
		}
	}
	return domain.IntentOutOfScope
}
