// Package coach is the boundary to the generative-AI service. Both
// operations absorb failures: advice degrades to a fixed fallback
// string and schedule generation to a nil plan, so callers never see
// an error.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"

	// adviceFallback is returned whenever the service cannot answer.
	adviceFallback = "Não foi possível carregar as dicas da IA no momento. Continue focado!"

	// requestTimeout caps every call; the upstream behavior was
	// unbounded, which is not acceptable here.
	requestTimeout = 30 * time.Second
)

// PlanItem is one entry of a generated study plan.
type PlanItem struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// NewClient builds a gateway for the given API key. An empty key
// yields an offline client whose calls return fallbacks immediately.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		apiKey:     apiKey,
	}
}

// NewClientWithBase is used by tests to point at a local server.
func NewClientWithBase(apiKey, baseURL string, hc *http.Client) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Offline reports whether the client was built without an API key.
func (c *Client) Offline() bool {
	return c.apiKey == ""
}

// Advice asks for three short study tips. It never fails from the
// caller's point of view.
func (c *Client) Advice(ctx context.Context, subject, difficulty string) string {
	if c.Offline() {
		return adviceFallback
	}
	prompt := fmt.Sprintf(
		"Sou um estudante focado em %s e estou sentindo que o nível de dificuldade é %s. "+
			"Me dê 3 dicas práticas e curtas para melhorar meu rendimento hoje.",
		subject, difficulty,
	)
	text, err := c.generate(ctx, prompt, false)
	if err != nil || text == "" {
		return adviceFallback
	}
	return text
}

// GenerateSchedule asks for a study plan for the given goal. A nil
// result means "no plan produced", not an error.
func (c *Client) GenerateSchedule(ctx context.Context, goal string) []PlanItem {
	if c.Offline() {
		return nil
	}
	prompt := fmt.Sprintf(
		`Crie um cronograma de estudos para o objetivo: %q. `+
			`Retorne um array JSON de objetos com "time" (formato HH:MM) e "subject" (breve descrição).`,
		goal,
	)
	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return nil
	}
	var plan []PlanItem
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil
	}
	return plan
}

// --- wire types for the generateContent endpoint ---

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if wantJSON {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	} else {
		reqBody.GenerationConfig = &generationConfig{Temperature: 0.7}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway error %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
