package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"

	maxErrorBodyChars = 200
)

type Config struct {
	BaseURL string
	Model   string
	// HTTPClient defaults to a client without a timeout; cancellation comes
	// from the request context.
	HTTPClient *http.Client
}

// Client calls the generateContent REST endpoint directly.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ sqlgen.Generator = (*Client)(nil)

func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	return &Client{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

func (cfg Config) withDefaults() Config {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return cfg
}

type textPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []textPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

// Generate sends prompt to the model and returns
// candidates[0].content.parts[0].text from the reply.
func (c *Client) Generate(ctx context.Context, prompt string, apiKey string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []textPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", sqlgen.NewUnknownError(fmt.Errorf("marshal generate payload: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(payload))
	if err != nil {
		return "", sqlgen.NewUnknownError(fmt.Errorf("build generate request: %w", withoutURL(err)))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", sqlgen.NewTransportError(withoutURL(err))
	}
	defer func() { _ = resp.Body.Close() }()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", sqlgen.NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", sqlgen.NewTransportError(fmt.Errorf("status %d: %s", resp.StatusCode, apiErrorMessage(rawBody)))
	}

	var doc any
	if err := json.Unmarshal(rawBody, &doc); err != nil {
		return "", sqlgen.NewDecodeError(err)
	}

	return extractText(doc)
}

func (c *Client) endpoint(apiKey string) string {
	query := url.Values{}
	query.Set("key", apiKey)

	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), query.Encode())
}

// extractText walks candidates[0].content.parts[0].text, naming the first key
// that is absent or has the wrong shape.
func extractText(doc any) (string, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return "", sqlgen.NewSchemaError("candidates")
	}

	candidate, err := firstObject(root, "candidates")
	if err != nil {
		return "", err
	}

	body, ok := candidate["content"].(map[string]any)
	if !ok {
		return "", sqlgen.NewSchemaError("content")
	}

	part, err := firstObject(body, "parts")
	if err != nil {
		return "", err
	}

	text, ok := part["text"].(string)
	if !ok {
		return "", sqlgen.NewSchemaError("text")
	}

	return text, nil
}

func firstObject(m map[string]any, key string) (map[string]any, error) {
	items, ok := m[key].([]any)
	if !ok {
		return nil, sqlgen.NewSchemaError(key)
	}
	if len(items) == 0 {
		return nil, sqlgen.NewSchemaError(key + "[0]")
	}

	first, ok := items[0].(map[string]any)
	if !ok {
		return nil, sqlgen.NewSchemaError(key + "[0]")
	}

	return first, nil
}

// apiErrorMessage pulls error.message out of a Google API error envelope and
// falls back to a truncated body.
func apiErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		if envelope.Error.Status != "" {
			return fmt.Sprintf("%s (%s)", envelope.Error.Message, envelope.Error.Status)
		}
		return envelope.Error.Message
	}

	snippet := strings.TrimSpace(string(body))
	if len(snippet) > maxErrorBodyChars {
		snippet = snippet[:maxErrorBodyChars] + "..."
	}
	if snippet == "" {
		snippet = "empty response body"
	}

	return snippet
}

// withoutURL drops the request URL from transport errors; it carries the API
// key as a query parameter.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}

	return err
}
