package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"google.golang.org/genai"
)

// SDKClient generates through the official GenAI SDK. A client is built per
// call because the API key arrives with each submission.
type SDKClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ sqlgen.Generator = (*SDKClient)(nil)

func NewSDKClient(cfg Config) *SDKClient {
	cfg = cfg.withDefaults()

	return &SDKClient{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

func (c *SDKClient) Generate(ctx context.Context, prompt string, apiKey string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.baseURL + "/",
		},
	})
	if err != nil {
		return "", sqlgen.NewUnknownError(fmt.Errorf("create genai client: %w", err))
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifySDKError(err)
	}

	return sdkText(result)
}

func classifySDKError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return sqlgen.NewTransportError(fmt.Errorf("status %d: %s", apiErr.Code, apiErr.Message))
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return sqlgen.NewTransportError(fmt.Errorf("status %d: %s", apiErrPtr.Code, apiErrPtr.Message))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return sqlgen.NewDecodeError(syntaxErr)
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return sqlgen.NewTransportError(withoutURL(err))
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return sqlgen.NewTransportError(err)
	}

	return sqlgen.NewUnknownError(withoutURL(err))
}

func sdkText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", sqlgen.NewSchemaError("candidates")
	}

	candidate := result.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", sqlgen.NewSchemaError("content")
	}
	if len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0] == nil {
		return "", sqlgen.NewSchemaError("parts")
	}

	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", sqlgen.NewSchemaError("text")
	}

	return text, nil
}
