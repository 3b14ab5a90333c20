package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"google.golang.org/genai"
)

func TestSDKClientGenerate(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, canonicalReply)
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(Config{BaseURL: srv.URL, Model: "test-model", HTTPClient: srv.Client()})

	text, err := client.Generate(context.Background(), "prompt", "sdk-key")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "SQL CODE SEPARADORSQL explanation text" {
		t.Fatalf("Generate() = %q", text)
	}
	if gotKey != "sdk-key" {
		t.Fatalf("x-goog-api-key = %q", gotKey)
	}
}

func TestSDKText(t *testing.T) {
	tests := []struct {
		name    string
		result  *genai.GenerateContentResponse
		want    string
		wantKey string
	}{
		{
			name:    "nil response",
			wantKey: "candidates",
		},
		{
			name:    "no candidates",
			result:  &genai.GenerateContentResponse{},
			wantKey: "candidates",
		},
		{
			name:    "no content",
			result:  &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantKey: "content",
		},
		{
			name: "no parts",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Role: "model"}},
			}},
			wantKey: "parts",
		},
		{
			name: "text",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "SELECT 1 SEPARADORSQL one"}}}},
			}},
			want: "SELECT 1 SEPARADORSQL one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sdkText(tt.result)
			if tt.wantKey != "" {
				if sqlgen.KindOf(err) != sqlgen.KindSchema {
					t.Fatalf("KindOf() = %q, want schema", sqlgen.KindOf(err))
				}
				want := fmt.Sprintf("missing key %q", tt.wantKey)
				if msg := sqlgen.OutcomeOf(sqlgen.Result{}, err).Message; !strings.Contains(msg, want) {
					t.Fatalf("message = %q, want %q", msg, want)
				}
				return
			}
			if err != nil {
				t.Fatalf("sdkText() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("sdkText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifySDKError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want sqlgen.Kind
	}{
		{name: "api error", err: genai.APIError{Code: 500, Message: "backend error"}, want: sqlgen.KindTransport},
		{name: "wrapped api error", err: fmt.Errorf("generate: %w", genai.APIError{Code: 403, Message: "denied"}), want: sqlgen.KindTransport},
		{name: "canceled", err: context.Canceled, want: sqlgen.KindTransport},
		{name: "other", err: errors.New("something odd"), want: sqlgen.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqlgen.KindOf(classifySDKError(tt.err)); got != tt.want {
				t.Fatalf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
