package sqlgen_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"github.com/kacperborowieckb/sql-chat/utils/gemini"
)

func newOrchestratorWithStub(t *testing.T, status int, body string) (*sqlgen.Orchestrator, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client := gemini.NewClient(gemini.Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return sqlgen.NewOrchestrator(client, logger), &calls
}

func TestHandleSubmitOverHTTP(t *testing.T) {
	o, calls := newOrchestratorWithStub(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"SQL CODE SEPARADORSQL explanation text"}]}}]}`)

	got, err := o.HandleSubmit(context.Background(), sqlgen.Request{
		APIKey:          "key",
		DatabaseContext: "schema",
		Question:        "question",
	})
	if err != nil {
		t.Fatalf("HandleSubmit() error = %v", err)
	}

	want := sqlgen.Result{SQLCode: "SQL CODE", Explanation: "explanation text"}
	if got != want {
		t.Fatalf("HandleSubmit() = %+v, want %+v", got, want)
	}
	if *calls != 1 {
		t.Fatalf("calls = %d, want 1", *calls)
	}
}

func TestHandleSubmitServerErrorIsConnectionError(t *testing.T) {
	o, _ := newOrchestratorWithStub(t, http.StatusInternalServerError, "boom")

	_, err := o.HandleSubmit(context.Background(), sqlgen.Request{
		APIKey:          "key",
		DatabaseContext: "schema",
		Question:        "question",
	})
	if got := sqlgen.KindOf(err); got != sqlgen.KindTransport {
		t.Fatalf("KindOf() = %q, want %q", got, sqlgen.KindTransport)
	}

	outcome := sqlgen.OutcomeOf(sqlgen.Result{}, err)
	if outcome.Severity != sqlgen.SeverityError || outcome.Message == "" {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestHandleSubmitMissingKeyMakesNoCall(t *testing.T) {
	o, calls := newOrchestratorWithStub(t, http.StatusOK, "{}")

	_, err := o.HandleSubmit(context.Background(), sqlgen.Request{
		DatabaseContext: "schema",
		Question:        "question",
	})
	if got := sqlgen.KindOf(err); got != sqlgen.KindValidation {
		t.Fatalf("KindOf() = %q, want %q", got, sqlgen.KindValidation)
	}
	if *calls != 0 {
		t.Fatalf("calls = %d, want 0", *calls)
	}
}
