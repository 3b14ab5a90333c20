package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/kacperborowieckb/sql-chat/shared/contracts"
	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"github.com/kacperborowieckb/sql-chat/utils/errors"
	"github.com/kacperborowieckb/sql-chat/utils/health"
	"github.com/kacperborowieckb/sql-chat/utils/json"
)

type webServer struct {
	orchestrator *sqlgen.Orchestrator
	sessions     *sessionStore
	page         *pageRenderer
	metrics      *metrics
	logger       *slog.Logger
}

func newWebServer(cfg config, generator sqlgen.Generator, logger *slog.Logger) (*webServer, error) {
	page, err := newPageRenderer()
	if err != nil {
		return nil, err
	}

	sessions := newSessionStore(cfg.SessionTTL)

	return &webServer{
		orchestrator: sqlgen.NewOrchestrator(generator, logger),
		sessions:     sessions,
		page:         page,
		metrics:      newMetrics(sessions),
		logger:       logger,
	}, nil
}

func (s *webServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.middleware)

	r.Get("/health", health.Handler)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSubmit)
	r.Post("/api/generate", s.handleGenerate)

	return r
}

func (s *webServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	history := s.sessions.history(w, r)

	s.renderPage(w, r, pageData{History: newestFirst(history.Entries())})
}

func (s *webServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errors.BadRequestResponse(w, r, fmt.Errorf("error parsing form: %w", err))
		return
	}

	history := s.sessions.history(w, r)

	form := contracts.GenerateRequest{
		APIKey:          r.PostFormValue(contracts.FormAPIKey),
		DatabaseContext: r.PostFormValue(contracts.FormDatabaseContext),
		Question:        r.PostFormValue(contracts.FormQuestion),
	}

	result, err := s.orchestrator.HandleSubmit(r.Context(), sqlgen.Request(form))
	outcome := sqlgen.OutcomeOf(result, err)
	s.metrics.observeOutcome(outcome)

	if outcome.OK() {
		history.Append(sqlgen.NewHistoryEntry(form.Question, result))
	}

	s.renderPage(w, r, pageData{
		Form:    form,
		Outcome: &outcome,
		History: newestFirst(history.Entries()),
	})
}

func (s *webServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body contracts.GenerateRequest
	if err := json.ReadJSON(w, r, &body); err != nil {
		errors.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := s.orchestrator.HandleSubmit(r.Context(), sqlgen.Request(body))
	outcome := sqlgen.OutcomeOf(result, err)
	s.metrics.observeOutcome(outcome)

	if !outcome.OK() {
		errors.GenerationFailed(w, r, statusForKind(outcome.Kind), string(outcome.Kind), outcome.Message)
		return
	}

	json.WriteJSON(w, http.StatusOK, contracts.GenerateResponse{
		ID:          uuid.NewString(),
		SQLCode:     result.SQLCode,
		Explanation: result.Explanation,
	})
}

func (s *webServer) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	if err := s.page.render(w, http.StatusOK, data); err != nil {
		errors.InternalServerError(w, r, err)
	}
}

func statusForKind(kind sqlgen.Kind) int {
	switch kind {
	case sqlgen.KindValidation:
		return http.StatusBadRequest
	case sqlgen.KindTransport, sqlgen.KindDecode, sqlgen.KindSchema:
		return http.StatusBadGateway
	case sqlgen.KindSplit:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
