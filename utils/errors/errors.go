package errors

import (
	"log/slog"
	"net/http"

	"github.com/kacperborowieckb/sql-chat/utils/json"
)

func InternalServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	json.WriteJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.WarnContext(r.Context(), "bad request error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	json.WriteJSONError(w, http.StatusBadRequest, err.Error())
}

func NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.InfoContext(r.Context(), "not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	json.WriteJSONError(w, http.StatusNotFound, "not found")
}

// GenerationFailed writes a categorized generation failure. The message is
// already user-facing, so it goes out unchanged.
func GenerationFailed(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	slog.WarnContext(r.Context(), "generation failed", "method", r.Method, "path", r.URL.Path, "kind", kind, "status", status)
	json.WriteJSONKindError(w, status, kind, message)
}
