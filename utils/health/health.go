package health

import (
	"log/slog"
	"net/http"

	"github.com/kacperborowieckb/sql-chat/utils/json"
)

type HealthStatus struct {
	Status string `json:"status"`
}

// Handler reports "ok" while the process is serving.
func Handler(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{Status: "ok"}

	if err := json.WriteJSON(w, http.StatusOK, status); err != nil {
		slog.Error("error writing health check response", "error", err)
	}
}
