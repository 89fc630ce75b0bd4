package api

import (
	"log/slog"
	"net/http"

	"github.com/campaignchat/campaignchat/internal/observability"
)

// handleListTables backs the schema browser in the UI. Failures intentionally
// return a generic message only; warehouse driver errors are logged
// server-side and never forwarded to the client.
func handleListTables(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Tables == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]any{"error": "table listing is not configured"})
		return
	}

	names, err := deps.Tables.ListTables(r.Context())
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.ErrorContext(r.Context(), "failed to list warehouse tables",
				slog.String("trace_id", observability.TraceIDFromContext(r.Context())),
				slog.Any("error", err),
			)
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to list tables"})
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tables": names})
}
