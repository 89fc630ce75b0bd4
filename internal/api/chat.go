package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campaignchat/campaignchat/internal/chat"
	"github.com/campaignchat/campaignchat/internal/observability"
	"github.com/campaignchat/campaignchat/internal/warehouse"
)

// Client-visible error texts. Driver detail stays in the server log; the
// strings below are the whole story a caller gets.
const (
	msgInvalidBody        = "Invalid request body. Send JSON with a message field."
	msgNoMessage          = "No message provided. Ask a question about your campaign data."
	msgMissingCredentials = "Missing Snowflake credentials. Set SNOWFLAKE_ACCOUNT, SNOWFLAKE_USER, SNOWFLAKE_PASSWORD, SNOWFLAKE_WAREHOUSE and SNOWFLAKE_ROLE."
	msgConnectFailed      = "Failed to connect to the data warehouse. Please try again later."
	msgQueryFailed        = "Query execution failed. Please try a different question."
	msgUnexpected         = "Something went wrong while answering your question."
)

func handleChat(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Chat == nil {
		writeChatError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}

	var req chat.Request
	if err := decodeJSON(r, &req); err != nil {
		writeChatError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeChatError(w, http.StatusBadRequest, msgNoMessage)
		return
	}

	resp, err := deps.Chat.Respond(r.Context(), req.Message)
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.ErrorContext(r.Context(), "chat request failed",
				slog.String("trace_id", observability.TraceIDFromContext(r.Context())),
				slog.Any("error", err),
			)
		}
		status, message := chatErrorFor(err)
		writeChatError(w, status, message)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// chatErrorFor folds the pipeline's typed failures into the fixed taxonomy
// the UI renders. Everything lands on 500 except request validation, which
// is handled before the pipeline runs.
func chatErrorFor(err error) (int, string) {
	var credentialsErr *warehouse.CredentialsError
	if errors.As(err, &credentialsErr) {
		return http.StatusInternalServerError, msgMissingCredentials
	}
	var connectErr *warehouse.ConnectError
	if errors.As(err, &connectErr) {
		return http.StatusInternalServerError, msgConnectFailed
	}
	var queryErr *warehouse.QueryError
	if errors.As(err, &queryErr) {
		return http.StatusInternalServerError, msgQueryFailed
	}
	return http.StatusInternalServerError, msgUnexpected
}

// writeChatError keeps the ChatResponse shape on failures so the UI can
// render the error as an assistant turn.
func writeChatError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, chat.Response{Error: message})
}
