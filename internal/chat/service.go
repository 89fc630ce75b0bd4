// Package chat runs the question-to-answer pipeline: classify the message,
// execute the matching fixed statement, then summarize and project the same
// row set.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campaignchat/campaignchat/internal/chart"
	"github.com/campaignchat/campaignchat/internal/intent"
	"github.com/campaignchat/campaignchat/internal/observability"
	"github.com/campaignchat/campaignchat/internal/rowset"
	"github.com/campaignchat/campaignchat/internal/summary"
	"github.com/campaignchat/campaignchat/internal/warehouse"
)

// Executor runs one fixed statement against the warehouse.
type Executor interface {
	Execute(ctx context.Context, sqlText string) (rowset.RowSet, error)
}

type Service struct {
	executor Executor
	logger   *slog.Logger
}

func NewService(executor Executor, logger *slog.Logger) *Service {
	return &Service{executor: executor, logger: logger}
}

// Respond answers one message. Classification happens exactly once and its
// result drives the statement choice, the summary, and the chart, so the
// three stages cannot disagree. Errors come back typed for the endpoint to
// translate; no retry is attempted.
func (s *Service) Respond(ctx context.Context, message string) (Response, error) {
	classification := intent.Classify(message)

	started := time.Now()
	rows, err := s.executor.Execute(ctx, classification.Query.SQL())
	observability.ObserveWarehouseQuery(time.Since(started), err)
	if err != nil {
		observability.ObserveChatRequest(string(classification.Topic), outcomeFor(err))
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "chat pipeline failed",
				slog.String("topic", string(classification.Topic)),
				slog.Any("error", err),
			)
		}
		return Response{}, err
	}

	payload := chart.Project(rows, classification.Topic)
	if payload != nil {
		observability.ObserveChartEmitted(string(payload.Kind))
	}
	observability.ObserveChatRequest(string(classification.Topic), "ok")
	return Response{
		Message: summary.Summarize(rows, classification.Topic),
		Chart:   payload,
	}, nil
}

func outcomeFor(err error) string {
	var credentialsErr *warehouse.CredentialsError
	if errors.As(err, &credentialsErr) {
		return "credentials_missing"
	}
	var connectErr *warehouse.ConnectError
	if errors.As(err, &connectErr) {
		return "connect_failed"
	}
	var queryErr *warehouse.QueryError
	if errors.As(err, &queryErr) {
		return "query_failed"
	}
	return "error"
}
