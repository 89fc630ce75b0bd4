// Package warehouse executes fixed read-only statements against Snowflake.
// Every call opens its own session and releases it before returning, on both
// the success and failure paths.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/snowflakedb/gosnowflake"

	"github.com/campaignchat/campaignchat/internal/rowset"
)

const listTablesSQL = "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = CURRENT_SCHEMA() ORDER BY TABLE_NAME"

// Client runs one statement per connection. There is no pooling and no shared
// state across requests; concurrent callers each get their own session.
type Client struct {
	cfg    Config
	logger *slog.Logger
	open   func() (*sql.DB, error)
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	client := &Client{cfg: cfg, logger: logger}
	client.open = client.openSnowflake
	return client
}

// Execute validates credentials, opens a session, runs the statement, and
// releases the session. A release failure is logged but never overrides the
// result already determined.
func (c *Client) Execute(ctx context.Context, sqlText string) (rowset.RowSet, error) {
	if err := c.cfg.Validate(); err != nil {
		return rowset.RowSet{}, err
	}

	db, err := c.open()
	if err != nil {
		return rowset.RowSet{}, &ConnectError{Err: err}
	}
	defer c.release(db)

	if err := db.PingContext(ctx); err != nil {
		return rowset.RowSet{}, &ConnectError{Err: err}
	}

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return rowset.RowSet{}, &QueryError{Err: err}
	}
	defer func() { _ = rows.Close() }()

	return scanRows(rows)
}

// ListTables returns the table names visible in the configured schema.
func (c *Client) ListTables(ctx context.Context) ([]string, error) {
	rs, err := c.Execute(ctx, listTablesSQL)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, rs.Len())
	for _, row := range rs.Rows {
		if name := row["table_name"].Text(); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func (c *Client) openSnowflake() (*sql.DB, error) {
	dsn, err := c.cfg.dsn()
	if err != nil {
		return nil, fmt.Errorf("build snowflake dsn: %w", err)
	}
	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snowflake: %w", err)
	}
	// One statement per session, so a pool buys nothing here.
	db.SetMaxOpenConns(1)
	return db, nil
}

func (c *Client) release(db *sql.DB) {
	if err := db.Close(); err != nil && c.logger != nil {
		c.logger.Warn("failed to release warehouse session", slog.Any("error", err))
	}
}

// scanRows materializes a sql.Rows cursor into a RowSet. Column names are
// lower-cased because Snowflake reports unquoted identifiers in upper case
// while the aggregate and chart stages address columns in lower case.
func scanRows(rows *sql.Rows) (rowset.RowSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return rowset.RowSet{}, &QueryError{Err: err}
	}
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = strings.ToLower(column)
	}

	rs := rowset.RowSet{Columns: names}
	for rows.Next() {
		cells := make([]any, len(names))
		targets := make([]any, len(names))
		for i := range cells {
			targets[i] = &cells[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return rowset.RowSet{}, &QueryError{Err: err}
		}
		row := make(rowset.Row, len(names))
		for i, name := range names {
			row[name] = cellValue(cells[i])
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return rowset.RowSet{}, &QueryError{Err: err}
	}
	return rs, nil
}

func cellValue(cell any) rowset.Value {
	switch typed := cell.(type) {
	case nil:
		return rowset.Null()
	case bool:
		return rowset.Bool(typed)
	case int64:
		return rowset.Number(float64(typed))
	case float64:
		return rowset.Number(typed)
	case []byte:
		return rowset.String(string(typed))
	case string:
		return rowset.String(typed)
	case time.Time:
		return rowset.String(typed.Format(time.RFC3339))
	default:
		return rowset.String(fmt.Sprintf("%v", typed))
	}
}
