package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	client := NewClient(validConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.open = func() (*sql.DB, error) { return db, nil }
	return client, mock
}

func TestExecuteScansAndLowerCasesColumns(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectPing()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM MARKETING_CAMPAIGNS LIMIT 50")).
		WillReturnRows(sqlmock.NewRows([]string{"CAMPAIGN_TYPE", "ROI", "CLICKS"}).
			AddRow("Email", 42.5, int64(120)).
			AddRow(nil, "17.5", int64(80)))
	mock.ExpectClose()

	rs, err := client.Execute(context.Background(), "SELECT * FROM MARKETING_CAMPAIGNS LIMIT 50")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := []string{"campaign_type", "roi", "clicks"}; !reflect.DeepEqual(rs.Columns, want) {
		t.Fatalf("Columns = %v, want %v", rs.Columns, want)
	}
	if rs.Len() != 2 {
		t.Fatalf("Len = %d, want 2", rs.Len())
	}
	if got := rs.Rows[0]["campaign_type"].Text(); got != "Email" {
		t.Errorf(`rows[0]["campaign_type"] = %q, want Email`, got)
	}
	if roi, ok := rs.Rows[0]["roi"].Float(); !ok || roi != 42.5 {
		t.Errorf(`rows[0]["roi"] = (%v, %v), want (42.5, true)`, roi, ok)
	}
	// Snowflake may hand numbers back as strings; coercion still works.
	if roi, ok := rs.Rows[1]["roi"].Float(); !ok || roi != 17.5 {
		t.Errorf(`rows[1]["roi"] = (%v, %v), want (17.5, true)`, roi, ok)
	}
	if _, ok := rs.Rows[1]["campaign_type"].Float(); ok {
		t.Error("NULL cell should not coerce to a float")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExecuteQueryFailureStillReleasesSession(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectPing()
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("SQL compilation error"))
	mock.ExpectClose()

	_, err := client.Execute(context.Background(), "SELECT * FROM MARKETING_CAMPAIGNS LIMIT 50")
	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("Execute = %v, want *QueryError", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("session was not released: %v", err)
	}
}

func TestExecutePingFailureIsConnectError(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectPing().WillReturnError(errors.New("no route to host"))
	mock.ExpectClose()

	_, err := client.Execute(context.Background(), "SELECT 1")
	var connectErr *ConnectError
	if !errors.As(err, &connectErr) {
		t.Fatalf("Execute = %v, want *ConnectError", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("session was not released: %v", err)
	}
}

func TestExecuteOpenFailureIsConnectError(t *testing.T) {
	client := NewClient(validConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.open = func() (*sql.DB, error) { return nil, errors.New("driver misconfigured") }

	_, err := client.Execute(context.Background(), "SELECT 1")
	var connectErr *ConnectError
	if !errors.As(err, &connectErr) {
		t.Fatalf("Execute = %v, want *ConnectError", err)
	}
}

func TestExecuteMissingCredentialsNeverOpens(t *testing.T) {
	client := NewClient(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.open = func() (*sql.DB, error) {
		t.Fatal("open must not be called with missing credentials")
		return nil, nil
	}

	_, err := client.Execute(context.Background(), "SELECT 1")
	var credentialsErr *CredentialsError
	if !errors.As(err, &credentialsErr) {
		t.Fatalf("Execute = %v, want *CredentialsError", err)
	}
}

func TestListTables(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectPing()
	mock.ExpectQuery(regexp.QuoteMeta(listTablesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME"}).
			AddRow("MARKETING_CAMPAIGNS").
			AddRow("MARKETING_CAMPAIGNS_STAGING"))
	mock.ExpectClose()

	names, err := client.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	want := []string{"MARKETING_CAMPAIGNS", "MARKETING_CAMPAIGNS_STAGING"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("ListTables = %v, want %v", names, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
