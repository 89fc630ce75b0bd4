package warehouse

import "strings"

// CredentialsError reports required configuration fields that are unset.
type CredentialsError struct {
	Missing []string
}

func (e *CredentialsError) Error() string {
	return "missing snowflake credentials: " + strings.Join(e.Missing, ", ")
}

// ConnectError wraps a failure to establish a warehouse session.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return "connect to warehouse: " + e.Err.Error() }
func (e *ConnectError) Unwrap() error { return e.Err }

// QueryError wraps a statement that the warehouse rejected or aborted.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return "execute warehouse statement: " + e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }
