package warehouse

import (
	"strings"

	"github.com/snowflakedb/gosnowflake"
)

// Config holds the credentials and scope for warehouse sessions. It is built
// once at startup and handed to the client explicitly; nothing in the request
// path reads the environment.
type Config struct {
	Account   string
	User      string
	Password  string
	Warehouse string
	Database  string
	Schema    string
	Role      string
}

// Validate reports which required credential fields are unset. Database and
// schema carry defaults and are not required here.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Account) == "" {
		missing = append(missing, "account")
	}
	if strings.TrimSpace(c.User) == "" {
		missing = append(missing, "user")
	}
	if strings.TrimSpace(c.Password) == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(c.Warehouse) == "" {
		missing = append(missing, "warehouse")
	}
	if strings.TrimSpace(c.Role) == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return &CredentialsError{Missing: missing}
	}
	return nil
}

func (c Config) dsn() (string, error) {
	return gosnowflake.DSN(&gosnowflake.Config{
		Account:   c.Account,
		User:      c.User,
		Password:  c.Password,
		Warehouse: c.Warehouse,
		Database:  c.Database,
		Schema:    c.Schema,
		Role:      c.Role,
	})
}
