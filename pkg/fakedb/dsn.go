package fakedb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// DatabaseType identifies the engine a DSN appears to point at
type DatabaseType string

const (
	PostgreSQL DatabaseType = "postgresql"
	MySQL      DatabaseType = "mysql"
	SQLite     DatabaseType = "sqlite"
	Unknown    DatabaseType = "unknown"
)

// schemeKinds maps URL-style prefixes to the engine they name
var schemeKinds = []struct {
	prefix string
	kind   DatabaseType
}{
	{"postgresql://", PostgreSQL},
	{"postgres://", PostgreSQL},
	{"mysql://", MySQL},
	{"sqlite://", SQLite},
	{"sqlite3://", SQLite},
	{"file:", SQLite},
}

// libpq keywords that mark a space-separated key=value DSN as PostgreSQL
var postgresKeywords = map[string]bool{
	"host":     true,
	"hostaddr": true,
	"dbname":   true,
	"user":     true,
	"port":     true,
	"sslmode":  true,
}

// Kind guesses the database type from a DSN. The DSN is opaque to the fake
// connection; the result is only used to annotate diagnostics.
func Kind(dsn string) DatabaseType {
	normalized := strings.ToLower(strings.TrimSpace(dsn))

	for _, s := range schemeKinds {
		if strings.HasPrefix(normalized, s.prefix) {
			return s.kind
		}
	}

	switch {
	case hasPostgresKeyword(normalized):
		return PostgreSQL
	case strings.HasSuffix(normalized, ".db"), normalized == ":memory:":
		return SQLite
	}

	return Unknown
}

func hasPostgresKeyword(dsn string) bool {
	for _, field := range strings.Fields(dsn) {
		key, _, found := strings.Cut(field, "=")
		if found && postgresKeywords[strings.TrimSpace(key)] {
			return true
		}
	}
	return false
}

var (
	keywordPassword = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)
	queryPassword   = regexp.MustCompile(`(?i)([?&]password=)[^&]*`)
)

// Redact masks any password in dsn so it can be logged.
//
// In URL form the userinfo runs from "://" to the last "@", which also
// covers passwords holding an unescaped "#" or an invalid escape.
func Redact(dsn string) string {
	i := strings.Index(dsn, "://")
	if i < 0 {
		return keywordPassword.ReplaceAllString(dsn, "${1}xxxxx")
	}

	scheme, rest := dsn[:i+3], dsn[i+3:]
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		if user, _, hasPassword := strings.Cut(rest[:at], ":"); hasPassword {
			rest = user + ":xxxxx" + rest[at:]
		}
	}

	return scheme + queryPassword.ReplaceAllString(rest, "${1}xxxxx")
}

// Describe summarizes a PostgreSQL DSN as user@host:port/database. ok is
// false when dsn is not a PostgreSQL DSN or cannot be parsed.
func Describe(dsn string) (summary string, ok bool) {
	if Kind(dsn) != PostgreSQL {
		return "", false
	}

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database), true
}
