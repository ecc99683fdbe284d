package db

import (
	"strings"
)

// IsPostgres reports whether the DSN targets PostgreSQL. Anything else is
// treated as a SQLite file path or SQLite URI.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// NormalizeDSN trims whitespace and surrounding quotes; quoted values slip in
// easily via .env files.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	return strings.Trim(s, "\"'")
}

// MigrateURL converts a DSN into the URL form golang-migrate expects:
// postgres URLs pass through, SQLite paths gain the sqlite3:// scheme.
func MigrateURL(dsn string) string {
	dsn = NormalizeDSN(dsn)
	if IsPostgres(dsn) {
		return dsn
	}
	if strings.HasPrefix(dsn, "sqlite3://") {
		return dsn
	}
	return "sqlite3://" + dsn
}
