package db

import "testing"

func TestIsPostgres(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"postgres://user:pw@localhost:5432/customers", true},
		{"postgresql://localhost/customers", true},
		{" POSTGRES://X ", true},
		{"customers.db", false},
		{"file:customers.db?cache=shared", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsPostgres(c.dsn); got != c.want {
			t.Errorf("IsPostgres(%q) = %v, want %v", c.dsn, got, c.want)
		}
	}
}

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"customers.db"`, "customers.db"},
		{"  'postgres://h/db' ", "postgres://h/db"},
		{"customers.db", "customers.db"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMigrateURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"customers.db", "sqlite3://customers.db"},
		{"sqlite3://customers.db", "sqlite3://customers.db"},
		{"postgres://u@h/db", "postgres://u@h/db"},
	}
	for _, c := range cases {
		if got := MigrateURL(c.in); got != c.want {
			t.Errorf("MigrateURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
