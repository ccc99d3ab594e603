package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	cases := []struct {
		url    string
		driver Driver
		dsn    string
	}{
		{"postgres://u:p@h/db", DriverPostgres, "postgres://u:p@h/db"},
		{"postgresql://u:p@h/db?sslmode=disable", DriverPostgres, "postgresql://u:p@h/db?sslmode=disable"},
		{"sqlite://data/app.sqlite", DriverSQLite, "data/app.sqlite"},
		{"sqlite:///var/lib/app.sqlite", DriverSQLite, "/var/lib/app.sqlite"},
		{"file:app.sqlite?mode=rwc", DriverSQLite, "file:app.sqlite?mode=rwc"},
		{"memory://", DriverMemory, ""},
	}
	for _, tc := range cases {
		d, dsn, err := ParseURL(tc.url)
		require.NoError(t, err, tc.url)
		require.Equal(t, tc.driver, d, tc.url)
		require.Equal(t, tc.dsn, dsn, tc.url)
	}

	for _, bad := range []string{"", "mysql://x", "sqlite://", "data/app.sqlite"} {
		_, _, err := ParseURL(bad)
		require.Error(t, err, bad)
	}
}
