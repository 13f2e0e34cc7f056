package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionSQLite(t *testing.T) {
	db, err := NewConnection("sqlite", ":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())
}

func TestNewConnectionUnknownDriver(t *testing.T) {
	_, err := NewConnection("oracle", "x", false)
	assert.ErrorContains(t, err, "unsupported database driver")
}
