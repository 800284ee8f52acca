package postgres

import (
	"context"
	"testing"

	"mapbook/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB opens a postgres dialect session that builds statements without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=mapbook dbname=mapbook sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db
}

type capturedStatement struct {
	sql  string
	vars []any
}

func captureQueries(t *testing.T, db *gorm.DB) *capturedStatement {
	t.Helper()

	captured := &capturedStatement{}
	err := db.Callback().Query().After("gorm:query").Register("mapbook:capture_query", func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
	})
	require.NoError(t, err)

	return captured
}

func TestAddressRepository_FindWhere_Statement(t *testing.T) {
	tests := []struct {
		name     string
		filter   repository.Filter
		contains []string
		vars     []any
	}{
		{
			name:     "owner compared case-insensitively",
			filter:   repository.Filter{repository.Eq(repository.FieldUser, " Owner@Example.com ")},
			contains: []string{`FROM "addresses"`, "WHERE LOWER(user_email) = $1"},
			vars:     []any{"owner@example.com"},
		},
		{
			name:     "public flag",
			filter:   repository.Filter{repository.Eq(repository.FieldIsPublic, true)},
			contains: []string{`WHERE "addresses"."is_public" = $1`},
			vars:     []any{true},
		},
		{
			name: "compound filter",
			filter: repository.Filter{
				repository.Eq(repository.FieldUser, "owner@example.com"),
				repository.Eq(repository.FieldIsPublic, false),
			},
			contains: []string{`WHERE LOWER(user_email) = $1 AND "addresses"."is_public" = $2`},
			vars:     []any{"owner@example.com", false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDryRunDB(t)
			captured := captureQueries(t, db)
			repo := NewAddressRepository(db, true)

			addresses, err := repo.FindWhere(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Empty(t, addresses)

			for _, fragment := range tt.contains {
				assert.Contains(t, captured.sql, fragment)
			}
			assert.Contains(t, captured.sql, `ORDER BY "addresses"."created_at","addresses"."id"`)
			assert.Equal(t, tt.vars, captured.vars)
		})
	}
}

func TestAddressRepository_FindWhere_UnsupportedClause(t *testing.T) {
	db := newDryRunDB(t)
	captured := captureQueries(t, db)
	repo := NewAddressRepository(db, true)

	tests := []struct {
		name   string
		filter repository.Filter
	}{
		{name: "unknown field", filter: repository.Filter{repository.Eq("name", "Cafe")}},
		{name: "user is not a string", filter: repository.Filter{repository.Eq(repository.FieldUser, 42)}},
		{name: "isPublic is not a bool", filter: repository.Filter{repository.Eq(repository.FieldIsPublic, "yes")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindWhere(context.Background(), tt.filter)
			assert.True(t, errors.Is(err, repository.ErrUnsupportedQuery))
		})
	}
	assert.Empty(t, captured.sql)
}

func TestAddressRepository_SetOwner_Statement(t *testing.T) {
	db := newDryRunDB(t)

	var statement string
	err := db.Callback().Update().After("gorm:update").Register("mapbook:capture_update", func(tx *gorm.DB) {
		statement = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	repo := NewAddressRepository(db, true)

	// Nothing is written in a dry run, so no row matches.
	err = repo.SetOwner(context.Background(), "a1", "new@example.com")
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
	assert.Contains(t, statement, `UPDATE "addresses" SET "user_email"=$1`)
	assert.Contains(t, statement, `WHERE "addresses"."id" = $2`)
}
