package postgres_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/storage/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_RequiresDB(t *testing.T) {
	err := postgres.Migrate(context.Background(), nil)
	require.Error(t, err)
}

func TestSchemaMigrationContainsTables(t *testing.T) {
	names, err := postgres.Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	data, err := os.ReadFile(filepath.Join("migrations", names[0]))
	require.NoError(t, err)
	content := string(data)

	checks := []string{
		"-- +goose Up",
		"-- +goose Down",
		"CREATE TABLE IF NOT EXISTS users",
		"email VARCHAR(255) NOT NULL UNIQUE",
		"CREATE TABLE IF NOT EXISTS vendors",
		"user_id UUID NOT NULL UNIQUE REFERENCES users(id)",
		"rating DOUBLE PRECISION NULL",
		"CONSTRAINT uq_reviews_item_user UNIQUE (item_id, user_id)",
		"items JSONB NOT NULL DEFAULT '[]'::jsonb",
		"version INT NOT NULL DEFAULT 1",
		"address_id UUID NULL REFERENCES addresses(id) ON DELETE SET NULL",
		"payment_id UUID NULL REFERENCES payments(id) ON DELETE SET NULL",
		"total_cost BIGINT NOT NULL",
		"line_total BIGINT NOT NULL",
		"order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE",
		"CREATE TABLE IF NOT EXISTS notifications",
	}

	for _, sub := range checks {
		assert.Contains(t, content, sub)
	}
}

func TestMigrationFilesAreVersioned(t *testing.T) {
	err := filepath.WalkDir("migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		base := filepath.Base(path)
		version, _, ok := strings.Cut(base, "_")
		assert.True(t, ok, base)
		assert.Len(t, version, 14, base)
		assert.True(t, strings.HasSuffix(base, ".sql"), base)
		return nil
	})
	require.NoError(t, err)
}
