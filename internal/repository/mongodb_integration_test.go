//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := getSharedContainerURI()
	dbName := sanitizeDBName(t.Name())

	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Catalogs)
		assert.NotNil(t, db.Scenarios)
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.HealthCheck(pingCtx))
	})

	t.Run("indexes created", func(t *testing.T) {
		cursor, err := db.Scenarios.Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "updated_at_-1")
		assert.Contains(t, names, "name_1")
	})

	t.Run("reconnect is idempotent", func(t *testing.T) {
		again, err := NewMongoDB(uri, dbName)
		require.NoError(t, err)
		assert.NoError(t, again.Close(ctx))
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 300 * time.Millisecond

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
	assert.Error(t, err)
}
