package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/config"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/health"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectPing().SetVal("PONG")

		require.NoError(t, health.RedisCheck(client)(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unreachable", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectPing().SetErr(errors.New("connection refused"))

		err := health.RedisCheck(client)(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis ping failed")
	})

	t.Run("Nil client", func(t *testing.T) {
		assert.Error(t, health.RedisCheck(nil)(context.Background()))
	})
}

func TestNewHealthHandler(t *testing.T) {
	client, _ := redismock.NewClientMock()
	cfg := &config.Config{Database: config.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "db", SSLMode: "disable"}}

	h, err := health.NewHealthHandler(cfg, client)

	require.NoError(t, err)
	assert.NotNil(t, h.Handler())
}
