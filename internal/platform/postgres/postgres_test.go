package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectRejectsEmptyDSN(t *testing.T) {
	_, err := Connect(context.Background(), "   ")
	require.Error(t, err)
}

func TestConnectWithFallback_EmptyDSN(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	db, cleanup := ConnectWithFallback(context.Background(), "", logger)
	require.Nil(t, db)
	require.NotNil(t, cleanup)
	cleanup()
	require.Contains(t, logs.String(), "POSTGRES_DSN not set")
}
