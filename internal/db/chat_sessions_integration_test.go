//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestChatStore_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	store := NewChatStore(db, 3, 0)
	sessionID := chat.NewSessionID()
	t.Cleanup(func() { _ = store.Delete(context.Background(), sessionID) })

	history, err := store.History(ctx, sessionID, 10)
	require.NoError(t, err)
	assert.Empty(t, history)

	require.NoError(t, store.Append(ctx, sessionID,
		chat.Message{Role: chat.RoleUser, Content: "hi"},
		chat.Message{Role: chat.RoleAssistant, Content: "hello"},
	))

	history, err = store.History(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, chat.RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[1].Content)
	assert.False(t, history[0].CreatedAt.IsZero())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(ctx, sessionID, chat.Message{Role: chat.RoleUser, Content: fmt.Sprint(i)}))
	}

	history, err = store.History(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, history, 3, "trimmed to maxMessages")
	assert.Equal(t, "0", history[0].Content)

	history, err = store.History(ctx, sessionID, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2", history[0].Content)
}

func TestChatStore_Delete_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	store := NewChatStore(db, 0, 0)
	sessionID := chat.NewSessionID()

	require.NoError(t, store.Append(ctx, sessionID, chat.Message{Role: chat.RoleUser, Content: "bye"}))
	require.NoError(t, store.Delete(ctx, sessionID))
	assert.ErrorIs(t, store.Delete(ctx, sessionID), chat.ErrSessionNotFound)

	history, err := store.History(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatStore_DeleteIdleSessions_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	store := NewChatStore(db, 0, 0)
	sessionID := chat.NewSessionID()
	require.NoError(t, store.Append(ctx, sessionID, chat.Message{Role: chat.RoleUser, Content: "x"}))

	_, err := store.DeleteIdleSessions(ctx, time.Hour)
	require.NoError(t, err)

	history, err := store.History(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1, "active session survives")

	require.NoError(t, store.Delete(ctx, sessionID))
}

func TestChatStore_IdleSessionReadsEmpty_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	store := NewChatStore(db, 0, 2*time.Hour)
	sessionID := chat.NewSessionID()
	t.Cleanup(func() { _ = store.Delete(context.Background(), sessionID) })

	require.NoError(t, store.Append(ctx, sessionID, chat.Message{Role: chat.RoleUser, Content: "still here"}))

	history, err := store.History(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = db.pool.Exec(ctx,
		`UPDATE chat_sessions SET last_active_at = NOW() - INTERVAL '3 hours' WHERE id = $1`, sessionID)
	require.NoError(t, err)

	history, err = store.History(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, history, "idle session no longer serves history")

	history, err = store.History(ctx, sessionID, 5)
	require.NoError(t, err)
	assert.Empty(t, history)
}
