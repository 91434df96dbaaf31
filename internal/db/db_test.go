package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS chat_sessions")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS chat_messages")
	assert.Contains(t, schemaSQL, "ON DELETE CASCADE")
}

func TestConnect_InvalidURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "not a url://")
	assert.Error(t, err)
}

func TestClose_NilPool(t *testing.T) {
	assert.NotPanics(t, func() { (&DB{}).Close() })
}

func TestChatStore_ActiveSince(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	store := NewChatStore(&DB{}, 50, 2*time.Hour)
	store.now = func() time.Time { return now }
	assert.Equal(t, now.Add(-2*time.Hour), store.activeSince())

	noExpiry := NewChatStore(&DB{}, 50, 0)
	assert.True(t, noExpiry.activeSince().IsZero())
}
