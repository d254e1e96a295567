package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

func TestSessionStore_SetGet(t *testing.T) {
	store := NewSessionStore(time.Minute)

	session := &Session{
		Transcript: "hello",
		Summary:    &entities.EnrichedSummary{Summary: "short"},
		CreatedAt:  time.Now(),
	}
	store.Set("abc", session)

	got, ok := store.Get("abc")
	require.True(t, ok)
	assert.Equal(t, session, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestSessionStore_Overwrite(t *testing.T) {
	store := NewSessionStore(time.Minute)

	store.Set("abc", &Session{Transcript: "first"})
	store.Set("abc", &Session{Transcript: "second"})

	got, ok := store.Get("abc")
	require.True(t, ok)
	assert.Equal(t, "second", got.Transcript)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(time.Minute)

	store.Set("abc", &Session{Transcript: "hello"})
	store.Delete("abc")

	_, ok := store.Get("abc")
	assert.False(t, ok)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)

	store.Set("abc", &Session{Transcript: "hello"})
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get("abc")
	assert.False(t, ok)
}
