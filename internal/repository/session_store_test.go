package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid-backend/internal/analysis"
	"studyaid-backend/internal/generator"
	"studyaid-backend/internal/session"
)

func fixedQuiz(analysis.Document) []generator.MCQItem {
	return []generator.MCQItem{{Question: "Q", Options: []string{"a", "b", "c", "d"}, Answer: "a", Concept: "k"}}
}

func sampleState() *session.State {
	s := session.New(uuid.New())
	s.ApplyContent("Osmosis is the movement of water across a membrane.", session.SourceText, 3, fixedQuiz)
	_ = s.Select(0, "b")
	return s
}

func exerciseStore(t *testing.T, store SessionStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := sampleState()
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.Content, got.Content)
	assert.Equal(t, s.MCQs, got.MCQs)
	assert.Equal(t, "b", got.Selections[0])
	assert.Equal(t, s.Flashcards.Cards, got.Flashcards.Cards)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Minute))
}

func TestMemoryStore_SnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	s := sampleState()
	require.NoError(t, store.Save(ctx, s))

	s.Selections[0] = "c"
	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Selections[0])

	got.Flashcards.Cards[0].Term = "edited"
	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Topic 1", again.Flashcards.Cards[0].Term)
	assert.Equal(t, 1, store.Count())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(20 * time.Millisecond)
	s := sampleState()
	require.NoError(t, store.Save(ctx, s))

	time.Sleep(40 * time.Millisecond)
	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// exerciseSlidingTTL checks that reads keep a session alive past its original TTL.
func exerciseSlidingTTL(t *testing.T, store SessionStore, ttl time.Duration) {
	t.Helper()
	ctx := context.Background()
	s := sampleState()
	require.NoError(t, store.Save(ctx, s))

	for i := 0; i < 3; i++ {
		time.Sleep(ttl * 2 / 3)
		_, err := store.Get(ctx, s.ID)
		require.NoError(t, err, "read %d", i)
	}

	time.Sleep(ttl * 2)
	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_ReadsExtendTTL(t *testing.T) {
	exerciseSlidingTTL(t, NewMemoryStore(150*time.Millisecond), 150*time.Millisecond)
}

// TestRedisStore needs a reachable server, e.g. REDIS_TEST_URL=redis://localhost:6379/15.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	t.Cleanup(func() { client.Close() })

	exerciseStore(t, NewRedisStore(client, time.Minute))
	exerciseSlidingTTL(t, NewRedisStore(client, 600*time.Millisecond), 600*time.Millisecond)
}
