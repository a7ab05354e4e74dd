package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func testSession(id string, ttl time.Duration) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		Token:     "token-" + id,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := testSession("s1", time.Hour)
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Token, got.Token)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestSessionStore_Save_Validation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, domainauth.Session{Token: "t", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.Error(t, store.Save(ctx, domainauth.Session{ID: "s", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.Error(t, store.Save(ctx, testSession("s", -time.Minute)))
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Get_TTLEviction(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1", time.Minute)))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Get_ExpiredRecordCleanedUp(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	// A record whose stored expiry has passed but whose redis key still
	// exists, as happens with clock skew between writers.
	sess := testSession("s1", 50*time.Millisecond)
	require.NoError(t, store.Save(ctx, sess))
	time.Sleep(60 * time.Millisecond)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists("session:s1"))
}

func TestSessionStore_Delete_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1", time.Hour)))
	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewSessionStoreWithPrefix(client, "console:")
	require.NoError(t, store.Save(context.Background(), testSession("s1", time.Hour)))
	assert.True(t, mr.Exists("console:s1"))
}
