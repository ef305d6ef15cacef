package redis

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/hospitaldto"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestSessionRepository(t *testing.T) (*miniredis.Miniredis, *sessionRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	repo := NewSessionRepository(NewRedisRepository(client), time.Hour)
	return mr, repo.(*sessionRepository)
}

func validSession(sessionID string) *models.Session {
	return &models.Session{
		SessionID:    sessionID,
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: &hospitaldto.User{
			ID:       7,
			Username: "jdoe",
			Email:    "jdoe@example.com",
		},
		CreatedAt: time.Now(),
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	_, repo := newTestSessionRepository(t)
	ctx := context.Background()

	session := validSession("sess-1")
	assert.NoError(t, repo.CreateSession(ctx, session))

	got, err := repo.GetSession(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "access-token", got.AccessToken)
	assert.Equal(t, "refresh-token", got.RefreshToken)
	assert.Equal(t, "jdoe", got.User.Username)
}

func TestSessionRepository_CreateRejectsIncompleteTokenPair(t *testing.T) {
	_, repo := newTestSessionRepository(t)
	ctx := context.Background()

	session := validSession("sess-2")
	session.RefreshToken = ""

	err := repo.CreateSession(ctx, session)
	assert.Error(t, err)

	_, err = repo.GetSession(ctx, "sess-2")
	assert.Error(t, err)
}

func TestSessionRepository_GetClearsHalfWrittenPair(t *testing.T) {
	mr, repo := newTestSessionRepository(t)
	ctx := context.Background()

	// Simulate a record persisted with only one token.
	broken := validSession("sess-3")
	broken.AccessToken = ""
	raw, err := json.Marshal(broken)
	assert.NoError(t, err)
	mr.Set(constvars.SessionKeyPrefix+"sess-3", string(raw))

	_, err = repo.GetSession(ctx, "sess-3")
	assert.Error(t, err)
	assert.False(t, mr.Exists(constvars.SessionKeyPrefix+"sess-3"))
}

func TestSessionRepository_GetMissingSession(t *testing.T) {
	_, repo := newTestSessionRepository(t)

	_, err := repo.GetSession(context.Background(), "nope")
	assert.Error(t, err)
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	_, repo := newTestSessionRepository(t)
	ctx := context.Background()

	session := validSession("sess-4")
	assert.NoError(t, repo.CreateSession(ctx, session))
	assert.NoError(t, repo.DeleteSession(ctx, "sess-4"))
	assert.NoError(t, repo.DeleteSession(ctx, "sess-4"))
}
