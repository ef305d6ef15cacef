package redis

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionRepository struct {
	redisRepository contracts.RedisRepository
	sessionTTL      time.Duration
}

func NewSessionRepository(redisRepository contracts.RedisRepository, sessionTTL time.Duration) contracts.SessionRepository {
	return &sessionRepository{
		redisRepository: redisRepository,
		sessionTTL:      sessionTTL,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	// Both tokens present together or the session is not valid at all.
	if !session.HasTokenPair() {
		return exceptions.ErrUpstreamTokensIncomplete()
	}
	return r.redisRepository.Set(ctx, constvars.SessionKeyPrefix+session.SessionID, session, r.sessionTTL)
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := r.redisRepository.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	if !session.HasTokenPair() {
		// A half-written token pair is treated as an authentication failure
		// and cleared.
		_ = r.redisRepository.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	return &session, nil
}

func (r *sessionRepository) UpdateSession(ctx context.Context, session *models.Session) error {
	if !session.HasTokenPair() {
		return exceptions.ErrUpstreamTokensIncomplete()
	}
	return r.redisRepository.Set(ctx, constvars.SessionKeyPrefix+session.SessionID, session, r.sessionTTL)
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.redisRepository.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}
