package models

import (
	"medicenter-service/internal/pkg/hospitaldto"
	"time"
)

// Session is the server-side record behind a portal JWT. AccessToken and
// RefreshToken are the upstream bearer pair; a session is only ever persisted
// with both present.
type Session struct {
	SessionID    string            `json:"session_id"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         *hospitaldto.User `json:"user,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

func (s *Session) HasTokenPair() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != ""
}
