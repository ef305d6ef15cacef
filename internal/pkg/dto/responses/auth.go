package responses

import "medicenter-service/internal/pkg/hospitaldto"

// Auth responses carry redirect targets as data. Navigation is the caller's
// side effect; the session layer never navigates on its own.

type Login struct {
	Token      string            `json:"token"`
	User       *hospitaldto.User `json:"user"`
	RedirectTo string            `json:"redirect_to"`
}

type Register struct {
	Token      string            `json:"token"`
	User       *hospitaldto.User `json:"user"`
	RedirectTo string            `json:"redirect_to"`
}

type Logout struct {
	RedirectTo string `json:"redirect_to"`
}

// Session mirrors the SPA's session context: loading is reported by the
// transport (a pending request), so only the resolved states remain.
type Session struct {
	Authenticated bool              `json:"authenticated"`
	User          *hospitaldto.User `json:"user,omitempty"`
}
