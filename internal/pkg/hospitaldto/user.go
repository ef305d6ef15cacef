package hospitaldto

import (
	"github.com/goccy/go-json"
)

// User is the upstream account representation. Profile may be absent; a user
// can authenticate before a profile has been filled in.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Profile  *Profile `json:"profile,omitempty"`

	bareRole string
}

type Profile struct {
	Fullname   string `json:"fullname"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender"`
	ProfilePix string `json:"profile_pix"`
	Role       string `json:"role"`
}

// Role returns the profile role, falling back to a bare top-level role field
// some upstream payloads carry instead of a nested profile.
func (u *User) Role() string {
	if u == nil {
		return ""
	}
	if u.Profile != nil && u.Profile.Role != "" {
		return u.Profile.Role
	}
	return u.bareRole
}

// bareRole captures `{"role": "..."}` payloads without a profile object.
type userAlias User

type userEnvelope struct {
	userAlias
	BareRole string `json:"role"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var env userEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*u = User(env.userAlias)
	u.bareRole = env.BareRole
	return nil
}

type LoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    *User  `json:"user,omitempty"`
}

// DashboardPayload is the upstream dashboard response, which is either a
// wrapper `{user: User}` or the bare User object. DecodeDashboardPayload
// normalizes it to a User at the boundary so nothing downstream branches on
// the shape.
type DashboardPayload struct {
	WrappedUser *User `json:"user,omitempty"`
}

func DecodeDashboardPayload(data []byte) (*User, error) {
	var wrapper DashboardPayload
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.WrappedUser != nil {
		return wrapper.WrappedUser, nil
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
