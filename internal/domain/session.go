package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

type Profile struct {
	DisplayName     string
	Role            Role
	RestrictedAgent bool
}

// Session pairs the bearer token with the admin profile it belongs to.
// A token without a profile (or vice versa) is never valid.
type Session struct {
	Token         string
	Profile       Profile
	EstablishedAt time.Time
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.Profile.DisplayName != ""
}
