package domain

// RoutePolicy is static per navigable destination and never mutated at
// runtime.
type RoutePolicy struct {
	RequiresSession      bool
	AllowRestrictedAgent bool
}

type RouteDecision int

const (
	RouteRender RouteDecision = iota
	RouteRedirectLogin
	RouteRedirectRestrictedHome
)

func (d RouteDecision) String() string {
	switch d {
	case RouteRender:
		return "render"
	case RouteRedirectLogin:
		return "redirect_login"
	case RouteRedirectRestrictedHome:
		return "redirect_restricted_home"
	default:
		return "unknown"
	}
}

// DecideRoute is evaluated on every navigation, so a mid-session token
// revocation is honored on the next route change. It is pure; session
// mutation happens elsewhere.
func DecideRoute(policy RoutePolicy, session Session) RouteDecision {
	if !policy.RequiresSession {
		return RouteRender
	}
	if !session.Authenticated() {
		return RouteRedirectLogin
	}
	if session.Profile.RestrictedAgent && !policy.AllowRestrictedAgent {
		return RouteRedirectRestrictedHome
	}
	return RouteRender
}
