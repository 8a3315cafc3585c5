package cmd

import (
	"errors"
	"fmt"

	"github.com/rentora/admin-cli/internal/domain"
)

// Route policies per command family. Read-only views stay open to
// restricted agent sessions; moderation and export do not.
var (
	policyReadOnly = domain.RoutePolicy{RequiresSession: true, AllowRestrictedAgent: true}
	policyModerate = domain.RoutePolicy{RequiresSession: true, AllowRestrictedAgent: false}
)

// guardRoute is evaluated before every gated command, so a session
// cleared mid-process (for example by an expired-token response) is
// honored on the next command.
func guardRoute(app *app, policy domain.RoutePolicy) error {
	switch domain.DecideRoute(policy, app.sessions.Current()) {
	case domain.RouteRedirectLogin:
		return fmt.Errorf("%w: run `ra login` first", domain.ErrNoSession)
	case domain.RouteRedirectRestrictedHome:
		return errors.New("agent sessions cannot use this command")
	default:
		return nil
	}
}
