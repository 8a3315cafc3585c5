package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	rosteradapter "github.com/rentora/admin-cli/internal/adapters/render/roster"
	"github.com/rentora/admin-cli/internal/application"
	"github.com/rentora/admin-cli/internal/domain"
	"github.com/spf13/cobra"
)

func collectionForRole(role string) (domain.CollectionKey, error) {
	switch role {
	case "owner":
		return domain.CollectionOwners, nil
	case "user":
		return domain.CollectionUsers, nil
	default:
		return "", fmt.Errorf("unknown role %q (expected owner or user)", role)
	}
}

func parseStatusFilter(key domain.CollectionKey, value string) (domain.ModerationStatus, error) {
	if value == "" {
		return "", nil
	}

	status := domain.ModerationStatus(value)
	switch key {
	case domain.CollectionOwners, domain.CollectionUsers:
		if status == domain.StatusActive || status == domain.StatusBlocked {
			return status, nil
		}
	case domain.CollectionProperties:
		if status == domain.StatusPending || status == domain.StatusPublished {
			return status, nil
		}
	}

	return "", fmt.Errorf("status %q is not valid for %s", value, key)
}

// refreshAndRender runs a full refresh, derives the visible subset, and
// prints it as a roster or JSON.
func refreshAndRender(cmd *cobra.Command, app *app, key domain.CollectionKey, criteria application.FilterCriteria, title string, asJSON bool) error {
	view, err := refreshCollection(cmd, app, key, asJSON)
	if err != nil {
		return err
	}

	visible := application.VisibleRecords(view.Records, criteria)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	rendered, err := app.rosterRenderer(visible, rosteradapter.RenderOptions{
		Title:   title,
		Total:   len(view.Records),
		Visible: len(visible),
	})
	if err != nil {
		return fmt.Errorf("render roster: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func refreshCollection(cmd *cobra.Command, app *app, key domain.CollectionKey, quiet bool) (application.CacheView, error) {
	var view application.CacheView
	fetch := func(ctx context.Context) error {
		refreshed, err := app.syncService.Refresh(ctx, key)
		if err != nil {
			return err
		}
		view = refreshed
		return nil
	}

	if quiet {
		if err := fetch(cmd.Context()); err != nil {
			return application.CacheView{}, err
		}
		return view, nil
	}

	label := fmt.Sprintf("Fetching %s...", key)
	if err := runRefreshSpinner(cmd.Context(), cmd.ErrOrStderr(), label, fetch); err != nil {
		return application.CacheView{}, err
	}

	return view, nil
}

func reportOutcome(cmd *cobra.Command, outcome application.ModerationOutcome) {
	out := cmd.OutOrStdout()

	switch {
	case outcome.Removed && outcome.Applied:
		_, _ = fmt.Fprintf(out, "Removed %s\n", outcome.ID)
	case outcome.Removed:
		_, _ = fmt.Fprintf(out, "Removed %s on the server; it was already gone locally\n", outcome.ID)
	case outcome.Applied:
		_, _ = fmt.Fprintf(out, "%s is now %s\n", outcome.ID, outcome.Status.Label())
	default:
		_, _ = fmt.Fprintf(out, "%s confirmed %s on the server; the local view had moved on, refresh to reconcile\n", outcome.ID, outcome.Status.Label())
	}

	if outcome.Message != "" {
		_, _ = fmt.Fprintln(out, outcome.Message)
	}
}
