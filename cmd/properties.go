package cmd

import (
	"github.com/rentora/admin-cli/internal/application"
	"github.com/rentora/admin-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPropertiesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Review and moderate property listings",
	}

	cmd.AddCommand(
		newPropertiesListCmd(app),
		newPropertyActionCmd(app, "approve <id>", "Publish a pending listing", domain.ActionApprove),
		newPropertyActionCmd(app, "reject <id>", "Send a listing back to pending", domain.ActionReject),
		newPropertyActionCmd(app, "delete <id>", "Delete a listing", domain.ActionDelete),
	)

	return cmd
}

func newPropertiesListCmd(app *app) *cobra.Command {
	var query string
	var status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List property listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := guardRoute(app, policyReadOnly); err != nil {
				return err
			}

			statusFilter, err := parseStatusFilter(domain.CollectionProperties, status)
			if err != nil {
				return err
			}

			criteria := application.FilterCriteria{Query: query, Status: statusFilter}
			return refreshAndRender(cmd, app, domain.CollectionProperties, criteria, "Rentora Listings", asJSON)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Substring to match against title, contact fields, and category")
	cmd.Flags().StringVar(&status, "status", "", "Status filter (pending or published)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPropertyActionCmd(app *app, use, short string, action domain.ModerationAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardRoute(app, policyModerate); err != nil {
				return err
			}

			outcome, err := app.moderation.Apply(cmd.Context(), domain.CollectionProperties, args[0], action)
			if err != nil {
				return err
			}

			reportOutcome(cmd, outcome)
			return nil
		},
	}
}
