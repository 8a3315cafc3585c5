package cmd

import (
	"github.com/rentora/admin-cli/internal/application"
	"github.com/rentora/admin-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Review and moderate platform accounts",
	}

	cmd.AddCommand(newUsersListCmd(app), newUsersBlockCmd(app))

	return cmd
}

func newUsersListCmd(app *app) *cobra.Command {
	var role string
	var query string
	var status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts by role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := guardRoute(app, policyReadOnly); err != nil {
				return err
			}

			key, err := collectionForRole(role)
			if err != nil {
				return err
			}
			statusFilter, err := parseStatusFilter(key, status)
			if err != nil {
				return err
			}

			criteria := application.FilterCriteria{Query: query, Status: statusFilter}
			return refreshAndRender(cmd, app, key, criteria, "Rentora Accounts", asJSON)
		},
	}

	cmd.Flags().StringVar(&role, "role", "user", "Account role (owner or user)")
	cmd.Flags().StringVar(&query, "query", "", "Substring to match against name, contact fields, and role")
	cmd.Flags().StringVar(&status, "status", "", "Status filter (active or blocked)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newUsersBlockCmd(app *app) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "block <id>",
		Short: "Toggle an account's block state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardRoute(app, policyModerate); err != nil {
				return err
			}

			key, err := collectionForRole(role)
			if err != nil {
				return err
			}

			outcome, err := app.moderation.Apply(cmd.Context(), key, args[0], domain.ActionToggleBlock)
			if err != nil {
				return err
			}

			reportOutcome(cmd, outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "user", "Account role (owner or user)")

	return cmd
}
