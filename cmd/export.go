package cmd

import (
	"fmt"
	"os"

	"github.com/rentora/admin-cli/internal/application"
	"github.com/rentora/admin-cli/internal/domain"
	"github.com/spf13/cobra"
)

const exportFileMode = 0o644

func newExportCmd(app *app) *cobra.Command {
	var role string
	var query string
	var status string
	var outPath string

	cmd := &cobra.Command{
		Use:       "export users|properties",
		Short:     "Export the filtered view as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"users", "properties"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardRoute(app, policyModerate); err != nil {
				return err
			}

			var key domain.CollectionKey
			switch args[0] {
			case "users":
				resolved, err := collectionForRole(role)
				if err != nil {
					return err
				}
				key = resolved
			case "properties":
				key = domain.CollectionProperties
			default:
				return fmt.Errorf("unknown export target %q", args[0])
			}

			statusFilter, err := parseStatusFilter(key, status)
			if err != nil {
				return err
			}

			view, err := refreshCollection(cmd, app, key, false)
			if err != nil {
				return err
			}

			visible := application.VisibleRecords(view.Records, application.FilterCriteria{Query: query, Status: statusFilter})
			artifact := application.ExportCSV(visible)

			if err := os.WriteFile(outPath, artifact, exportFileMode); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(visible), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "user", "Account role when exporting users (owner or user)")
	cmd.Flags().StringVar(&query, "query", "", "Substring filter applied before export")
	cmd.Flags().StringVar(&status, "status", "", "Status filter applied before export")
	cmd.Flags().StringVar(&outPath, "out", "", "Destination .csv path")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
