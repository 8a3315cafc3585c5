package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ra",
		Short:         "Rentora Admin CLI (ra): moderate accounts and property listings",
		Long:          "ra (Rentora Admin CLI) lets operators log in to the Rentora platform, review owner and user accounts, moderate property listings, and export the filtered view as CSV from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.sessions.Hydrate(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newUsersCmd(app),
		newPropertiesCmd(app),
		newExportCmd(app),
	)

	return rootCmd
}
