package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tally/internal/ui/console"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	workspace string
	dataFile  string
	debug     bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "tally",
		Short:        "tally: personal expense tracker",
		Long:         "Records expenses to a JSON file and shows listings, monthly and per-category totals.\nWithout a subcommand an interactive menu is started.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(g)
			if err != nil {
				return err
			}
			defer app.close()

			menu := console.New(app.store, cmd.InOrStdin(), cmd.OutOrStdout(),
				console.WithCurrency(app.cfg.Currency),
				console.WithLogger(app.log),
			)
			if err := menu.Run(); err != nil {
				app.log.Error("menu.failed", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected from tally.yaml, else the current directory)")
	cmd.PersistentFlags().StringVarP(&g.dataFile, "data", "f", "", "Expenses JSON file (overrides tally.yaml data_file)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .tally/logs/tally.log")

	cmd.AddCommand(
		addCmd(&g),
		listCmd(&g),
		monthCmd(&g),
		categoriesCmd(&g),
		exportCmd(&g),
		queryCmd(&g),
		initCmd(&g),
		tuiCmd(&g),
		versionCmd(),
	)
	return cmd
}
