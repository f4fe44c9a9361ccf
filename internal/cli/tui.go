package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/tally/internal/ui/tui"
)

func tuiCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen menu",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			return tui.Run(tui.Deps{
				Store:         app.store,
				Currency:      app.cfg.Currency,
				WorkspaceRoot: app.root,
				DataPath:      app.repo.Path(),
				Logger:        app.log,
				Debug:         g.debug,
			})
		},
	}
}
