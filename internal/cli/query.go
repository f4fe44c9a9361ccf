package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tally/internal/usecase"
)

func queryCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression against the recorded expenses",
		Example: `  tally query '$[?(@.category == "Food")].amount'
  tally query '$[-1:]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*g)
			if err != nil {
				return err
			}
			defer app.close()

			val, err := usecase.NewQuery(app.store).Execute(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(val)
		},
	}
}
