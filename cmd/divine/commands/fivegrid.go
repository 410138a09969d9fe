package commands

import (
	"github.com/spf13/cobra"
)

func fiveGridCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "five-grid <surname> <given-name>",
		Short: "Analyze a CJK name with the five-grid stroke method",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := e.svc.AnalyzeFiveGridName(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), analysis)
		},
	}
}
