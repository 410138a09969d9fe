package commands

import (
	"github.com/spf13/cobra"

	"divination/internal/service"
)

func compatCmd(e *env) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "compat <sign> <sign>",
		Short: "Score compatibility between two zodiac signs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if detailed {
				return printJSON(cmd.OutOrStdout(), e.svc.ScoreDetailedCompatibility(ctx, args[0], args[1]))
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"first":  service.NormalizeSignID(args[0]),
				"second": service.NormalizeSignID(args[1]),
				"score":  e.svc.ScoreCompatibility(ctx, args[0], args[1]),
			})
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include the breakdown, strengths and challenges")
	return cmd
}
