package commands

import (
	"github.com/spf13/cobra"
)

func signCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <YYYY-MM-DD>",
		Short: "Resolve the sun sign for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sign, err := e.svc.ResolveZodiacSign(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sign)
		},
	}
}
