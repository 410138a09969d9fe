package commands

import (
	"github.com/spf13/cobra"

	"divination/internal/domain"
)

func profileCmd(e *env) *cobra.Command {
	var req domain.ProfileRequest

	cmd := &cobra.Command{
		Use:   "profile <YYYY-MM-DD>",
		Short: "Build a combined chart, numerology and five-grid profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.BirthDate = args[0]
			profile, err := e.svc.BuildProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}
	cmd.Flags().StringVar(&req.BirthTime, "time", "", "birth time HH:MM")
	cmd.Flags().StringVar(&req.Place, "place", "", "birth place label")
	cmd.Flags().StringVar(&req.Name, "name", "", "full name for the name numbers")
	cmd.Flags().StringVar(&req.Surname, "surname", "", "surname for the five-grid analysis")
	cmd.Flags().StringVar(&req.GivenName, "given", "", "given name for the five-grid analysis")
	cmd.Flags().IntVar(&req.Year, "year", 0, "target year for the personal year number")
	return cmd
}
