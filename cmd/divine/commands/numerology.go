package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"divination/internal/service"
)

func numerologyCmd(e *env) *cobra.Command {
	var date string
	var year int

	cmd := &cobra.Command{
		Use:   "numerology <name>",
		Short: "Compute the numerology report for a name and optional birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := e.svc.BuildNumerologyReport(cmd.Context(), args[0], date, year)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "birth date YYYY-MM-DD")
	cmd.Flags().IntVar(&year, "year", 0, "target year for the personal year number (default current year)")
	return cmd
}

func lifeNumberCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "life-number <n>",
		Short: "Show the interpretation profile for a life number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := service.ParseLifeNumber(args[0])
			if !ok {
				return fmt.Errorf("life number must be a positive integer, got %q", args[0])
			}
			profile := e.svc.LookupLifeNumberProfile(cmd.Context(), n)
			if profile == nil {
				return fmt.Errorf("no profile for life number %d", n)
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}
}
