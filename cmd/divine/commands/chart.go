package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func chartCmd(e *env) *cobra.Command {
	var clock, place, pngPath string

	cmd := &cobra.Command{
		Use:   "chart <YYYY-MM-DD>",
		Short: "Generate a birth chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			chart, err := e.svc.GenerateBirthChart(ctx, args[0], clock, place)
			if err != nil {
				return err
			}
			if pngPath != "" {
				img, err := e.svc.RenderChartImage(ctx, args[0], clock, place)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pngPath, img.Bytes, 0o644); err != nil {
					return fmt.Errorf("write chart image: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %dx%d chart wheel to %s\n", img.Width, img.Height, pngPath)
			}
			return printJSON(cmd.OutOrStdout(), chart)
		},
	}
	cmd.Flags().StringVar(&clock, "time", "", "birth time HH:MM (default DEFAULT_BIRTH_TIME)")
	cmd.Flags().StringVar(&place, "place", "", "birth place label")
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the chart wheel to this PNG file")
	return cmd
}
