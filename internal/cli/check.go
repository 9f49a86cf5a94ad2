package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/transitions/internal/effects"
	"github.com/ivlev/transitions/internal/system"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the local ffmpeg provides every filter the transitions use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())

			available, err := system.AvailableFilters(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Debug("probed engine", "binary", system.FFmpeg, "filters", len(available))

			out := cmd.OutOrStdout()
			unavailable := 0
			for _, e := range effects.All() {
				missing := system.MissingFilters(e, available)
				if len(missing) == 0 {
					printSuccess(out, "%s", e.ID())
					continue
				}
				unavailable++
				printFailure(out, "%s: missing %s", e.ID(), strings.Join(missing, ", "))
			}

			if unavailable > 0 {
				return fmt.Errorf("%d of %d transitions cannot be rendered by %s", unavailable, len(effects.All()), system.FFmpeg)
			}
			return nil
		},
	}
}
