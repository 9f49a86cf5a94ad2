package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/transitions/internal/effects"
	"github.com/ivlev/transitions/internal/plan"
)

func newPlanCmd() *cobra.Command {
	var initOnly bool

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Generate every transition listed in a plan file",
		Long: `Plan reads a YAML file listing transitions and prints one fragment per
line, in file order. With --init it writes a sample plan instead.`,
		Example: `  transitions plan --init deck.yaml
  transitions plan deck.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			path := args[0]

			if initOnly {
				if err := plan.Write(samplePlan(), path); err != nil {
					return fmt.Errorf("write plan: %w", err)
				}
				printSuccess(cmd.ErrOrStderr(), "Wrote sample plan to %s", path)
				return nil
			}

			p, err := plan.Read(path, a.cfg)
			if err != nil {
				return err
			}
			a.logger.Debug("read plan", "path", path, "transitions", len(p.Transitions))

			results, err := plan.Generate(cmd.Context(), p, a.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				a.logger.Debug("generated", "index", r.Index, "effect", r.Effect, "duration", r.Duration, "output", r.Fragment.Output)
				fmt.Fprintln(out, r.Fragment)
			}
			a.logger.Info("plan generated", "transitions", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "write a sample plan using every effect and exit")
	return cmd
}

// samplePlan chains every effect across consecutive image streams.
func samplePlan() *plan.Plan {
	p := &plan.Plan{Version: plan.Version}
	for i, id := range effects.IDs() {
		p.Transitions = append(p.Transitions, plan.Entry{
			Effect: id,
			Prev:   fmt.Sprintf("[img%d]", i),
			Next:   fmt.Sprintf("[img%d]", i+1),
		})
	}
	return p
}
