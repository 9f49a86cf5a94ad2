package cli

import (
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ivlev/transitions/internal/effects"
	"github.com/ivlev/transitions/internal/expr"
	"github.com/ivlev/transitions/internal/filtergraph"
)

// request is one transition to generate from the command line.
type request struct {
	effect     string
	prev, next string
	duration   float64
	explicit   bool // duration was given with --duration
}

type generated struct {
	effect   *effects.Effect
	params   effects.Params
	fragment *filtergraph.Fragment
}

func (a *app) generate(r request) (*generated, error) {
	e, err := effects.Lookup(r.effect)
	if err != nil {
		return nil, err
	}

	d := r.duration
	if !r.explicit {
		if d, err = a.cfg.DurationFor(e.ID()); err != nil {
			return nil, err
		}
	}

	p := effects.Params{Prev: r.prev, Next: r.next, Duration: d, Canvas: a.cfg.Canvas}
	frag, err := e.Generate(p)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("generated", "effect", e.ID(), "duration", d, "frames", e.FrameCount(p), "output", frag.Output)
	return &generated{effect: e, params: p, fragment: frag}, nil
}

func newGenCmd() *cobra.Command {
	var duration float64

	cmd := &cobra.Command{
		Use:   "gen <effect> <prev> <next>",
		Short: "Print the filter graph fragment of a transition",
		Example: `  transitions gen dissolve '[img0]' '[img1]'
  transitions gen slide_left '[v0]' '[v1]' --duration 0.4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := a.generate(request{
				effect:   args[0],
				prev:     args[1],
				next:     args[2],
				duration: duration,
				explicit: cmd.Flags().Changed("duration"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.fragment)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "duration in seconds (default: configured or effect default)")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var (
		duration   float64
		prev, next string
	)

	cmd := &cobra.Command{
		Use:   "inspect <effect>",
		Short: "Show a transition's fragment and its curves at the start and end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := a.generate(request{
				effect:   args[0],
				prev:     prev,
				next:     next,
				duration: duration,
				explicit: cmd.Flags().Changed("duration"),
			})
			if err != nil {
				return err
			}

			samples, err := sampleCurves(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("%s (%s)", g.effect.Name(), g.effect.ID()))
			printKeyValue(out, 10, "duration", fmt.Sprintf("%gs", g.params.Duration))
			printKeyValue(out, 10, "frames", fmt.Sprintf("%d", g.effect.FrameCount(g.params)))
			printKeyValue(out, 10, "output", string(g.fragment.Output))
			fmt.Fprintln(out)
			fmt.Fprintln(out, g.fragment)
			fmt.Fprintln(out)

			width := 0
			for _, s := range samples {
				width = max(width, len(s.where))
			}
			for _, s := range samples {
				printKeyValue(out, width, s.where, fmt.Sprintf("%g %s %g", s.start, iconArrow, s.end))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "duration in seconds (default: configured or effect default)")
	cmd.Flags().StringVar(&prev, "prev", "[prev]", "label of the outgoing stream")
	cmd.Flags().StringVar(&next, "next", "[next]", "label of the incoming stream")
	return cmd
}

// sample is a time-varying option evaluated at the first and last frame.
type sample struct {
	where      string // "[slide_out] overlay.x"
	start, end float64
}

var clockVars = []expr.Var{expr.T, expr.TGeq, expr.On}

// sampleCurves evaluates every time-varying option of g at t=0 and t=d.
// Pixel expressions are sampled at the canvas center.
func sampleCurves(g *generated) ([]sample, error) {
	c := g.params.Canvas
	if c == (effects.Canvas{}) {
		c = effects.DefaultCanvas
	}
	d := g.params.Duration
	cx, cy := c.Center()

	env := func(t float64) expr.Env {
		return expr.Env{
			expr.T:    t,
			expr.TGeq: t,
			expr.On:   math.Round(t * float64(c.FPS)),
			expr.Zoom: 1,
			expr.IW:   float64(c.Width),
			expr.IH:   float64(c.Height),
			expr.X:    float64(cx),
			expr.Y:    float64(cy),
		}
	}

	var samples []sample
	for _, s := range g.fragment.Statements {
		for _, f := range s.Chain {
			for _, o := range f.Options {
				if o.Expr == nil || !timeVarying(o.Expr) {
					continue
				}
				start, err := expr.Eval(o.Expr, env(0))
				if err != nil {
					return nil, fmt.Errorf("%s.%s: %w", f.Name, o.Key, err)
				}
				end, err := expr.Eval(o.Expr, env(d))
				if err != nil {
					return nil, fmt.Errorf("%s.%s: %w", f.Name, o.Key, err)
				}
				samples = append(samples, sample{
					where: fmt.Sprintf("%s %s.%s", s.Outputs[0], f.Name, o.Key),
					start: start,
					end:   end,
				})
			}
		}
	}
	return samples, nil
}

func timeVarying(n expr.Node) bool {
	for _, v := range expr.Vars(n) {
		if slices.Contains(clockVars, v) {
			return true
		}
	}
	return false
}
