package effects

import (
	"github.com/ivlev/transitions/internal/expr"
	fg "github.com/ivlev/transitions/internal/filtergraph"
)

// circleMaxRadius is the reveal radius in pixels once the circle transition
// completes.
const circleMaxRadius = 600

// Zoom factors for the zoom transitions.
const (
	zoomPeak = 1.5
	zoomRest = 1.0
)

func labels(ls ...fg.Label) []fg.Label { return ls }

// fade ramps a stream's opacity over d seconds starting at t=0.
func fade(dir string, d float64, alpha bool) fg.Filter {
	opts := []fg.Option{fg.Opt("t", dir), fg.Opt("st", 0), fg.Opt("d", d)}
	if alpha {
		opts = append(opts, fg.Opt("alpha", 1))
	}
	return fg.NewFilter("fade", opts...)
}

// backdrop is a black source covering the canvas for d seconds.
func backdrop(c Canvas, d float64) fg.Filter {
	return fg.NewFilter("color",
		fg.Pos("black"),
		fg.Opt("size", c.Size()),
		fg.Opt("duration", d),
		fg.Opt("rate", c.FPS),
	)
}

func overlayAt(x, y any, d float64) fg.Filter {
	return fg.NewFilter("overlay",
		fg.Opt("x", x),
		fg.Opt("y", y),
		fg.Opt("enable", expr.Active(expr.T, d)),
	)
}

// centeredZoompan renders z over the given number of frames, keeping the
// zoom window centered.
func centeredZoompan(z expr.Node, frames int, c Canvas) fg.Filter {
	two := expr.Int(2)
	return fg.NewFilter("zoompan",
		fg.Opt("z", z),
		fg.Opt("d", frames),
		fg.Opt("x", expr.Sub(expr.Div(expr.IW, two), expr.Div(expr.Div(expr.IW, expr.Zoom), two))),
		fg.Opt("y", expr.Sub(expr.Div(expr.IH, two), expr.Div(expr.Div(expr.IH, expr.Zoom), two))),
		fg.Opt("s", c.Size()),
		fg.Opt("fps", c.FPS),
	)
}

func buildFade(in inputs) *fg.Fragment {
	var b fg.Builder
	b.Add(fg.Chain(labels(in.prev), "[fade_out]", fade("out", in.d, true)))
	b.Add(fg.Chain(labels(in.next), "[fade_in]", fade("in", in.d, true)))
	b.Add(fg.Chain(labels("[fade_out]", "[fade_in]"), "[faded]",
		fg.NewFilter("overlay", fg.Pos(0), fg.Pos(0), fg.Opt("enable", expr.Gte(expr.T, expr.Int(0)))),
	))
	return b.Build()
}

func buildDissolve(in inputs) *fg.Fragment {
	var b fg.Builder
	b.Add(fg.Chain(labels(in.prev), "[prev_dissolve]", fade("out", in.d, true)))
	b.Add(fg.Chain(labels(in.next), "[next_dissolve]", fade("in", in.d, true)))
	b.Add(fg.Chain(labels("[prev_dissolve]", "[next_dissolve]"), "[dissolve_result]",
		fg.NewFilter("blend",
			fg.Opt("all_mode", "normal"),
			fg.Opt("all_opacity", expr.FadeOut(expr.T, in.d)),
			fg.Opt("enable", expr.Active(expr.T, in.d)),
		),
	))
	return b.Build()
}

// slide moves both streams horizontally by one canvas width; dir is -1 for
// a leftward slide and +1 for a rightward one.
func slide(dir int) func(inputs) *fg.Fragment {
	return func(in inputs) *fg.Fragment {
		w := in.canvas.Width
		var b fg.Builder
		b.Add(fg.Chain(nil, "[bg_slide]", backdrop(in.canvas, in.d)))
		b.Add(fg.Chain(labels("[bg_slide]", in.prev), "[slide_out]",
			overlayAt(expr.Ramp(expr.T, 0, dir*w, in.d), 0, in.d)))
		b.Add(fg.Chain(labels("[slide_out]", in.next), "[slide_result]",
			overlayAt(expr.Ramp(expr.T, -dir*w, 0, in.d), 0, in.d)))
		return b.Build()
	}
}

func buildPushUp(in inputs) *fg.Fragment {
	h := in.canvas.Height
	var b fg.Builder
	b.Add(fg.Chain(nil, "[bg_push]", backdrop(in.canvas, in.d)))
	b.Add(fg.Chain(labels("[bg_push]", in.prev), "[push_out]",
		overlayAt(0, expr.Ramp(expr.T, 0, -h, in.d), in.d)))
	b.Add(fg.Chain(labels("[push_out]", in.next), "[push_result]",
		overlayAt(0, expr.Ramp(expr.T, h, 0, in.d), in.d)))
	return b.Build()
}

func buildWipe(in inputs) *fg.Fragment {
	c := in.canvas
	var b fg.Builder
	b.Add(fg.Chain(labels(in.next), "[wiped]",
		fg.NewFilter("crop",
			fg.Opt("w", expr.Ramp(expr.T, 0, c.Width, in.d)),
			fg.Opt("h", c.Height),
			fg.Opt("x", 0),
			fg.Opt("y", 0),
		),
		fg.NewFilter("pad", fg.Pos(c.Width), fg.Pos(c.Height), fg.Pos(0), fg.Pos(0), fg.Opt("color", "black")),
	))
	b.Add(fg.Chain(labels(in.prev, "[wiped]"), "[wipe_result]",
		fg.NewFilter("overlay", fg.Pos(0), fg.Pos(0), fg.Opt("enable", expr.Active(expr.T, in.d))),
	))
	return b.Build()
}

// circleMask is opaque inside a circle around the canvas center whose
// radius grows linearly from 0 to circleMaxRadius over d seconds.
func circleMask(c Canvas, d float64) expr.Node {
	cx, cy := c.Center()
	radius := expr.Div(expr.Mul(expr.TGeq, expr.Int(circleMaxRadius)), expr.Num(d))
	return expr.If(expr.Lt(expr.Distance(cx, cy), radius), expr.Int(255), expr.Int(0))
}

func buildCircleReveal(in inputs) *fg.Fragment {
	mask := circleMask(in.canvas, in.d)
	var b fg.Builder
	b.Add(fg.Chain(nil, "[base]", backdrop(in.canvas, in.d)))
	b.Add(fg.Chain(labels("[base]"), "[mask]",
		fg.NewFilter("geq", fg.Opt("r", mask), fg.Opt("g", mask), fg.Opt("b", mask)),
	))
	b.Add(fg.Chain(labels(in.prev, "[mask]"), "[masked_prev]", fg.NewFilter("alphamerge")))
	b.Add(fg.Chain(labels(in.next, "[masked_prev]"), "[circle_result]",
		fg.NewFilter("overlay", fg.Pos(0), fg.Pos(0)),
	))
	return b.Build()
}

// zoomInFactor falls linearly from zoomPeak to zoomRest over frames and
// holds at zoomRest afterwards.
func zoomInFactor(frames int) expr.Node {
	step := expr.Div(expr.Mul(expr.Num(zoomPeak-zoomRest), expr.On), expr.Int(frames))
	return expr.Max(expr.Sub(expr.Num(zoomPeak), step), expr.Num(zoomRest))
}

// zoomOutFactor rises linearly from zoomRest to zoomPeak over frames and
// holds at zoomPeak afterwards.
func zoomOutFactor(frames int) expr.Node {
	step := expr.Div(expr.Mul(expr.Num(zoomPeak-zoomRest), expr.On), expr.Int(frames))
	return expr.Min(expr.Add(expr.Num(zoomRest), step), expr.Num(zoomPeak))
}

func buildZoomIn(in inputs) *fg.Fragment {
	c := in.canvas
	var b fg.Builder
	b.Add(fg.Chain(labels(in.next), "[zoomed]",
		fg.NewFilter("scale", fg.Pos(c.Width/2), fg.Pos(c.Height/2)),
		centeredZoompan(zoomInFactor(in.frames), in.frames, c),
	))
	b.Add(fg.Chain(labels("[zoomed]"), "[zoom_faded]", fade("in", in.d, false)))
	b.Add(fg.Chain(labels(in.prev), "[prev_faded]", fade("out", in.d, false)))
	b.Add(fg.Chain(labels("[prev_faded]", "[zoom_faded]"), "[zoom_result]",
		fg.NewFilter("overlay", fg.Pos(0), fg.Pos(0)),
	))
	return b.Build()
}

func buildZoomOut(in inputs) *fg.Fragment {
	c := in.canvas
	var b fg.Builder
	b.Add(fg.Chain(labels(in.prev), "[zoomed_out]", centeredZoompan(zoomOutFactor(in.frames), in.frames, c)))
	b.Add(fg.Chain(labels("[zoomed_out]"), "[zoom_out_faded]", fade("out", in.d, false)))
	b.Add(fg.Chain(labels(in.next), "[next_faded]", fade("in", in.d, false)))
	b.Add(fg.Chain(labels("[zoom_out_faded]", "[next_faded]"), "[zoom_out_result]",
		fg.NewFilter("overlay", fg.Pos(0), fg.Pos(0)),
	))
	return b.Build()
}
