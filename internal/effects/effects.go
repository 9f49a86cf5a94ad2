package effects

import (
	"math"

	"github.com/ivlev/transitions/internal/filtergraph"
)

// Kind enumerates the supported transitions.
type Kind int

const (
	Fade Kind = iota
	Dissolve
	SlideLeft
	SlideRight
	PushUp
	Wipe
	CircleReveal
	ZoomIn
	ZoomOut
)

// Transition generates the filter-graph fragment for one effect.
type Transition interface {
	Name() string
	Description() string
	Generate(p Params) (*filtergraph.Fragment, error)
}

// Params are the inputs of a single generation call.
type Params struct {
	Prev     string  // label of the outgoing stream, e.g. "[img0]"
	Next     string  // label of the incoming stream
	Duration float64 // seconds, must cover at least one frame
	Canvas   Canvas  // zero value means DefaultCanvas
}

// Descriptor is the static metadata of an effect.
type Descriptor struct {
	Kind            Kind
	ID              string
	Name            string
	Description     string
	DefaultDuration float64
	Aliases         []string
}

// Effect is one catalog entry: metadata plus the formula that lays out its
// filter graph.
type Effect struct {
	desc    Descriptor
	build   func(in inputs) *filtergraph.Fragment
	filters []string
}

// inputs are validated Params as seen by a formula.
type inputs struct {
	prev, next filtergraph.Label
	d          float64
	canvas     Canvas
	frames     int
}

// ID is the stable identifier, e.g. "slide_left".
func (e *Effect) ID() string { return e.desc.ID }

// Name is the human-readable name, e.g. "Slide Left".
func (e *Effect) Name() string { return e.desc.Name }

// Description is a one-sentence summary for menus and listings.
func (e *Effect) Description() string { return e.desc.Description }

// DefaultDuration is the duration in seconds used when none is configured.
func (e *Effect) DefaultDuration() float64 { return e.desc.DefaultDuration }

// Kind is the effect's variant.
func (e *Effect) Kind() Kind { return e.desc.Kind }

// Descriptor returns the effect's static metadata.
func (e *Effect) Descriptor() Descriptor { return e.desc }

// String returns the effect ID.
func (e *Effect) String() string { return e.desc.ID }

// Filters lists the engine filters the effect's fragment uses.
func (e *Effect) Filters() []string { return append([]string(nil), e.filters...) }

// FrameCount is the number of output frames p spans on its canvas.
func (e *Effect) FrameCount(p Params) int { return frameCount(p.Duration, p.canvas()) }

func (p Params) canvas() Canvas {
	if p.Canvas == (Canvas{}) {
		return DefaultCanvas
	}
	return p.Canvas
}

// Generate validates p and returns the effect's fragment. Identical inputs
// always produce identical text.
func (e *Effect) Generate(p Params) (*filtergraph.Fragment, error) {
	id := e.desc.ID
	c := p.canvas()
	if err := c.Validate(); err != nil {
		return nil, newError(CodeInvalidCanvas, id, err, "invalid canvas")
	}

	d := p.Duration
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return nil, newError(CodeInvalidDuration, id, nil, "duration must be a positive number of seconds, got %v", d)
	}
	if d*float64(c.FPS) > maxFrames {
		return nil, newError(CodeFrameCount, id, nil, "duration %vs spans more than %d frames at %d fps", d, maxFrames, c.FPS)
	}
	frames := frameCount(d, c)
	if frames < 1 {
		return nil, newError(CodeFrameCount, id, nil, "duration %vs is shorter than one frame at %d fps", d, c.FPS)
	}

	prev, err := filtergraph.ParseLabel(p.Prev)
	if err != nil {
		return nil, newError(CodeInvalidStream, id, err, "invalid previous stream")
	}
	next, err := filtergraph.ParseLabel(p.Next)
	if err != nil {
		return nil, newError(CodeInvalidStream, id, err, "invalid next stream")
	}
	if prev == next {
		return nil, newError(CodeInvalidStream, id, nil, "previous and next streams must differ, both are %s", prev)
	}

	frag := e.build(inputs{prev: prev, next: next, d: d, canvas: c, frames: frames})
	if err := frag.Validate(prev, next); err != nil {
		return nil, newError(CodeInvalidStream, id, err, "stream label collides with the effect's internal labels")
	}
	return frag, nil
}

// maxFrames bounds the frame count so it fits the engine's int frame options.
const maxFrames = math.MaxInt32

// frameCount is the number of output frames a transition of d seconds spans,
// rounded half away from zero (0.33s at 30 fps is 10 frames).
func frameCount(d float64, c Canvas) int {
	return int(math.Round(d * float64(c.FPS)))
}
