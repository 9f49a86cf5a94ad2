// Package plan generates a batch of independent transition fragments
// described by a YAML file.
package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/transitions/internal/config"
	"github.com/ivlev/transitions/internal/effects"
	"github.com/ivlev/transitions/internal/filtergraph"
)

// Version is the plan file format this package reads and writes.
const Version = "1.0"

// Plan is a list of transitions to generate.
type Plan struct {
	Version string `yaml:"version"`
	// Canvas overrides the configured canvas for every entry.
	// Keys it leaves out keep the configured values.
	Canvas      *effects.Canvas `yaml:"canvas,omitempty"`
	Transitions []Entry         `yaml:"transitions"`
}

// Entry is one transition between two streams.
type Entry struct {
	Effect   string   `yaml:"effect"`
	Prev     string   `yaml:"prev"`
	Next     string   `yaml:"next"`
	Duration *float64 `yaml:"duration,omitempty"` // seconds, nil means the configured duration
}

// Result is the generated fragment of one entry.
type Result struct {
	Index    int
	Effect   string // resolved effect ID
	Duration float64
	Fragment *filtergraph.Fragment
}

// Write writes a plan to a YAML file.
func Write(p *Plan, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a plan from a YAML file. Unknown keys are rejected, and canvas
// keys the file leaves out are taken from cfg.
func Read(path string, cfg *config.Config) (*Plan, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	base := cfg.Canvas
	p := Plan{Canvas: &base}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if p.Canvas != nil && *p.Canvas == cfg.Canvas {
		p.Canvas = nil
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}

	return &p, nil
}

// Validate checks the plan structure. Effect parameters are checked when
// the plan is generated.
func (p *Plan) Validate() error {
	if p.Version != Version {
		return fmt.Errorf("unsupported version %q, want %q", p.Version, Version)
	}
	if len(p.Transitions) == 0 {
		return fmt.Errorf("no transitions")
	}
	if p.Canvas != nil {
		if err := p.Canvas.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Generate builds the fragment of every entry concurrently. Results are in
// entry order. When entries fail, the error of the lowest failing index is
// returned.
func Generate(ctx context.Context, p *Plan, cfg *config.Config) ([]Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	canvas := cfg.Canvas
	if p.Canvas != nil {
		canvas = *p.Canvas
	}

	results := make([]Result, len(p.Transitions))
	errs := make([]error, len(p.Transitions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, entry := range p.Transitions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := generateEntry(entry, canvas, cfg)
			if err != nil {
				errs[i] = fmt.Errorf("transition %d (%s): %w", i, entry.Effect, err)
				return nil
			}
			res.Index = i
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func generateEntry(entry Entry, canvas effects.Canvas, cfg *config.Config) (Result, error) {
	e, err := effects.Lookup(entry.Effect)
	if err != nil {
		return Result{}, err
	}

	var d float64
	if entry.Duration != nil {
		d = *entry.Duration
	} else if d, err = cfg.DurationFor(e.ID()); err != nil {
		return Result{}, err
	}

	frag, err := e.Generate(effects.Params{
		Prev:     entry.Prev,
		Next:     entry.Next,
		Duration: d,
		Canvas:   canvas,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Effect: e.ID(), Duration: d, Fragment: frag}, nil
}
