package effects

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ivlev/transitions/internal/filtergraph"
)

// catalog is built once at startup and never mutated afterwards, so it is
// safe to read from any goroutine.
var catalog = newCatalog([]*Effect{
	{
		desc: Descriptor{
			Kind:            Fade,
			ID:              "fade",
			Name:            "Fade In/Out",
			Description:     "Smooth fade transition that gradually dissolves from one image to another",
			DefaultDuration: 0.5,
			Aliases:         []string{"crossfade"},
		},
		build: buildFade,
	},
	{
		desc: Descriptor{
			Kind:            Dissolve,
			ID:              "dissolve",
			Name:            "Dissolve",
			Description:     "Smooth dissolve transition that blends two images together with alpha blending",
			DefaultDuration: 1.0,
		},
		build: buildDissolve,
	},
	{
		desc: Descriptor{
			Kind:            SlideLeft,
			ID:              "slide_left",
			Name:            "Slide Left",
			Description:     "Horizontal slide transition where new image slides in from right while old image slides out to left",
			DefaultDuration: 0.6,
		},
		build: slide(-1),
	},
	{
		desc: Descriptor{
			Kind:            SlideRight,
			ID:              "slide_right",
			Name:            "Slide Right",
			Description:     "Horizontal slide transition where new image slides in from left while old image slides out to right",
			DefaultDuration: 0.6,
		},
		build: slide(1),
	},
	{
		desc: Descriptor{
			Kind:            PushUp,
			ID:              "push_up",
			Name:            "Push Up",
			Description:     "Vertical push transition where new image pushes up from bottom while old image moves up",
			DefaultDuration: 0.7,
		},
		build: buildPushUp,
	},
	{
		desc: Descriptor{
			Kind:            Wipe,
			ID:              "wipe",
			Name:            "Wipe",
			Description:     "Progressive wipe transition where new image reveals itself from left to right",
			DefaultDuration: 0.8,
		},
		build: buildWipe,
	},
	{
		desc: Descriptor{
			Kind:            CircleReveal,
			ID:              "circle_reveal",
			Name:            "Circle Reveal",
			Description:     "Circular reveal transition where new image appears through an expanding circle from center",
			DefaultDuration: 1.0,
		},
		build: buildCircleReveal,
	},
	{
		desc: Descriptor{
			Kind:            ZoomIn,
			ID:              "zoom_in",
			Name:            "Zoom In",
			Description:     "Dynamic zoom-in effect that makes the new image appear to grow from the center",
			DefaultDuration: 0.8,
		},
		build: buildZoomIn,
	},
	{
		desc: Descriptor{
			Kind:            ZoomOut,
			ID:              "zoom_out",
			Name:            "Zoom Out",
			Description:     "Smooth zoom-out effect where the previous image zooms out while the new image fades in",
			DefaultDuration: 0.8,
		},
		build: buildZoomOut,
	},
})

type registry struct {
	ordered []*Effect
	byKey   map[string]*Effect
}

func newCatalog(list []*Effect) *registry {
	r := &registry{byKey: make(map[string]*Effect)}
	for _, e := range list {
		if int(e.desc.Kind) != len(r.ordered) {
			panic(fmt.Sprintf("effects: %s is out of kind order", e.desc.ID))
		}
		e.filters = sampleFilters(e)
		r.ordered = append(r.ordered, e)
		keys := append([]string{e.desc.ID, e.desc.Name}, e.desc.Aliases...)
		for _, k := range keys {
			k = normalize(k)
			if other, dup := r.byKey[k]; dup && other != e {
				panic(fmt.Sprintf("effects: duplicate catalog key %q", k))
			}
			r.byKey[k] = e
		}
	}
	return r
}

// sampleFilters generates the effect once with its defaults and collects the
// filter names it uses.
func sampleFilters(e *Effect) []string {
	frag, err := e.Generate(Params{Prev: "[catalog_prev]", Next: "[catalog_next]", Duration: e.desc.DefaultDuration})
	if err != nil {
		panic(fmt.Sprintf("effects: %s does not generate with its defaults: %v", e.desc.ID, err))
	}
	seen := map[string]bool{}
	var names []string
	for _, s := range frag.Statements {
		for _, f := range s.Chain {
			if !seen[f.Name] {
				seen[f.Name] = true
				names = append(names, f.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// normalize folds case and separators so "Slide Left", "slide-left" and
// "slide_left" all find the same effect.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '/':
			return '_'
		}
		return r
	}, s)
}

// All returns every effect in catalog order.
func All() []*Effect {
	return append([]*Effect(nil), catalog.ordered...)
}

// IDs returns the stable identifiers of every effect in catalog order.
func IDs() []string {
	ids := make([]string, len(catalog.ordered))
	for i, e := range catalog.ordered {
		ids[i] = e.desc.ID
	}
	return ids
}

// Lookup finds an effect by ID, display name or alias.
func Lookup(name string) (*Effect, error) {
	if e, ok := catalog.byKey[normalize(name)]; ok {
		return e, nil
	}
	return nil, newError(CodeUnknownEffect, "", nil, "unknown transition %q (available: %s)", name, strings.Join(IDs(), ", "))
}

// ByKind returns the effect for k.
func ByKind(k Kind) *Effect {
	if int(k) < 0 || int(k) >= len(catalog.ordered) {
		return nil
	}
	return catalog.ordered[k]
}

func (k Kind) String() string {
	if e := ByKind(k); e != nil {
		return e.desc.ID
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Generate looks up name and generates its fragment.
func Generate(name string, p Params) (*filtergraph.Fragment, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Generate(p)
}
