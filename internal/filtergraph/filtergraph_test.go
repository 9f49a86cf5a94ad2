package filtergraph

import (
	"strings"
	"testing"

	"github.com/ivlev/transitions/internal/expr"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"[img0]", false},
		{"[0:v]", false},
		{"[prev_faded]", false},
		{"", true},
		{"[]", true},
		{"img0", true},
		{"[img0", true},
		{"[a b]", true},
		{"[a;b]", true},
		{"[a,b]", true},
		{"[[a]]", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseLabel(tt.in)
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	f := NewFilter("overlay",
		Opt("x", expr.Ramp(expr.T, 0, -1920, 0.6)),
		Opt("y", 0),
		Opt("enable", expr.Active(expr.T, 0.6)),
	)
	want := "overlay=x='0-t*1920/0.6':y=0:enable='lte(t,0.6)'"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	pad := NewFilter("pad", Pos(1920), Pos(1080), Pos(0), Pos(0), Opt("color", "black"))
	if got := pad.String(); got != "pad=1920:1080:0:0:color=black" {
		t.Errorf("String() = %q", got)
	}

	fade := NewFilter("fade", Opt("t", "out"), Opt("st", 0), Opt("d", 1.0))
	if got := fade.String(); got != "fade=t=out:st=0:d=1.0" {
		t.Errorf("String() = %q", got)
	}
}

func TestFilterOption(t *testing.T) {
	f := NewFilter("blend", Opt("all_opacity", expr.FadeOut(expr.T, 2)))
	o, ok := f.Option("all_opacity")
	if !ok {
		t.Fatal("Expected all_opacity option")
	}
	if o.Expr == nil {
		t.Fatal("Expected expression to be kept")
	}
	if _, ok := f.Option("missing"); ok {
		t.Error("Unexpected option")
	}
}

func buildWipe() *Fragment {
	var b Builder
	b.Add(Chain([]Label{"[n]"}, "[wiped]",
		NewFilter("crop", Opt("w", expr.Ramp(expr.T, 0, 1920, 0.8))),
		NewFilter("pad", Pos(1920), Pos(1080)),
	))
	b.Add(Chain([]Label{"[p]", "[wiped]"}, "[wipe_result]", NewFilter("overlay", Pos(0), Pos(0))))
	return b.Build()
}

func TestFragmentString(t *testing.T) {
	frag := buildWipe()
	want := "[n]crop=w='t*1920/0.8',pad=1920:1080[wiped];[p][wiped]overlay=0:0[wipe_result];"
	if got := frag.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if frag.Output != "[wipe_result]" {
		t.Errorf("Output = %s", frag.Output)
	}
	if n := len(frag.Filters("pad")); n != 1 {
		t.Errorf("Filters(pad) = %d, want 1", n)
	}
}

func TestFragmentValidate(t *testing.T) {
	if err := buildWipe().Validate("[p]", "[n]"); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	// An external label that collides with an internal one.
	if err := buildWipe().Validate("[p]", "[wiped]"); err == nil {
		t.Error("Expected error for shadowed label")
	}

	// Reading a label nobody declared.
	if err := buildWipe().Validate("[p]"); err == nil || !strings.Contains(err.Error(), "undeclared") {
		t.Errorf("Expected undeclared label error, got %v", err)
	}

	var b Builder
	b.Add(Chain(nil, "[x]", NewFilter("color")))
	b.Add(Chain(nil, "[x]", NewFilter("color")))
	if err := b.Build().Validate(); err == nil {
		t.Error("Expected error for duplicate label")
	}

	if err := (&Fragment{}).Validate(); err == nil {
		t.Error("Expected error for empty fragment")
	}
}
