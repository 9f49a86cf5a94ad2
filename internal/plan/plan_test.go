package plan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/transitions/internal/config"
	"github.com/ivlev/transitions/internal/effects"
)

func seconds(v float64) *float64 { return &v }

func samplePlan() *Plan {
	return &Plan{
		Version: Version,
		Transitions: []Entry{
			{Effect: "fade", Prev: "[img0]", Next: "[img1]"},
			{Effect: "Slide Left", Prev: "[img1]", Next: "[img2]", Duration: seconds(0.4)},
			{Effect: "circle_reveal", Prev: "[img2]", Next: "[img3]"},
			{Effect: "zoom-out", Prev: "[img3]", Next: "[img4]"},
		},
	}
}

func TestGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Durations["circle_reveal"] = 2.0

	results, err := Generate(context.Background(), samplePlan(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []struct {
		effect   string
		duration float64
		output   string
	}{
		{"fade", 0.5, "[faded]"},
		{"slide_left", 0.4, "[slide_result]"},
		{"circle_reveal", 2.0, "[circle_result]"},
		{"zoom_out", 0.8, "[zoom_out_result]"},
	}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(results))
	}
	for i, w := range want {
		r := results[i]
		if r.Index != i || r.Effect != w.effect || r.Duration != w.duration {
			t.Errorf("result %d = {%d %s %v}, want {%d %s %v}", i, r.Index, r.Effect, r.Duration, i, w.effect, w.duration)
		}
		if string(r.Fragment.Output) != w.output {
			t.Errorf("result %d output = %s, want %s", i, r.Fragment.Output, w.output)
		}
	}

	// Same input, same text.
	again, err := Generate(context.Background(), samplePlan(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i := range results {
		if results[i].Fragment.String() != again[i].Fragment.String() {
			t.Errorf("result %d is not deterministic", i)
		}
	}

	// An explicit zero is rejected, not replaced by the default.
	zero := samplePlan()
	zero.Transitions[0].Duration = seconds(0)
	if _, err := Generate(context.Background(), zero, cfg); !effects.Is(err, effects.CodeInvalidDuration) {
		t.Errorf("Expected INVALID_DURATION for an explicit zero, got %v", err)
	}
}

func TestGenerateCanvasOverride(t *testing.T) {
	p := samplePlan()
	p.Canvas = &effects.Canvas{Width: 1280, Height: 720, FPS: 25}

	results, err := Generate(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(results[1].Fragment.String(), "size=1280x720") {
		t.Errorf("canvas override not applied: %s", results[1].Fragment)
	}
	// 0.8s at 25 fps
	if !strings.Contains(results[3].Fragment.String(), ":d=20:") {
		t.Errorf("zoom frames do not follow canvas: %s", results[3].Fragment)
	}
}

func TestGenerateReportsLowestFailingEntry(t *testing.T) {
	p := samplePlan()
	p.Transitions[1].Next = "[img1]"
	p.Transitions[3].Effect = "ripple"

	_, err := Generate(context.Background(), p, nil)
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.HasPrefix(err.Error(), "transition 1 (Slide Left): ") {
		t.Errorf("Expected entry 1 to be reported, got %v", err)
	}
	if !effects.Is(err, effects.CodeInvalidStream) {
		t.Errorf("Expected INVALID_STREAM in chain, got %v", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Generate(ctx, samplePlan(), nil); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want string
	}{
		{"wrong version", Plan{Version: "2", Transitions: samplePlan().Transitions}, "unsupported version"},
		{"empty", Plan{Version: Version}, "no transitions"},
		{"bad canvas", Plan{Version: Version, Canvas: &effects.Canvas{}, Transitions: samplePlan().Transitions}, "canvas size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	original := samplePlan()
	original.Canvas = &effects.Canvas{Width: 1280, Height: 720, FPS: 30}

	if err := Write(original, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	loaded, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if *loaded.Canvas != *original.Canvas {
		t.Errorf("canvas = %+v, want %+v", *loaded.Canvas, *original.Canvas)
	}
	if len(loaded.Transitions) != len(original.Transitions) {
		t.Fatalf("Expected %d transitions, got %d", len(original.Transitions), len(loaded.Transitions))
	}
	got, want := loaded.Transitions[1], original.Transitions[1]
	if got.Effect != want.Effect || got.Prev != want.Prev || got.Next != want.Next {
		t.Errorf("entry = %+v, want %+v", got, want)
	}
	if got.Duration == nil || *got.Duration != 0.4 {
		t.Errorf("duration = %v, want 0.4", got.Duration)
	}
	if loaded.Transitions[0].Duration != nil {
		t.Errorf("unset duration read back as %v", *loaded.Transitions[0].Duration)
	}
}

func TestRead(t *testing.T) {
	cfg := config.Default()
	cfg.Canvas = effects.Canvas{Width: 1280, Height: 720, FPS: 25}

	tests := []struct {
		name    string
		content string
		canvas  *effects.Canvas
		want    string
	}{
		{
			name:    "no canvas",
			content: "version: \"1.0\"\ntransitions:\n  - {effect: wipe, prev: \"[a]\", next: \"[b]\"}\n",
		},
		{
			name:    "partial canvas",
			content: "version: \"1.0\"\ncanvas:\n  width: 1920\n  height: 1080\ntransitions:\n  - {effect: wipe, prev: \"[a]\", next: \"[b]\"}\n",
			canvas:  &effects.Canvas{Width: 1920, Height: 1080, FPS: 25},
		},
		{
			name:    "misspelled entry key",
			content: "version: \"1.0\"\ntransitions:\n  - {effect: wipe, prev: \"[a]\", next: \"[b]\", durration: 0.3}\n",
			want:    "durration",
		},
		{
			name:    "misspelled canvas key",
			content: "version: \"1.0\"\ncanvas:\n  frames: 60\ntransitions:\n  - {effect: wipe, prev: \"[a]\", next: \"[b]\"}\n",
			want:    "frames",
		},
		{
			name:    "empty file",
			content: "",
			want:    "unsupported version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plan.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			p, err := Read(path, cfg)
			if tt.want != "" {
				if err == nil || !strings.Contains(err.Error(), tt.want) {
					t.Errorf("Expected %q in error, got %v", tt.want, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			switch {
			case tt.canvas == nil && p.Canvas != nil:
				t.Errorf("canvas = %+v, want none", *p.Canvas)
			case tt.canvas != nil && (p.Canvas == nil || *p.Canvas != *tt.canvas):
				t.Errorf("canvas = %v, want %+v", p.Canvas, *tt.canvas)
			}
		})
	}
}

func TestReadExplicitZeroDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := "version: \"1.0\"\ntransitions:\n  - {effect: wipe, prev: \"[a]\", next: \"[b]\", duration: 0}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if _, err := Generate(context.Background(), p, config.Default()); !effects.Is(err, effects.CodeInvalidDuration) {
		t.Errorf("Expected INVALID_DURATION, got %v", err)
	}
}
