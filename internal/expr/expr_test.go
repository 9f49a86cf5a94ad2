package expr

import (
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"slide out left", Ramp(T, 0, -1920, 0.6), "0-t*1920/0.6"},
		{"slide in left", Ramp(T, 1920, 0, 0.6), "1920-t*1920/0.6"},
		{"slide out right", Ramp(T, 0, 1920, 0.6), "t*1920/0.6"},
		{"slide in right", Ramp(T, -1920, 0, 0.6), "-1920+t*1920/0.6"},
		{"fade out", FadeOut(T, 1.0), "1-t/1.0"},
		{"active", Active(T, 0.8), "lte(t,0.8)"},
		{"distance", Distance(960, 540), "hypot(X-960,Y-540)"},
		{"nested sub", Sub(Int(1), Sub(T, Int(2))), "1-(t-2)"},
		{"nested div", Div(IW, Div(Zoom, Int(2))), "iw/(zoom/2)"},
		{"left assoc", Sub(Div(IW, Int(2)), Div(Div(IW, Zoom), Int(2))), "iw/2-iw/zoom/2"},
		{"sum in product", Mul(Add(T, Int(1)), Int(3)), "(t+1)*3"},
		{"negated sum", Neg(Add(T, Int(1))), "-(t+1)"},
		{"clamp", Clamp(T, Num(1), Num(1.5)), "max(1.0,min(t,1.5))"},
		{"if", If(Lt(T, Int(1)), Int(255), Int(0)), "if(lt(t,1),255,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.node); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.5, "0.5"},
		{0.33, "0.33"},
		{2.25, "2.25"},
		{24, "24.0"},
	}
	for _, tt := range tests {
		if got := FormatNum(tt.in); got != tt.want {
			t.Errorf("FormatNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEval(t *testing.T) {
	opacity := FadeOut(T, 1.0)

	tests := []struct {
		name string
		node Node
		env  Env
		want float64
	}{
		{"opacity start", opacity, Env{T: 0}, 1},
		{"opacity end", opacity, Env{T: 1}, 0},
		{"ramp midpoint", Ramp(T, 1920, 0, 0.6), Env{T: 0.3}, 960},
		{"negative ramp end", Ramp(T, 0, -1080, 0.7), Env{T: 0.7}, -1080},
		{"distance", Distance(960, 540), Env{X: 963, Y: 544}, 5},
		{"if taken", If(Lte(T, Num(1)), Int(7), Int(9)), Env{T: 0.5}, 7},
		{"if not taken", If(Lte(T, Num(1)), Int(7), Int(9)), Env{T: 1.5}, 9},
		{"clamp low", Clamp(Var("v"), Num(1), Num(1.5)), Env{"v": 0.2}, 1},
		{"clamp high", Clamp(Var("v"), Num(1), Num(1.5)), Env{"v": 3}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.node, tt.env)
			if err != nil {
				t.Fatalf("Eval failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	if _, err := Eval(Add(T, On), Env{T: 1}); err == nil {
		t.Error("Expected error for unbound variable, got nil")
	}
}

func TestIsCompound(t *testing.T) {
	if IsCompound(Int(1920)) || IsCompound(Num(0.5)) || IsCompound(T) || IsCompound(Int(-5)) {
		t.Error("Literals and variables should not be compound")
	}
	if !IsCompound(Ramp(T, 0, 1920, 1)) {
		t.Error("Ramp should be compound")
	}
}

func TestVars(t *testing.T) {
	got := Vars(If(Lt(Distance(1, 2), Mul(TGeq, Int(3))), Int(1), T))
	want := []Var{X, Y, TGeq, T}
	if len(got) != len(want) {
		t.Fatalf("Vars() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vars()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
