package expr

// Ramp moves linearly from `from` to `to` over d seconds of clock, in the
// shape the slide and push overlays use: `0-t*1920/0.6`, `1920-t*1920/0.6`,
// `t*1920/0.6`, `-1920+t*1920/0.6`.
func Ramp(clock Node, from, to int, d float64) Node {
	delta := to - from
	step := delta
	if step < 0 {
		step = -step
	}
	term := Div(Mul(clock, Int(step)), Num(d))

	switch {
	case from == 0 && delta >= 0:
		return term
	case delta >= 0:
		return Add(Int(from), term)
	default:
		return Sub(Int(from), term)
	}
}

// Progress is clock/d, 0 at the start of the transition and 1 at its end.
func Progress(clock Node, d float64) Node {
	return Div(clock, Num(d))
}

// FadeOut is 1-clock/d.
func FadeOut(clock Node, d float64) Node {
	return Sub(Int(1), Progress(clock, d))
}

// Distance is the Euclidean distance of the current pixel from (cx, cy).
func Distance(cx, cy int) Node {
	return Hypot(Sub(X, Int(cx)), Sub(Y, Int(cy)))
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi Node) Node {
	return Max(lo, Min(x, hi))
}

// Active is 1 while the clock is within the first d seconds.
func Active(clock Node, d float64) Node {
	return Lte(clock, Num(d))
}
