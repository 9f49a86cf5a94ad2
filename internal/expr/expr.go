// Package expr builds time-varying scalar expressions and renders them in the
// ffmpeg expression grammar (the one used by overlay, crop, geq, zoompan and
// friends). Expressions are values: build them once, render them with String
// and sample them with Eval.
package expr

import (
	"math"
	"strconv"
	"strings"
)

// Node is a scalar expression.
type Node interface {
	precedence() int
	write(b *strings.Builder)
}

const (
	precAdd = iota + 1
	precMul
	precUnary
	precAtom
)

// Common engine variables.
var (
	T    = Var("t")    // timestamp in seconds (overlay, blend, crop)
	TGeq = Var("T")    // timestamp in seconds inside geq
	On   = Var("on")   // output frame index inside zoompan
	Zoom = Var("zoom") // previous zoom factor inside zoompan
	IW   = Var("iw")
	IH   = Var("ih")
	X    = Var("X")
	Y    = Var("Y")
)

// String renders n in the engine grammar.
func String(n Node) string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

// IsCompound reports whether n renders to more than a single literal or
// variable, i.e. whether it has to be quoted when used as a filter option.
func IsCompound(n Node) bool {
	switch v := n.(type) {
	case num, integer, Var:
		return false
	case neg:
		_, isNum := v.x.(integer)
		_, isFloat := v.x.(num)
		return !isNum && !isFloat
	}
	return true
}

// FormatNum renders a float as the engine expects literals: shortest
// round-trip representation, always carrying a decimal point (1 -> "1.0").
func FormatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

type num float64

// Num is a decimal constant. It always renders with a decimal point.
func Num(v float64) Node { return num(v) }

func (n num) precedence() int {
	if n < 0 {
		return precUnary
	}
	return precAtom
}
func (n num) write(b *strings.Builder) {
	if n < 0 {
		neg{x: num(-n)}.write(b)
		return
	}
	b.WriteString(FormatNum(float64(n)))
}

type integer int

// Int is an integer constant such as a pixel coordinate or a frame count.
func Int(v int) Node { return integer(v) }

func (n integer) precedence() int {
	if n < 0 {
		return precUnary
	}
	return precAtom
}
func (n integer) write(b *strings.Builder) {
	if n < 0 {
		neg{x: integer(-n)}.write(b)
		return
	}
	b.WriteString(strconv.Itoa(int(n)))
}

// Var is a variable provided by the engine at evaluation time.
type Var string

func (Var) precedence() int { return precAtom }
func (v Var) write(b *strings.Builder) { b.WriteString(string(v)) }

type binary struct {
	op   byte
	l, r Node
}

func (e binary) precedence() int {
	if e.op == '+' || e.op == '-' {
		return precAdd
	}
	return precMul
}

func (e binary) write(b *strings.Builder) {
	p := e.precedence()
	writeOperand(b, e.l, e.l.precedence() < p)
	b.WriteByte(e.op)
	// '-' and '/' are left-associative, so an equal-precedence right operand
	// needs parentheses.
	rightParen := e.r.precedence() < p || (e.r.precedence() == p && (e.op == '-' || e.op == '/'))
	writeOperand(b, e.r, rightParen)
}

func writeOperand(b *strings.Builder, n Node, paren bool) {
	if paren {
		b.WriteByte('(')
	}
	n.write(b)
	if paren {
		b.WriteByte(')')
	}
}

// Add returns l+r.
func Add(l, r Node) Node { return binary{op: '+', l: l, r: r} }

// Sub returns l-r.
func Sub(l, r Node) Node { return binary{op: '-', l: l, r: r} }

// Mul returns l*r.
func Mul(l, r Node) Node { return binary{op: '*', l: l, r: r} }

// Div returns l/r.
func Div(l, r Node) Node { return binary{op: '/', l: l, r: r} }

type neg struct{ x Node }

// Neg returns -x.
func Neg(x Node) Node { return neg{x: x} }

func (neg) precedence() int { return precUnary }
func (e neg) write(b *strings.Builder) {
	b.WriteByte('-')
	writeOperand(b, e.x, e.x.precedence() < precAtom)
}

type call struct {
	fn   string
	args []Node
}

func (call) precedence() int { return precAtom }
func (c call) write(b *strings.Builder) {
	b.WriteString(c.fn)
	b.WriteByte('(')
	for i, a := range c.args {
		if i > 0 {
			b.WriteByte(',')
		}
		a.write(b)
	}
	b.WriteByte(')')
}

// If returns then when cond is non-zero, otherwise els.
func If(cond, then, els Node) Node { return call{fn: "if", args: []Node{cond, then, els}} }

// Lte returns 1 when l <= r, otherwise 0.
func Lte(l, r Node) Node { return call{fn: "lte", args: []Node{l, r}} }

// Gte returns 1 when l >= r, otherwise 0.
func Gte(l, r Node) Node { return call{fn: "gte", args: []Node{l, r}} }

// Lt returns 1 when l < r, otherwise 0.
func Lt(l, r Node) Node { return call{fn: "lt", args: []Node{l, r}} }

// Hypot returns sqrt(x*x + y*y).
func Hypot(x, y Node) Node { return call{fn: "hypot", args: []Node{x, y}} }

// Min returns the smaller of a and b.
func Min(a, b Node) Node { return call{fn: "min", args: []Node{a, b}} }

// Max returns the larger of a and b.
func Max(a, b Node) Node { return call{fn: "max", args: []Node{a, b}} }
