package expr

import (
	"fmt"
	"math"
)

// Env binds engine variables to values for Eval.
type Env map[Var]float64

// Eval computes the value of n under env. Comparison functions yield 1 or 0
// and division by zero follows IEEE semantics, as the engine does.
func Eval(n Node, env Env) (float64, error) {
	switch v := n.(type) {
	case num:
		return float64(v), nil
	case integer:
		return float64(v), nil
	case Var:
		x, ok := env[v]
		if !ok {
			return 0, fmt.Errorf("unbound variable %q", string(v))
		}
		return x, nil
	case neg:
		x, err := Eval(v.x, env)
		return -x, err
	case binary:
		l, err := Eval(v.l, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(v.r, env)
		if err != nil {
			return 0, err
		}
		switch v.op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		default:
			return l / r, nil
		}
	case call:
		return evalCall(v, env)
	}
	return 0, fmt.Errorf("unsupported node %T", n)
}

func evalCall(c call, env Env) (float64, error) {
	// if() only evaluates the branch it takes.
	if c.fn == "if" {
		cond, err := Eval(c.args[0], env)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return Eval(c.args[1], env)
		}
		return Eval(c.args[2], env)
	}
	args := make([]float64, len(c.args))
	for i, a := range c.args {
		x, err := Eval(a, env)
		if err != nil {
			return 0, err
		}
		args[i] = x
	}

	switch c.fn {
	case "lte":
		return boolf(args[0] <= args[1]), nil
	case "gte":
		return boolf(args[0] >= args[1]), nil
	case "lt":
		return boolf(args[0] < args[1]), nil
	case "hypot":
		return math.Hypot(args[0], args[1]), nil
	case "min":
		return math.Min(args[0], args[1]), nil
	case "max":
		return math.Max(args[0], args[1]), nil
	}
	return 0, fmt.Errorf("unknown function %q", c.fn)
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Vars lists the distinct variables n refers to, in first-use order.
func Vars(n Node) []Var {
	var out []Var
	seen := map[Var]bool{}
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Var:
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		case neg:
			walk(v.x)
		case binary:
			walk(v.l)
			walk(v.r)
		case call:
			for _, a := range v.args {
				walk(a)
			}
		}
	}
	walk(n)
	return out
}
