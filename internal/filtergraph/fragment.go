// Package filtergraph assembles filter-graph statements and renders them in
// the -filter_complex grammar: each statement is a chain of filters between
// bracketed input and output labels, terminated by ';'.
package filtergraph

import (
	"fmt"
	"strings"
)

// Statement is a filter chain reading Inputs and declaring Outputs.
type Statement struct {
	Inputs  []Label
	Chain   []Filter
	Outputs []Label
}

// Chain is a shorthand for a statement with a single output.
func Chain(inputs []Label, out Label, filters ...Filter) Statement {
	return Statement{Inputs: inputs, Chain: filters, Outputs: []Label{out}}
}

func (s Statement) write(b *strings.Builder) {
	for _, in := range s.Inputs {
		b.WriteString(string(in))
	}
	for i, f := range s.Chain {
		if i > 0 {
			b.WriteByte(',')
		}
		f.write(b)
	}
	for _, out := range s.Outputs {
		b.WriteString(string(out))
	}
	b.WriteByte(';')
}

// Fragment is a generated sequence of statements whose last statement
// declares Output, the only label callers wire into the next stage.
type Fragment struct {
	Statements []Statement
	Output     Label
}

// Builder appends statements to a fragment.
type Builder struct {
	stmts []Statement
}

// Add appends a statement.
func (b *Builder) Add(s Statement) *Builder {
	b.stmts = append(b.stmts, s)
	return b
}

// Build returns the fragment. Its output is the single output of the last
// statement.
func (b *Builder) Build() *Fragment {
	f := &Fragment{Statements: b.stmts}
	if n := len(b.stmts); n > 0 && len(b.stmts[n-1].Outputs) == 1 {
		f.Output = b.stmts[n-1].Outputs[0]
	}
	return f
}

func (f *Fragment) String() string {
	var b strings.Builder
	for _, s := range f.Statements {
		s.write(&b)
	}
	return b.String()
}

// Filters returns every filter named name, in statement order.
func (f *Fragment) Filters(name string) []Filter {
	var out []Filter
	for _, s := range f.Statements {
		for _, flt := range s.Chain {
			if flt.Name == name {
				out = append(out, flt)
			}
		}
	}
	return out
}

// Validate checks the fragment's label wiring: every declared output is
// unique, every input is either an external label or declared earlier, no
// external label is shadowed by an internal one, and the last statement
// declares exactly Output.
func (f *Fragment) Validate(external ...Label) error {
	if len(f.Statements) == 0 {
		return fmt.Errorf("fragment has no statements")
	}

	ext := make(map[Label]bool, len(external))
	for _, l := range external {
		ext[l] = true
	}

	declared := map[Label]bool{}
	for i, s := range f.Statements {
		if len(s.Chain) == 0 {
			return fmt.Errorf("statement %d has an empty filter chain", i)
		}
		for _, in := range s.Inputs {
			if !ext[in] && !declared[in] {
				return fmt.Errorf("statement %d reads undeclared label %s", i, in)
			}
		}
		for _, out := range s.Outputs {
			if ext[out] {
				return fmt.Errorf("statement %d redeclares input label %s", i, out)
			}
			if declared[out] {
				return fmt.Errorf("label %s declared more than once", out)
			}
			declared[out] = true
		}
	}

	last := f.Statements[len(f.Statements)-1]
	if len(last.Outputs) != 1 || last.Outputs[0] != f.Output {
		return fmt.Errorf("final statement must declare exactly %s", f.Output)
	}
	if _, err := ParseLabel(string(f.Output)); err != nil {
		return err
	}
	return nil
}
