package filtergraph

import (
	"strconv"
	"strings"

	"github.com/ivlev/transitions/internal/expr"
)

// Option is a single filter argument. Options with an empty Key render
// positionally ("overlay=0:0"); the rest render as key=value.
type Option struct {
	Key   string
	Value string
	// Expr is set when Value was rendered from an expression, so callers can
	// sample the curve without parsing text.
	Expr expr.Node
}

// Filter is one filter invocation inside a chain.
type Filter struct {
	Name    string
	Options []Option
}

// NewFilter creates a filter with the given options.
func NewFilter(name string, opts ...Option) Filter {
	return Filter{Name: name, Options: opts}
}

// Opt builds a keyed option. v may be an expr.Node, a string, an int or a
// float64; compound expressions are single-quoted so that their commas do
// not split the filter chain.
func Opt(key string, v any) Option {
	o := Option{Key: key}
	switch x := v.(type) {
	case expr.Node:
		o.Expr = x
		o.Value = expr.String(x)
		if expr.IsCompound(x) {
			o.Value = "'" + o.Value + "'"
		}
	case string:
		o.Value = x
	case int:
		o.Value = strconv.Itoa(x)
	case float64:
		o.Value = expr.FormatNum(x)
	default:
		panic("filtergraph: unsupported option value type")
	}
	return o
}

// Pos builds a positional option.
func Pos(v any) Option {
	return Opt("", v)
}

// Option returns the option stored under key.
func (f Filter) Option(key string) (Option, bool) {
	for _, o := range f.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

func (f Filter) String() string {
	var b strings.Builder
	f.write(&b)
	return b.String()
}

func (f Filter) write(b *strings.Builder) {
	b.WriteString(f.Name)
	for i, o := range f.Options {
		if i == 0 {
			b.WriteByte('=')
		} else {
			b.WriteByte(':')
		}
		if o.Key != "" {
			b.WriteString(o.Key)
			b.WriteByte('=')
		}
		b.WriteString(o.Value)
	}
}
