package filtergraph

import (
	"fmt"
	"strings"
)

// Label names a stream inside a filter graph, e.g. "[img0]" or "[0:v]".
type Label string

// ParseLabel checks s against the engine's link label grammar: a non-empty
// name in square brackets with no whitespace, brackets, ';' or ','.
func ParseLabel(s string) (Label, error) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", fmt.Errorf("label %q must be a bracketed name like [img0]", s)
	}
	name := s[1 : len(s)-1]
	if i := strings.IndexAny(name, "[]; ,\t\n\r'"); i >= 0 {
		return "", fmt.Errorf("label %q contains invalid character %q", s, name[i])
	}
	return Label(s), nil
}

// Name returns the label without brackets.
func (l Label) Name() string {
	return strings.TrimSuffix(strings.TrimPrefix(string(l), "["), "]")
}

func (l Label) String() string { return string(l) }
