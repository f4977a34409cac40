package dtoform

import (
	"fmt"
	"strings"
)

// JoinPath renders a field path as a form field name. The first segment is
// written as is and every later segment is wrapped in brackets, so
// ["Child", "nested", "value"] becomes "Child[nested][value]".
func JoinPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(path[0])
	for _, p := range path[1:] {
		b.WriteByte('[')
		b.WriteString(p)
		b.WriteByte(']')
	}
	return b.String()
}

// SplitPath is the inverse of [JoinPath]. It fails on unbalanced brackets.
func SplitPath(name string) ([]string, error) {
	i := strings.IndexByte(name, '[')
	if i == -1 {
		if strings.IndexByte(name, ']') != -1 {
			return nil, fmt.Errorf("form: invalid field name %q", name)
		}
		return []string{name}, nil
	}

	path := []string{name[:i]}
	rest := name[i:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, fmt.Errorf("form: invalid field name %q", name)
		}
		rest = rest[1:]
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			return nil, fmt.Errorf("form: invalid field name %q", name)
		}
		path = append(path, rest[:j])
		rest = rest[j+1:]
	}
	return path, nil
}
