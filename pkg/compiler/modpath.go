package compiler

import "strings"

// ModulePath is an immutable dotted library reference split into segments,
// e.g. gocasio.casio.input as ["gocasio", "casio", "input"]. Paths are never
// mutated after construction; combining operations return fresh slices.
type ModulePath []string

// NewModulePath splits a dotted name into its segments.
func NewModulePath(dotted string) ModulePath {
	return strings.Split(dotted, ".")
}

func (m ModulePath) String() string {
	return strings.Join(m, ".")
}

func (m ModulePath) Equal(other ModulePath) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// First returns the leading segment, "" for an empty path.
func (m ModulePath) First() string {
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

// Last returns the final segment, "" for an empty path.
func (m ModulePath) Last() string {
	if len(m) == 0 {
		return ""
	}
	return m[len(m)-1]
}

// Prefix returns the first n segments. The result shares no appendable
// capacity with m.
func (m ModulePath) Prefix(n int) ModulePath {
	return m[:n:n]
}

// Parent returns the path with the final segment removed.
func (m ModulePath) Parent() ModulePath {
	if len(m) == 0 {
		return nil
	}
	return m.Prefix(len(m) - 1)
}

// Concat returns m followed by other as a new path.
func (m ModulePath) Concat(other ModulePath) ModulePath {
	out := make(ModulePath, 0, len(m)+len(other))
	out = append(out, m...)
	out = append(out, other...)
	return out
}

// Child returns m extended by one segment.
func (m ModulePath) Child(name string) ModulePath {
	return m.Concat(ModulePath{name})
}

// IsDirectParentOf reports whether child sits exactly one level below m.
func (m ModulePath) IsDirectParentOf(child ModulePath) bool {
	if len(m)+1 != len(child) {
		return false
	}
	return m.Equal(child.Prefix(len(m)))
}
