package object

import (
	"fmt"
	"strings"
)

// BasePath addresses a node in an Object tree by child indexes from the root.
type BasePath []int

// Child returns a fresh path extended by one index.
func (b BasePath) Child(idx int) BasePath {
	out := make(BasePath, len(b)+1)
	copy(out, b)
	out[len(b)] = idx

	return out
}

// Clone copies the path.
func (b BasePath) Clone() BasePath {
	return append(BasePath(nil), b...)
}

// Compare orders paths parent-before-child, then by sibling index.
func (b BasePath) Compare(other BasePath) int {
	n := len(b)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if b[i] != other[i] {
			if b[i] < other[i] {
				return -1
			}

			return 1
		}
	}
	switch {
	case len(b) < len(other):
		return -1
	case len(b) > len(other):
		return 1
	default:
		return 0
	}
}

// Path addresses either a whole subtree (Property == "") or one property
// slot at a node.
type Path struct {
	Base     BasePath
	Property string
}

// Compare orders Paths by base path, then property name.
func (p Path) Compare(other Path) int {
	if c := p.Base.Compare(other.Base); c != 0 {
		return c
	}

	return strings.Compare(p.Property, other.Property)
}

// Key renders a canonical string form, usable as a map key.
func (p Path) Key() string {
	parts := make([]string, len(p.Base))
	for i, idx := range p.Base {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	base := strings.Join(parts, ".")
	if base == "" {
		base = "root"
	}
	if p.Property == "" {
		return base
	}

	return base + "/" + p.Property
}

// String implements fmt.Stringer.
func (p Path) String() string { return p.Key() }
