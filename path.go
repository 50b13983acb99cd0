package inodefs

import "strings"

// Separator joins path components when a path is rendered for display
const Separator = "/"

// Path is a pre-split sequence of name components. Absolute paths start at the
// root; relative paths start at the current directory.
type Path struct {
	Components []string
	Absolute   bool
}

// Abs returns an absolute path made of components
func Abs(components ...string) Path {
	return Path{Components: components, Absolute: true}
}

// Rel returns a path relative to the current directory
func Rel(components ...string) Path {
	return Path{Components: components}
}

// IsEmpty reports whether p names its starting directory
func (p Path) IsEmpty() bool {
	return len(p.Components) == 0
}

// Split separates the containing directory from the final component.
// The leaf is "" for an empty path.
func (p Path) Split() (dir Path, leaf string) {
	if p.IsEmpty() {
		return p, ""
	}
	last := len(p.Components) - 1
	return Path{Components: p.Components[:last], Absolute: p.Absolute}, p.Components[last]
}

func (p Path) String() string {
	joined := strings.Join(p.Components, Separator)
	if p.Absolute {
		return Separator + joined
	}
	if joined == "" {
		return "."
	}
	return joined
}

// ParsePath splits a slash separated string into a Path. A leading "/" makes
// the path absolute; empty components from repeated or trailing slashes are
// dropped, so "/" is the empty absolute path.
func ParsePath(s string) Path {
	return Path{
		Components: strings.FieldsFunc(s, func(r rune) bool { return r == '/' }),
		Absolute:   strings.HasPrefix(s, Separator),
	}
}
