package filesystem

import (
	"slices"
)

// Reserved directory entry names
const (
	dotName    = "."
	dotDotName = ".."
)

func isReserved(name string) bool {
	return name == dotName || name == dotDotName
}

// plainFile holds the words of a plain file
type plainFile struct {
	words []string
}

// size is the length of the words as printed with a separator after each
func (f *plainFile) size() int {
	n := 0
	for _, w := range f.words {
		n += len(w) + 1
	}
	return n
}

func (f *plainFile) read() []string {
	return slices.Clone(f.words)
}

func (f *plainFile) write(words []string) {
	f.words = slices.Clone(words)
}

// directory maps names onto node identifiers in insertion order.
// "." and ".." are always the first two entries.
type directory struct {
	names []string
	ids   map[string]uint64
}

func newDirectory(self, parent uint64) *directory {
	return &directory{
		names: []string{dotName, dotDotName},
		ids:   map[string]uint64{dotName: self, dotDotName: parent},
	}
}

func (d *directory) size() int {
	return len(d.names)
}

func (d *directory) lookup(name string) (id uint64, ok bool) {
	id, ok = d.ids[name]
	return
}

// link adds name -> id and reports false if name is already present
func (d *directory) link(name string, id uint64) bool {
	if _, exists := d.ids[name]; exists {
		return false
	}
	d.names = append(d.names, name)
	d.ids[name] = id
	return true
}

// unlink removes name and returns the identifier it referenced.
// Reserved entries cannot be unlinked.
func (d *directory) unlink(name string) (id uint64, ok bool) {
	if isReserved(name) {
		return 0, false
	}
	if id, ok = d.ids[name]; !ok {
		return 0, false
	}
	delete(d.ids, name)
	if i := slices.Index(d.names, name); i >= 0 {
		d.names = slices.Delete(d.names, i, i+1)
	}
	return id, true
}

// nameOf returns the first non-reserved name referencing id
func (d *directory) nameOf(id uint64) (string, bool) {
	for _, name := range d.names {
		if !isReserved(name) && d.ids[name] == id {
			return name, true
		}
	}
	return "", false
}

// isEmpty reports whether only "." and ".." remain
func (d *directory) isEmpty() bool {
	return len(d.names) == 2
}

// each calls fn for every entry in insertion order until fn returns false
func (d *directory) each(fn func(name string, id uint64) bool) {
	for _, name := range d.names {
		if !fn(name, d.ids[name]) {
			return
		}
	}
}
