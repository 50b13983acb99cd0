package filesystem

import (
	"slices"
	"strings"

	"github.com/brettbedarf/inodefs"
	"github.com/puzpuzpuz/xsync/v4"
)

// Tree is the arena owning every live inode, addressed by inode number.
// Directory entries only hold inode numbers, so the "." and ".." cycles
// never form owning references.
type Tree struct {
	ids    idAllocator
	inodes *xsync.Map[uint64, *Inode]
	root   *Inode
}

// NewTree creates a tree holding a single root directory (inode 1) whose
// "." and ".." both reference itself
func NewTree() *Tree {
	t := &Tree{inodes: xsync.NewMap[uint64, *Inode]()}
	ino := t.ids.Next()
	t.root = newDirInode(ino, ino)
	t.inodes.Store(ino, t.root)
	return t
}

func (t *Tree) Root() *Inode {
	return t.root
}

// Get returns the live inode numbered ino
func (t *Tree) Get(ino uint64) (*Inode, bool) {
	return t.inodes.Load(ino)
}

// Len returns the number of live inodes
func (t *Tree) Len() int {
	return t.inodes.Size()
}

// child looks name up in dir
func (t *Tree) child(dir *Inode, name string) (*Inode, error) {
	d, err := dir.dirents()
	if err != nil {
		return nil, inodefs.ErrNotADirectory
	}
	ino, ok := d.lookup(name)
	if !ok {
		return nil, inodefs.ErrNoSuchPath
	}
	n, ok := t.Get(ino)
	if !ok {
		return nil, inodefs.ErrNoSuchPath
	}
	return n, nil
}

// parent returns the directory containing n; the root is its own parent
func (t *Tree) parent(n *Inode) (*Inode, bool) {
	return t.Get(n.parentID())
}

// mkdir creates a directory called name inside parent
func (t *Tree) mkdir(parent *Inode, name string) (*Inode, error) {
	d, err := parent.dirents()
	if err != nil {
		return nil, inodefs.ErrNotADirectory
	}
	if _, exists := d.lookup(name); exists {
		return nil, inodefs.ErrAlreadyExists
	}
	n := newDirInode(t.ids.Next(), parent.ino)
	d.link(name, n.ino)
	t.inodes.Store(n.ino, n)
	return n, nil
}

// mkfile creates a plain file called name inside parent holding words
func (t *Tree) mkfile(parent *Inode, name string, words []string) (*Inode, error) {
	d, err := parent.dirents()
	if err != nil {
		return nil, inodefs.ErrNotADirectory
	}
	if _, exists := d.lookup(name); exists {
		return nil, inodefs.ErrAlreadyExists
	}
	n := newFileInode(t.ids.Next(), parent.ino)
	n.file.write(words)
	d.link(name, n.ino)
	t.inodes.Store(n.ino, n)
	return n, nil
}

// unlink detaches name from parent and releases the subtree it referenced
func (t *Tree) unlink(parent *Inode, name string) (*Inode, error) {
	d, err := parent.dirents()
	if err != nil {
		return nil, inodefs.ErrNotADirectory
	}
	if isReserved(name) {
		return nil, inodefs.ErrReservedName
	}
	ino, ok := d.unlink(name)
	if !ok {
		return nil, inodefs.ErrNoSuchPath
	}
	n, ok := t.Get(ino)
	if !ok {
		return nil, inodefs.ErrNoSuchPath
	}
	t.release(n)
	return n, nil
}

// release drops n and every descendant from the arena and marks them deleted
func (t *Tree) release(n *Inode) {
	if n.IsDir() {
		n.dir.each(func(name string, ino uint64) bool {
			if isReserved(name) {
				return true
			}
			if child, ok := t.Get(ino); ok {
				t.release(child)
			}
			return true
		})
	}
	t.inodes.Delete(n.ino)
	n.Del()
}

// contains reports whether n is anc or lies beneath it
func (t *Tree) contains(anc, n *Inode) bool {
	for {
		if n.ino == anc.ino {
			return true
		}
		if n.ino == t.root.ino {
			return false
		}
		p, ok := t.parent(n)
		if !ok {
			return false
		}
		n = p
	}
}

// pathOf walks ".." up to the root collecting the name each parent uses for
// the current inode. The first matching entry in insertion order wins.
func (t *Tree) pathOf(n *Inode) (string, error) {
	if n.IsDel() {
		return "", inodefs.ErrNoSuchPath
	}
	var names []string
	for cur := n; cur.ino != t.root.ino; {
		p, ok := t.parent(cur)
		if !ok {
			return "", inodefs.ErrNoSuchPath
		}
		name, ok := p.dir.nameOf(cur.ino)
		if !ok {
			return "", inodefs.ErrNoSuchPath
		}
		names = append(names, name)
		cur = p
	}
	if len(names) == 0 {
		return inodefs.Separator, nil
	}
	slices.Reverse(names)
	path := inodefs.Separator + strings.Join(names, inodefs.Separator)
	if n.IsDir() {
		path += inodefs.Separator
	}
	return path, nil
}
