package filesystem

import (
	"fmt"

	"github.com/brettbedarf/inodefs"
)

// Handle is a read handle to an inode of a [FileSystem].
// Each accessor takes the filesystem read lock for its own duration only, so
// a Handle must not be relied on across mutations that could remove its inode.
type Handle struct {
	fs *FileSystem
	n  *Inode
}

var _ inodefs.NodeInfo = (*Handle)(nil)

func (fs *FileSystem) handle(n *Inode) *Handle {
	return &Handle{fs: fs, n: n}
}

// ID returns the node's immutable inode number
func (h *Handle) ID() uint64 {
	return h.n.ino
}

// Type returns the node's immutable type
func (h *Handle) Type() inodefs.NodeType {
	return h.n.typ
}

// Size returns a snapshot of the node's size
func (h *Handle) Size() int {
	h.fs.mu.RLock()
	defer h.fs.mu.RUnlock()
	return h.n.Size()
}

// Entries returns a snapshot of a directory's entries in insertion order.
// Fails with ErrWrongType for a plain file and ErrNoSuchPath once the
// directory has been removed.
func (h *Handle) Entries() ([]inodefs.Entry, error) {
	h.fs.mu.RLock()
	defer h.fs.mu.RUnlock()
	entries, err := h.fs.entriesLocked(h.n)
	if err != nil {
		return nil, &inodefs.PathError{Op: "entries", Path: inodeRef(h.n.ino), Err: err}
	}
	return entries, nil
}

// entriesLocked lists n's entries as handles.
// Caller must hold fs.mu.
func (fs *FileSystem) entriesLocked(n *Inode) ([]inodefs.Entry, error) {
	if n.IsDel() {
		return nil, inodefs.ErrNoSuchPath
	}
	d, err := n.dirents()
	if err != nil {
		return nil, err
	}
	entries := make([]inodefs.Entry, 0, d.size())
	d.each(func(name string, ino uint64) bool {
		if child, ok := fs.tree.Get(ino); ok {
			entries = append(entries, inodefs.Entry{Name: name, Node: fs.handle(child)})
		}
		return true
	})
	return entries, nil
}

// inodeOf maps a NodeInfo back onto a live inode of this filesystem.
// Caller must hold fs.mu.
func (fs *FileSystem) inodeOf(info inodefs.NodeInfo) (*Inode, bool) {
	if h, ok := info.(*Handle); ok && h.fs == fs {
		return h.n, !h.n.IsDel()
	}
	return fs.tree.Get(info.ID())
}

// inodeRef names an inode in errors where no path is known
func inodeRef(ino uint64) string {
	return fmt.Sprintf("inode %d", ino)
}
