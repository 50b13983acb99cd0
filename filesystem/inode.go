package filesystem

import (
	"sync/atomic"

	"github.com/brettbedarf/inodefs"
)

// Inode is a node of the tree: either a directory or a plain file.
// Exactly one of file and dir is set, matching typ; both are fixed at creation.
type Inode struct {
	ino    uint64
	typ    inodefs.NodeType
	file   *plainFile
	dir    *directory
	parent uint64      // containing directory of a plain file; directories use ".."
	isDel  atomic.Bool // set once the inode is released from its tree
}

// newDirInode creates a directory whose ".." references parent.
// Pass the inode's own number as parent for the root.
func newDirInode(ino, parent uint64) *Inode {
	return &Inode{
		ino: ino,
		typ: inodefs.DirectoryType,
		dir: newDirectory(ino, parent),
	}
}

func newFileInode(ino, parent uint64) *Inode {
	return &Inode{
		ino:    ino,
		typ:    inodefs.PlainFileType,
		file:   &plainFile{},
		parent: parent,
	}
}

// ID returns the inode number
func (n *Inode) ID() uint64 {
	return n.ino
}

func (n *Inode) Type() inodefs.NodeType {
	return n.typ
}

func (n *Inode) IsDir() bool {
	return n.typ == inodefs.DirectoryType
}

// Size returns the entry count of a directory or the printed length of a file
func (n *Inode) Size() int {
	if n.IsDir() {
		return n.dir.size()
	}
	return n.file.size()
}

// Read returns a copy of a plain file's words
func (n *Inode) Read() ([]string, error) {
	if n.IsDir() {
		return nil, inodefs.ErrWrongType
	}
	return n.file.read(), nil
}

// Write replaces a plain file's words
func (n *Inode) Write(words []string) error {
	if n.IsDir() {
		return inodefs.ErrWrongType
	}
	n.file.write(words)
	return nil
}

// parentID returns the identifier of the directory containing n
func (n *Inode) parentID() uint64 {
	if n.IsDir() {
		id, _ := n.dir.lookup(dotDotName)
		return id
	}
	return n.parent
}

// dirents returns the directory content of n
func (n *Inode) dirents() (*directory, error) {
	if !n.IsDir() {
		return nil, inodefs.ErrWrongType
	}
	return n.dir, nil
}

func (n *Inode) IsDel() bool {
	return n.isDel.Load()
}

// Del marks the inode as released; handles to it become stale
func (n *Inode) Del() {
	n.isDel.Store(true)
}
