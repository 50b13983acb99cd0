package filesystem

import (
	"strings"

	"github.com/brettbedarf/inodefs"
)

// startLocked returns the inode resolution of p begins at.
// Caller must hold fs.mu.
func (fs *FileSystem) startLocked(p inodefs.Path) *Inode {
	if p.Absolute {
		return fs.tree.Root()
	}
	return fs.cwd
}

// resolveLocked walks every component of p. An empty path resolves to its
// starting directory. Caller must hold fs.mu.
func (fs *FileSystem) resolveLocked(p inodefs.Path) (*Inode, error) {
	cur := fs.startLocked(p)
	for _, name := range p.Components {
		next, err := fs.tree.child(cur, name)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// resolveParentLocked resolves all but the last component of p and returns
// the containing directory with the unresolved leaf name. The leaf is "" for
// an empty path. Caller must hold fs.mu.
func (fs *FileSystem) resolveParentLocked(p inodefs.Path) (dir *Inode, leaf string, err error) {
	dirPath, leaf := p.Split()
	dir, err = fs.resolveLocked(dirPath)
	if err != nil {
		return nil, "", err
	}
	if !dir.IsDir() {
		return nil, "", inodefs.ErrNotADirectory
	}
	return dir, leaf, nil
}

// validateName checks a name about to be created
func (fs *FileSystem) validateName(name string) error {
	switch {
	case name == "":
		return inodefs.ErrInvalidName
	case strings.Contains(name, inodefs.Separator):
		return inodefs.ErrInvalidName
	case fs.cfg.MaxNameLen > 0 && len(name) > fs.cfg.MaxNameLen:
		return inodefs.ErrInvalidName
	}
	return nil
}
