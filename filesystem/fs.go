package filesystem

import (
	"errors"
	"sync"

	"github.com/brettbedarf/inodefs"
	"github.com/brettbedarf/inodefs/config"
	"github.com/brettbedarf/inodefs/internal/util"
	"github.com/google/uuid"
)

var _ inodefs.FileSystemOperator = (*FileSystem)(nil)

// FileSystem holds the tree plus the simulated process state: the current
// directory and the prompt. A single lock guards the whole tree per operation
// so no caller observes a partially applied mutation.
type FileSystem struct {
	cfg     *config.Config
	tree    *Tree
	cwd     *Inode // always a live directory
	prompt  string
	session string // tags log lines of this filesystem instance
	mu      sync.RWMutex
}

// NewFS creates an empty filesystem whose cwd is the root. A nil cfg uses defaults.
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	tree := NewTree()
	fs := &FileSystem{
		cfg:     cfg,
		tree:    tree,
		cwd:     tree.Root(),
		prompt:  cfg.Prompt,
		session: uuid.NewString(),
	}
	logger := fs.logger("NewFS")
	logger.Debug().Uint64("root", tree.Root().ino).Msg("Created filesystem")
	return fs
}

func (fs *FileSystem) logger(op string) util.Logger {
	return util.GetLogger("FS."+op).With().Str("session", fs.session).Logger()
}

// Root returns a handle to the root directory
func (fs *FileSystem) Root() inodefs.NodeInfo {
	return fs.handle(fs.tree.Root())
}

// Cwd returns a handle to the current directory
func (fs *FileSystem) Cwd() inodefs.NodeInfo {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.handle(fs.cwd)
}

// NodeCount returns the number of live inodes, the root included
func (fs *FileSystem) NodeCount() int {
	return fs.tree.Len()
}

func (fs *FileSystem) Prompt() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.prompt
}

// SetPrompt replaces the prompt; no validation is applied
func (fs *FileSystem) SetPrompt(prompt string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.prompt = prompt
}

// Resolve returns the node named by every component of p
func (fs *FileSystem) Resolve(p inodefs.Path) (inodefs.NodeInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	n, err := fs.resolveLocked(p)
	if err != nil {
		return nil, inodefs.NewPathError("resolve", p, err)
	}
	logger := fs.logger("Resolve")
	logger.Trace().Stringer("path", p).Uint64("ino", n.ino).Msg("Resolved path")
	return fs.handle(n), nil
}

// ChangeDirectory makes the directory named by p the current directory.
// On failure the current directory is unchanged.
func (fs *FileSystem) ChangeDirectory(p inodefs.Path) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	n, err := fs.resolveLocked(p)
	if err != nil {
		return inodefs.NewPathError("chdir", p, err)
	}
	if !n.IsDir() {
		return inodefs.NewPathError("chdir", p, inodefs.ErrNotADirectory)
	}
	fs.cwd = n
	logger := fs.logger("ChangeDirectory")
	logger.Debug().Stringer("path", p).Uint64("ino", n.ino).Msg("Changed directory")
	return nil
}

// List returns the entries of the directory named by p, "." and ".." included
func (fs *FileSystem) List(p inodefs.Path) ([]inodefs.Entry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	n, err := fs.resolveLocked(p)
	if err != nil {
		return nil, inodefs.NewPathError("list", p, err)
	}
	if !n.IsDir() {
		return nil, inodefs.NewPathError("list", p, inodefs.ErrNotADirectory)
	}
	entries, err := fs.entriesLocked(n)
	if err != nil {
		return nil, inodefs.NewPathError("list", p, err)
	}
	return entries, nil
}

// ListDirectory lists the directory named by p together with its absolute
// path, both taken from the same tree state
func (fs *FileSystem) ListDirectory(p inodefs.Path) (inodefs.Listing, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	n, err := fs.resolveLocked(p)
	if err != nil {
		return inodefs.Listing{}, inodefs.NewPathError("list", p, err)
	}
	if !n.IsDir() {
		return inodefs.Listing{}, inodefs.NewPathError("list", p, inodefs.ErrNotADirectory)
	}
	path, err := fs.tree.pathOf(n)
	if err != nil {
		return inodefs.Listing{}, inodefs.NewPathError("list", p, err)
	}
	entries, err := fs.entriesLocked(n)
	if err != nil {
		return inodefs.Listing{}, inodefs.NewPathError("list", p, err)
	}
	return inodefs.Listing{Path: path, Entries: entries}, nil
}

// ListRecursive lists the directory named by p followed by every directory
// below it, depth first in entry order
func (fs *FileSystem) ListRecursive(p inodefs.Path) ([]inodefs.Listing, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	n, err := fs.resolveLocked(p)
	if err != nil {
		return nil, inodefs.NewPathError("list", p, err)
	}
	if !n.IsDir() {
		return nil, inodefs.NewPathError("list", p, inodefs.ErrNotADirectory)
	}

	var listings []inodefs.Listing
	var visit func(dir *Inode) error
	visit = func(dir *Inode) error {
		path, err := fs.tree.pathOf(dir)
		if err != nil {
			return err
		}
		entries, err := fs.entriesLocked(dir)
		if err != nil {
			return err
		}
		listings = append(listings, inodefs.Listing{Path: path, Entries: entries})
		for _, e := range entries {
			if isReserved(e.Name) || e.Node.Type() != inodefs.DirectoryType {
				continue
			}
			if err := visit(e.Node.(*Handle).n); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(n); err != nil {
		return nil, inodefs.NewPathError("list", p, err)
	}
	return listings, nil
}

// CreateFile creates a plain file at p holding content. Fails with
// ErrAlreadyExists if the name is taken, leaving the directory untouched.
func (fs *FileSystem) CreateFile(p inodefs.Path, content []string) (inodefs.NodeInfo, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	dir, leaf, err := fs.resolveParentLocked(p)
	if err == nil {
		err = fs.validateName(leaf)
	}
	if err != nil {
		return nil, inodefs.NewPathError("create", p, err)
	}
	n, err := fs.tree.mkfile(dir, leaf, content)
	if err != nil {
		return nil, inodefs.NewPathError("create", p, err)
	}
	logger := fs.logger("CreateFile")
	logger.Debug().Stringer("path", p).Uint64("ino", n.ino).Int("words", len(content)).Msg("Created file")
	return fs.handle(n), nil
}

// WriteFile replaces the content of the existing plain file at p
func (fs *FileSystem) WriteFile(p inodefs.Path, content []string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	n, err := fs.fileLocked(p)
	if err != nil {
		return inodefs.NewPathError("write", p, err)
	}
	if err := n.Write(content); err != nil {
		return inodefs.NewPathError("write", p, err)
	}
	logger := fs.logger("WriteFile")
	logger.Debug().Stringer("path", p).Uint64("ino", n.ino).Int("words", len(content)).Msg("Wrote file")
	return nil
}

// ReadFile returns a copy of the words of the plain file at p
func (fs *FileSystem) ReadFile(p inodefs.Path) ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	n, err := fs.fileLocked(p)
	if err != nil {
		return nil, inodefs.NewPathError("read", p, err)
	}
	words, err := n.Read()
	if err != nil {
		return nil, inodefs.NewPathError("read", p, err)
	}
	return words, nil
}

// fileLocked finds the plain file at p using parent-then-leaf resolution.
// Caller must hold fs.mu.
func (fs *FileSystem) fileLocked(p inodefs.Path) (*Inode, error) {
	dir, leaf, err := fs.resolveParentLocked(p)
	if err != nil {
		return nil, err
	}
	if leaf == "" {
		// empty path names the starting directory itself
		return nil, inodefs.ErrNotAFile
	}
	n, err := fs.tree.child(dir, leaf)
	if err != nil {
		return nil, err
	}
	if n.IsDir() {
		return nil, inodefs.ErrNotAFile
	}
	return n, nil
}

// MakeDirectory creates a directory at p whose ".." is its containing directory
func (fs *FileSystem) MakeDirectory(p inodefs.Path) (inodefs.NodeInfo, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	dir, leaf, err := fs.resolveParentLocked(p)
	if err == nil {
		err = fs.validateName(leaf)
	}
	if err != nil {
		return nil, inodefs.NewPathError("mkdir", p, err)
	}
	n, err := fs.tree.mkdir(dir, leaf)
	if err != nil {
		return nil, inodefs.NewPathError("mkdir", p, err)
	}
	logger := fs.logger("MakeDirectory")
	logger.Debug().Stringer("path", p).Uint64("ino", n.ino).Msg("Created directory")
	return fs.handle(n), nil
}

// MakeDirectoryAll creates every missing directory along p and returns the leaf,
// like `mkdir -p`. Existing directories are not an error, and "." or ".." after
// a missing name step through the directories about to be created. The whole
// path is checked before anything is created so a failure leaves the tree
// unchanged.
func (fs *FileSystem) MakeDirectoryAll(p inodefs.Path) (inodefs.NodeInfo, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.checkMakeAllLocked(p); err != nil {
		return nil, inodefs.NewPathError("mkdir", p, err)
	}

	cur := fs.startLocked(p)
	created := 0
	for _, name := range p.Components {
		next, err := fs.tree.child(cur, name)
		if errors.Is(err, inodefs.ErrNoSuchPath) {
			// checked above: name is valid and not reserved
			next, err = fs.tree.mkdir(cur, name)
			created++
		}
		if err != nil {
			return nil, inodefs.NewPathError("mkdir", p, err)
		}
		cur = next
	}
	if created > 0 {
		logger := fs.logger("MakeDirectoryAll")
		logger.Debug().Stringer("path", p).Int("created", created).Msg("Created directories")
	}
	return fs.handle(cur), nil
}

// checkMakeAllLocked walks p the way MakeDirectoryAll will, tracking the names
// still to be created below the last existing directory.
// Caller must hold fs.mu.
func (fs *FileSystem) checkMakeAllLocked(p inodefs.Path) error {
	cur := fs.startLocked(p)
	var pending []string
	for _, name := range p.Components {
		if len(pending) > 0 {
			switch name {
			case dotName:
			case dotDotName:
				pending = pending[:len(pending)-1]
			default:
				if err := fs.validateName(name); err != nil {
					return err
				}
				pending = append(pending, name)
			}
			continue
		}

		next, err := fs.tree.child(cur, name)
		if errors.Is(err, inodefs.ErrNoSuchPath) {
			if err := fs.validateName(name); err != nil {
				return err
			}
			pending = append(pending, name)
			continue
		}
		if err != nil {
			return err
		}
		if !next.IsDir() {
			return inodefs.ErrNotADirectory
		}
		cur = next
	}
	return nil
}

// Remove removes the plain file or empty directory at p
func (fs *FileSystem) Remove(p inodefs.Path) error {
	return fs.remove("remove", p, false)
}

// RemoveAll removes the node at p and, for a directory, everything below it
func (fs *FileSystem) RemoveAll(p inodefs.Path) error {
	return fs.remove("removeall", p, true)
}

func (fs *FileSystem) remove(op string, p inodefs.Path, recursive bool) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	dir, leaf, err := fs.resolveParentLocked(p)
	if err != nil {
		return inodefs.NewPathError(op, p, err)
	}
	if leaf == "" || isReserved(leaf) {
		return inodefs.NewPathError(op, p, inodefs.ErrReservedName)
	}
	target, err := fs.tree.child(dir, leaf)
	if err != nil {
		return inodefs.NewPathError(op, p, err)
	}
	if target.IsDir() && !recursive && !target.dir.isEmpty() {
		return inodefs.NewPathError(op, p, inodefs.ErrNotEmpty)
	}

	// keep cwd reachable when it lives inside the removed subtree
	if target.IsDir() && fs.tree.contains(target, fs.cwd) {
		fs.cwd = dir
	}
	before := fs.tree.Len()
	if _, err := fs.tree.unlink(dir, leaf); err != nil {
		return inodefs.NewPathError(op, p, err)
	}
	logger := fs.logger("Remove")
	logger.Debug().Stringer("path", p).Uint64("ino", target.ino).Int("released", before-fs.tree.Len()).Msg("Removed node")
	return nil
}

// PathOf returns the absolute path of n, see [inodefs.FileSystemOperator.PathOf]
func (fs *FileSystem) PathOf(n inodefs.NodeInfo) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if n == nil {
		return "", &inodefs.PathError{Op: "pathof", Path: "<nil>", Err: inodefs.ErrNoSuchPath}
	}
	ino, ok := fs.inodeOf(n)
	if !ok {
		return "", &inodefs.PathError{Op: "pathof", Path: inodeRef(n.ID()), Err: inodefs.ErrNoSuchPath}
	}
	path, err := fs.tree.pathOf(ino)
	if err != nil {
		return "", &inodefs.PathError{Op: "pathof", Path: inodeRef(ino.ino), Err: err}
	}
	return path, nil
}
