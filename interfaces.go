package inodefs

// FileSystemOperator defines the filesystem operations consumed by the command layer.
// Every method either succeeds fully or fails with a *PathError and leaves the
// tree unchanged.
type FileSystemOperator interface {
	Root() NodeInfo
	Cwd() NodeInfo

	// Resolve walks every component of p and returns the node it names
	Resolve(p Path) (NodeInfo, error)
	ChangeDirectory(p Path) error
	List(p Path) ([]Entry, error)
	// ListDirectory is List plus the directory's absolute path, read atomically
	ListDirectory(p Path) (Listing, error)
	ListRecursive(p Path) ([]Listing, error)

	CreateFile(p Path, content []string) (NodeInfo, error)
	WriteFile(p Path, content []string) error
	ReadFile(p Path) ([]string, error)
	MakeDirectory(p Path) (NodeInfo, error)
	MakeDirectoryAll(p Path) (NodeInfo, error)
	Remove(p Path) error
	RemoveAll(p Path) error

	// PathOf renders the absolute path of n: "/" for the root, "/a/b/" for a
	// directory and "/a/b" for a plain file
	PathOf(n NodeInfo) (string, error)

	Prompt() string
	SetPrompt(prompt string)
}
