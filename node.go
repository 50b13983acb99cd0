package inodefs

// NodeType is the fixed kind of a node, set once at creation
type NodeType uint8

const (
	DirectoryType NodeType = iota + 1
	PlainFileType
)

func (t NodeType) String() string {
	switch t {
	case DirectoryType:
		return "directory"
	case PlainFileType:
		return "file"
	default:
		return "unknown"
	}
}

// NodeInfo provides read-only access to node information for external consumers.
// Handles are only valid until the node they refer to is removed.
type NodeInfo interface {
	// ID returns the node's identifier, unique for the lifetime of its tree
	ID() uint64

	// Type returns whether the node is a directory or a plain file
	Type() NodeType

	// Size returns the entry count for a directory, or the printed length
	// of the words for a plain file
	Size() int

	// Entries returns the directory's entries in insertion order, including
	// "." and "..". Fails with ErrWrongType on a plain file.
	Entries() ([]Entry, error)
}

// Entry is a single named reference held by a directory
type Entry struct {
	Name string
	Node NodeInfo
}

// Listing is one directory visited by a recursive listing
type Listing struct {
	Path    string // see [FileSystemOperator.PathOf]
	Entries []Entry
}
