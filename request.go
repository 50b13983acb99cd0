// Package inodefs contains core domain types and interfaces for an in-memory
// inode filesystem with a current working directory
package inodefs

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path Path
	Type NodeCreateRequestType
}

// NodeCreateRequestType valid types are FileNodeType "file", DirNodeType "dir"
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

// FileCreateRequest describes a plain file to create with its initial words
type FileCreateRequest struct {
	NodeRequest
	Content []string
}

// DirCreateRequest describes a directory to create, including any missing ancestors
type DirCreateRequest struct {
	NodeRequest
}
