package requests

import (
	"github.com/brettbedarf/inodefs"
)

// NodeRequestDTO is the JSON/YAML representation of [inodefs.NodeRequest].
// Path is a slash separated string; a leading "/" makes it absolute.
type NodeRequestDTO struct {
	Path string                        `json:"path" yaml:"path"`
	Type inodefs.NodeCreateRequestType `json:"type" yaml:"type"`
}

// FileRequestDTO is the JSON/YAML representation of [inodefs.FileCreateRequest]
type FileRequestDTO struct {
	NodeRequestDTO `yaml:",inline"`
	Content        []string `json:"content,omitempty" yaml:"content,omitempty"`
}

// DirRequestDTO is the JSON/YAML representation of [inodefs.DirCreateRequest]
type DirRequestDTO struct {
	NodeRequestDTO `yaml:",inline"`
}

// Requests holds the decoded node definitions of a manifest
type Requests struct {
	Dirs  []*inodefs.DirCreateRequest
	Files []*inodefs.FileCreateRequest
}
