package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/inodefs"
	"github.com/brettbedarf/inodefs/internal/util"
	"gopkg.in/yaml.v3"
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (inodefs.NodeCreateRequestType, error) {
	var meta struct {
		Type inodefs.NodeCreateRequestType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileRequest handles file-specific unmarshaling with content
func UnmarshalFileRequest(data []byte) (*inodefs.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertFileDTO(dto)
}

// UnmarshalDirRequest handles explicit directory unmarshaling (no content)
func UnmarshalDirRequest(data []byte) (*inodefs.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertDirDTO(dto)
}

// UnmarshalJSON decodes a JSON array of node definitions.
// Entries of an unknown type are skipped with a warning.
func UnmarshalJSON(data []byte) (*Requests, error) {
	logger := util.GetLogger("requests.UnmarshalJSON")

	var rawNodes []json.RawMessage
	if err := json.Unmarshal(data, &rawNodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
	}

	reqs := &Requests{}
	for i, rawNode := range rawNodes {
		nodeType, err := GetNodeType(rawNode)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}

		switch nodeType {
		case inodefs.FileNodeType:
			fileReq, err := UnmarshalFileRequest(rawNode)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			reqs.Files = append(reqs.Files, fileReq)
		case inodefs.DirNodeType:
			dirReq, err := UnmarshalDirRequest(rawNode)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			reqs.Dirs = append(reqs.Dirs, dirReq)
		default:
			logger.Warn().Int("index", i).Str("type", string(nodeType)).Msg("Unknown node type")
		}
	}
	return reqs, nil
}

// UnmarshalYAML decodes a YAML sequence of node definitions.
// Entries of an unknown type are skipped with a warning.
func UnmarshalYAML(data []byte) (*Requests, error) {
	logger := util.GetLogger("requests.UnmarshalYAML")

	var dtos []FileRequestDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
	}

	reqs := &Requests{}
	for i, dto := range dtos {
		switch dto.Type {
		case inodefs.FileNodeType:
			fileReq, err := convertFileDTO(dto)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			reqs.Files = append(reqs.Files, fileReq)
		case inodefs.DirNodeType:
			if len(dto.Content) > 0 {
				return nil, fmt.Errorf("node %d: directory %q cannot have content", i, dto.Path)
			}
			dirReq, err := convertDirDTO(DirRequestDTO{NodeRequestDTO: dto.NodeRequestDTO})
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			reqs.Dirs = append(reqs.Dirs, dirReq)
		default:
			logger.Warn().Int("index", i).Str("type", string(dto.Type)).Msg("Unknown node type")
		}
	}
	return reqs, nil
}

// LoadFile reads a manifest, choosing the decoder by file extension
// (.json, .yaml or .yml)
func LoadFile(path string) (*Requests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return UnmarshalJSON(data)
	case ".yaml", ".yml":
		return UnmarshalYAML(data)
	default:
		return nil, fmt.Errorf("unknown nodes file extension: %s", path)
	}
}

func convertNodeDTO(dto NodeRequestDTO) (inodefs.NodeRequest, error) {
	p := inodefs.ParsePath(dto.Path)
	if p.IsEmpty() {
		return inodefs.NodeRequest{}, fmt.Errorf("missing path for %s node", dto.Type)
	}
	return inodefs.NodeRequest{Path: p, Type: dto.Type}, nil
}

func convertFileDTO(dto FileRequestDTO) (*inodefs.FileCreateRequest, error) {
	node, err := convertNodeDTO(dto.NodeRequestDTO)
	if err != nil {
		return nil, err
	}
	content := dto.Content
	if content == nil {
		content = []string{}
	}
	return &inodefs.FileCreateRequest{NodeRequest: node, Content: content}, nil
}

func convertDirDTO(dto DirRequestDTO) (*inodefs.DirCreateRequest, error) {
	node, err := convertNodeDTO(dto.NodeRequestDTO)
	if err != nil {
		return nil, err
	}
	return &inodefs.DirCreateRequest{NodeRequest: node}, nil
}
