package requests

import (
	"github.com/brettbedarf/inodefs"
	"github.com/brettbedarf/inodefs/internal/util"
)

// Apply creates every requested node in fs, directories first. Like `mkdir -p`,
// missing ancestors of both directories and files are created. Failed requests
// are logged and skipped; the counts of created directory and file requests
// are returned.
func Apply(fs inodefs.FileSystemOperator, reqs *Requests) (dirs, files int) {
	logger := util.GetLogger("requests.Apply")

	for _, req := range reqs.Dirs {
		if _, err := fs.MakeDirectoryAll(req.Path); err != nil {
			logger.Debug().Stringer("path", req.Path).Err(err).Msg("Failed to add directory request")
			continue
		}
		dirs++
	}
	for _, req := range reqs.Files {
		parent, _ := req.Path.Split()
		if _, err := fs.MakeDirectoryAll(parent); err != nil {
			logger.Debug().Stringer("path", req.Path).Err(err).Msg("Failed to create file's ancestor directory(s)")
			continue
		}
		if _, err := fs.CreateFile(req.Path, req.Content); err != nil {
			logger.Debug().Stringer("path", req.Path).Err(err).Msg("Failed to add file request")
			continue
		}
		files++
	}
	logger.Info().Int("directories", dirs).Int("files", files).Msg("Added new nodes to filesystem")
	return dirs, files
}
