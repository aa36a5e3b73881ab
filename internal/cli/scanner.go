package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adam-zethraeus/safedi/internal/errors"
)

const manifestExtension = ".safedi"

// ManifestScanner collects .safedi manifest files from files and directories
type ManifestScanner struct{}

// NewManifestScanner creates a new manifest scanner
func NewManifestScanner() *ManifestScanner {
	return &ManifestScanner{}
}

// Scan resolves each path to the manifest files beneath it. Directories are
// walked recursively, skipping hidden directories; a path naming a manifest
// file directly is taken as-is. Results are sorted so downstream work is
// deterministic.
func (s *ManifestScanner) Scan(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var manifests []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			manifests = append(manifests, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.WrapFileSystemError("stat", path, err)
		}

		if !info.IsDir() {
			if strings.HasSuffix(path, manifestExtension) {
				add(filepath.Clean(path))
			}
			continue
		}

		err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// Hidden directories are skipped while walking, but a hidden
				// directory named explicitly as the walk root was asked for.
				if entry != path && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(entry, manifestExtension) {
				add(filepath.Clean(entry))
			}
			return nil
		})
		if err != nil {
			return nil, errors.WrapFileSystemError("scan", path, err)
		}
	}

	sort.Strings(manifests)
	return manifests, nil
}
