package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// meterExtensions are the tabular formats recognized as meter sources.
var meterExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// FileInfo represents information about a discovered source file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// BuildingID derives the building identifier from the source file name.
// The stem of the file is the identity of the building; anything embedded in
// the file content is ignored by the pipeline.
func (f FileInfo) BuildingID() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindMeterFiles finds every meter source file directly inside dir
// (non-recursive). The returned order is the directory read order; callers
// must not rely on it beyond determinism within one run.
func (d *Discovery) FindMeterFiles(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue // Excel lock files
		}
		if !meterExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// IsMeterFile reports whether the file name carries a recognized tabular
// extension.
func IsMeterFile(name string) bool {
	return meterExtensions[strings.ToLower(filepath.Ext(name))]
}
