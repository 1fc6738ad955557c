package load

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supported data file extensions, lowercase
var supportedExtensions = map[string]bool{
	".csv":    true,
	".tsv":    true,
	".xlsx":   true,
	".db":     true,
	".sqlite": true,
}

// Supported reports whether the file's extension names a loadable
// format.
func Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover lists the loadable data files directly under dir, skipping
// dotfiles, in directory order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error listing %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if Supported(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
