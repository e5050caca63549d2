package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// Path returns the path of a fixture file for testing.
func Path(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "xml", file)
}

// Read returns the content of a fixture file.
func Read(file string) ([]byte, error) {
	return os.ReadFile(Path(file))
}

// CopyTo copies fixture files into directory dir and returns the paths of
// the copies. Tests modify the copies, never the fixtures.
func CopyTo(dir string, files ...string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		data, err := Read(file)
		if err != nil {
			return nil, err
		}
		dest := filepath.Join(dir, file)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return nil, err
		}
		paths = append(paths, dest)
	}
	return paths, nil
}
