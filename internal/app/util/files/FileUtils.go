package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"autoscribe/internal/app/model"
)

// Describe stats a local file and returns its descriptor
func Describe(path string) (model.FileDescriptor, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.FileDescriptor{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return model.FileDescriptor{}, err
	}
	if info.IsDir() {
		return model.FileDescriptor{}, fmt.Errorf("%s is a directory", path)
	}
	return model.FileDescriptor{
		Path:         abs,
		OriginalName: info.Name(),
		SizeBytes:    info.Size(),
	}, nil
}

// GetAllFiles returns the files in dir with the given extension, oldest first.
// An empty extension matches every regular file.
func GetAllFiles(dir, extension string) ([]model.FileDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	type entry struct {
		fd      model.FileDescriptor
		modTime int64
	}
	var found []entry
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name()), ".")) != ext {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		found = append(found, entry{
			fd: model.FileDescriptor{
				Path:         filepath.Join(dir, e.Name()),
				OriginalName: e.Name(),
				SizeBytes:    info.Size(),
			},
			modTime: info.ModTime().UnixNano(),
		})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].modTime < found[j].modTime })

	result := make([]model.FileDescriptor, len(found))
	for i, f := range found {
		result[i] = f.fd
	}
	return result, nil
}

// EnsureDir creates dir and its parents when missing
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// Release removes a temporary input file. A file that is already gone is not an error.
func Release(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
