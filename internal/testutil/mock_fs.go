package testutil

import (
	"io/fs"
	"os"
)

// MockFS is a mock implementation of tint.FileSystem for testing.
// Unset funcs report every file as missing.
type MockFS struct {
	StatFunc     func(name string) (fs.FileInfo, error)
	ReadFileFunc func(name string) ([]byte, error)
	GlobFunc     func(dir, pattern string) ([]string, error)
}

// NewMockFSFromFiles returns a MockFS serving files keyed by path.
func NewMockFSFromFiles(files map[string]string) *MockFS {
	return &MockFS{
		StatFunc: func(name string) (fs.FileInfo, error) {
			if _, ok := files[name]; ok {
				return nil, nil
			}
			return nil, fs.ErrNotExist
		},
		ReadFileFunc: func(name string) ([]byte, error) {
			if content, ok := files[name]; ok {
				return []byte(content), nil
			}
			return nil, fs.ErrNotExist
		},
	}
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	if m.StatFunc != nil {
		return m.StatFunc(name)
	}
	return nil, fs.ErrNotExist
}

func (m *MockFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(name)
	}
	return nil, fs.ErrNotExist
}

func (m *MockFS) Glob(dir, pattern string) ([]string, error) {
	if m.GlobFunc != nil {
		return m.GlobFunc(dir, pattern)
	}
	return nil, nil
}
