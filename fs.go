package tint

import (
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// FileSystem abstracts filesystem operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	IsNotExist(err error) bool
	ReadFile(name string) ([]byte, error)
	// Glob returns the paths under dir matching pattern, relative to dir.
	// Patterns support "**" for any number of directories.
	Glob(dir, pattern string) ([]string, error)
}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (osFS) IsNotExist(err error) bool             { return os.IsNotExist(err) }
func (osFS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }
func (osFS) Glob(dir, pattern string) ([]string, error) {
	return doublestar.Glob(os.DirFS(dir), pattern)
}
