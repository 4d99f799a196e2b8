package config

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FileSystem abstracts filesystem operations for testability.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// AferoFS implements FileSystem on top of an afero.Fs. Production uses the
// OS-backed filesystem; tests swap in afero.NewMemMapFs.
type AferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new AferoFS backed by fsys.
func NewAferoFS(fsys afero.Fs) *AferoFS {
	return &AferoFS{fs: fsys}
}

// NewOSFS creates a FileSystem backed by the operating system.
func NewOSFS() *AferoFS {
	return NewAferoFS(afero.NewOsFs())
}

// Stat returns file info for the given path.
func (a *AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.fs.Stat(path)
}

// ReadFile reads the entire file at path.
func (a *AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}
