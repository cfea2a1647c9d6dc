package conf

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the single read and single write that Load and
// Save perform, so tests can substitute an in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// OSFS implements FileSystem using the operating system.
type OSFS struct{}

// ReadFile reads the named file.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to the named file, creating it if necessary.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// filePerm is the mode for newly created configuration files.
const filePerm fs.FileMode = 0o644

// Load reads and parses the configuration file at path. Read errors are
// returned unchanged; malformed content returns a *ParseError.
func Load(path string) (*File, error) {
	return LoadFS(OSFS{}, path)
}

// LoadFS is Load over an explicit FileSystem.
func LoadFS(fsys FileSystem, path string) (*File, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Save writes the rendered configuration to path, replacing any existing
// file. The write is a direct overwrite, not an atomic swap; a crash
// mid-write can leave a truncated file.
func (f *File) Save(path string) error {
	return f.SaveFS(OSFS{}, path)
}

// SaveFS is Save over an explicit FileSystem.
func (f *File) SaveFS(fsys FileSystem, path string) error {
	return fsys.WriteFile(path, []byte(f.String()), filePerm)
}
