package table

import (
	"fmt"
	"io/fs"
	"os"
)

// Provider supplies the raw bytes of a named resource.
type Provider interface {
	ReadResource(name string) ([]byte, error)
}

// FSProvider reads resources from a file system, such as an embed.FS.
type FSProvider struct {
	FS fs.FS
}

// ReadResource implements Provider.
func (p FSProvider) ReadResource(name string) ([]byte, error) {
	data, err := fs.ReadFile(p.FS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", name, err)
	}

	return data, nil
}

// DirProvider reads resources from a directory on disk.
func DirProvider(dir string) FSProvider {
	return FSProvider{FS: os.DirFS(dir)}
}

// Resources names the three tables within a Provider.
type Resources struct {
	Classes string `yaml:"classes"`
	Fields  string `yaml:"fields"`
	Methods string `yaml:"methods"`
}

// DefaultResources returns the conventional table names.
func DefaultResources() Resources {
	return Resources{
		Classes: "classes.csv",
		Fields:  "fields.csv",
		Methods: "methods.csv",
	}
}
