// Package project reads and writes the outer inkdown project file: a YAML
// document holding one project with any number of notebooks, each of which
// is an ordered list of blocks. The transcoder itself only ever sees the
// blocks of a single notebook; locating the right notebook among siblings
// and preserving fields the editor does not own is this package's job.
package project

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/inkdown-dev/inkdown/pkg/document"
)

// File is the top-level shape of a project file. Unknown top-level fields
// are captured by Rest and written back untouched.
type File struct {
	Version string         `yaml:"version,omitempty"`
	Project *Project       `yaml:"project"`
	Rest    map[string]any `yaml:",inline"`
}

type Project struct {
	ID        string         `yaml:"id,omitempty"`
	Name      string         `yaml:"name,omitempty"`
	Notebooks []*Notebook    `yaml:"notebooks"`
	Rest      map[string]any `yaml:",inline"`
}

type Notebook struct {
	ID     string            `yaml:"id,omitempty"`
	Name   string            `yaml:"name,omitempty"`
	Blocks []*document.Block `yaml:"blocks"`
	Rest   map[string]any    `yaml:",inline"`
}

// Parse decodes a project file from its YAML source.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse project file")
	}
	if f.Project == nil {
		return nil, errors.New("project file has no project section")
	}
	return &f, nil
}

// Marshal encodes the project file back to YAML.
func (f *File) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal project file")
	}
	return data, nil
}

// Load reads and parses a project file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read project file %q", path)
	}
	return Parse(data)
}

// Write marshals the project file and writes it to disk.
func (f *File) Write(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o600), "failed to write project file %q", path)
}

// Notebooks returns all notebooks of the project.
func (f *File) Notebooks() []*Notebook {
	if f.Project == nil {
		return nil
	}
	return f.Project.Notebooks
}

// Notebook returns the notebook matching the given id or name. With an empty
// selector it returns the only notebook, and fails if there is more than one.
func (f *File) Notebook(selector string) (*Notebook, error) {
	notebooks := f.Notebooks()

	if selector == "" {
		switch len(notebooks) {
		case 0:
			return nil, errors.New("no notebooks found")
		case 1:
			return notebooks[0], nil
		default:
			return nil, errors.Errorf("project has %d notebooks, a selector is required", len(notebooks))
		}
	}

	for _, nb := range notebooks {
		if nb.ID == selector || nb.Name == selector {
			return nb, nil
		}
	}

	return nil, errors.Errorf("notebook %q not found", selector)
}
