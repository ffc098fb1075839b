// Package pyproject reads and edits the project name of a pyproject.toml
// file. Edits replace only the bytes of the name value, so comments,
// ordering and whitespace elsewhere in the file survive untouched.
package pyproject

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/olimci/pyname/pkg/utils/fileutils"
)

const FileName = "pyproject.toml"

var (
	ErrMissingName       = errors.New("project.name is not set")
	ErrUnsupportedLayout = errors.New("unsupported project.name layout")
)

// Document is a parsed pyproject.toml together with its original bytes.
type Document struct {
	Path string

	raw     []byte
	name    string
	hasName bool
}

type file struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
}

// Load reads and parses the pyproject.toml inside dir.
func Load(dir string) (*Document, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s found in %s: %w", FileName, dir, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes data, which is attributed to path in errors.
func Parse(path string, data []byte) (*Document, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &Document{
		Path:    path,
		raw:     data,
		name:    f.Project.Name,
		hasName: md.IsDefined("project", "name"),
	}, nil
}

func (d *Document) Name() (string, error) {
	if !d.hasName {
		return "", fmt.Errorf("%s: %w", d.Path, ErrMissingName)
	}
	return d.name, nil
}

func (d *Document) String() string {
	return string(d.raw)
}

// WithName returns a copy of the document with project.name set to name.
// The receiver is not modified.
func (d *Document) WithName(name string) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("new project name is empty")
	}
	if !d.hasName {
		return nil, fmt.Errorf("%s: %w", d.Path, ErrMissingName)
	}
	if name == d.name {
		return d, nil
	}

	sp, err := locateName(d.raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Path, err)
	}

	value, err := encodeString(name)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(d.raw)-(sp.end-sp.start)+len(value))
	out = append(out, d.raw[:sp.start]...)
	out = append(out, value...)
	out = append(out, d.raw[sp.end:]...)

	next, err := Parse(d.Path, out)
	if err != nil {
		return nil, fmt.Errorf("re-parse edited document: %w", err)
	}
	if got, _ := next.Name(); got != name {
		return nil, fmt.Errorf("%s: edited name reads back as %q: %w", d.Path, got, ErrUnsupportedLayout)
	}

	return next, nil
}

// Save replaces the file at d.Path with the document's bytes.
func (d *Document) Save() error {
	return fileutils.WriteFileAtomic(d.Path, d.raw, 0o644)
}

// encodeString renders s as a TOML basic string.
func encodeString(s string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]string{"v": s}); err != nil {
		return "", fmt.Errorf("encode name %q: %w", s, err)
	}

	_, value, ok := strings.Cut(strings.TrimSpace(buf.String()), "=")
	if !ok {
		return "", fmt.Errorf("encode name %q: unexpected encoder output %q", s, buf.String())
	}
	return strings.TrimSpace(value), nil
}
