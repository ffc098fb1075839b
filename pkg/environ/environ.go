// Package environ resolves invocation settings from an injected environment
// mapping rather than from the process itself.
package environ

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olimci/pyname/pkg/utils/fileutils"
)

const KeyWorkDir = "PWD"

var ErrNoWorkDir = errors.New("working directory is not set (PWD)")

// Env is an environment mapping handed to a command invocation.
type Env map[string]string

// FromList builds an Env from KEY=VALUE pairs such as os.Environ.
// Later duplicates win.
func FromList(pairs []string) Env {
	env := make(Env, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

func (e Env) Get(key string) string {
	return e[key]
}

// WorkDir returns the absolute, existing directory named by PWD.
func (e Env) WorkDir() (string, error) {
	raw := strings.TrimSpace(e[KeyWorkDir])
	if raw == "" {
		return "", ErrNoWorkDir
	}

	dir, err := fileutils.AbsPath(raw)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stat working directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("working directory is not a directory: %s", dir)
	}

	return dir, nil
}
