package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/formtrack/internal/model"
)

// ErrEmptyScript is returned for scripts without steps.
var ErrEmptyScript = errors.New("script has no steps")

// ScriptStore loads replay scripts.
type ScriptStore interface {
	LoadScript(path m.Path) (m.Script, error)
}

type scriptStore struct{}

// NewScriptStore constructs a ScriptStore reading YAML files.
func NewScriptStore() ScriptStore {
	return &scriptStore{}
}

func (s *scriptStore) LoadScript(path m.Path) (m.Script, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}

	script, err := DecodeScript(bytes.NewReader(content))
	if err != nil {
		return m.Script{}, fmt.Errorf("failed to decode script %s: %w", path, err)
	}

	return script, nil
}

// DecodeScript decodes a YAML replay script. Unknown fields are rejected.
func DecodeScript(r io.Reader) (m.Script, error) {
	var script m.Script

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return m.Script{}, ErrEmptyScript
		}

		return m.Script{}, err
	}

	if len(script.Steps) == 0 {
		return m.Script{}, ErrEmptyScript
	}

	return script, nil
}
