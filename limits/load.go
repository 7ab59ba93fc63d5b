package limits

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads ceilings from a YAML file. Missing keys keep their defaults;
// unknown keys are rejected so a typo never silently disables a ceiling.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("limits: failed to read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Limits{}, fmt.Errorf("limits: %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes YAML ceilings from memory. An empty document yields Default().
func Parse(data []byte) (Limits, error) {
	var l Limits
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Limits{}, fmt.Errorf("failed to parse limits: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}
	return l.Resolve(), nil
}
