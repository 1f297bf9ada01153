package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads a YAML settings file for --config. Keys are flag names,
// for example:
//
//	data-dir: ./docs
//	embedder: gemini
//	threshold: 0.45
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// kong resolves JSON documents natively; re-encode the YAML values.
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return kong.JSON(bytes.NewReader(data))
}
