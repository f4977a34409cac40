package main

import (
	"errors"
	"fmt"
	"io"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// load reads the document at path, or from stdin when path is empty or "-".
// Keys of a file are split on dots, so "user.name: Jane" encodes as
// user[name]=Jane.
func load(path string, stdin io.Reader) (map[string]any, error) {
	if source(path) == "stdin" {
		return decode(stdin)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return k.Raw(), nil
}

func decode(r io.Reader) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}
