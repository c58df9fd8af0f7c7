package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"gopkg.in/yaml.v3"
)

// readRecord loads one record. JSON keeps its key order through jsonvalue;
// YAML is decoded into plain maps.
func readRecord(path string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		v, err := jsonvalue.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return v, nil
	}
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return normalizeYAML(v)
}

// normalizeYAML rewrites map[any]any, which yaml produces for mappings with
// non-string keys, into map[string]any.
func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("parse yaml: mapping key %v is not a string", k)
			}
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		for i, item := range t {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
