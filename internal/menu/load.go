package menu

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDataset wraps every load-time dataset violation.
var ErrInvalidDataset = errors.New("invalid menu dataset")

//go:embed data/menu-items.json
var defaultDataset []byte

// Format is the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Default returns the dataset embedded in the binary.
func Default() (*Dataset, error) {
	return Parse(defaultDataset, FormatJSON)
}

// Load reads a dataset from path. An empty path loads the embedded dataset.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes, validates and flattens a dataset document.
func Parse(data []byte, format Format) (*Dataset, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	sch, err := schema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	return build(doc.(map[string]any))
}

func decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return jsonschema.UnmarshalJSON(bytes.NewReader(data))
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		// Round-trip through JSON so the validator sees plain JSON values.
		b, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return jsonschema.UnmarshalJSON(bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// build flattens a schema-valid document. Keys are visited in sorted order
// so the result does not depend on map iteration.
func build(doc map[string]any) (*Dataset, error) {
	ds := &Dataset{items: make(map[string][]Item, len(doc))}

	for _, category := range slices.Sorted(maps.Keys(doc)) {
		entries := doc[category].(map[string]any)
		seen := make(map[string]bool)

		add := func(sub, name string, list []any) error {
			name = strings.TrimSpace(name)
			key := strings.ToLower(name)
			if key == "" {
				return fmt.Errorf("%w: blank item name in %q", ErrInvalidDataset, category)
			}
			if seen[key] {
				return fmt.Errorf("%w: duplicate item %q in %q", ErrInvalidDataset, name, category)
			}
			seen[key] = true

			ingredients := make([]string, len(list))
			for i, v := range list {
				// Trimmed so auto-reveal and answer matching see clean names.
				ingredients[i] = strings.TrimSpace(v.(string))
			}
			ds.items[category] = append(ds.items[category], Item{
				Name:        name,
				Category:    category,
				Subcategory: sub,
				Ingredients: ingredients,
			})
			return nil
		}

		for _, key := range slices.Sorted(maps.Keys(entries)) {
			switch v := entries[key].(type) {
			case []any:
				if err := add("", key, v); err != nil {
					return nil, err
				}
			case map[string]any:
				for _, name := range slices.Sorted(maps.Keys(v)) {
					if err := add(key, name, v[name].([]any)); err != nil {
						return nil, err
					}
				}
			}
		}
		ds.categories = append(ds.categories, category)
	}

	return ds, nil
}
