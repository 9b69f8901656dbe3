package menugen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/menuquiz/internal/menu"
)

// ErrItemExists is returned by Merge when the item is already present and
// overwrite was not requested.
var ErrItemExists = errors.New("item already exists")

// Fragment returns the dataset document holding just d.
func Fragment(d Draft) map[string]any {
	doc := map[string]any{}
	place(doc, d)
	return doc
}

// Encode renders a dataset document in the given format.
func Encode(doc map[string]any, format menu.Format) ([]byte, error) {
	switch format {
	case menu.FormatYAML:
		return yaml.Marshal(doc)
	case menu.FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Merge adds d to an encoded dataset and returns the new encoding. The
// result is parsed again so an invalid merge is never returned.
func Merge(data []byte, format menu.Format, d Draft, overwrite bool) ([]byte, error) {
	doc := map[string]any{}
	var err error
	switch format {
	case menu.FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case menu.FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds, err := menu.Parse(data, format)
	if err != nil {
		return nil, err
	}
	if existing, ok := ds.Lookup(d.Category, d.Item); ok {
		if !overwrite {
			return nil, fmt.Errorf("%w: %q in %q", ErrItemExists, existing.Name, d.Category)
		}
		remove(doc, existing)
	}

	if err := place(doc, d); err != nil {
		return nil, err
	}

	out, err := Encode(doc, format)
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	if _, err := menu.Parse(out, format); err != nil {
		return nil, fmt.Errorf("merged dataset: %w", err)
	}
	return out, nil
}

// place writes d's ingredients at category[/subcategory]/item.
func place(doc map[string]any, d Draft) error {
	ingredients := make([]any, len(d.Ingredients))
	for i, s := range d.Ingredients {
		ingredients[i] = s
	}

	cat, _ := doc[d.Category].(map[string]any)
	if cat == nil {
		cat = map[string]any{}
		doc[d.Category] = cat
	}
	if d.Subcategory == "" {
		if _, nested := cat[d.Item].(map[string]any); nested {
			return fmt.Errorf("%q in %q is a subcategory, not an item", d.Item, d.Category)
		}
		cat[d.Item] = ingredients
		return nil
	}

	sub, ok := cat[d.Subcategory].(map[string]any)
	if !ok {
		if _, isItem := cat[d.Subcategory]; isItem {
			return fmt.Errorf("%q in %q is an item, not a subcategory", d.Subcategory, d.Category)
		}
		sub = map[string]any{}
		cat[d.Subcategory] = sub
	}
	sub[d.Item] = ingredients
	return nil
}

// remove deletes an existing item, which may differ from the draft in
// case or subcategory. Dataset keys are matched after trimming.
func remove(doc map[string]any, it menu.Item) {
	cat, _ := doc[it.Category].(map[string]any)
	if cat == nil {
		return
	}
	if it.Subcategory == "" {
		deleteTrimmed(cat, it.Name)
		return
	}
	for key, v := range cat {
		sub, ok := v.(map[string]any)
		if !ok || strings.TrimSpace(key) != it.Subcategory {
			continue
		}
		deleteTrimmed(sub, it.Name)
		if len(sub) == 0 {
			delete(cat, key)
		}
	}
}

func deleteTrimmed(m map[string]any, name string) {
	for key := range m {
		if strings.TrimSpace(key) == name {
			delete(m, key)
		}
	}
}
