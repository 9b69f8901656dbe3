// Package menu loads the menu-item dataset and answers category queries.
package menu

import (
	"slices"
	"strings"
)

// Item is a single menu entry whose ingredients the player guesses.
type Item struct {
	Name string `json:"name"`

	// Category is the top-level dataset key the item was found under.
	Category string `json:"category"`

	// Subcategory is set when the category nests items one level deeper
	// (e.g. sandwiches -> burgers).
	Subcategory string `json:"subcategory,omitempty"`

	// Ingredients are in display order. Never empty.
	Ingredients []string `json:"ingredients"`
}

// Dataset is an immutable, fully loaded menu.
type Dataset struct {
	categories []string
	items      map[string][]Item
}

// Categories returns the top-level category names in sorted order.
func (d *Dataset) Categories() []string {
	return slices.Clone(d.categories)
}

// HasCategory reports whether name is a top-level category.
func (d *Dataset) HasCategory(name string) bool {
	_, ok := d.items[name]
	return ok
}

// Items returns the items in a category, or nil if it does not exist.
func (d *Dataset) Items(category string) []Item {
	return slices.Clone(d.items[category])
}

// ItemsIn returns every item belonging to one of the given categories,
// grouped by category in dataset order. Unknown names are ignored.
func (d *Dataset) ItemsIn(categories []string) []Item {
	var out []Item
	for _, c := range d.categories {
		if slices.Contains(categories, c) {
			out = append(out, d.items[c]...)
		}
	}
	return out
}

// Len returns the total number of items.
func (d *Dataset) Len() int {
	n := 0
	for _, items := range d.items {
		n += len(items)
	}
	return n
}

// Lookup finds an item by category and case-insensitive name.
func (d *Dataset) Lookup(category, name string) (Item, bool) {
	for _, it := range d.items[category] {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return Item{}, false
}
