// Package inventory computes stock shortages for a list of products.
package inventory

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one product row.
type Item struct {
	Name     string   `yaml:"name"`
	Stock    Quantity `yaml:"stock"`
	Required Quantity `yaml:"required"`
}

// Quantity is a non-negative amount. Decoding never fails: anything that is
// not a finite non-negative number decodes to zero.
type Quantity float64

// UnmarshalYAML accepts numbers and numeric strings.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	*q = Quantity(ParseQuantity(node.Value))
	return nil
}

// ParseQuantity parses s as a quantity. Invalid or negative input yields 0.
func ParseQuantity(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

// Shortage returns how much of the item is missing.
func (it Item) Shortage() float64 {
	return math.Max(0, float64(it.Required)-float64(it.Stock))
}

// TotalShortage sums the shortage of every item.
func TotalShortage(items []Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Shortage()
	}
	return total
}

// NewItem builds an item from raw text fields.
func NewItem(name, stock, required string) Item {
	return Item{
		Name:     name,
		Stock:    Quantity(ParseQuantity(stock)),
		Required: Quantity(ParseQuantity(required)),
	}
}

// file is the on-disk import format.
type file struct {
	Items []Item `yaml:"items"`
}

// LoadFile reads items from a YAML file of the form:
//
//	items:
//	  - name: bolts
//	    stock: 40
//	    required: 100
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inventory: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes items from YAML.
func Parse(data []byte) ([]Item, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("inventory: cannot parse items: %w", err)
	}
	return f.Items, nil
}

// FormatQuantity renders a quantity without trailing zeros.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
