// Package composite models hierarchical priced items where a group's price is the
// recursive sum of its parts.
package composite

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ErrInvalidPrice is returned for negative, NaN or infinite leaf prices.
var ErrInvalidPrice = errors.New("price must be a non-negative finite number")

// Item is any node of a price tree.
type Item interface {
	Name() string
	Price() float64
}

// Leaf carries a fixed price.
type Leaf struct {
	name  string
	price float64
}

// NewLeaf validates price and builds an immutable leaf.
func NewLeaf(name string, price float64) (*Leaf, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("leaf %q: %w: %v", name, ErrInvalidPrice, price)
	}
	return &Leaf{name: name, price: price}, nil
}

// MustLeaf is NewLeaf that panics on an invalid price.
func MustLeaf(name string, price float64) *Leaf {
	leaf, err := NewLeaf(name, price)
	if err != nil {
		panic(err)
	}
	return leaf
}

// Name returns the leaf label.
func (l *Leaf) Name() string {
	return l.name
}

// Price returns the price given at construction.
func (l *Leaf) Price() float64 {
	return l.price
}

// Composite derives its price from its children on every read.
//
// Children are not checked for cycles: adding an ancestor (or the composite
// itself) makes Price recurse without bound.
type Composite struct {
	mu       sync.RWMutex
	name     string
	children []Item
}

// NewComposite builds a composite with no children.
func NewComposite(name string) *Composite {
	return &Composite{name: name}
}

// Name returns the composite label.
func (c *Composite) Name() string {
	return c.name
}

// Add appends item to the child sequence and returns c for chaining. Nil
// items, including typed nil pointers, are ignored.
func (c *Composite) Add(item Item) *Composite {
	if isNil(item) {
		return c
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = append(c.children, item)
	return c
}

// Children returns a copy of the child sequence in insertion order.
func (c *Composite) Children() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.children))
	copy(out, c.children)
	return out
}

// Price sums the prices of all children recursively.
func (c *Composite) Price() float64 {
	var total float64
	for _, child := range c.Children() {
		total += child.Price()
	}
	return total
}

// FormatPrice renders a price in decimal form, always with a fractional part.
func FormatPrice(price float64) string {
	text := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.ContainsAny(text, ".eEN") {
		text += ".0"
	}
	return text
}

func isNil(item Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
