package models

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/ghuser/gourmet/services/restaurant/domain"
)

// componentID assigns identities to menu components. Items and categories
// share the sequence, so an ID is unique across the whole catalog.
var componentID atomic.Int64

func nextComponentID() int {
	return int(componentID.Add(1))
}

// MenuComponent is the uniform contract over menu leaves (MenuItem) and
// internal nodes (MenuCategory). Child mutation and item-only operations are
// not part of the interface; use the package helpers (AddChild, RemoveChild,
// FindItem) which type-assert and return typed errors, so callers can
// attempt the uniform operation and branch on the error value instead of
// crashing.
type MenuComponent interface {
	ID() int
	Name() string
	Description() string

	// Price returns the component's price. Categories are not priced and
	// return zero.
	Price() float64

	// Display renders the component at the given tree depth, two spaces of
	// indentation per level, one trailing newline per line.
	Display(depth int) string
}

// MenuCategory is an internal catalog node: a named, ordered collection of
// child components. Insertion order is display order. Building the tree is
// not safe for concurrent writers; the catalog is expected to be assembled
// once at startup and treated as read-mostly afterwards.
type MenuCategory struct {
	id          int
	name        string
	description string
	children    []MenuComponent
}

// NewMenuCategory creates an empty category.
func NewMenuCategory(name, description string) (*MenuCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name must not be blank", domain.ErrInvalidArgument)
	}
	return &MenuCategory{
		id:          nextComponentID(),
		name:        name,
		description: description,
	}, nil
}

func (c *MenuCategory) ID() int             { return c.id }
func (c *MenuCategory) Name() string        { return c.name }
func (c *MenuCategory) Description() string { return c.description }
func (c *MenuCategory) Price() float64      { return 0 }

// Add appends child to the category, preserving insertion order.
func (c *MenuCategory) Add(child MenuComponent) {
	c.children = append(c.children, child)
}

// Remove deletes the first child identical to component. Removing a component
// that is not a child is a no-op.
func (c *MenuCategory) Remove(component MenuComponent) {
	for i, child := range c.children {
		if child == component {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Children returns a copy of the child list in insertion order.
func (c *MenuCategory) Children() []MenuComponent {
	out := make([]MenuComponent, len(c.children))
	copy(out, c.children)
	return out
}

// Display renders the category followed by all children, pre-order, each
// level indented two further spaces.
func (c *MenuCategory) Display(depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(c.name)
	sb.WriteString(" - ")
	sb.WriteString(c.description)
	sb.WriteString("\n")
	for _, child := range c.children {
		sb.WriteString(child.Display(depth + 1))
	}
	return sb.String()
}

// AddChild attaches child under parent. Returns ErrNotCategory when parent is
// a leaf: attempting the uniform operation must fail explicitly, never
// silently no-op.
func AddChild(parent, child MenuComponent) error {
	cat, ok := parent.(*MenuCategory)
	if !ok {
		return fmt.Errorf("%w: cannot add %q to %q", domain.ErrNotCategory, child.Name(), parent.Name())
	}
	cat.Add(child)
	return nil
}

// RemoveChild detaches child from parent. Returns ErrNotCategory when parent
// is a leaf.
func RemoveChild(parent, child MenuComponent) error {
	cat, ok := parent.(*MenuCategory)
	if !ok {
		return fmt.Errorf("%w: cannot remove %q from %q", domain.ErrNotCategory, child.Name(), parent.Name())
	}
	cat.Remove(child)
	return nil
}

// FindItem searches the tree rooted at root in pre-order and returns the
// first leaf whose name matches case-insensitively, or ErrItemNotFound.
func FindItem(root MenuComponent, name string) (*MenuItem, error) {
	if item, ok := root.(*MenuItem); ok {
		if strings.EqualFold(item.Name(), name) {
			return item, nil
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	if cat, ok := root.(*MenuCategory); ok {
		for _, child := range cat.children {
			if item, err := FindItem(child, name); err == nil {
				return item, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
}
