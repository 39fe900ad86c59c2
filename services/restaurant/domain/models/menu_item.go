package models

import (
	"fmt"
	"strings"

	pkgvalidator "github.com/ghuser/gourmet/pkg/validator"
	"github.com/ghuser/gourmet/services/restaurant/domain"
)

// MenuItemSpec is the configuration for building a MenuItem. Invariants are
// checked once, in NewMenuItem; after that the item is a published catalog
// value and is only ever mutated through clones.
type MenuItemSpec struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"max=1024"`
	Price       float64  `json:"price" validate:"gte=0"`
	Ingredients []string `json:"ingredients" validate:"dive,required"`
}

// MenuItem is a sellable catalog leaf: identity, name, description,
// non-negative price and an ordered ingredient list.
type MenuItem struct {
	id          int
	name        string
	description string
	price       float64
	ingredients []string
}

// NewMenuItem validates spec and constructs a MenuItem with a fresh identity
// and an independently owned ingredient list.
func NewMenuItem(spec MenuItemSpec) (*MenuItem, error) {
	if err := pkgvalidator.Validate(spec); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}
	return &MenuItem{
		id:          nextComponentID(),
		name:        spec.Name,
		description: spec.Description,
		price:       spec.Price,
		ingredients: append([]string(nil), spec.Ingredients...),
	}, nil
}

func (m *MenuItem) ID() int             { return m.id }
func (m *MenuItem) Name() string        { return m.name }
func (m *MenuItem) Description() string { return m.description }
func (m *MenuItem) Price() float64      { return m.price }

// Ingredients returns a copy of the ingredient list in order.
func (m *MenuItem) Ingredients() []string {
	return append([]string(nil), m.ingredients...)
}

// AddIngredient appends an ingredient. Intended for clones; published catalog
// items are never mutated in place.
func (m *MenuItem) AddIngredient(ingredient string) {
	m.ingredients = append(m.ingredients, ingredient)
}

// Rename replaces the item's name.
func (m *MenuItem) Rename(name string) {
	m.name = name
}

// SetDescription replaces the item's description.
func (m *MenuItem) SetDescription(description string) {
	m.description = description
}

// SetPrice replaces the item's price.
func (m *MenuItem) SetPrice(price float64) {
	m.price = price
}

// Clone returns a copy with a fresh identity and a newly allocated ingredient
// list, so mutating the clone never touches the original.
func (m *MenuItem) Clone() *MenuItem {
	return &MenuItem{
		id:          nextComponentID(),
		name:        m.name,
		description: m.description,
		price:       m.price,
		ingredients: append([]string(nil), m.ingredients...),
	}
}

// Display renders the item at the given tree depth.
func (m *MenuItem) Display(depth int) string {
	return fmt.Sprintf("%s%s - $%.2f - %s\n", strings.Repeat("  ", depth), m.name, m.price, m.description)
}

// String returns a one-line description for logs.
func (m *MenuItem) String() string {
	return fmt.Sprintf("%s ($%.2f)", m.name, m.price)
}
