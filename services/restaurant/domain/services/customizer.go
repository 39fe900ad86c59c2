// Package services contains stateless domain services for the restaurant
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/ghuser/gourmet/services/restaurant/domain/models"
)

// Extra is one requested customization: a fixed-name ingredient plus its
// cost delta.
type Extra struct {
	Ingredient string
	Cost       float64
}

// ExtraIngredient decorates a menu component with one additional ingredient.
// When the wrapped component is an item, the decorator holds a modified clone
// (new ingredient appended, price bumped, name and description extended);
// the catalog original is untouched. When the wrapped component cannot be
// cloned (a category), the decorator degrades to additive price and name
// composition and leaves the ingredient list alone.
type ExtraIngredient struct {
	base       models.MenuComponent
	ingredient string
	cost       float64
	modified   *models.MenuItem // nil when base is not an item
}

// NewExtraIngredient wraps base with one extra ingredient.
func NewExtraIngredient(base models.MenuComponent, ingredient string, cost float64) *ExtraIngredient {
	d := &ExtraIngredient{base: base, ingredient: ingredient, cost: cost}
	if item, ok := base.(*models.MenuItem); ok {
		m := item.Clone()
		m.AddIngredient(ingredient)
		m.SetPrice(m.Price() + cost)
		m.Rename(m.Name() + " + " + ingredient)
		m.SetDescription(m.Description() + ", with extra " + strings.ToLower(ingredient))
		d.modified = m
	}
	return d
}

func (d *ExtraIngredient) ID() int {
	return d.base.ID()
}

func (d *ExtraIngredient) Name() string {
	return d.base.Name() + " + " + d.ingredient
}

func (d *ExtraIngredient) Description() string {
	return d.base.Description() + ", with extra " + strings.ToLower(d.ingredient)
}

func (d *ExtraIngredient) Price() float64 {
	if d.modified != nil {
		return d.modified.Price()
	}
	return d.base.Price() + d.cost
}

// Display renders the decorated view at the given tree depth.
func (d *ExtraIngredient) Display(depth int) string {
	return fmt.Sprintf("%s%s - $%.2f - %s\n", strings.Repeat("  ", depth), d.Name(), d.Price(), d.Description())
}

// Result returns the modified item when the wrapped component supported
// cloning, otherwise the decorator itself, so chains over non-items keep
// accumulating price and name.
func (d *ExtraIngredient) Result() models.MenuComponent {
	if d.modified != nil {
		return d.modified
	}
	return d
}

// Customize chains one ExtraIngredient per requested extra, in order, each
// step decorating the previous step's result. For an item base the result is
// a fully modified clone: name, description, price and ingredient list all
// reflect the chain, and the catalog original is untouched. For a non-item
// base the result is the decorator chain itself: price and name compose
// additively but no ingredient list exists to update.
func Customize(base models.MenuComponent, extras []Extra) models.MenuComponent {
	current := base
	for _, extra := range extras {
		current = NewExtraIngredient(current, extra.Ingredient, extra.Cost).Result()
	}
	return current
}

// CustomizeItem is the leaf-only variant: it decorates an item and returns
// the final modified clone.
func CustomizeItem(base *models.MenuItem, extras []Extra) *models.MenuItem {
	result := Customize(base, extras)
	item, ok := result.(*models.MenuItem)
	if !ok {
		// Unreachable: an item base always clones through the chain.
		return base
	}
	return item
}
