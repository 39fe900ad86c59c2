package domain

import "errors"

// Sentinel errors for the restaurant domain. Use errors.Is() to check these.
var (
	// ErrNoTablesAvailable indicates the table pool is exhausted. The caller
	// decides whether to wait, queue, or reject; the pool never blocks.
	ErrNoTablesAvailable = errors.New("no tables available")

	// ErrInvalidArgument indicates a caller bug: non-positive pool size,
	// blank delivery address, non-positive identity, and the like.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotCategory indicates a child operation was attempted on a menu
	// component that cannot hold children (a leaf item).
	ErrNotCategory = errors.New("menu component is not a category")

	// ErrNotItem indicates an item-only operation (cloning, ingredients,
	// pricing) was attempted on a category.
	ErrNotItem = errors.New("menu component is not an item")

	// ErrItemNotFound indicates no menu item with the requested name exists.
	ErrItemNotFound = errors.New("menu item not found")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderFinalized indicates an attempt to re-assign the identity of an
	// already committed order.
	ErrOrderFinalized = errors.New("order already finalized")
)
