package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/gourmet/services/restaurant/domain"
)

// OrderKind discriminates the fulfillment variants.
type OrderKind string

const (
	OrderDineIn   OrderKind = "dine_in"
	OrderDelivery OrderKind = "delivery"
	OrderTakeaway OrderKind = "takeaway"
)

// displayName maps kinds to the receipt's Type line.
func (k OrderKind) displayName() string {
	switch k {
	case OrderDineIn:
		return "DINE-IN"
	case OrderDelivery:
		return "DELIVERY"
	case OrderTakeaway:
		return "TAKEAWAY"
	default:
		return strings.ToUpper(string(k))
	}
}

// Order is a fulfillment-kind-tagged accumulation of menu item copies.
// It starts empty and unidentified, grows by AddItem, and is finalized once
// an ID is assigned. The kind payload (table / address) is fixed at
// construction; the item list stays append-only even after finalization.
// One logical order is owned by one workflow at a time; no internal locking.
type Order struct {
	id      int // zero until finalized
	kind    OrderKind
	tableID *int
	address *string
	items   []*MenuItem
}

// NewDineInOrder creates an empty dine-in order bound to a table identity,
// normally obtained from TablePool.Acquire. The order does not manage the
// pool lease; the caller must eventually Release the same table.
func NewDineInOrder(tableID int) (*Order, error) {
	if tableID <= 0 {
		return nil, fmt.Errorf("%w: table id must be positive, got %d", domain.ErrInvalidArgument, tableID)
	}
	return &Order{kind: OrderDineIn, tableID: &tableID}, nil
}

// NewDeliveryOrder creates an empty delivery order for the given address.
// A blank address is a caller bug.
func NewDeliveryOrder(address string) (*Order, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: delivery address must not be blank", domain.ErrInvalidArgument)
	}
	return &Order{kind: OrderDelivery, address: &address}, nil
}

// NewTakeawayOrder creates an empty takeaway order.
func NewTakeawayOrder() *Order {
	return &Order{kind: OrderTakeaway}
}

// AssignID finalizes the order with its committed identity. An order is
// finalized exactly once; the ID must be positive.
func (o *Order) AssignID(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: order id must be positive, got %d", domain.ErrInvalidArgument, id)
	}
	if o.id != 0 {
		return fmt.Errorf("%w: order #%d", domain.ErrOrderFinalized, o.id)
	}
	o.id = id
	return nil
}

// ID returns the committed identity, or zero before finalization.
func (o *Order) ID() int {
	return o.id
}

// Kind returns the fulfillment kind.
func (o *Order) Kind() OrderKind {
	return o.kind
}

// TableID returns the dine-in table identity, if any.
func (o *Order) TableID() (int, bool) {
	if o.tableID == nil {
		return 0, false
	}
	return *o.tableID, true
}

// Address returns the delivery address, if any.
func (o *Order) Address() (string, bool) {
	if o.address == nil {
		return "", false
	}
	return *o.address, true
}

// AddItem appends an independent copy of item, so later catalog mutation
// never changes what was ordered.
func (o *Order) AddItem(item *MenuItem) {
	o.items = append(o.items, item.Clone())
}

// Items returns the order's item copies in append order.
func (o *Order) Items() []*MenuItem {
	return append([]*MenuItem(nil), o.items...)
}

// Total sums the current item prices. It is recomputed on every call, never
// cached, so it always reflects the current item list.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.price
	}
	return total
}

// Receipt renders the multi-line order summary: header with id and kind,
// table or address line where applicable, numbered items with price,
// description and ingredients, and the trailing total.
func (o *Order) Receipt() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n========== Order #%d ==========\n", o.id))
	sb.WriteString(fmt.Sprintf("Type: %s\n", o.kind.displayName()))
	if o.tableID != nil {
		sb.WriteString(fmt.Sprintf("Table: %d\n", *o.tableID))
	}
	if o.address != nil {
		sb.WriteString(fmt.Sprintf("Address: %s\n", *o.address))
	}
	sb.WriteString("\nItems:\n")
	if len(o.items) == 0 {
		sb.WriteString("  (no items)\n")
	}
	for i, item := range o.items {
		sb.WriteString(fmt.Sprintf("  %d. %s - $%.2f\n", i+1, item.name, item.price))
		sb.WriteString(fmt.Sprintf("     %s\n", item.description))
		if len(item.ingredients) > 0 {
			sb.WriteString(fmt.Sprintf("     Ingredients: %s\n", strings.Join(item.ingredients, ", ")))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: $%.2f\n", o.Total()))
	sb.WriteString("================================\n")
	return sb.String()
}
