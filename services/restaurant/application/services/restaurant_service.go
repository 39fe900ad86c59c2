package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	pkgevents "github.com/ghuser/gourmet/pkg/events"
	"github.com/ghuser/gourmet/pkg/logger"
	domainevents "github.com/ghuser/gourmet/services/restaurant/domain/events"
	"github.com/ghuser/gourmet/services/restaurant/domain/models"
	"github.com/ghuser/gourmet/services/restaurant/domain/repositories"
	domainsvcs "github.com/ghuser/gourmet/services/restaurant/domain/services"
)

// RestaurantService is the single entry point for restaurant operations:
// menu display and customization, table leasing, and order placement.
// It hides the table pool, the menu composite, the decorator chain and the
// kind-specific order constructors behind one surface.
//
// Unknown item names in an order request are skipped with a warning, and a
// failed append leaves earlier items attached; there is no rollback.
type RestaurantService struct {
	name      string
	extraCost float64
	menu      *models.MenuCategory
	tables    *models.TablePool
	repo      repositories.OrderRepository
	bus       *pkgevents.EventBus
	log       logger.Logger
	orderSeq  atomic.Int64
}

// NewRestaurantService wires the facade. The menu root starts empty; seed it
// through Menu() before serving.
func NewRestaurantService(
	name string,
	extraCost float64,
	menu *models.MenuCategory,
	tables *models.TablePool,
	repo repositories.OrderRepository,
	bus *pkgevents.EventBus,
	log logger.Logger,
) *RestaurantService {
	return &RestaurantService{
		name:      name,
		extraCost: extraCost,
		menu:      menu,
		tables:    tables,
		repo:      repo,
		bus:       bus,
		log:       log,
	}
}

// Name returns the restaurant's display name.
func (s *RestaurantService) Name() string {
	return s.name
}

// Menu returns the menu root for catalog building and traversal.
func (s *RestaurantService) Menu() *models.MenuCategory {
	return s.menu
}

// AvailableTables returns the number of tables currently free.
func (s *RestaurantService) AvailableTables() int {
	return s.tables.Available()
}

// ShowMenu renders the full menu: a header, the category tree with two-space
// indentation per level, and a trailing rule.
func (s *RestaurantService) ShowMenu() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n========== %s Menu ==========\n", s.name))
	children := s.menu.Children()
	if len(children) == 0 {
		sb.WriteString("  (Menu is empty)\n")
	}
	for _, child := range children {
		sb.WriteString(child.Display(0))
	}
	sb.WriteString("========================================\n")
	return sb.String()
}

// CustomizeItem looks up the base item by name and applies the requested
// extras in order, each adding its ingredient and the configured flat
// surcharge. The returned item is an independent variant; the catalog is
// untouched. Returns ErrItemNotFound when no item matches.
func (s *RestaurantService) CustomizeItem(ctx context.Context, baseName string, extras []string) (*models.MenuItem, error) {
	base, err := models.FindItem(s.menu, baseName)
	if err != nil {
		return nil, err
	}

	requested := make([]domainsvcs.Extra, 0, len(extras))
	for _, ingredient := range extras {
		requested = append(requested, domainsvcs.Extra{Ingredient: ingredient, Cost: s.extraCost})
	}

	item := domainsvcs.CustomizeItem(base, requested)
	s.log.DebugContext(ctx, "customized item",
		"base", base.Name(), "result", item.Name(), "price", item.Price())
	return item, nil
}

// AcquireTable leases a table from the pool. Fails with ErrNoTablesAvailable
// when the pool is exhausted; the caller decides whether to retry or reject.
func (s *RestaurantService) AcquireTable(ctx context.Context) (*models.Table, error) {
	table, err := s.tables.Acquire()
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "table acquired", "table_id", table.ID())
	s.publish(ctx, domainevents.TopicTableAcquired, domainevents.TableAcquiredEvent{
		EventID:    uuid.New(),
		Version:    1,
		TableID:    table.ID(),
		Capacity:   table.Capacity(),
		OccurredAt: time.Now().UTC(),
	})
	return table, nil
}

// ReleaseTable hands a lease back to the pool. A refused release (unknown or
// already-free table, or ceiling reached) is not an error; it is logged and
// flagged on the published event for diagnostics.
func (s *RestaurantService) ReleaseTable(ctx context.Context, table *models.Table) {
	if table == nil {
		return
	}
	requeued := s.tables.Release(table)
	if requeued {
		s.log.InfoContext(ctx, "table released", "table_id", table.ID())
	} else {
		s.log.WarnContext(ctx, "table release ignored", "table_id", table.ID())
	}
	s.publish(ctx, domainevents.TopicTableReleased, domainevents.TableReleasedEvent{
		EventID:    uuid.New(),
		Version:    1,
		TableID:    table.ID(),
		Requeued:   requeued,
		OccurredAt: time.Now().UTC(),
	})
}

// PlaceDineInOrder acquires a table, creates a dine-in order for it and
// commits the order. The returned table lease belongs to the caller, who
// must eventually pass it to ReleaseTable.
func (s *RestaurantService) PlaceDineInOrder(ctx context.Context, itemNames []string) (*models.Order, *models.Table, error) {
	table, err := s.AcquireTable(ctx)
	if err != nil {
		return nil, nil, err
	}

	order, err := models.NewDineInOrder(table.ID())
	if err != nil {
		s.ReleaseTable(ctx, table)
		return nil, nil, err
	}

	if err := s.commit(ctx, order, itemNames); err != nil {
		s.ReleaseTable(ctx, table)
		return nil, nil, err
	}
	return order, table, nil
}

// PlaceDeliveryOrder creates and commits a delivery order. A blank address
// fails with ErrInvalidArgument.
func (s *RestaurantService) PlaceDeliveryOrder(ctx context.Context, itemNames []string, address string) (*models.Order, error) {
	order, err := models.NewDeliveryOrder(address)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, order, itemNames); err != nil {
		return nil, err
	}
	return order, nil
}

// PlaceTakeawayOrder creates and commits a takeaway order.
func (s *RestaurantService) PlaceTakeawayOrder(ctx context.Context, itemNames []string) (*models.Order, error) {
	order := models.NewTakeawayOrder()
	if err := s.commit(ctx, order, itemNames); err != nil {
		return nil, err
	}
	return order, nil
}

// AppendItem adds one more menu item copy to an already committed order.
// The item list is append-only; everything else about the order is fixed.
func (s *RestaurantService) AppendItem(ctx context.Context, orderID int, itemName string) error {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	item, err := models.FindItem(s.menu, itemName)
	if err != nil {
		return err
	}
	order.AddItem(item)
	return nil
}

// OrderDetails returns the rendered receipt for the given order.
func (s *RestaurantService) OrderDetails(ctx context.Context, orderID int) (string, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	return order.Receipt(), nil
}

// OrderTotal returns the current total of the given order.
func (s *RestaurantService) OrderTotal(ctx context.Context, orderID int) (float64, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return order.Total(), nil
}

// Orders returns all committed orders in ascending ID order.
func (s *RestaurantService) Orders(ctx context.Context) ([]*models.Order, error) {
	return s.repo.List(ctx)
}

// commit populates the order, finalizes its identity and saves it.
// Unknown item names are skipped, not fatal; already appended items stay.
func (s *RestaurantService) commit(ctx context.Context, order *models.Order, itemNames []string) error {
	for _, name := range itemNames {
		item, err := models.FindItem(s.menu, name)
		if err != nil {
			s.log.WarnContext(ctx, "skipping unknown menu item", "name", name)
			continue
		}
		order.AddItem(item)
	}

	id := int(s.orderSeq.Add(1))
	if err := order.AssignID(id); err != nil {
		return fmt.Errorf("finalize order: %w", err)
	}
	if err := s.repo.Save(ctx, order); err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	s.log.InfoContext(ctx, "order placed",
		"order_id", order.ID(), "kind", string(order.Kind()),
		"items", len(order.Items()), "total", order.Total())

	evt := domainevents.OrderPlacedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    order.ID(),
		Kind:       string(order.Kind()),
		ItemCount:  len(order.Items()),
		Total:      order.Total(),
		OccurredAt: time.Now().UTC(),
	}
	if tableID, ok := order.TableID(); ok {
		evt.TableID = &tableID
	}
	if address, ok := order.Address(); ok {
		evt.Address = &address
	}
	s.publish(ctx, domainevents.TopicOrderPlaced, evt)
	return nil
}

// publish sends a domain event on the bus. Event delivery is best-effort:
// a marshal or publish failure is logged and never fails the operation.
func (s *RestaurantService) publish(ctx context.Context, topic string, payload any) {
	if s.bus == nil {
		return
	}
	msg, err := pkgevents.NewMessage(payload)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to build event message", "topic", topic, "error", err)
		return
	}
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}
