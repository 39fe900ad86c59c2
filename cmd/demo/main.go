package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/gourmet/pkg/app"
	"github.com/ghuser/gourmet/pkg/config"
	pkgevents "github.com/ghuser/gourmet/pkg/events"
	"github.com/ghuser/gourmet/pkg/logger"
	appsvcs "github.com/ghuser/gourmet/services/restaurant/application/services"
	domainevents "github.com/ghuser/gourmet/services/restaurant/domain/events"
	"github.com/ghuser/gourmet/services/restaurant/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	eventBus := pkgevents.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	application := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
	}

	svcs, err := appsvcs.New(application)
	if err != nil {
		log.Error("failed to wire services", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Consume order events for the kitchen log. Subscriptions must be wired
	// before the first publish.
	errCh, err := eventBus.Subscribe(ctx, domainevents.TopicOrderPlaced, func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.OrderPlacedEvent
		if err := pkgevents.Decode(msg, &evt); err != nil {
			return err
		}
		log.InfoContext(ctx, "kitchen notified",
			"order_id", evt.OrderID, "kind", evt.Kind, "total", evt.Total)
		return nil
	})
	if err != nil {
		log.Error("failed to subscribe to order events", "error", err)
		os.Exit(1)
	}
	go func() {
		for err := range errCh {
			log.Error("order event handler failed", "error", err)
		}
	}()

	if err := seedMenu(svcs.Restaurant.Menu()); err != nil {
		log.Error("failed to seed menu", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, svcs.Restaurant); err != nil {
		log.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

// seedMenu builds the demo catalog: Fast Food → Burgers (Classic Burger and
// a cloned Cheeseburger variant), Soft Drinks (Cola).
func seedMenu(root *models.MenuCategory) error {
	fastFood, err := models.NewMenuCategory("Fast Food", "Tasty and quick meals")
	if err != nil {
		return err
	}
	root.Add(fastFood)

	burgers, err := models.NewMenuCategory("Burgers", "Delicious burgers with various toppings")
	if err != nil {
		return err
	}
	drinks, err := models.NewMenuCategory("Soft Drinks", "Refreshing beverages")
	if err != nil {
		return err
	}
	fastFood.Add(burgers)
	fastFood.Add(drinks)

	burger, err := models.NewMenuItem(models.MenuItemSpec{
		Name:        "Classic Burger",
		Description: "A delicious beef burger with fresh vegetables",
		Price:       8.99,
		Ingredients: []string{"Beef Patty", "Bun", "Lettuce", "Tomato"},
	})
	if err != nil {
		return err
	}
	burgers.Add(burger)

	cheeseburger := burger.Clone()
	cheeseburger.Rename("Cheeseburger")
	cheeseburger.SetDescription("Classic burger with melted cheddar cheese")
	cheeseburger.AddIngredient("Cheddar Cheese")
	cheeseburger.SetPrice(9.99)
	burgers.Add(cheeseburger)

	cola, err := models.NewMenuItem(models.MenuItemSpec{
		Name:        "Cola",
		Description: "Chilled carbonated soft drink",
		Price:       1.99,
		Ingredients: []string{"Carbonated Water", "Sugar", "Caffeine"},
	})
	if err != nil {
		return err
	}
	drinks.Add(cola)

	return nil
}

// run walks through the dine-in, customization, delivery and takeaway flows
// and prints the menu and receipts.
func run(ctx context.Context, restaurant *appsvcs.RestaurantService) error {
	fmt.Printf("Welcome to %s\n", restaurant.Name())
	fmt.Print(restaurant.ShowMenu())

	dineIn, table, err := restaurant.PlaceDineInOrder(ctx, []string{"Classic Burger", "Cola"})
	if err != nil {
		return fmt.Errorf("place dine-in order: %w", err)
	}
	fmt.Print(dineIn.Receipt())

	custom, err := restaurant.CustomizeItem(ctx, "Classic Burger", []string{"Cheese", "Bacon"})
	if err != nil {
		return fmt.Errorf("customize item: %w", err)
	}
	fmt.Printf("Customized: %s - $%.2f\n", custom.Name(), custom.Price())

	delivery, err := restaurant.PlaceDeliveryOrder(ctx, []string{"Cheeseburger"}, "31 Spooner Street")
	if err != nil {
		return fmt.Errorf("place delivery order: %w", err)
	}
	fmt.Print(delivery.Receipt())

	takeaway, err := restaurant.PlaceTakeawayOrder(ctx, []string{"Cola", "Cola"})
	if err != nil {
		return fmt.Errorf("place takeaway order: %w", err)
	}
	fmt.Print(takeaway.Receipt())

	restaurant.ReleaseTable(ctx, table)
	fmt.Printf("Tables available: %d\n", restaurant.AvailableTables())

	return nil
}
