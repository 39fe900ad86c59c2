package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/ghuser/gourmet/services/restaurant/domain"
)

func TestNewDineInOrder(t *testing.T) {
	t.Run("carries the table identity", func(t *testing.T) {
		order, err := NewDineInOrder(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Kind() != OrderDineIn {
			t.Fatalf("expected kind %q, got %q", OrderDineIn, order.Kind())
		}
		tableID, ok := order.TableID()
		if !ok || tableID != 1 {
			t.Fatalf("expected table id 1, got %d (ok=%t)", tableID, ok)
		}
		if _, ok := order.Address(); ok {
			t.Fatal("dine-in order must not carry an address")
		}
	})

	t.Run("rejects non-positive table id", func(t *testing.T) {
		if _, err := NewDineInOrder(0); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestNewDeliveryOrder(t *testing.T) {
	t.Run("carries the address", func(t *testing.T) {
		order, err := NewDeliveryOrder("31 Spooner Street")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		address, ok := order.Address()
		if !ok || address != "31 Spooner Street" {
			t.Fatalf("expected address, got %q (ok=%t)", address, ok)
		}
		if _, ok := order.TableID(); ok {
			t.Fatal("delivery order must not carry a table")
		}
	})

	t.Run("rejects blank address", func(t *testing.T) {
		for _, address := range []string{"", "   ", "\t\n"} {
			if _, err := NewDeliveryOrder(address); !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("address %q: expected ErrInvalidArgument, got %v", address, err)
			}
		}
	})
}

func TestNewTakeawayOrder(t *testing.T) {
	order := NewTakeawayOrder()
	if order.Kind() != OrderTakeaway {
		t.Fatalf("expected kind %q, got %q", OrderTakeaway, order.Kind())
	}
	if _, ok := order.TableID(); ok {
		t.Fatal("takeaway order must not carry a table")
	}
	if _, ok := order.Address(); ok {
		t.Fatal("takeaway order must not carry an address")
	}
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("zero until finalized", func(t *testing.T) {
		order := NewTakeawayOrder()
		if order.ID() != 0 {
			t.Fatalf("expected id 0 before finalization, got %d", order.ID())
		}
	})

	t.Run("assigns once", func(t *testing.T) {
		order := NewTakeawayOrder()
		if err := order.AssignID(7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID() != 7 {
			t.Fatalf("expected id 7, got %d", order.ID())
		}
		if err := order.AssignID(8); !errors.Is(err, domain.ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
		if order.ID() != 7 {
			t.Fatalf("id changed after refused reassignment: %d", order.ID())
		}
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		order := NewTakeawayOrder()
		if err := order.AssignID(0); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("stores an independent copy", func(t *testing.T) {
		order := NewTakeawayOrder()
		item, _ := NewMenuItem(MenuItemSpec{Name: "Cola", Price: 1.99, Ingredients: []string{"Sugar"}})
		order.AddItem(item)

		item.SetPrice(5.00)
		item.AddIngredient("Caffeine")

		stored := order.Items()[0]
		if stored.Price() != 1.99 {
			t.Fatalf("catalog mutation leaked into order: price %v", stored.Price())
		}
		if len(stored.Ingredients()) != 1 {
			t.Fatal("catalog mutation leaked into order: ingredients")
		}
	})

	t.Run("item list may grow after finalization", func(t *testing.T) {
		order := NewTakeawayOrder()
		if err := order.AssignID(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item, _ := NewMenuItem(MenuItemSpec{Name: "Cola", Price: 1.99})
		order.AddItem(item)
		if len(order.Items()) != 1 {
			t.Fatal("expected append to succeed on a finalized order")
		}
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("sums current item prices", func(t *testing.T) {
		order, _ := NewDineInOrder(1)
		a, _ := NewMenuItem(MenuItemSpec{Name: "Burger", Price: 8.99})
		b, _ := NewMenuItem(MenuItemSpec{Name: "Cheeseburger", Price: 9.99})
		order.AddItem(a)
		order.AddItem(b)

		if got := order.Total(); got < 18.979 || got > 18.981 {
			t.Fatalf("expected total 18.98, got %v", got)
		}
	})

	t.Run("idempotent on an unchanged order", func(t *testing.T) {
		order := NewTakeawayOrder()
		item, _ := NewMenuItem(MenuItemSpec{Name: "Cola", Price: 1.99})
		order.AddItem(item)
		if order.Total() != order.Total() {
			t.Fatal("expected identical totals on repeated calls")
		}
	})

	t.Run("empty order totals zero", func(t *testing.T) {
		if total := NewTakeawayOrder().Total(); total != 0 {
			t.Fatalf("expected 0, got %v", total)
		}
	})
}

func TestOrder_Receipt(t *testing.T) {
	t.Run("dine-in layout", func(t *testing.T) {
		order, _ := NewDineInOrder(1)
		item, _ := NewMenuItem(MenuItemSpec{
			Name: "Classic Burger", Description: "Beef burger", Price: 8.99,
			Ingredients: []string{"Beef Patty", "Bun"},
		})
		order.AddItem(item)
		if err := order.AssignID(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		receipt := order.Receipt()
		for _, want := range []string{
			"========== Order #1 ==========",
			"Type: DINE-IN",
			"Table: 1",
			"Items:",
			"  1. Classic Burger - $8.99",
			"     Beef burger",
			"     Ingredients: Beef Patty, Bun",
			"Total: $8.99",
		} {
			if !strings.Contains(receipt, want) {
				t.Errorf("receipt missing %q:\n%s", want, receipt)
			}
		}
	})

	t.Run("delivery shows the address", func(t *testing.T) {
		order, _ := NewDeliveryOrder("31 Spooner Street")
		_ = order.AssignID(2)
		receipt := order.Receipt()
		if !strings.Contains(receipt, "Type: DELIVERY") || !strings.Contains(receipt, "Address: 31 Spooner Street") {
			t.Fatalf("unexpected delivery receipt:\n%s", receipt)
		}
	})

	t.Run("empty takeaway shows a placeholder", func(t *testing.T) {
		order := NewTakeawayOrder()
		_ = order.AssignID(3)
		receipt := order.Receipt()
		if !strings.Contains(receipt, "Type: TAKEAWAY") || !strings.Contains(receipt, "(no items)") {
			t.Fatalf("unexpected takeaway receipt:\n%s", receipt)
		}
	})
}
