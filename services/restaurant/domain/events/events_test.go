package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gourmet/services/restaurant/domain/events"
)

func TestOrderPlacedEvent_JSONRoundTrip(t *testing.T) {
	tableID := 3
	original := events.OrderPlacedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		OrderID:    7,
		Kind:       "dine_in",
		TableID:    &tableID,
		ItemCount:  2,
		Total:      18.98,
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.OrderPlacedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.OrderID != original.OrderID {
		t.Errorf("OrderID: got %d, want %d", decoded.OrderID, original.OrderID)
	}
	if decoded.Kind != original.Kind {
		t.Errorf("Kind: got %q, want %q", decoded.Kind, original.Kind)
	}
	if decoded.TableID == nil || *decoded.TableID != tableID {
		t.Errorf("TableID: got %v, want %d", decoded.TableID, tableID)
	}
	if decoded.Total != original.Total {
		t.Errorf("Total: got %v, want %v", decoded.Total, original.Total)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestOrderPlacedEvent_JSONFieldNames(t *testing.T) {
	evt := events.OrderPlacedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    1,
		Kind:       "takeaway",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "order_id", "kind", "item_count", "total", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}

	if _, ok := raw["table_id"]; ok {
		t.Error("table_id must be omitted when nil")
	}
	if _, ok := raw["address"]; ok {
		t.Error("address must be omitted when nil")
	}
}

func TestTableReleasedEvent_RequeuedFlag(t *testing.T) {
	evt := events.TableReleasedEvent{
		EventID:    uuid.New(),
		Version:    1,
		TableID:    2,
		Requeued:   false,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	if v, ok := raw["requeued"]; !ok || v != false {
		t.Errorf("expected requeued=false in payload, got %v", v)
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicOrderPlaced != "restaurant.order.placed" {
		t.Errorf("unexpected topic %q", events.TopicOrderPlaced)
	}
	if events.TopicTableAcquired != "restaurant.table.acquired" {
		t.Errorf("unexpected topic %q", events.TopicTableAcquired)
	}
	if events.TopicTableReleased != "restaurant.table.released" {
		t.Errorf("unexpected topic %q", events.TopicTableReleased)
	}
}
