package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/phamtrung/pos-api/pkg/events"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
	}

	hub.register <- client

	evt := events.Event{Name: events.RefreshOrders}
	data, _ := json.Marshal(evt)
	hub.broadcast <- data

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubPumpForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	bus := events.NewBus()
	defer bus.Close()
	ch, cancel := bus.Subscribe()
	defer cancel()
	go hub.Pump(ch)

	client := &Client{
		Send: make(chan []byte, 10),
	}
	hub.register <- client

	bus.Publish(events.Event{
		Name:    events.PrintCompleted,
		Payload: events.PrintCompletedPayload(true, true),
	})

	select {
	case got := <-client.Send:
		var evt events.Event
		if err := json.Unmarshal(got, &evt); err != nil {
			t.Fatalf("invalid event payload: %v", err)
		}
		if evt.Name != events.PrintCompleted {
			t.Fatalf("expected %s, got %s", events.PrintCompleted, evt.Name)
		}
		if evt.Payload["closeAllModals"] != true {
			t.Fatalf("expected closeAllModals true, got %v", evt.Payload["closeAllModals"])
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// Unbuffered send channel with no reader: the first broadcast
	// must evict the client instead of blocking the hub.
	slow := &Client{
		Send: make(chan []byte),
	}
	hub.register <- slow
	hub.broadcast <- []byte(`{"name":"refreshTables"}`)

	fast := &Client{
		Send: make(chan []byte, 10),
	}
	hub.register <- fast
	hub.broadcast <- []byte(`{"name":"refreshOrders"}`)

	select {
	case got := <-fast.Send:
		if string(got) != `{"name":"refreshOrders"}` {
			t.Fatalf("unexpected message %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message after slow client eviction")
	}
}
