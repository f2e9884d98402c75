package service

import (
	"testing"

	"agrimoga/internal/models"
)

func TestRiskHub_PublishSubscribe(t *testing.T) {
	t.Parallel()

	h := NewRiskHub(nil)
	a, cancelA := h.Subscribe()
	b, cancelB := h.Subscribe()
	if h.Subscribers() != 2 {
		t.Fatalf("subscribers = %d", h.Subscribers())
	}

	h.Publish(models.RiskSnapshot{Crop: "avocado", Level: "medium", Score: 1})
	if got := <-a; got.Crop != "avocado" {
		t.Fatalf("a got %+v", got)
	}
	if got := <-b; got.Level != "medium" {
		t.Fatalf("b got %+v", got)
	}

	cancelA()
	cancelA()
	if _, ok := <-a; ok {
		t.Fatalf("expected closed channel")
	}
	if h.Subscribers() != 1 {
		t.Fatalf("subscribers = %d", h.Subscribers())
	}
	cancelB()
}

func TestRiskHub_SlowSubscriberDropsUpdates(t *testing.T) {
	t.Parallel()

	h := NewRiskHub(nil)
	ch, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		h.Publish(models.RiskSnapshot{Score: i % 3})
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("buffered = %d, want %d", len(ch), subscriberBuffer)
	}
}
