package service

import (
	"sync"

	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
)

const subscriberBuffer = 8

// RiskHub fans risk snapshots out to subscribers. Slow subscribers miss
// updates rather than block the publisher.
type RiskHub struct {
	mu      sync.Mutex
	subs    map[chan models.RiskSnapshot]struct{}
	metrics *metrics.Collector
}

func NewRiskHub(m *metrics.Collector) *RiskHub {
	return &RiskHub{subs: make(map[chan models.RiskSnapshot]struct{}), metrics: m}
}

// Subscribe returns a channel of snapshots and a func that unsubscribes and
// closes it.
func (h *RiskHub) Subscribe() (<-chan models.RiskSnapshot, func()) {
	ch := make(chan models.RiskSnapshot, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()
	h.metrics.SetRiskSubscribers(n)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			n := len(h.subs)
			h.mu.Unlock()
			close(ch)
			h.metrics.SetRiskSubscribers(n)
		})
	}
}

// Publish delivers snap to every subscriber with room in its buffer.
func (h *RiskHub) Publish(snap models.RiskSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Subscribers is the current subscriber count.
func (h *RiskHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
