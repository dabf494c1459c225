package ws

import (
	"encoding/json"
	"strings"
	"time"
)

type CatalogUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// Broadcaster adapts the hub to the usecase-facing event interface.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) BroadcastCatalogUpdated(source string) {
	if b == nil || b.hub == nil {
		return
	}

	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		return
	}

	evt := CatalogUpdatedEvent{
		Type:      "catalog.updated",
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	msg, err := json.Marshal(evt)
	if err != nil {
		return
	}
	b.hub.Broadcast(msg)
}
