package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventResourcesUpdated = "resources_updated"
	EventResourceEnrolled = "resource_enrolled"
)

type Event struct {
	Type          string     `json:"type"`
	ResourceID    *uuid.UUID `json:"resourceId,omitempty"`
	EnrolledCount *int       `json:"enrolledCount,omitempty"`
	Timestamp     string     `json:"timestamp"`
}

// Notifier turns catalogue changes into hub broadcasts.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) ResourcesUpdated(resourceID uuid.UUID) {
	if n == nil {
		return
	}
	evt := n.event(EventResourcesUpdated)
	if resourceID != uuid.Nil {
		evt.ResourceID = &resourceID
	}
	n.publish(evt)
}

func (n *Notifier) ResourceEnrolled(resourceID uuid.UUID, enrolledCount int) {
	if n == nil {
		return
	}
	evt := n.event(EventResourceEnrolled)
	evt.ResourceID = &resourceID
	evt.EnrolledCount = &enrolledCount
	n.publish(evt)
}

func (n *Notifier) event(kind string) Event {
	return Event{Type: kind, Timestamp: n.now().UTC().Format(time.RFC3339)}
}

func (n *Notifier) publish(evt Event) {
	if n.hub == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
