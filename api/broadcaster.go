package api

import (
	"sync"
)

// EventType identifies the kind of broadcast event sent to WebSocket
// clients watching an assembly job.
type EventType string

const (
	// EventTypeStage carries one pipeline checkpoint (service.StageEvent).
	EventTypeStage EventType = "stage"
	// EventTypeDone marks job completion, success or failure.
	EventTypeDone EventType = "done"
)

// BroadcastEvent is a single message sent to WebSocket clients.
type BroadcastEvent struct {
	Type      EventType              `json:"type"`
	SessionID string                 `json:"sessionId"`
	Data      map[string]interface{} `json:"data"`
}

// Subscription represents a client's subscription to events.
type Subscription struct {
	SessionID  string
	EventTypes map[EventType]bool
	Channel    chan BroadcastEvent
}

// Broadcaster fans assembly pipeline events out to every subscribed
// WebSocket client.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.SessionID != "" && sub.SessionID != event.SessionID {
					continue
				}
				if len(sub.EventTypes) > 0 && !sub.EventTypes[event.Type] {
					continue
				}

				select {
				case sub.Channel <- event:
				default:
					// slow client, drop this event rather than block
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe creates a new subscription for events. sessionID filters to a
// specific job (empty string = all jobs); eventTypes filters by type
// (empty = all types).
func (b *Broadcaster) Subscribe(sessionID string, eventTypes []EventType) *Subscription {
	eventTypeMap := make(map[EventType]bool)
	for _, et := range eventTypes {
		eventTypeMap[et] = true
	}

	sub := &Subscription{
		SessionID:  sessionID,
		EventTypes: eventTypeMap,
		Channel:    make(chan BroadcastEvent, 64),
	}

	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends an event to all matching subscriptions.
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
		// broadcast channel full, drop rather than block the caller
	}
}

// BroadcastStage sends one pipeline checkpoint for a running job.
func (b *Broadcaster) BroadcastStage(sessionID, label string, payload []interface{}) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeStage,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"label":   label,
			"payload": payload,
		},
	})
}

// BroadcastDone sends the terminal event for a job.
func (b *Broadcaster) BroadcastDone(sessionID string, succeeded bool, errMessage string) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeDone,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"succeeded": succeeded,
			"error":     errMessage,
		},
	})
}

// Close shuts down the broadcaster and closes all subscriptions.
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
