package mesh

// EventType enumerates the router's observable events.
type EventType string

const (
	EventDelivered       EventType = "delivered"
	EventUndeliverable   EventType = "undeliverable"
	EventBroadcast       EventType = "broadcast"
	EventMailboxOverflow EventType = "mailbox_overflow"
)

// Event is published to every registered observer.
type Event struct {
	Type           EventType
	Envelope       Envelope
	Reason         string // set for undeliverable
	RecipientCount int    // set for broadcast
}

func safeInvokeEvent(h func(Event), ev Event) {
	defer func() { _ = recover() }()
	h(ev)
}
