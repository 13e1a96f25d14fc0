package core

import "sync"

// Conn is a connection handle as rooms see it: identity, the handle's own
// mute set, and a bounded delivery attempt.
type Conn interface {
	// Name returns the display name, or "" until the hello handshake resolves.
	Name() string
	// Mutes returns the mute set owned by this handle.
	Mutes() *MuteSet
	// Send attempts delivery and reports success. It must never block: a dead
	// or saturated handle returns false and gets pruned by the room.
	Send(ev Event) bool
}

// clientEventBuffer bounds how far a client's write loop may fall behind
// before deliveries to it start failing.
const clientEventBuffer = 64

// Client is the in-process connection handle bridged to a transport.
type Client struct {
	ID string

	mu     sync.Mutex
	name   string
	closed bool

	mutes  *MuteSet
	events chan Event
}

// NewClient constructs a client with an empty mute set and a buffered event
// stream. An empty name means the hello handshake has not completed yet.
func NewClient(id, name string) *Client {
	return &Client{
		ID:     id,
		name:   name,
		mutes:  NewMuteSet(),
		events: make(chan Event, clientEventBuffer),
	}
}

// Name returns the display name resolved by the hello handshake.
func (c *Client) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// SetName records the display name. Called once, before the client enters any
// room, so rooms never observe a rename.
func (c *Client) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

// Mutes returns the client's mute set.
func (c *Client) Mutes() *MuteSet {
	return c.mutes
}

// Events is the stream the transport write loop drains.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Send enqueues an event without blocking. A closed client or a full buffer
// counts as delivery failure.
func (c *Client) Send(ev Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.events <- ev:
		return true
	default:
		return false
	}
}

// Close marks the client dead and releases its event stream. Subsequent
// deliveries fail and the rooms prune the handle.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.events)
}
