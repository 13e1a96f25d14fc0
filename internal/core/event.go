package core

import "time"

// EventKind is a notification a room emits to connection handles.
type EventKind int

const (
	// EventMessage carries chat text routed through the room.
	EventMessage EventKind = iota
	// EventPresence notifies members that a user joined or left a room.
	EventPresence
	// EventRosterReset tells a handle to discard its rendered member list.
	EventRosterReset
	// EventNotice is a direct system notice addressed to a single handle.
	EventNotice
)

// Event is delivered to connection handles to describe what happened.
type Event struct {
	Kind   EventKind
	Room   string
	From   string
	Text   string
	Joined bool // presence events only
	At     time.Time
}
