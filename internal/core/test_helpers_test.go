package core

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestRegistry() *Registry {
	return NewRegistry(zerolog.Nop())
}

// lobbyMember creates a named client and places it in the Lobby with its
// join chatter drained, so tests start from a quiet buffer.
func lobbyMember(t *testing.T, reg *Registry, name string) *Client {
	t.Helper()

	c := NewClient(name, name)
	reg.JoinLobby(c)
	drainEvents(c)
	return c
}

// collectEvents drains everything currently buffered on the client. Routing
// is synchronous, so by the time a room operation returns all of its events
// are buffered.
func collectEvents(c *Client) []Event {
	var evs []Event
	for {
		select {
		case ev := <-c.Events():
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func drainAll(cs ...*Client) {
	for _, c := range cs {
		drainEvents(c)
	}
}

func drainEvents(c *Client) {
	for {
		select {
		case <-c.Events():
		default:
			return
		}
	}
}

// mustEvent returns the first buffered event of the wanted kind, discarding
// others along the way.
func mustEvent(t *testing.T, c *Client, kind EventKind) Event {
	t.Helper()

	for {
		select {
		case ev := <-c.Events():
			if ev.Kind == kind {
				return ev
			}
		default:
			t.Fatalf("expected buffered event of kind %v", kind)
			return Event{}
		}
	}
}

// countKind counts buffered events of one kind without consuming the rest.
func countKind(evs []Event, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
