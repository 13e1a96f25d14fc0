package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeHello = "hello"
	InboundTypeMsg   = "msg"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"
)

// HelloData introduces the client and fixes its display name.
type HelloData struct {
	User string `json:"user"`
}

// MsgData is a chat line addressed to the client's current room.
type MsgData struct {
	Text string `json:"text"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventMessage is a chat line routed through the client's room.
type EventMessage struct {
	Room string `json:"room"`
	From string `json:"from"`
	Text string `json:"text"`
	TS   int64  `json:"ts"`
}

// EventPresence reports that a user joined or left the room.
type EventPresence struct {
	Room   string `json:"room"`
	User   string `json:"user"`
	Joined bool   `json:"joined"`
	Text   string `json:"text,omitempty"`
}

// EventRoster tells the client to reset its rendered member list.
type EventRoster struct {
	Room string `json:"room"`
}

// EventNotice is a direct system notice for this client alone.
type EventNotice struct {
	Room string `json:"room"`
	From string `json:"from"`
	Text string `json:"text"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
