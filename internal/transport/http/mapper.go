package http

import (
	"github.com/vovakirdan/roomhub-server/internal/core"
	"github.com/vovakirdan/roomhub-server/internal/proto"
)

func outboundFromEvent(event core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: "message",
			Data: proto.EventMessage{
				Room: event.Room,
				From: event.From,
				Text: event.Text,
				TS:   event.At.Unix(),
			},
		}
	case core.EventPresence:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: "presence",
			Data: proto.EventPresence{
				Room:   event.Room,
				User:   event.From,
				Joined: event.Joined,
				Text:   event.Text,
			},
		}
	case core.EventRosterReset:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: "roster_reset",
			Data:  proto.EventRoster{Room: event.Room},
		}
	case core.EventNotice:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: "notice",
			Data: proto.EventNotice{
				Room: event.Room,
				From: event.From,
				Text: event.Text,
			},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
