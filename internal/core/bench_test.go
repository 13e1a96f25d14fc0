package core

import (
	"strconv"
	"testing"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	reg := newTestRegistry()
	lobby := reg.Lobby()

	sender := NewClient("sender", "sender")
	reg.JoinLobby(sender)

	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		c := NewClient("c"+strconv.Itoa(i), "user"+strconv.Itoa(i))
		reg.JoinLobby(c)
		clients = append(clients, c)
		// Keep join chatter from saturating buffers and triggering prunes.
		drainEvents(sender)
		for _, existing := range clients {
			drainEvents(existing)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := lobby.SendMessage(sender, "payload"); err != nil {
			b.Fatalf("broadcast errored: %v", err)
		}
		drainEvents(sender)
		for _, c := range clients {
			drainEvents(c)
		}
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
