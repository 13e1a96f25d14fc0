package core

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Room owns an ordered list of member handles sharing one broadcast channel.
// A single mutex is the room's exclusion domain: membership changes, pruning
// and whole broadcast passes are serialized per room, while distinct rooms
// proceed fully in parallel. Handles move between rooms only through the
// directory, so no cross-room lock ordering is needed beyond "a closing room
// may call into the Lobby", and the Lobby itself never closes.
type Room struct {
	dir Directory
	log zerolog.Logger

	mu      sync.Mutex
	name    string
	members []Conn
	closed  bool
}

// NewRoom constructs an empty room reporting to the given directory.
func NewRoom(name string, dir Directory, logger zerolog.Logger) *Room {
	return &Room{
		name: name,
		dir:  dir,
		log:  logger.With().Str("room", name).Logger(),
	}
}

// Name returns the room name, or "" once the room has closed.
func (r *Room) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name
}

// Closed reports whether the room has reached its tombstone state.
func (r *Room) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Members returns a snapshot of member display names in join order.
func (r *Room) Members() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.members))
	for _, m := range r.members {
		names = append(names, m.Name())
	}
	return names
}

// Join adds a handle to the room. Re-adding a present handle is a no-op.
// A handle with a resolved name gets a roster reset plus an arrival notice
// for every existing member, and the existing members hear about the arrival;
// an unnamed handle is tracked silently until its handshake completes.
func (r *Room) Join(c Conn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRoomClosed
	}
	if r.indexLocked(c) >= 0 {
		r.log.Info().Str("user", c.Name()).Msg("already in room")
		return nil
	}
	r.members = append(r.members, c)
	if c.Name() == "" {
		return nil
	}

	now := time.Now()
	if !c.Send(Event{Kind: EventRosterReset, Room: r.name, At: now}) {
		r.removeLocked(c)
		r.closeIfEmptyLocked()
		return nil
	}
	r.announceLocked(c, true, "joined the room "+r.name)

	// The newcomer learns about everyone already here.
	for _, m := range r.members {
		if m == c {
			continue
		}
		if !c.Send(Event{Kind: EventPresence, Room: r.name, From: m.Name(), Joined: true, At: now}) {
			r.removeLocked(c)
			break
		}
	}
	r.closeIfEmptyLocked()
	return nil
}

// Leave removes a handle from the room. The remainder hears the departure;
// a room emptied of members closes, unless it is the Lobby.
func (r *Room) Leave(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.indexLocked(c) < 0 {
		return
	}
	r.removeLocked(c)
	if len(r.members) > 0 {
		r.announceLocked(c, false, "left the room "+r.name)
	}
	r.closeIfEmptyLocked()
}

// Close migrates every remaining member into the Lobby, tells the directory
// to forget the room and marks it closed. Any later operation is rejected.
// Closing the Lobby is always refused.
func (r *Room) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeLocked()
}

// SendMessage routes chat text from a member. Commands run first: directory
// and mute actions consume the message, flip/roll substitute their result,
// and everything else fans out under privacy and mute rules.
func (r *Room) SendMessage(sender Conn, text string) error {
	if r.Closed() {
		return ErrRoomClosed
	}

	switch cmd := ParseCommand(text); cmd.Kind {
	case CommandCreateRoom:
		// A taken name fails silently and suppresses the auto-join.
		if r.dir.CreateRoom(cmd.Arg) {
			_ = r.dir.JoinRoom(cmd.Arg, sender)
		}
		return nil
	case CommandJoinRoom:
		if err := r.dir.JoinRoom(cmd.Arg, sender); err != nil {
			r.log.Info().Str("user", sender.Name()).Str("target", cmd.Arg).Msg("join rejected")
		}
		return nil
	case CommandMute:
		if sender.Mutes().Add(cmd.Arg) {
			r.notifyMuteChange(sender, cmd.Arg, true)
		}
		return nil
	case CommandUnmute:
		if sender.Mutes().Remove(cmd.Arg) {
			r.notifyMuteChange(sender, cmd.Arg, false)
		}
		return nil
	case CommandFlip:
		text = flipResult()
	case CommandRoll:
		text = rollResult()
	}

	return r.broadcast(sender, text)
}

// broadcast fans text out to the members selected by the privacy and mute
// rules. Private syntax with no payload drops the whole message.
func (r *Room) broadcast(sender Conn, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRoomClosed
	}

	private := false
	recipient := ""
	if strings.HasPrefix(text, privateMarker) {
		sp := strings.IndexByte(text, ' ')
		if sp < 0 {
			r.log.Info().Str("user", sender.Name()).Msg("dropped malformed private message")
			return ErrDroppedInput
		}
		private = true
		recipient = text[len(privateMarker):sp]
		text = "[private]" + text[sp:]
	}

	from := sender.Name()
	r.log.Debug().Str("user", from).Int("members", len(r.members)).Msg("broadcasting")
	r.deliverLocked(Event{Kind: EventMessage, Room: r.name, From: from, Text: text, At: time.Now()},
		func(m Conn) bool {
			if private {
				// Mute state is irrelevant to the designated recipient and
				// to the sender's own echo.
				return m == sender || m.Name() == recipient
			}
			return !m.Mutes().Contains(from)
		})
	return nil
}

// notifyMuteChange tells the target, if currently present, who muted or
// unmuted them. An absent target is skipped; muting never depends on the
// target being in the room.
func (r *Room) notifyMuteChange(by Conn, target string, muted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	verb := "muted"
	if !muted {
		verb = "unmuted"
	}
	from := by.Name()
	r.deliverLocked(Event{Kind: EventNotice, Room: r.name, From: from, Text: from + " has " + verb + " you", At: time.Now()},
		func(m Conn) bool { return m.Name() == target })
}

// announceLocked fans a presence event out to every member, the subject
// included. Caller holds r.mu.
func (r *Room) announceLocked(subject Conn, joined bool, text string) {
	r.deliverLocked(Event{
		Kind:   EventPresence,
		Room:   r.name,
		From:   subject.Name(),
		Text:   text,
		Joined: joined,
		At:     time.Now(),
	}, nil)
}

// deliverLocked attempts delivery to every member accepted by the filter,
// pruning members whose handle rejects the event as part of the same pass.
// Each live member gets at most one attempt. Caller holds r.mu.
func (r *Room) deliverLocked(ev Event, accept func(Conn) bool) {
	kept := r.members[:0]
	for _, m := range r.members {
		if accept != nil && !accept(m) {
			kept = append(kept, m)
			continue
		}
		if m.Send(ev) {
			kept = append(kept, m)
		} else {
			r.log.Info().Str("user", m.Name()).Msg("pruned unreachable member")
		}
	}
	r.members = kept
	r.closeIfEmptyLocked()
}

func (r *Room) indexLocked(c Conn) int {
	for i, m := range r.members {
		if m == c {
			return i
		}
	}
	return -1
}

func (r *Room) removeLocked(c Conn) {
	if i := r.indexLocked(c); i >= 0 {
		r.members = append(r.members[:i], r.members[i+1:]...)
	}
}

func (r *Room) isLobbyLocked() bool {
	return strings.EqualFold(r.name, LobbyName)
}

// closeIfEmptyLocked enforces the lifecycle rule: a non-Lobby room with no
// members must not stay open. Caller holds r.mu.
func (r *Room) closeIfEmptyLocked() {
	if len(r.members) == 0 && !r.closed && !r.isLobbyLocked() {
		_ = r.closeLocked()
	}
}

func (r *Room) closeLocked() error {
	if r.closed {
		return ErrRoomClosed
	}
	if r.isLobbyLocked() {
		return ErrLobbyNeverCloses
	}
	if n := len(r.members); n > 0 {
		r.log.Info().Int("members", n).Msg("migrating members to lobby")
		lobby := r.dir.Lobby()
		for _, m := range r.members {
			_ = lobby.Join(m)
		}
		r.members = nil
	}
	r.dir.ForgetRoom(r)
	r.log.Info().Msg("room closed")
	r.name = ""
	r.closed = true
	return nil
}
