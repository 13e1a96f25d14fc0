package core

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// LobbyName is the default room every handle falls back to. The Lobby always
// exists and is never closed.
const LobbyName = "Lobby"

// Directory is the registry rooms report to and the sole mover of handles
// between rooms. A handle belongs to at most one room at any instant.
type Directory interface {
	// CreateRoom registers a new empty room, reporting whether the name was free.
	CreateRoom(name string) bool
	// JoinRoom moves the handle into the named room. An unknown name is a
	// no-op for the handle's current membership and returns ErrRoomNotFound.
	JoinRoom(name string, c Conn) error
	// JoinLobby moves the handle into the default room.
	JoinLobby(c Conn)
	// Lobby returns the always-present default room.
	Lobby() *Room
	// ForgetRoom removes a closed room from the registry.
	ForgetRoom(r *Room)
	// ListRoomNames returns the open room names in sorted order.
	ListRoomNames() []string
}

// Registry is the in-process Directory implementation. Room names are matched
// case-insensitively. The registry never calls into a room while holding its
// own lock; rooms call ForgetRoom while holding theirs, which only touches
// registry maps, so the two lock domains never form a cycle.
type Registry struct {
	log zerolog.Logger

	mu      sync.Mutex
	rooms   map[string]*Room // keyed by lowercased name
	current map[Conn]*Room
	lobby   *Room // set once at construction
}

// NewRegistry builds a registry holding only the Lobby.
func NewRegistry(logger zerolog.Logger) *Registry {
	g := &Registry{
		log:     logger,
		rooms:   make(map[string]*Room),
		current: make(map[Conn]*Room),
	}
	g.lobby = NewRoom(LobbyName, g, logger)
	g.rooms[strings.ToLower(LobbyName)] = g.lobby
	return g
}

// CreateRoom registers an empty room under a free name. Duplicate or empty
// names fail without side effects.
func (g *Registry) CreateRoom(name string) bool {
	if name == "" {
		return false
	}
	key := strings.ToLower(name)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.rooms[key]; exists {
		return false
	}
	g.rooms[key] = NewRoom(name, g, g.log)
	g.log.Info().Str("room", name).Msg("room created")
	return true
}

// JoinRoom moves the handle out of its current room and into the named one.
func (g *Registry) JoinRoom(name string, c Conn) error {
	g.mu.Lock()
	target, ok := g.rooms[strings.ToLower(name)]
	if !ok {
		g.mu.Unlock()
		g.log.Info().Str("room", name).Msg("join to unknown room ignored")
		return ErrRoomNotFound
	}
	prev := g.current[c]
	if prev == target {
		g.mu.Unlock()
		return nil
	}
	g.current[c] = target
	g.mu.Unlock()

	if prev != nil {
		prev.Leave(c)
	}
	if err := target.Join(c); err != nil {
		// The room closed between lookup and join; park the handle in the Lobby.
		g.JoinLobby(c)
		return ErrRoomNotFound
	}
	return nil
}

// JoinLobby moves the handle into the default room.
func (g *Registry) JoinLobby(c Conn) {
	g.mu.Lock()
	prev := g.current[c]
	if prev == g.lobby {
		g.mu.Unlock()
		return
	}
	g.current[c] = g.lobby
	g.mu.Unlock()

	if prev != nil {
		prev.Leave(c)
	}
	_ = g.lobby.Join(c) // the Lobby never closes
}

// Lobby returns the default room.
func (g *Registry) Lobby() *Room {
	return g.lobby
}

// Find returns the open room registered under the given name.
func (g *Registry) Find(name string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[strings.ToLower(name)]
	return room, ok
}

// CurrentRoom returns the room the handle currently belongs to, if any.
func (g *Registry) CurrentRoom(c Conn) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current[c]
}

// Drop removes a disconnected handle from its room and the registry.
func (g *Registry) Drop(c Conn) {
	g.mu.Lock()
	prev := g.current[c]
	delete(g.current, c)
	g.mu.Unlock()

	if prev != nil {
		prev.Leave(c)
	}
}

// ForgetRoom drops a closed room from the registry and re-points any handles
// it migrated at the Lobby. Called by a closing room with that room's lock
// held, so it must touch registry state only.
func (g *Registry) ForgetRoom(r *Room) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, room := range g.rooms {
		if room == r {
			delete(g.rooms, key)
			g.log.Info().Str("room", key).Msg("room forgotten")
			break
		}
	}
	for c, room := range g.current {
		if room == r {
			g.current[c] = g.lobby
		}
	}
}

// ListRoomNames returns the names of all open rooms, sorted.
func (g *Registry) ListRoomNames() []string {
	g.mu.Lock()
	rooms := lo.Values(g.rooms)
	g.mu.Unlock()

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		// A room may close between the snapshot and here; its name is gone.
		if name := room.Name(); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// CloseAll shuts every non-Lobby room, migrating their members into the
// Lobby. Used on server shutdown.
func (g *Registry) CloseAll() {
	g.mu.Lock()
	rooms := lo.Values(g.rooms)
	g.mu.Unlock()

	for _, room := range rooms {
		if room != g.lobby {
			_ = room.Close()
		}
	}
}
