package core

import "errors"

var (
	// ErrRoomClosed is returned by any operation on a room past its tombstone.
	ErrRoomClosed = errors.New("room closed")
	// ErrRoomNotFound is returned when joining a name the directory does not know.
	ErrRoomNotFound = errors.New("room not found")
	// ErrLobbyNeverCloses guards the default room against closure.
	ErrLobbyNeverCloses = errors.New("lobby is never closed")
	// ErrDroppedInput marks user input that was swallowed without any delivery.
	ErrDroppedInput = errors.New("dropped input")
)
