package core

import "testing"

func TestCreateRoomNamesAreCaseInsensitive(t *testing.T) {
	reg := newTestRegistry()

	if !reg.CreateRoom("Attic") {
		t.Fatal("fresh name should create")
	}
	if reg.CreateRoom("attic") {
		t.Fatal("same name in different case must fail")
	}
	if reg.CreateRoom("") {
		t.Fatal("empty name must fail")
	}
	if reg.CreateRoom(LobbyName) {
		t.Fatal("the Lobby name is always taken")
	}
}

func TestJoinRoomToCurrentRoomIsNoOp(t *testing.T) {
	reg := newTestRegistry()
	alice := lobbyMember(t, reg, "alice")

	if err := reg.JoinRoom(LobbyName, alice); err != nil {
		t.Fatalf("join to current room errored: %v", err)
	}
	if evs := collectEvents(alice); len(evs) != 0 {
		t.Fatalf("no events expected, got %v", evs)
	}
	if got := reg.Lobby().Members(); len(got) != 1 {
		t.Fatalf("membership duplicated: %v", got)
	}
}

func TestJoinRoomMovesBetweenRooms(t *testing.T) {
	reg := newTestRegistry()
	reg.CreateRoom("attic")
	reg.CreateRoom("cellar")
	alice := lobbyMember(t, reg, "alice")

	if err := reg.JoinRoom("attic", alice); err != nil {
		t.Fatalf("join attic: %v", err)
	}
	if err := reg.JoinRoom("cellar", alice); err != nil {
		t.Fatalf("join cellar: %v", err)
	}

	cellar, _ := reg.Find("cellar")
	if got := cellar.Members(); len(got) != 1 || got[0] != "alice" {
		t.Fatalf("unexpected cellar members: %v", got)
	}
	// Attic emptied behind alice, so it closed and was forgotten.
	if _, ok := reg.Find("attic"); ok {
		t.Fatal("attic should be forgotten once empty")
	}
	if got := reg.CurrentRoom(alice); got != cellar {
		t.Fatal("handle tracked in the wrong room")
	}
}

func TestDropForgetsHandle(t *testing.T) {
	reg := newTestRegistry()
	alice := lobbyMember(t, reg, "alice")

	reg.Drop(alice)

	if reg.CurrentRoom(alice) != nil {
		t.Fatal("dropped handle still tracked")
	}
	if got := reg.Lobby().Members(); len(got) != 0 {
		t.Fatalf("dropped handle still a member: %v", got)
	}
}

func TestCloseAllDrainsIntoLobby(t *testing.T) {
	reg := newTestRegistry()
	reg.CreateRoom("attic")
	reg.CreateRoom("cellar")
	alice := lobbyMember(t, reg, "alice")
	bob := lobbyMember(t, reg, "bob")
	reg.JoinRoom("attic", alice)
	reg.JoinRoom("cellar", bob)

	reg.CloseAll()

	if names := reg.ListRoomNames(); len(names) != 1 || names[0] != LobbyName {
		t.Fatalf("unexpected listing after shutdown: %v", names)
	}
	if got := reg.Lobby().Members(); len(got) != 2 {
		t.Fatalf("members not migrated: %v", got)
	}
	if reg.Lobby().Closed() {
		t.Fatal("the Lobby must survive shutdown")
	}
}
