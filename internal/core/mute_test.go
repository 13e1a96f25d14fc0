package core

import "testing"

func TestMuteSetIdempotence(t *testing.T) {
	s := NewMuteSet()

	if !s.Add("alice") {
		t.Fatal("first add should change the set")
	}
	if s.Add("alice") {
		t.Fatal("re-muting must be a no-op")
	}
	if s.Len() != 1 {
		t.Fatalf("expected exactly one entry, got %d", s.Len())
	}
	if !s.Contains("alice") {
		t.Fatal("alice should be muted")
	}

	if !s.Remove("alice") {
		t.Fatal("removing a present name should change the set")
	}
	if s.Remove("alice") {
		t.Fatal("unmuting a non-muted name must be a no-op")
	}
	if s.Contains("alice") {
		t.Fatal("alice should no longer be muted")
	}
}

func TestMuteSetNamesSorted(t *testing.T) {
	s := NewMuteSet()
	for _, name := range []string{"zoe", "alice", "mia"} {
		s.Add(name)
	}

	got := s.Names()
	want := []string{"alice", "mia", "zoe"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
