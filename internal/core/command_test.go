package core

import (
	"strconv"
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Command
	}{
		{"create room", "/createroom lounge", Command{Kind: CommandCreateRoom, Arg: "lounge"}},
		{"join room", "/joinroom lounge", Command{Kind: CommandJoinRoom, Arg: "lounge"}},
		{"flip", "/flip", Command{Kind: CommandFlip}},
		{"roll", "/roll", Command{Kind: CommandRoll}},
		{"keyword is case-insensitive", "/FLIP", Command{Kind: CommandFlip}},
		{"mute", "/mute @bob", Command{Kind: CommandMute, Arg: "bob"}},
		{"unmute", "/unmute @bob", Command{Kind: CommandUnmute, Arg: "bob"}},
		{"trigger anywhere in text", "well /flip", Command{Kind: CommandFlip}},
		{"plain chat", "hello there", Command{Kind: CommandNone}},
		{"empty text", "", Command{Kind: CommandNone}},
		{"bare trigger", "/", Command{Kind: CommandNone}},
		{"unknown keyword", "/frobnicate", Command{Kind: CommandNone}},
		{"create without name", "/createroom", Command{Kind: CommandNone}},
		{"join without name", "/joinroom", Command{Kind: CommandNone}},
		{"mute without target", "/mute", Command{Kind: CommandNone}},
		{"mute without marker", "/mute bob", Command{Kind: CommandNone}},
		{"mute with empty target", "/mute @", Command{Kind: CommandNone}},
		{"unmute without marker", "/unmute bob", Command{Kind: CommandNone}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseCommand(tc.text); got != tc.want {
				t.Fatalf("ParseCommand(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestFlipResultDistribution(t *testing.T) {
	const n = 4000
	heads := 0
	for i := 0; i < n; i++ {
		switch flipResult() {
		case "flipped heads":
			heads++
		case "flipped tails":
		default:
			t.Fatalf("unexpected flip outcome")
		}
	}
	// Roughly 50/50; the bound is loose enough to never flake.
	if heads < n*2/5 || heads > n*3/5 {
		t.Fatalf("heads frequency %d/%d outside expected range", heads, n)
	}
}

func TestRollResultFaces(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 600; i++ {
		out := rollResult()
		raw, ok := strings.CutPrefix(out, "rolled ")
		if !ok {
			t.Fatalf("unexpected roll outcome %q", out)
		}
		face, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("roll outcome %q has no numeric face", out)
		}
		// Faces are 1-based; a zero would be the off-by-one rendering bug.
		if face < 1 || face > diceSides {
			t.Fatalf("face %d out of range 1..%d", face, diceSides)
		}
		seen[face] = true
	}
	if len(seen) != diceSides {
		t.Fatalf("expected all %d faces over repeated rolls, saw %d", diceSides, len(seen))
	}
}
