package core

import (
	"math/rand"
	"strconv"
	"strings"
)

// Grammar markers for in-band commands.
const (
	commandTrigger = "/"
	privateMarker  = "@"
)

// diceSides is the number of faces on the /roll die. Results are the 1-based
// face values 1..diceSides, never the zero-based index.
const diceSides = 6

// CommandKind describes what a parsed slash command asks for.
type CommandKind int

const (
	// CommandNone means the text is ordinary chat; malformed commands land here.
	CommandNone CommandKind = iota
	// CommandCreateRoom asks the directory to create a room and auto-join it.
	CommandCreateRoom
	// CommandJoinRoom asks the directory to move the sender into a room.
	CommandJoinRoom
	// CommandFlip replaces the message with a coin flip result.
	CommandFlip
	// CommandRoll replaces the message with a die roll result.
	CommandRoll
	// CommandMute adds a name to the sender's mute set.
	CommandMute
	// CommandUnmute removes a name from the sender's mute set.
	CommandUnmute
)

// Command is a parsed, validated instruction extracted from chat text.
// It is built fresh from each incoming message and never persisted.
type Command struct {
	Kind CommandKind
	Arg  string // room name for create/join, target name for mute/unmute
}

// ParseCommand interprets the slash-command grammar embedded in chat text.
// Everything after the first trigger character is tokenized on whitespace; the
// first token selects the command kind case-insensitively. Anything malformed
// degrades to CommandNone so the text flows through as ordinary chat.
func ParseCommand(text string) Command {
	i := strings.Index(text, commandTrigger)
	if i < 0 {
		return Command{Kind: CommandNone}
	}
	fields := strings.Fields(text[i+len(commandTrigger):])
	if len(fields) == 0 {
		return Command{Kind: CommandNone}
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "createroom":
		if len(args) > 0 {
			return Command{Kind: CommandCreateRoom, Arg: args[0]}
		}
	case "joinroom":
		if len(args) > 0 {
			return Command{Kind: CommandJoinRoom, Arg: args[0]}
		}
	case "flip":
		return Command{Kind: CommandFlip}
	case "roll":
		return Command{Kind: CommandRoll}
	case "mute":
		if target, ok := muteTarget(args); ok {
			return Command{Kind: CommandMute, Arg: target}
		}
	case "unmute":
		if target, ok := muteTarget(args); ok {
			return Command{Kind: CommandUnmute, Arg: target}
		}
	}
	return Command{Kind: CommandNone}
}

// muteTarget extracts the display name from a "@name" argument.
func muteTarget(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	_, target, found := strings.Cut(args[0], privateMarker)
	if !found || target == "" {
		return "", false
	}
	return target, true
}

// flipResult picks one of the two coin outcomes with equal probability.
func flipResult() string {
	if rand.Intn(2) == 0 {
		return "flipped heads"
	}
	return "flipped tails"
}

// rollResult picks a face of the die uniformly, rendered as its face value.
func rollResult() string {
	return "rolled " + strconv.Itoa(rand.Intn(diceSides)+1)
}
