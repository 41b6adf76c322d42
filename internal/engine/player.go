package engine

import (
	"errors"
	"fmt"
)

// Rendering tokens used on the wire and in display code.
const (
	MarkerX     = "X"
	MarkerO     = "O"
	MarkerEmpty = ""
)

var ErrUnknownPlayer = errors.New("unknown player marker")

// Player - one of the two game identities. There is no empty player:
// vacancy belongs to board cells, not to players.
type Player int

const (
	PlayerX Player = iota
	PlayerO
)

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}

	return PlayerX
}

// Marker - returns the rendering token for the player.
func (that Player) Marker() string {
	if that == PlayerX {
		return MarkerX
	}

	return MarkerO
}

func (that Player) String() string {
	return that.Marker()
}

// ParsePlayer - maps a rendering token back to the player it stands for.
func ParsePlayer(marker string) (Player, error) {
	switch marker {
	case MarkerX:
		return PlayerX, nil
	case MarkerO:
		return PlayerO, nil
	default:
		return PlayerX, fmt.Errorf("%w: %q", ErrUnknownPlayer, marker)
	}
}
