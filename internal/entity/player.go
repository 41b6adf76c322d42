package entity

import "strings"

const botIDPrefix = "bot:"

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

func NewPlayer(id string) *Player {
	return &Player{ID: id}
}

// NewBotPlayer - the bot participant of one game. Bots never exist
// outside their game, so the game ID keeps the bot ID unique.
func NewBotPlayer(gameID, mark string) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}
