package entity

import "github.com/rocketscienceinc/tictactoe/internal/engine"

const BotPlayerID = "bot"

type Player struct {
	ID     string      `json:"id"`
	Name   string      `json:"name,omitempty"`
	Mark   engine.Mark `json:"mark,omitempty"`
	GameID string      `json:"game_id,omitempty"`
	Bot    bool        `json:"bot,omitempty"`
}

func NewBotPlayer(gameID string, mark engine.Mark) *Player {
	return &Player{
		ID:     BotPlayerID,
		Name:   "Computer",
		Mark:   mark,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}

// Leave detaches the player from its game.
func (that *Player) Leave() {
	that.GameID = ""
	that.Mark = engine.Empty
}
