package entity

type Player struct {
	ID     string `json:"id"`
	Color  string `json:"color,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

// Move is one accepted placement in a game's history.
type Move struct {
	GameID   string `json:"game_id"`
	Number   int    `json:"number"`
	PlayerID string `json:"player_id"`
	Color    string `json:"color"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Flipped  int    `json:"flipped"`
}
