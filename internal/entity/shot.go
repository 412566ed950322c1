package entity

type Shot struct {
	Target Position `json:"target"`
	IsHit  bool     `json:"is_hit"`
}

// ShotResult is the outcome of resolving one shot against a board.
type ShotResult struct {
	Shot       Shot  `json:"shot"`
	SunkShip   *Ship `json:"sunk_ship,omitempty"`
	IsGameOver bool  `json:"is_game_over"`
}
