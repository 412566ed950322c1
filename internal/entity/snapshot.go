package entity

// BoardView is a detached copy of a board for rendering.
type BoardView struct {
	Owner    Side   `json:"owner"`
	GridSize int    `json:"grid_size"`
	Ships    []Ship `json:"ships"`
	Shots    []Shot `json:"shots"`
}

type MatchSnapshot struct {
	ID                string    `json:"id"`
	Phase             Phase     `json:"phase"`
	ActiveTurn        Side      `json:"active_turn,omitempty"`
	Winner            Side      `json:"winner,omitempty"`
	PlayerBoard       BoardView `json:"player_board"`
	OpponentBoard     BoardView `json:"opponent_board"`
	OpponentShotsLeft int       `json:"opponent_shots_left"`
}

func (that *Board) View() BoardView {
	ships := make([]Ship, 0, len(that.Ships))
	for _, ship := range that.Ships {
		ships = append(ships, *ship)
	}

	return BoardView{
		Owner:    that.Owner,
		GridSize: that.GridSize,
		Ships:    ships,
		Shots:    append([]Shot(nil), that.Shots...),
	}
}

func (that *Match) Snapshot() MatchSnapshot {
	return MatchSnapshot{
		ID:                that.ID,
		Phase:             that.Phase,
		ActiveTurn:        that.ActiveTurn,
		Winner:            that.Winner,
		PlayerBoard:       that.PlayerBoard.View(),
		OpponentBoard:     that.OpponentBoard.View(),
		OpponentShotsLeft: that.OpponentShotsLeft(),
	}
}
