package models

// Phase is the current step of the active player's turn.
type Phase string

const (
	PhaseDraw   Phase = "draw"
	PhaseMain   Phase = "main"
	PhaseBattle Phase = "battle"
	PhaseEnd    Phase = "end"
)

// GameState is the full shared snapshot of a duel. It is overwritten wholesale
// on every mutation and re-broadcast in full; there is no delta protocol and
// no versioning.
type GameState struct {
	Players     map[string]*Player `json:"players"`
	CurrentTurn string             `json:"currentTurn"`
	Phase       Phase              `json:"phase"`
	TurnNumber  int                `json:"turnNumber"`
}

// Opponent returns the player record that is not playerID, or nil if the
// state does not hold exactly one other player.
func (gs *GameState) Opponent(playerID string) *Player {
	for id, p := range gs.Players {
		if id != playerID {
			return p
		}
	}
	return nil
}
