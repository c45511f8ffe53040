// internal/game/state.go
package game

import (
	"errors"

	"github.com/duelforge/duelforge/internal/cards"
	"github.com/duelforge/duelforge/internal/models"
)

// Rule violations reported back to the acting player. None of these mutate
// the state they are returned from.
var (
	ErrUnknownPlayer    = errors.New("player is not part of this game")
	ErrNotYourTurn      = errors.New("it is not your turn")
	ErrCardNotInHand    = errors.New("card is not in your hand")
	ErrInsufficientMana = errors.New("insufficient mana")
)

// NewState builds the initial shared snapshot for a freshly matched pair:
// each player gets a shuffled deck and a five-card opening hand, and the
// first player takes the first turn.
func NewState(p1ID, p1Name, p2ID, p2Name string) *models.GameState {
	state := &models.GameState{
		Players:     map[string]*models.Player{},
		CurrentTurn: p1ID,
		Phase:       models.PhaseDraw,
		TurnNumber:  1,
	}
	state.Players[p1ID] = newPlayer(p1ID, p1Name, true)
	state.Players[p2ID] = newPlayer(p2ID, p2Name, false)
	return state
}

func newPlayer(id, username string, first bool) *models.Player {
	deck := cards.NewDeck()
	cards.Shuffle(deck)

	p := &models.Player{
		ID:       id,
		Username: username,
		Life:     models.StartingLife,
		Mana:     models.StartingMana,
		MaxMana:  models.StartingMana,
		Deck:     deck,
		Hand:     []*models.Card{},
		Field:    []*models.Card{},
		IsTurn:   first,
	}
	for i := 0; i < models.OpeningHandSize; i++ {
		cards.Draw(p)
	}
	return p
}

// PlayCard applies a play_card action for playerID. The card must be in the
// player's hand, it must be their turn, and they must be able to pay the
// cost. Creatures enter the field; spell effects are not interpreted.
// On error the state is left untouched.
func PlayCard(state *models.GameState, playerID, cardID string) error {
	p, ok := state.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	if state.CurrentTurn != playerID {
		return ErrNotYourTurn
	}

	idx := -1
	for i, c := range p.Hand {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrCardNotInHand
	}

	card := p.Hand[idx]
	if p.Mana < card.Cost {
		return ErrInsufficientMana
	}

	p.Mana -= card.Cost
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	if card.Type == models.CardTypeCreature {
		p.Field = append(p.Field, card)
	}
	return nil
}

// EndTurn passes the turn to the opponent: their max mana grows (capped),
// their mana refills, and they draw a card. Drawing from an empty deck is
// a no-op, matching Draw.
func EndTurn(state *models.GameState, playerID string) error {
	p, ok := state.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	if state.CurrentTurn != playerID {
		return ErrNotYourTurn
	}

	next := state.Opponent(playerID)
	if next == nil {
		return ErrUnknownPlayer
	}

	p.IsTurn = false
	next.IsTurn = true
	if next.MaxMana < models.MaxMana {
		next.MaxMana++
	}
	next.Mana = next.MaxMana
	cards.Draw(next)

	state.CurrentTurn = next.ID
	state.Phase = models.PhaseMain
	state.TurnNumber++
	return nil
}
