// internal/game/state_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelforge/duelforge/internal/cards"
	"github.com/duelforge/duelforge/internal/models"
)

func setupState(t *testing.T) (*models.GameState, *models.Player, *models.Player) {
	t.Helper()
	state := NewState("p1", "Alice", "p2", "Bob")
	p1, p2 := state.Players["p1"], state.Players["p2"]
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	return state, p1, p2
}

func TestNewStateInitialValues(t *testing.T) {
	state, p1, p2 := setupState(t)

	assert.Equal(t, "p1", state.CurrentTurn)
	assert.Equal(t, models.PhaseDraw, state.Phase)
	assert.Equal(t, 1, state.TurnNumber)

	for _, p := range []*models.Player{p1, p2} {
		assert.Equal(t, models.StartingLife, p.Life)
		assert.Equal(t, models.StartingMana, p.Mana)
		assert.Equal(t, models.StartingMana, p.MaxMana)
		assert.Len(t, p.Hand, models.OpeningHandSize)
		assert.Len(t, p.Deck, cards.DeckSize-models.OpeningHandSize)
		assert.Empty(t, p.Field)
	}
	assert.True(t, p1.IsTurn)
	assert.False(t, p2.IsTurn)
	assert.Equal(t, "Alice", p1.Username)
	assert.Equal(t, "Bob", p2.Username)
}

// giveCard plants a known card in the player's hand.
func giveCard(p *models.Player, card *models.Card) {
	p.Hand = append(p.Hand, card)
}

func TestPlayCreature(t *testing.T) {
	state, p1, _ := setupState(t)
	p1.Mana = 3
	giveCard(p1, &models.Card{ID: "c1", Name: "test creature", Type: models.CardTypeCreature, Cost: 2})
	handBefore := len(p1.Hand)

	err := PlayCard(state, "p1", "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, p1.Mana, "cost must be deducted exactly")
	assert.Len(t, p1.Hand, handBefore-1)
	require.Len(t, p1.Field, 1)
	assert.Equal(t, "c1", p1.Field[0].ID)
}

func TestPlaySpellDoesNotEnterField(t *testing.T) {
	state, p1, _ := setupState(t)
	p1.Mana = 2
	giveCard(p1, &models.Card{ID: "s1", Type: models.CardTypeSpell, Cost: 2})

	err := PlayCard(state, "p1", "s1")
	require.NoError(t, err)

	assert.Zero(t, p1.Mana)
	assert.Empty(t, p1.Field, "spells resolve from hand, never enter the field")
}

func TestPlayCardRejections(t *testing.T) {
	state, p1, p2 := setupState(t)
	giveCard(p1, &models.Card{ID: "pricey", Type: models.CardTypeCreature, Cost: 5})
	giveCard(p2, &models.Card{ID: "waiting", Type: models.CardTypeCreature, Cost: 1})

	snapshot := func(p *models.Player) (int, int, int) {
		return p.Mana, len(p.Hand), len(p.Field)
	}
	mana1, hand1, field1 := snapshot(p1)
	mana2, hand2, field2 := snapshot(p2)

	err := PlayCard(state, "p1", "pricey")
	assert.ErrorIs(t, err, ErrInsufficientMana)

	err = PlayCard(state, "p2", "waiting")
	assert.ErrorIs(t, err, ErrNotYourTurn)

	err = PlayCard(state, "p1", "no-such-card")
	assert.ErrorIs(t, err, ErrCardNotInHand)

	err = PlayCard(state, "intruder", "pricey")
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	// every rejection leaves the state untouched
	m, h, f := snapshot(p1)
	assert.Equal(t, [3]int{mana1, hand1, field1}, [3]int{m, h, f})
	m, h, f = snapshot(p2)
	assert.Equal(t, [3]int{mana2, hand2, field2}, [3]int{m, h, f})
}

func TestEndTurn(t *testing.T) {
	state, p1, p2 := setupState(t)
	deckBefore := len(p2.Deck)

	err := EndTurn(state, "p1")
	require.NoError(t, err)

	assert.Equal(t, "p2", state.CurrentTurn)
	assert.Equal(t, models.PhaseMain, state.Phase)
	assert.Equal(t, 2, state.TurnNumber)
	assert.False(t, p1.IsTurn)
	assert.True(t, p2.IsTurn)
	assert.Equal(t, 2, p2.MaxMana)
	assert.Equal(t, 2, p2.Mana, "mana refills to the new max")
	assert.Len(t, p2.Hand, models.OpeningHandSize+1)
	assert.Len(t, p2.Deck, deckBefore-1)

	err = EndTurn(state, "p1")
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestEndTurnManaCapAndDeckOut(t *testing.T) {
	state, _, p2 := setupState(t)
	p2.MaxMana = models.MaxMana
	p2.Deck = nil

	err := EndTurn(state, "p1")
	require.NoError(t, err)

	assert.Equal(t, models.MaxMana, p2.MaxMana, "max mana must not grow past the cap")
	assert.Equal(t, models.MaxMana, p2.Mana)
	assert.Len(t, p2.Hand, models.OpeningHandSize, "drawing from an empty deck is a no-op")
}
