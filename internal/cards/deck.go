// internal/cards/deck.go
package cards

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/duelforge/duelforge/internal/models"
)

// DeckSize is the fixed number of cards in a constructed deck.
const DeckSize = 20

// NewDeck builds a DeckSize-card deck by cycling through the catalog. Each
// copy gets a fresh random ID suffix so per-copy identity stays unique
// within a deck.
func NewDeck() []*models.Card {
	deck := make([]*models.Card, 0, DeckSize)
	for i := 0; i < DeckSize; i++ {
		def := Catalog[i%len(Catalog)]
		card := def // copy the definition; catalog entries are shared
		card.ID = fmt.Sprintf("%s-%s", def.ID, uuid.New().String()[:8])
		deck = append(deck, &card)
	}
	return deck
}

// Shuffle permutes the deck in place with an unbiased Fisher-Yates pass.
func Shuffle(deck []*models.Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Draw moves the front card of the player's deck into their hand.
// Drawing from an empty deck is a no-op.
func Draw(p *models.Player) {
	if len(p.Deck) == 0 {
		return
	}
	card := p.Deck[0]
	p.Deck = p.Deck[1:]
	p.Hand = append(p.Hand, card)
}
