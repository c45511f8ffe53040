package models

// CardType distinguishes creatures, which enter the field, from spells,
// which resolve from hand.
type CardType string

const (
	CardTypeCreature CardType = "creature"
	CardTypeSpell    CardType = "spell"
)

// Card is a single card instance. Immutable once created; per-copy identity
// comes from the ID suffix assigned during deck construction.
type Card struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Type   CardType `json:"type"`
	Cost   int      `json:"cost"`
	Attack int      `json:"attack,omitempty"`
	Health int      `json:"health,omitempty"`
	Effect string   `json:"effect,omitempty"`
}
