package cards

import "github.com/duelforge/duelforge/internal/models"

// Catalog is the fixed set of card definitions. Deck construction cycles
// through it; definitions themselves are never mutated.
var Catalog = []models.Card{
	{
		ID:     "flame-warrior-1",
		Name:   "炎刃の戦士",
		Type:   models.CardTypeCreature,
		Cost:   1,
		Attack: 2,
		Health: 1,
	},
	{
		ID:     "water-mage-1",
		Name:   "水流の魔導士",
		Type:   models.CardTypeCreature,
		Cost:   2,
		Attack: 1,
		Health: 2,
		Effect: "Draw a card when this creature enters the field.",
	},
	{
		ID:     "forest-guardian-1",
		Name:   "森林の守護者",
		Type:   models.CardTypeCreature,
		Cost:   2,
		Attack: 2,
		Health: 2,
	},
	{
		ID:     "light-angel-1",
		Name:   "光翼の天使",
		Type:   models.CardTypeCreature,
		Cost:   3,
		Attack: 1,
		Health: 4,
	},
	{
		ID:     "shadow-assassin-1",
		Name:   "闇影の刺客",
		Type:   models.CardTypeCreature,
		Cost:   2,
		Attack: 3,
		Health: 1,
	},
	{
		ID:     "flame-spell-1",
		Name:   "炎熱の呪文",
		Type:   models.CardTypeSpell,
		Cost:   2,
		Effect: "Deal 3 damage to target player.",
	},
}
