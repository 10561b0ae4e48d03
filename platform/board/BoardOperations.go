package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/dm23046/Oligo-boardgame/app/models"
)

//go:embed cards.json
var cardsJSON []byte

var catalog []models.Card

func init() {
	if err := json.Unmarshal(cardsJSON, &catalog); err != nil {
		panic(err)
	}
	for _, card := range catalog {
		if !card.Type.Known() {
			panic("unknown card category: " + string(card.Type))
		}
	}
}

// LoadCards returns the full card catalog.
func LoadCards() []models.Card {
	return catalog
}

// Pool returns the catalog entries of one draw-pool category.
func Pool(category models.Category) []models.Card {
	var cards []models.Card
	for _, card := range catalog {
		if card.Type == category {
			cards = append(cards, card)
		}
	}
	return cards
}

// GetById looks a card up by catalog id.
func GetById(id string) (models.Card, error) { // O(N) time complexity
	for _, card := range catalog {
		if card.Id == id {
			return card, nil
		}
	}
	return models.Card{}, errors.New("not found")
}
