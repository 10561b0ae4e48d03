package board

import "github.com/dm23046/Oligo-boardgame/app/models"

// StartTileId marks the tile whose crossing settles a lap.
const StartTileId = 0

// Tiles is the fixed board, keyed by tile id 0-44. MovementSequence defines
// the order pieces actually travel; tile ids are not contiguous along it.
var Tiles = []models.Tile{
	{Id: 0, Label: "Start"},
	{Id: 1, Label: "Leisure", DrawPool: models.CategoryLeisure},
	{Id: 2, Label: "Income Tax (30%)", Action: models.ActionIncomeTax},
	{Id: 3, Label: "Chance", DrawPool: models.CategoryChance},
	{Id: 4, Label: "Property", DrawPool: models.CategoryProperty},
	{Id: 5, Label: "Event", Action: models.ActionEvent},
	{Id: 6, Label: "Market", Action: models.ActionMarket},
	{Id: 7, Label: "Bets", DrawPool: models.CategoryBets},
	{Id: 8, Label: "Factory", DrawPool: models.CategoryManufacturing},
	{Id: 9, Label: "Risk", DrawPool: models.CategoryRisk},
	{Id: 10, Label: "Property", DrawPool: models.CategoryProperty},
	{Id: 11, Label: "Bingo", Action: models.ActionBingo},
	{Id: 12, Label: "Cycle", Action: models.ActionCycle},
	{Id: 13, Label: "Bets & Production", DrawPool: models.CategoryBets},
	{Id: 14, Label: "Chance", DrawPool: models.CategoryChance},
	{Id: 15, Label: "Factory", DrawPool: models.CategoryManufacturing},
	{Id: 16, Label: "Leisure", DrawPool: models.CategoryLeisure},
	{Id: 17, Label: "Tax (10%)", Action: models.ActionTax},
	{Id: 18, Label: "Market", Action: models.ActionMarket},
	{Id: 19, Label: "Event", Action: models.ActionEvent},
	{Id: 20, Label: "Property", DrawPool: models.CategoryProperty},
	{Id: 21, Label: "Risk", DrawPool: models.CategoryRisk},
	{Id: 22, Label: "Chance", DrawPool: models.CategoryChance},
	{Id: 23, Label: "Bets", DrawPool: models.CategoryBets},
	{Id: 24, Label: "Factory", DrawPool: models.CategoryManufacturing},
	{Id: 25, Label: "Leisure", DrawPool: models.CategoryLeisure},
	{Id: 26, Label: "Event", Action: models.ActionEvent},
	{Id: 27, Label: "Market", Action: models.ActionMarket},
	{Id: 28, Label: "Jail", Action: models.ActionJail},
	{Id: 29, Label: "Risk", DrawPool: models.CategoryRisk},
	{Id: 30, Label: "Property", DrawPool: models.CategoryProperty},
	{Id: 31, Label: "Factory", DrawPool: models.CategoryManufacturing},
	{Id: 32, Label: "Bingo", Action: models.ActionBingo},
	{Id: 33, Label: "Cycle", Action: models.ActionCycle},
	{Id: 34, Label: "Bets", DrawPool: models.CategoryBets},
	{Id: 35, Label: "Chance", DrawPool: models.CategoryChance},
	{Id: 36, Label: "Property", DrawPool: models.CategoryProperty},
	{Id: 37, Label: "Leisure", DrawPool: models.CategoryLeisure},
	{Id: 38, Label: "Free Pick", Action: models.ActionFreePick},
	{Id: 39, Label: "Market", Action: models.ActionMarket},
	{Id: 40, Label: "Event", Action: models.ActionEvent},
	{Id: 41, Label: "Factory", DrawPool: models.CategoryManufacturing},
	{Id: 42, Label: "Bets", DrawPool: models.CategoryBets},
	{Id: 43, Label: "Risk", DrawPool: models.CategoryRisk},
	{Id: 44, Label: "Mafia", Action: models.ActionMafia},
}

// MovementSequence maps movement positions to tile ids.
var MovementSequence = []int{
	0,
	4, 3, 2, 1, 5,
	6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
	19, 20, 21, 22, 23, 24, 25, 26,
	27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
	40, 41, 42, 43, 44,
}

// CycleLength is the number of movement positions in one lap.
func CycleLength() int {
	return len(MovementSequence)
}

// Normalize folds an unbounded position into the movement cycle.
func Normalize(position int) int {
	n := position % len(MovementSequence)
	if n < 0 {
		n += len(MovementSequence)
	}
	return n
}

// TileAt returns the tile under an unbounded movement position.
func TileAt(position int) models.Tile {
	id := MovementSequence[Normalize(position)]
	return Tiles[id]
}

// IsStart reports whether a movement position sits on the start tile.
func IsStart(position int) bool {
	return MovementSequence[Normalize(position)] == StartTileId
}
