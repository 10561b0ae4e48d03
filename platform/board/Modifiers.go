package board

import "github.com/dm23046/Oligo-boardgame/app/models"

// Modifiers is the fixed modifier cycle, consulted via a wrapping index.
var Modifiers = []models.Modifier{
	{
		Id:      "mod_1",
		Name:    "CYCLE A",
		Limits:  models.BorrowLimits{Property: 70, Manufacturing: 50, Bets: 30},
		Bailout: 25000,
		Events: []models.Event{
			{
				Id:          "event_1_1",
				Name:        "Stock Boom",
				Description: "All Stocks (not including raw materials) can be sold for 100% more",
				Effect:      models.EffectStockBoost,
				Multiplier:  2.0,
			},
			{
				Id:          "event_1_2",
				Name:        "Stock Surge",
				Description: "All Stocks (not including raw materials) can be sold for 200% more",
				Effect:      models.EffectStockBoost,
				Multiplier:  3.0,
			},
			{
				Id:          "event_1_3",
				Name:        "Property Discount",
				Description: "All Property cards can be purchased for 50% cheaper",
				Effect:      models.EffectPropertyDiscount,
				Discount:    0.5,
			},
		},
	},
	{
		Id:      "mod_2",
		Name:    "CYCLE B",
		Limits:  models.BorrowLimits{Property: 80, Manufacturing: 60, Bets: 40},
		Bailout: 40000,
		Events: []models.Event{
			{
				Id:          "event_2_1",
				Name:        "Housing crisis",
				Description: "All Property cards can be purchased for 100% more",
				Effect:      models.EffectPropertyBoost,
				Multiplier:  2.0,
			},
			{
				Id:          "event_2_2",
				Name:        "Materials Surge",
				Description: "All raw materials can be sold for 150% more",
				Effect:      models.EffectRawBoost,
				Multiplier:  2.5,
			},
			{
				Id:          "event_2_3",
				Name:        "Property Discount",
				Description: "All Property cards can be purchased for 50% cheaper",
				Effect:      models.EffectPropertyDiscount,
				Discount:    0.5,
			},
		},
	},
}
