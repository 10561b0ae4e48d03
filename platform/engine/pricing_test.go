package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

func offerCard(t *testing.T, g *Game, playerID int, cardID string) models.Card {
	t.Helper()
	card, err := board.GetById(cardID)
	require.NoError(t, err)
	g.pending = &PropertyOffer{Card: card, PlayerId: playerID}
	return card
}

func TestBuyDebitsAndRecords(t *testing.T) {
	g := newTestGame(t, 2)
	offerCard(t, g, 1, "prop_1")

	require.NoError(t, g.Buy(1))

	p := g.players[0]
	assert.Equal(t, StartingCash-30000, p.Cash)
	require.Len(t, p.Cards, 1)
	assert.Equal(t, 30000, p.Cards[0].ActualPurchasePrice)
	assert.Equal(t, "prop_1", p.JustPurchasedId)
	assert.Nil(t, g.pending)

	changes := g.TakeMoneyChanges()
	require.Len(t, changes, 1)
	assert.Equal(t, -30000, changes[0].Amount)
}

func TestBuyRequiresMatchingOffer(t *testing.T) {
	g := newTestGame(t, 2)

	assert.Error(t, g.Buy(1), "no offer open")

	offerCard(t, g, 1, "prop_1")
	assert.Error(t, g.Buy(2), "the offer belongs to another player")
	require.NoError(t, g.Buy(1))
	assert.Error(t, g.Buy(1), "a resolved offer cannot be bought twice")
}

func TestBuyRejectsUnaffordable(t *testing.T) {
	g := newTestGame(t, 2)
	g.players[0].Cash = 10000
	offerCard(t, g, 1, "prop_1")

	assert.Error(t, g.Buy(1))
	assert.NotNil(t, g.pending, "the offer stays open after a failed buy")
}

func TestPricingPipelineOrder(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.BingoDiscount = 0.5
	g.activeEvents = []models.Event{
		{Effect: models.EffectPropertyDiscount, Discount: 0.5},
		{Effect: models.EffectPropertyBoost, Multiplier: 2.0},
	}
	card, err := board.GetById("prop_1") // price 30000
	require.NoError(t, err)

	price, ok := g.finalPrice(p, card)
	require.True(t, ok)
	// 30000 discounted to 15000, boosted to 30000, bingo halves to 15000
	assert.Equal(t, 15000, price)
}

func TestBingoDiscountConsumedOnPurchase(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.BingoDiscount = 0.5
	offerCard(t, g, 1, "prop_1")

	require.NoError(t, g.Buy(1))

	assert.Equal(t, StartingCash-15000, p.Cash)
	assert.Equal(t, 15000, p.Cards[0].ActualPurchasePrice)
	assert.Zero(t, p.BingoDiscount)
}

func TestPerWorkplacePricing(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{
		ownedFromCatalog(t, "manuf_1"),
		ownedFromCatalog(t, "manuf_2"),
	}
	offerCard(t, g, 1, "leis_3") // 500 per workplace

	startCash := p.Cash
	require.NoError(t, g.Buy(1))

	assert.Equal(t, startCash-1000, p.Cash)
}

func TestPerWorkplaceWithoutManufacturing(t *testing.T) {
	g := newTestGame(t, 2)
	offerCard(t, g, 1, "leis_3")

	require.NoError(t, g.Buy(1))

	assert.Nil(t, g.pending, "the unpriceable offer is dismissed")
	assert.Empty(t, g.players[0].Cards)
	assert.Equal(t, StartingCash, g.players[0].Cash)
}

func TestMandatoryLeisureCannotBePassed(t *testing.T) {
	g := newTestGame(t, 2)
	offerCard(t, g, 1, "leis_2") // affordable, not a trophy

	assert.Error(t, g.Pass(1))
	assert.NotNil(t, g.pending)
}

func TestUnaffordableLeisureCanBePassed(t *testing.T) {
	g := newTestGame(t, 2)
	g.players[0].Cash = 1000
	offerCard(t, g, 1, "leis_2") // price 1200

	require.NoError(t, g.Pass(1))
	assert.Nil(t, g.pending)
}

func TestTrophyCanAlwaysBePassed(t *testing.T) {
	g := newTestGame(t, 2)
	offerCard(t, g, 1, "leis_1")

	require.NoError(t, g.Pass(1))
	assert.Nil(t, g.pending)
}

func TestPerWorkplaceLeisureMandatoryWithWorkplaces(t *testing.T) {
	g := newTestGame(t, 2)
	g.players[0].Cards = []OwnedCard{ownedFromCatalog(t, "manuf_1")}
	offerCard(t, g, 1, "leis_3")

	assert.Error(t, g.Pass(1))

	g.players[0].Cards = nil
	require.NoError(t, g.Pass(1), "passable once no workplaces are owned")
}

func TestWagerPurchase(t *testing.T) {
	g := newTestGame(t, 2, 3, 4)
	offerCard(t, g, 1, "risk_1") // min stake 1000, target 6

	assert.Error(t, g.Buy(1), "wager cards do not resolve as flat purchases")

	result, err := g.BuyWithWager(1, 5000)
	require.NoError(t, err)

	assert.True(t, result.Won)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, StartingCash+5000, g.players[0].Cash)
	assert.Empty(t, g.players[0].Cards, "the wager card never enters the inventory")
	assert.Nil(t, g.pending)
}

func TestWagerLoss(t *testing.T) {
	g := newTestGame(t, 2, 1, 2)
	offerCard(t, g, 1, "risk_1")

	result, err := g.BuyWithWager(1, 2000)
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Equal(t, StartingCash-2000, g.players[0].Cash)
}

func TestWagerStakeBounds(t *testing.T) {
	g := newTestGame(t, 2, 3, 4)
	offerCard(t, g, 1, "risk_1")

	_, err := g.BuyWithWager(1, 500)
	assert.Error(t, err, "stake below the card price")

	_, err = g.BuyWithWager(1, StartingCash+1000)
	assert.Error(t, err, "stake above available cash")
}

func TestSellUsesCatalogResale(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{ownedFromCatalog(t, "bet_1")} // sale 6500

	require.NoError(t, g.Sell(1, "bet_1", 0, false))

	assert.Equal(t, StartingCash+6500, p.Cash)
	assert.Empty(t, p.Cards)
}

func TestSellStacksEventAndChance(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{ownedFromCatalog(t, "bet_1")} // "Stock", sale 6500
	g.activeEvents = []models.Event{{Effect: models.EffectStockBoost, Multiplier: 2.0}}
	p.Chance = &ChanceMultiplier{Affected: "Stock", Multiplier: 0.2}

	require.NoError(t, g.Sell(1, "bet_1", 0, false))

	// 6500 doubled by the event, then +20% from the chance bonus
	assert.Equal(t, StartingCash+15600, p.Cash)
}

func TestSellExplicitPriceSkipsBoosts(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{ownedFromCatalog(t, "bet_1")}
	g.activeEvents = []models.Event{{Effect: models.EffectStockBoost, Multiplier: 2.0}}

	require.NoError(t, g.Sell(1, "bet_1", 7000, true))

	assert.Equal(t, StartingCash+7000, p.Cash)
}

func TestMarketSaleCarriesMarkup(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{ownedFromCatalog(t, "prop_1")} // bought for 30000

	require.NoError(t, g.Sell(1, "prop_1", 0, true))

	assert.Equal(t, StartingCash+33000, p.Cash)
}

func TestLeisureSellsOnlyOnMarket(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	owned := ownedFromCatalog(t, "leis_2")
	p.Cards = []OwnedCard{owned}

	assert.Error(t, g.Sell(1, "leis_2", 0, false))
	require.NoError(t, g.Sell(1, "leis_2", 0, true))
	assert.Equal(t, StartingCash+owned.ActualPurchasePrice, p.Cash)
}

func TestCannotSellSameTurnPurchase(t *testing.T) {
	g := newTestGame(t, 2)
	offerCard(t, g, 1, "prop_1")
	require.NoError(t, g.Buy(1))

	assert.Error(t, g.Sell(1, "prop_1", 0, false))

	g.players[0].JustPurchasedId = ""
	assert.NoError(t, g.Sell(1, "prop_1", 0, false))
}

func TestForcedSaleCoversShortage(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{ownedFromCatalog(t, "prop_1")} // bought for 30000
	g.forcedSale = &ForcedSale{PlayerId: 1, Reason: "shortage", Fraction: 0.5, Required: 14000}

	require.NoError(t, g.Sell(1, "prop_1", 0, false))

	// sold for 15000, 14000 goes straight to the loan
	assert.Equal(t, StartingCash+1000, p.Cash)
	assert.Nil(t, g.forcedSale)
}

func TestForcedSalePartialShortage(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{
		ownedFromCatalog(t, "prop_9"), // bought for 10000
		ownedFromCatalog(t, "prop_1"),
	}
	g.forcedSale = &ForcedSale{PlayerId: 1, Reason: "shortage", Fraction: 0.5, Required: 14000}

	require.NoError(t, g.Sell(1, "prop_9", 0, false))

	// sold for 5000, all of it deducted, 9000 still owed
	require.NotNil(t, g.forcedSale)
	assert.Equal(t, 9000, g.forcedSale.Required)
	assert.Equal(t, StartingCash, p.Cash)
}

func TestForcedSaleWithoutRequiredClearsAfterOne(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	p.Cards = []OwnedCard{ownedFromCatalog(t, "prop_1")}
	g.forcedSale = &ForcedSale{PlayerId: 1, Reason: "bingo", Fraction: 2.0}

	require.NoError(t, g.Sell(1, "prop_1", 0, false))

	assert.Equal(t, StartingCash+60000, p.Cash)
	assert.Nil(t, g.forcedSale)
}

func TestActivateChance(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.players[0]
	card, err := board.GetById("chance_2") // +20% on Stock
	require.NoError(t, err)
	p.Cards = []OwnedCard{{Card: card}}

	require.NoError(t, g.ActivateChance(1, "chance_2"))

	assert.Empty(t, p.Cards, "the multiplier card is consumed")
	require.NotNil(t, p.Chance)
	assert.Equal(t, "Stock", p.Chance.Affected)
	assert.InDelta(t, 0.2, p.Chance.Multiplier, 1e-9)

	assert.Error(t, g.ActivateChance(1, "chance_2"), "cannot activate twice")
}

func TestChanceClearsOnTurnEnd(t *testing.T) {
	g := newTestGame(t, 2, 2, 4)
	p := g.players[0]
	p.Chance = &ChanceMultiplier{Affected: "Stock", Multiplier: 0.2}

	_, err := g.RollAndMove(1) // lands on a market tile, nothing pending
	require.NoError(t, err)
	require.NoError(t, g.EndTurn(1))

	assert.Nil(t, p.Chance)
}
