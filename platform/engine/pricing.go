package engine

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
)

// finalPrice runs the ordered pricing pipeline: per-workplace scaling, then
// the purchase-discount event, then the purchase-boost event, then the
// player's one-shot bingo discount. The second return is false when a
// per-workplace card cannot be priced (no manufacturing cards owned).
func (g *Game) finalPrice(p *Player, card models.Card) (int, bool) {
	price := card.Price
	if card.PerWorkplace {
		count := p.manufacturingCount()
		if count == 0 {
			return 0, false
		}
		price = card.Price * count
	}
	if ev := g.activeEventByEffect(models.EffectPropertyDiscount); ev != nil && card.Type == models.CategoryProperty {
		price = int(float64(price) * (1 - ev.Discount))
	}
	if ev := g.activeEventByEffect(models.EffectPropertyBoost); ev != nil && card.Type == models.CategoryProperty {
		price = int(float64(price) * ev.Multiplier)
	}
	if p.BingoDiscount > 0 {
		price = int(float64(price) * (1 - p.BingoDiscount))
	}
	return price, true
}

// Buy resolves the pending offer as a flat purchase. A zero price is always
// purchasable. Wager-style Risk cards are rejected here; they settle through
// BuyWithWager.
func (g *Game) Buy(playerID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil || g.pending.PlayerId != playerID {
		log.Warnf("rejected buy from player %d: no matching pending offer", playerID)
		return errors.New("no pending offer")
	}
	card := g.pending.Card
	p := g.playerById(playerID)
	if card.Type == models.CategoryRisk && card.RollTarget > 0 {
		return errors.New("this card is resolved by a wager")
	}

	price, ok := g.finalPrice(p, card)
	if !ok {
		// per-workplace card with no manufacturing: purchase blocked
		g.pending = nil
		return nil
	}
	if price > 0 && p.Cash < price {
		return errors.New("you cannot afford this card")
	}

	owned := OwnedCard{Card: card, ActualPurchasePrice: price}
	if card.Type == models.CategoryRisk && card.LapsToSell > 0 {
		owned.LapsRemaining = card.LapsToSell
		owned.AcquiredOnLap = p.LapCount
	}
	p.Cards = append(p.Cards, owned)
	p.adjustCash(-price)
	p.BingoDiscount = 0
	p.JustPurchasedId = card.Id
	g.pending = nil

	reason := "Card Purchase"
	if card.PerWorkplace {
		reason = "Workplace Leisure"
	}
	g.appendChange(playerID, -price, reason)
	return nil
}

// WagerResult reports a dice-vs-threshold wager purchase.
type WagerResult struct {
	Dice  [2]int `json:"dice"`
	Total int    `json:"total"`
	Won   bool   `json:"won"`
	Stake int    `json:"stake"`
}

// BuyWithWager resolves a Risk card carrying a roll target: the player stakes
// at least the catalog price, rolls two dice and wins double the stake on
// meeting the target. The card itself never enters the inventory.
func (g *Game) BuyWithWager(playerID int, stake int) (WagerResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil || g.pending.PlayerId != playerID {
		return WagerResult{}, errors.New("no pending offer")
	}
	card := g.pending.Card
	if card.Type != models.CategoryRisk || card.RollTarget == 0 {
		return WagerResult{}, errors.New("this card is not a wager")
	}
	p := g.playerById(playerID)
	if stake < card.Price || stake > p.Cash {
		log.Warnf("rejected wager of %d from player %d", stake, playerID)
		return WagerResult{}, errors.New("invalid wager amount")
	}

	d1, d2 := g.rollTwo()
	total := d1 + d2
	won := total >= card.RollTarget
	if won {
		p.adjustCash(stake)
		g.appendChange(playerID, stake, fmt.Sprintf("Risk Win! (Rolled %d)", total))
	} else {
		p.adjustCash(-stake)
		g.appendChange(playerID, -stake, fmt.Sprintf("Risk Loss (Rolled %d)", total))
	}
	g.pending = nil
	g.checkWin(p)
	return WagerResult{Dice: [2]int{d1, d2}, Total: total, Won: won, Stake: stake}, nil
}

// Pass dismisses the pending offer, returning the card to the pool.
// Non-trophy Leisure cards the player can pay for are mandatory and cannot
// be passed; unaffordable trophies always can.
func (g *Game) Pass(playerID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil || g.pending.PlayerId != playerID {
		log.Warnf("rejected pass from player %d: no matching pending offer", playerID)
		return errors.New("no pending offer")
	}
	card := g.pending.Card
	p := g.playerById(playerID)

	if card.Type == models.CategoryLeisure && !card.Trophy {
		if card.PerWorkplace {
			if p.manufacturingCount() > 0 {
				return errors.New("cannot pass a mandatory leisure card: purchase it or take a loan")
			}
		} else {
			price, _ := g.finalPrice(p, card)
			if price == 0 || p.Cash >= price {
				return errors.New("cannot pass a mandatory leisure card: purchase it or take a loan")
			}
		}
	}
	g.pending = nil
	return nil
}

// Sell liquidates an owned card. Leisure cards sell only on market tiles at
// the stored purchase price; other cards take the caller's explicit price
// when given, the market markup on a market tile, otherwise the catalog
// resale with event boosts and the player's chance multiplier stacked on
// top. A forced-sale mode overrides everything for its player.
func (g *Game) Sell(playerID int, cardID string, explicitPrice int, onMarket bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.playerById(playerID)
	if p == nil {
		return errors.New("unknown player")
	}
	card, ok := p.ownedCard(cardID)
	if !ok {
		log.Warnf("rejected sale: player %d does not own card %s", playerID, cardID)
		return errors.New("card not owned")
	}
	if p.JustPurchasedId == cardID {
		log.Warnf("rejected sale of %s: purchased this turn", cardID)
		return errors.New("cannot sell a card purchased this turn")
	}

	if g.forcedSale != nil && g.forcedSale.PlayerId == playerID {
		g.resolveForcedSale(p, card)
		return nil
	}

	var amount int
	reason := "Card Sale"
	switch {
	case card.Type == models.CategoryLeisure:
		if !onMarket {
			return errors.New("leisure cards can only be sold on a market tile")
		}
		amount = card.ActualPurchasePrice
		reason = "Market Sale"
	case explicitPrice > 0:
		amount = explicitPrice
		if onMarket {
			reason = "Market Sale"
		}
	case onMarket:
		amount = card.ActualPurchasePrice * MarketResalePercent / 100
		reason = "Market Sale"
	default:
		amount = card.Sale
		if ev := g.activeEventByEffect(models.EffectStockBoost); ev != nil &&
			card.Type == models.CategoryBets && card.Name == "Stock" {
			amount = int(float64(amount) * ev.Multiplier)
		}
		if ev := g.activeEventByEffect(models.EffectRawBoost); ev != nil &&
			card.Type == models.CategoryBets && card.Name == "Raw Materials" {
			amount = int(float64(amount) * ev.Multiplier)
		}
		if p.Chance != nil && (p.Chance.Affected == card.Name || p.Chance.Affected == string(card.Type)) {
			amount = int(float64(amount) * (1 + p.Chance.Multiplier))
		}
		if card.Trophy {
			reason = "Trophy Sale"
		}
	}

	p.removeCard(cardID)
	p.adjustCash(amount)
	g.appendChange(playerID, amount, reason)
	g.checkWin(p)
	return nil
}

// resolveForcedSale sells one card under the active forced-sale mode: the
// price is a fixed fraction of the purchase price, and any required amount
// is deducted from the proceeds before the mode clears.
func (g *Game) resolveForcedSale(p *Player, card OwnedCard) {
	fs := g.forcedSale
	amount := roundUp100(int(float64(card.ActualPurchasePrice) * fs.Fraction))

	p.removeCard(card.Id)
	p.adjustCash(amount)
	g.appendChange(p.Id, amount, fs.Reason)

	if fs.Required > 0 {
		deduct := min(amount, fs.Required)
		p.adjustCash(-deduct)
		g.appendChange(p.Id, -deduct, "Loan Payment from Sale")
		fs.Required -= deduct
		if fs.Required <= 0 {
			g.forcedSale = nil
		}
	} else {
		g.forcedSale = nil
	}
	g.checkWin(p)
}

// ActivateChance consumes an owned multiplier card and installs it as the
// player's single active sale bonus until the end of their turn.
func (g *Game) ActivateChance(playerID int, cardID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.playerById(playerID)
	if p == nil {
		return errors.New("unknown player")
	}
	card, ok := p.ownedCard(cardID)
	if !ok {
		return errors.New("card not owned")
	}
	if card.Multiplier <= 0 {
		return errors.New("card has no multiplier to activate")
	}
	p.removeCard(cardID)
	p.Chance = &ChanceMultiplier{
		CardId:     card.Id,
		CardName:   card.Name,
		Affected:   card.Affected,
		Multiplier: card.Multiplier,
	}
	return nil
}
