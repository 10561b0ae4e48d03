package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

// handleTileLanding fires the landing tile's two independent effects: a
// draw-pool offer and a special action. Bankrupt players trigger nothing.
func (g *Game) handleTileLanding(p *Player) {
	if p.Bankrupt {
		return
	}
	tile := board.TileAt(p.Position)

	if tile.DrawPool != "" {
		g.offerFromPool(tile.DrawPool, p.Id)
	}

	switch tile.Action {
	case models.ActionNone, models.ActionMarket:
		// market tiles only change the sell context, nothing fires on landing
	case models.ActionFreePick:
		g.freePick = &FreePickState{PlayerId: p.Id}
	case models.ActionJail:
		g.enterJail(p)
	case models.ActionTax:
		g.collectTax(p)
	case models.ActionIncomeTax:
		g.collectIncomeTax(p)
	case models.ActionEvent:
		g.drawEvent()
	case models.ActionMafia:
		p.Mafia = true
	case models.ActionCycle:
		g.advanceModifier()
	case models.ActionBingo:
		g.bingoPlayer = p.Id
	}
}

// offerFromPool draws uniformly from a category pool, excluding cards owned
// by any player, and opens a buy-or-pass decision. An exhausted pool is a
// silent no-op.
func (g *Game) offerFromPool(category models.Category, playerID int) {
	if g.pending != nil {
		return
	}
	owned := make(map[string]bool)
	for _, p := range g.players {
		for _, c := range p.Cards {
			owned[c.Id] = true
		}
	}
	var available []models.Card
	for _, c := range board.Pool(category) {
		if !owned[c.Id] {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		log.Warnf("no %s cards left in the draw pool", category)
		return
	}
	card := available[g.rng.Intn(len(available))]
	g.pending = &PropertyOffer{Card: card, PlayerId: playerID}
}

// enterJail deducts the cash penalty and starts the skip counter. Landing
// while already jailed does nothing.
func (g *Game) enterJail(p *Player) {
	if p.Jail.InJail {
		return
	}
	penalty := roundUp100(p.Cash * JailPenaltyPercent / 100)
	p.adjustCash(-penalty)
	g.appendChange(p.Id, -penalty, "Jail Penalty (10%)")
	p.Jail = JailStatus{InJail: true, TurnsRemaining: JailTurnsToSkip, JustEntered: true}
}

// collectTax deducts 10% of the sum of actual purchase prices of owned cards.
func (g *Game) collectTax(p *Player) {
	tax := roundUp100(p.cardValueTotal() * TaxPercent / 100)
	if tax == 0 {
		return
	}
	p.adjustCash(-tax)
	g.appendChange(p.Id, -tax, "Tax (10% Card Value)")
}

// collectIncomeTax deducts 30% of total per-lap yield, mafia-halved first.
func (g *Game) collectIncomeTax(p *Player) {
	yield := p.perLapYield()
	reason := "Income Tax 30% of Total Lap Income"
	if p.Mafia {
		yield = yield / 2
		reason = "Income Tax 30% of Mafia-reduced Lap Income"
	}
	tax := yield * IncomeTaxPercent / 100
	if tax == 0 {
		return
	}
	p.adjustCash(-tax)
	g.appendChange(p.Id, -tax, reason)
}
