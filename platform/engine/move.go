package engine

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

// RollResult reports one movement roll.
type RollResult struct {
	Dice         [2]int `json:"dice"`
	Total        int    `json:"total"`
	IsDouble     bool   `json:"is_double"`
	Position     int    `json:"position"`
	CrossedStart bool   `json:"crossed_start"`
}

// RollAndMove rolls for the active player, advances them, settles a lap
// crossing and fires the landing tile. The whole chain completes before the
// call returns; the returned position is normalized into the cycle.
func (g *Game) RollAndMove(playerID int) (RollResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.currentPlayer()
	if g.state != StatePlaying || p == nil || p.Id != playerID {
		return RollResult{}, errors.New("not your turn")
	}
	if p.HasMoved {
		return RollResult{}, errors.New("you have already rolled the dice")
	}
	if p.Jail.InJail {
		return RollResult{}, errors.New("you are in jail")
	}
	if g.blockedByDecision(playerID) {
		return RollResult{}, errors.New("resolve the pending decision first")
	}

	d1, d2 := g.rollTwo()
	steps := d1 + d2
	if d1 == d2 {
		p.adjustCash(DoubleRollBonus)
		g.appendChange(p.Id, DoubleRollBonus, "Double Roll Bonus")
	}

	p.HasMoved = true
	p.JustPurchasedId = ""
	oldPos := p.Position
	p.Position += steps
	crossed := crossedStart(oldPos, p.Position)

	if !p.Bankrupt {
		if crossed {
			g.settleLap(p)
		}
		if !p.Bankrupt {
			g.handleTileLanding(p)
		}
	}
	g.checkWin(p)

	return RollResult{
		Dice:         [2]int{d1, d2},
		Total:        steps,
		IsDouble:     d1 == d2,
		Position:     board.Normalize(p.Position),
		CrossedStart: crossed,
	}, nil
}

// crossedStart detects any wraparound past the start tile between two raw
// (unbounded) positions.
func crossedStart(oldPos, newPos int) bool {
	oldN := board.Normalize(oldPos)
	newN := board.Normalize(newPos)
	if newN < oldN {
		return true
	}
	if newN == 0 && oldN != 0 {
		return true
	}
	return oldPos < board.CycleLength() && newPos >= board.CycleLength()
}

// settleLap runs the fixed lap-crossing sequence: perishables expire, yield is
// credited (halved under mafia), then loans amortize with the bailout and
// forced-sale fallbacks. Order matters; each step changes the funds the next
// one sees.
func (g *Game) settleLap(p *Player) {
	p.LapCount++

	kept := p.Cards[:0]
	for _, c := range p.Cards {
		if c.Type == models.CategoryRisk && c.LapsToSell > 0 {
			c.LapsRemaining--
			if c.LapsRemaining <= 0 {
				log.Infof("%s expired and was removed from %s", c.Name, p.Name)
				continue
			}
		}
		kept = append(kept, c)
	}
	p.Cards = kept

	income := p.perLapYield()
	reason := "Lap income"
	if p.Mafia && income > 0 {
		income = income / 2
		reason = "Lap income 50% less due to Mafia"
		p.ClearMafia = true
	}
	if income > 0 {
		p.adjustCash(income)
		g.appendChange(p.Id, income, reason)
	}

	g.amortizeLoans(p)
}

// amortizeLoans pays one installment per active loan, drawing on the active
// modifier's bailout ceiling when cash falls short. A residual shortage
// forces a sale, or bankrupts a player with nothing left to sell.
func (g *Game) amortizeLoans(p *Player) {
	required := 0
	for _, l := range p.Loans {
		if l.LapsRemaining > 0 {
			required += l.PerLap
		}
	}
	if required == 0 {
		return
	}

	bailout := 0
	residual := 0
	if p.Cash < required {
		shortage := required - p.Cash
		ceiling := g.modifier().Bailout
		if ceiling >= shortage {
			bailout = shortage
		} else {
			bailout = ceiling
			residual = shortage - ceiling
		}
	}

	remFunds := min(p.Cash, required)
	remBailout := bailout
	paidFromCash := 0
	var remaining []*Loan
	for _, l := range p.Loans {
		if l.LapsRemaining <= 0 {
			continue
		}
		fromFunds := min(l.PerLap, remFunds)
		remFunds -= fromFunds
		fromBailout := min(l.PerLap-fromFunds, remBailout)
		remBailout -= fromBailout

		paidFromCash += fromFunds
		l.Remaining -= fromFunds + fromBailout
		l.LapsRemaining--
		if l.Remaining > 0 && l.LapsRemaining > 0 {
			remaining = append(remaining, l)
		}
	}
	p.Loans = remaining

	if paidFromCash > 0 {
		p.adjustCash(-paidFromCash)
		g.appendChange(p.Id, -paidFromCash, "Loan Payment")
	}
	if bailout > 0 {
		// the bailout is a subsidy, not cash: it offsets the shortfall only
		g.appendChange(p.Id, -bailout, "Bailout (Loan Payment)")
	}

	if residual > 0 {
		if len(p.Cards) > 0 {
			g.forcedSale = &ForcedSale{
				PlayerId: p.Id,
				Reason:   "Must sell cards to cover loan payment shortage",
				Fraction: ShortageSaleFraction,
				Required: residual,
			}
		} else {
			g.bankrupt(p)
		}
	}
}

// bankrupt resets the player to the fixed terminal ledger state.
func (g *Game) bankrupt(p *Player) {
	log.Warnf("%s has nothing left to sell, resetting to bankruptcy state", p.Name)
	g.appendChange(p.Id, StartingCash-p.Cash, "Bankruptcy Reset")
	g.closeDecisionsFor(p.Id)
	p.resetBankrupt()
}
