package engine

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
)

// BingoOutcome identifies the band a bingo roll landed in.
type BingoOutcome string

const (
	BingoForcedSale BingoOutcome = "forcedSale" // 2-3: sell one card at 50%
	BingoCasino     BingoOutcome = "casino"     // 4-5: forced casino wager
	BingoDuel       BingoOutcome = "duel"       // 6-7: 2:1 dice duel
	BingoDiscount   BingoOutcome = "discount"   // 8-9: one-shot 50% purchase discount
	BingoCollect    BingoOutcome = "collect"    // 10-11: 10% of everyone's cash
	BingoDoubleSale BingoOutcome = "doubleSale" // 12: sell one card at 200%
)

type BingoResult struct {
	Roll    int          `json:"roll"`
	Outcome BingoOutcome `json:"outcome"`
}

// BingoRoll resolves the open bingo decision with a two-die roll and applies
// the outcome band. Sale bands with nothing to sell and duels with no
// opponent close silently.
func (g *Game) BingoRoll(playerID int) (BingoResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.bingoPlayer != playerID {
		return BingoResult{}, errors.New("no bingo decision open")
	}
	p := g.playerById(playerID)
	d1, d2 := g.rollTwo()
	total := d1 + d2
	g.bingoPlayer = 0

	var outcome BingoOutcome
	switch {
	case total <= 3:
		outcome = BingoForcedSale
		if len(p.Cards) > 0 {
			g.forcedSale = &ForcedSale{PlayerId: playerID, Reason: "Bingo Forced Sale (50%)", Fraction: 0.5}
		}
	case total <= 5:
		outcome = BingoCasino
		g.casinoPlayer = playerID
	case total <= 7:
		outcome = BingoDuel
		if len(g.players) > 1 {
			g.duelPlayer = playerID
		}
	case total <= 9:
		outcome = BingoDiscount
		p.BingoDiscount = BingoDiscountRate
		g.freePick = &FreePickState{PlayerId: playerID}
	case total <= 11:
		outcome = BingoCollect
		g.collectFromAll(p)
	default:
		outcome = BingoDoubleSale
		if len(p.Cards) > 0 {
			g.forcedSale = &ForcedSale{PlayerId: playerID, Reason: "Bingo Lucky Sale (200%)", Fraction: 2.0}
		}
	}
	return BingoResult{Roll: total, Outcome: outcome}, nil
}

// collectFromAll takes 10% of every other player's cash and credits the sum.
func (g *Game) collectFromAll(p *Player) {
	collected := 0
	for _, other := range g.players {
		if other.Id == p.Id {
			continue
		}
		amount := roundUp100(other.Cash * BingoCollectPercent / 100)
		other.adjustCash(-amount)
		g.appendChange(other.Id, -amount, fmt.Sprintf("Bingo Tax (%d%%)", BingoCollectPercent))
		collected += amount
	}
	p.adjustCash(collected)
	g.appendChange(p.Id, collected, "Bingo Collection")
	g.checkWin(p)
}

type CasinoResult struct {
	Dice  [2]int `json:"dice"`
	Total int    `json:"total"`
	Won   bool   `json:"won"`
	Stake int    `json:"stake"`
}

// CasinoBet resolves the open casino decision: stake at least the table
// minimum, roll two dice, win double the stake on meeting the target.
func (g *Game) CasinoBet(playerID int, stake int) (CasinoResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.casinoPlayer != playerID {
		return CasinoResult{}, errors.New("no casino decision open")
	}
	p := g.playerById(playerID)
	if stake < CasinoMinStake || stake > p.Cash {
		log.Warnf("rejected casino stake of %d from player %d", stake, playerID)
		return CasinoResult{}, errors.New("invalid stake")
	}

	d1, d2 := g.rollTwo()
	total := d1 + d2
	won := total >= CasinoTarget
	if won {
		p.adjustCash(stake)
		g.appendChange(playerID, stake, fmt.Sprintf("Casino Win! (Rolled %d)", total))
	} else {
		p.adjustCash(-stake)
		g.appendChange(playerID, -stake, fmt.Sprintf("Casino Loss (Rolled %d)", total))
	}
	g.casinoPlayer = 0
	g.checkWin(p)
	return CasinoResult{Dice: [2]int{d1, d2}, Total: total, Won: won, Stake: stake}, nil
}

type DuelResult struct {
	InitiatorRoll int  `json:"initiator_roll"`
	OpponentRoll  int  `json:"opponent_roll"`
	WinnerId      int  `json:"winner_id"`
	Payment       int  `json:"payment"`
	Tie           bool `json:"tie"`
}

// ResolveDuel settles the open duel: the initiator rolls two dice against the
// chosen opponent's one; the loser pays the absolute difference times the
// duel unit. Ties pay nothing.
func (g *Game) ResolveDuel(playerID, opponentID int) (DuelResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.duelPlayer != playerID {
		return DuelResult{}, errors.New("no duel decision open")
	}
	p := g.playerById(playerID)
	opponent := g.playerById(opponentID)
	if opponent == nil || opponent.Id == playerID {
		return DuelResult{}, errors.New("invalid duel opponent")
	}

	d1, d2 := g.rollTwo()
	initiatorRoll := d1 + d2
	opponentRoll := g.roller.Roll()
	g.duelPlayer = 0

	if initiatorRoll == opponentRoll {
		return DuelResult{InitiatorRoll: initiatorRoll, OpponentRoll: opponentRoll, Tie: true}, nil
	}

	diff := initiatorRoll - opponentRoll
	if diff < 0 {
		diff = -diff
	}
	payment := roundUp100(diff * DuelUnit)
	winner, loser := p, opponent
	winnerRoll, loserRoll := initiatorRoll, opponentRoll
	if opponentRoll > initiatorRoll {
		winner, loser = opponent, p
		winnerRoll, loserRoll = opponentRoll, initiatorRoll
	}
	loser.adjustCash(-payment)
	g.appendChange(loser.Id, -payment, fmt.Sprintf("Duel Lost: %d vs %d", loserRoll, winnerRoll))
	winner.adjustCash(payment)
	g.appendChange(winner.Id, payment, fmt.Sprintf("Duel Won: %d vs %d", winnerRoll, loserRoll))
	g.checkWin(winner)

	return DuelResult{
		InitiatorRoll: initiatorRoll,
		OpponentRoll:  opponentRoll,
		WinnerId:      winner.Id,
		Payment:       payment,
	}, nil
}

type EscapeResult struct {
	Dice    [2]int `json:"dice"`
	Total   int    `json:"total"`
	Escaped bool   `json:"escaped"`
}

// JailEscapeAttempt pays the escape cost and rolls against the escape target.
// Failure keeps the player jailed; the cost is spent either way.
func (g *Game) JailEscapeAttempt(playerID int) (EscapeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.currentPlayer()
	if g.state != StatePlaying || p == nil || p.Id != playerID {
		return EscapeResult{}, errors.New("not your turn")
	}
	if !p.Jail.InJail {
		return EscapeResult{}, errors.New("you are not in jail")
	}
	if p.Cash < JailEscapeCost {
		return EscapeResult{}, errors.New("you cannot afford an escape attempt")
	}

	p.adjustCash(-JailEscapeCost)
	d1, d2 := g.rollTwo()
	total := d1 + d2
	escaped := total >= JailEscapeTarget
	if escaped {
		p.Jail = JailStatus{}
		g.appendChange(playerID, -JailEscapeCost, "Jail Escape (Success)")
	} else {
		p.Jail.JustEntered = false
		g.appendChange(playerID, -JailEscapeCost, "Jail Escape (Failed)")
	}
	return EscapeResult{Dice: [2]int{d1, d2}, Total: total, Escaped: escaped}, nil
}

// JailWait spends one jailed turn: the skip counter drops, jail ends when it
// reaches zero, and the turn passes on.
func (g *Game) JailWait(playerID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.currentPlayer()
	if g.state != StatePlaying || p == nil || p.Id != playerID {
		return errors.New("not your turn")
	}
	if !p.Jail.InJail {
		return errors.New("you are not in jail")
	}
	p.Jail.TurnsRemaining--
	p.Jail.JustEntered = false
	if p.Jail.TurnsRemaining <= 0 {
		p.Jail = JailStatus{}
	}
	g.rotateLocked(p)
	return nil
}

// FreePickSelect chooses the draw pool for an open free-pick decision.
func (g *Game) FreePickSelect(playerID int, pool models.Category) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.freePick == nil || g.freePick.PlayerId != playerID {
		return errors.New("no free pick open")
	}
	if !pool.Known() {
		log.Warnf("rejected free pick of unknown pool %q", pool)
		return errors.New("unknown draw pool")
	}
	g.freePick.Pool = pool
	return nil
}

// FreePickExecute draws from the selected pool and opens a buy-or-pass
// decision, closing the free pick.
func (g *Game) FreePickExecute(playerID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.freePick == nil || g.freePick.PlayerId != playerID {
		return errors.New("no free pick open")
	}
	pool := g.freePick.Pool
	if pool == "" {
		return errors.New("no draw pool selected")
	}
	g.freePick = nil
	g.offerFromPool(pool, playerID)
	return nil
}

// FreePickExit abandons an open free-pick decision.
func (g *Game) FreePickExit(playerID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.freePick == nil || g.freePick.PlayerId != playerID {
		return errors.New("no free pick open")
	}
	g.freePick = nil
	return nil
}
