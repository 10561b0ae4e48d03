package engine

import (
	"errors"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

// Loan is one amortizing grant. Remaining and LapsRemaining reach zero
// together; the loan is removed from the ledger as soon as either does.
type Loan struct {
	Id            string
	Borrowed      int
	TotalOwed     int
	Remaining     int
	LapsRemaining int
	PerLap        int
}

// TakeLoan grants a loan from the fixed borrow table and credits the cash
// immediately. Amounts not in the table are rejected with no state change.
func (g *Game) TakeLoan(playerID int, amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.playerById(playerID)
	if p == nil {
		return errors.New("unknown player")
	}
	opt, err := board.FindLoanOption(amount)
	if err != nil {
		log.Warnf("rejected loan of %d for player %d: not in loan table", amount, playerID)
		return err
	}
	p.Loans = append(p.Loans, &Loan{
		Id:            uuid.NewV4().String(),
		Borrowed:      opt.Borrowed,
		TotalOwed:     opt.TotalRepaid,
		Remaining:     opt.TotalRepaid,
		LapsRemaining: opt.Laps,
		PerLap:        opt.PerLap,
	})
	p.adjustCash(opt.Borrowed)
	g.appendChange(playerID, opt.Borrowed, "Loan")
	return nil
}

// PayLoan pays extra installments on one loan at once. Only the active player
// may pay, the amount is debited in full, and the loan is removed when either
// its balance or its lap counter is exhausted.
func (g *Game) PayLoan(playerID int, loanID string, installments int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.currentPlayer()
	if p == nil || p.Id != playerID {
		log.Warnf("rejected manual payment: player %d is not the active player", playerID)
		return errors.New("only the active player can pay loans")
	}
	if installments < 1 {
		log.Warnf("rejected manual payment of %d installments", installments)
		return errors.New("installments must be at least 1")
	}
	var loan *Loan
	for _, l := range p.Loans {
		if l.Id == loanID {
			loan = l
			break
		}
	}
	if loan == nil {
		return errors.New("unknown loan")
	}
	total := loan.PerLap * installments
	if total > p.Cash {
		log.Warnf("rejected manual payment of %d: player %d cannot afford it", total, playerID)
		return errors.New("cannot afford payment")
	}

	p.adjustCash(-total)
	loan.Remaining -= total
	loan.LapsRemaining -= installments
	g.appendChange(playerID, -total, "Manual Payment")

	if loan.Remaining <= 0 || loan.LapsRemaining <= 0 {
		for i, l := range p.Loans {
			if l.Id == loanID {
				p.Loans = append(p.Loans[:i], p.Loans[i+1:]...)
				break
			}
		}
	}
	return nil
}

// AvailableLoans lists the borrow tiers the player may take right now. While
// a purchase offer is pending, the active modifier caps the borrow amount by
// the offered card's category and price; otherwise the whole table applies.
func (g *Game) AvailableLoans(playerID int) []models.LoanOption {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil || g.pending.PlayerId != playerID {
		return board.LoanOptions
	}
	card := g.pending.Card
	limit := card.Price * g.modifier().Limits.For(card.Type) / 100
	var options []models.LoanOption
	for _, opt := range board.LoanOptions {
		if opt.Borrowed <= limit {
			options = append(options, opt)
		}
	}
	return options
}
