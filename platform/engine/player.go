package engine

import (
	"fmt"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

// OwnedCard is the value snapshot a catalog card becomes on purchase. All
// later tax, resale and bankruptcy math uses ActualPurchasePrice, not the
// catalog price.
type OwnedCard struct {
	models.Card
	ActualPurchasePrice int
	LapsRemaining       int // perishable countdown; 0 when not perishable
	AcquiredOnLap       int
}

type JailStatus struct {
	InJail         bool
	TurnsRemaining int
	JustEntered    bool
}

// ChanceMultiplier is the single activatable sale bonus a player may hold.
// It is cleared at the end of the owning player's turn.
type ChanceMultiplier struct {
	CardId     string
	CardName   string
	Affected   string
	Multiplier float64
}

// Player is the mutable ledger entry for one seat. Position grows without
// bound and is normalized modulo the cycle length for board lookups.
type Player struct {
	Id              int
	Name            string
	ColorIndex      int
	Position        int
	Cash            int
	Cards           []OwnedCard
	Loans           []*Loan
	LapCount        int
	Jail            JailStatus
	Mafia           bool
	ClearMafia      bool
	Chance          *ChanceMultiplier
	BingoDiscount   float64
	Bankrupt        bool
	HasMoved        bool
	JustPurchasedId string
	Won             bool
}

func newPlayer(id int) *Player {
	opt := board.StartingLoan()
	return &Player{
		Id:         id,
		Name:       fmt.Sprintf("Player %d", id),
		ColorIndex: id - 1,
		Cash:       StartingCash,
		Loans: []*Loan{{
			Id:            fmt.Sprintf("starting_loan_%d", id),
			Borrowed:      opt.Borrowed,
			TotalOwed:     opt.TotalRepaid,
			Remaining:     opt.TotalRepaid,
			LapsRemaining: opt.Laps,
			PerLap:        opt.PerLap,
		}},
	}
}

func roundUp100(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 99) / 100 * 100
}

// adjustCash applies a delta, rounding the resulting balance up to the
// nearest 100 and flooring it at zero.
func (p *Player) adjustCash(amount int) {
	p.Cash = roundUp100(p.Cash + amount)
}

func (p *Player) ownedCard(id string) (OwnedCard, bool) {
	for _, c := range p.Cards {
		if c.Id == id {
			return c, true
		}
	}
	return OwnedCard{}, false
}

func (p *Player) removeCard(id string) bool {
	for i, c := range p.Cards {
		if c.Id == id {
			p.Cards = append(p.Cards[:i], p.Cards[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) manufacturingCount() int {
	count := 0
	for _, c := range p.Cards {
		if c.Type == models.CategoryManufacturing {
			count++
		}
	}
	return count
}

// perLapYield sums the per-lap income of every owned card, before any mafia
// reduction.
func (p *Player) perLapYield() int {
	total := 0
	for _, c := range p.Cards {
		total += c.PerLap
	}
	return total
}

// cardValueTotal sums the prices actually paid for owned cards.
func (p *Player) cardValueTotal() int {
	total := 0
	for _, c := range p.Cards {
		total += c.ActualPurchasePrice
	}
	return total
}

// resetBankrupt converts the player to the fixed terminal reset state.
func (p *Player) resetBankrupt() {
	p.Cash = StartingCash
	p.Cards = nil
	p.Loans = nil
	p.Position = 0
	p.LapCount = 0
	p.Jail = JailStatus{}
	p.Mafia = false
	p.ClearMafia = false
	p.Chance = nil
	p.BingoDiscount = 0
	p.JustPurchasedId = ""
	p.Bankrupt = true
}
