package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm23046/Oligo-boardgame/platform/board"
)

func TestEveryPlayerStartsWithTheMandatoryLoan(t *testing.T) {
	g := newTestGame(t, 2)

	for _, p := range g.players {
		require.Len(t, p.Loans, 1)
		loan := p.Loans[0]
		assert.Equal(t, board.StartingLoan().Borrowed, loan.Borrowed)
		assert.Equal(t, board.StartingLoan().TotalRepaid, loan.Remaining)
		assert.Equal(t, board.StartingLoan().Laps, loan.LapsRemaining)
	}
}

func TestTakeLoanCreditsImmediately(t *testing.T) {
	g := newTestGame(t, 2)

	require.NoError(t, g.TakeLoan(1, 5000))

	p := g.players[0]
	assert.Equal(t, StartingCash+5000, p.Cash)
	require.Len(t, p.Loans, 2)
	loan := p.Loans[1]
	assert.Equal(t, 6000, loan.Remaining)
	assert.Equal(t, 6, loan.LapsRemaining)
	assert.Equal(t, 1000, loan.PerLap)
}

func TestTakeLoanRejectsOffTableAmounts(t *testing.T) {
	g := newTestGame(t, 2)

	assert.Error(t, g.TakeLoan(1, 7777))
	assert.Equal(t, StartingCash, g.players[0].Cash)
	assert.Len(t, g.players[0].Loans, 1)
}

func TestPayLoanRemovesWhenSettled(t *testing.T) {
	g := newTestGame(t, 2)
	require.NoError(t, g.TakeLoan(1, 1000)) // 4 laps at 300

	p := g.players[0]
	loanID := p.Loans[1].Id
	require.NoError(t, g.PayLoan(1, loanID, 4))

	assert.Len(t, p.Loans, 1, "the settled loan leaves the ledger")
	assert.Equal(t, StartingCash+1000-1200, p.Cash)
}

func TestPayLoanPartial(t *testing.T) {
	g := newTestGame(t, 2)
	require.NoError(t, g.TakeLoan(1, 5000)) // 6 laps at 1000

	p := g.players[0]
	loanID := p.Loans[1].Id
	require.NoError(t, g.PayLoan(1, loanID, 3))

	require.Len(t, p.Loans, 2)
	assert.Equal(t, 3000, p.Loans[1].Remaining)
	assert.Equal(t, 3, p.Loans[1].LapsRemaining)
}

func TestPayLoanGuards(t *testing.T) {
	g := newTestGame(t, 2)
	require.NoError(t, g.TakeLoan(2, 5000))
	loanID := g.players[1].Loans[1].Id

	assert.Error(t, g.PayLoan(2, loanID, 1), "only the active player pays")
	assert.Error(t, g.PayLoan(1, loanID, 0), "zero installments rejected")
	assert.Error(t, g.PayLoan(1, "nope", 1), "unknown loan rejected")

	g.players[0].Cash = 500
	require.NoError(t, g.TakeLoan(1, 1000))
	myLoan := g.players[0].Loans[1].Id
	assert.Error(t, g.PayLoan(1, myLoan, 24), "unaffordable payment rejected")
}

func TestAvailableLoansCappedDuringPendingPurchase(t *testing.T) {
	g := newTestGame(t, 2)

	assert.Len(t, g.AvailableLoans(1), len(board.LoanOptions), "no pending purchase means the full table")

	offerCard(t, g, 1, "prop_3") // price 50000, Property limit 70%

	options := g.AvailableLoans(1)
	for _, opt := range options {
		assert.LessOrEqual(t, opt.Borrowed, 35000)
	}
	assert.Len(t, options, 4)
	assert.Len(t, g.AvailableLoans(2), len(board.LoanOptions), "the cap binds only the offer's owner")
}

func TestBorrowingLimitFollowsModifier(t *testing.T) {
	g := newTestGame(t, 2)

	assert.Equal(t, 70000, g.BorrowingLimit("Property", 100000))
	assert.Equal(t, 50000, g.BorrowingLimit("Manufacturing", 100000))
	assert.Equal(t, 30000, g.BorrowingLimit("Bets", 100000))

	g.mu.Lock()
	g.advanceModifier()
	g.mu.Unlock()

	assert.Equal(t, 80000, g.BorrowingLimit("Property", 100000))
}
