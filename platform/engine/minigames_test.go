package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm23046/Oligo-boardgame/app/models"
)

func TestBingoRequiresOpenDecision(t *testing.T) {
	g := newTestGame(t, 2, 1, 1)
	_, err := g.BingoRoll(1)
	assert.Error(t, err)
}

func TestBingoForcedSaleBand(t *testing.T) {
	g := newTestGame(t, 2, 1, 2)
	g.players[0].Cards = []OwnedCard{ownedFromCatalog(t, "prop_1")}
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoForcedSale, result.Outcome)
	require.NotNil(t, g.forcedSale)
	assert.Equal(t, 0.5, g.forcedSale.Fraction)
	assert.Zero(t, g.forcedSale.Required)
	assert.Zero(t, g.bingoPlayer)
}

func TestBingoForcedSaleSkippedWithoutCards(t *testing.T) {
	g := newTestGame(t, 2, 1, 1)
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoForcedSale, result.Outcome)
	assert.Nil(t, g.forcedSale, "nothing to sell means nothing blocks")
}

func TestBingoCasinoBand(t *testing.T) {
	g := newTestGame(t, 2, 2, 2)
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoCasino, result.Outcome)
	assert.Equal(t, 1, g.casinoPlayer)
}

func TestBingoDuelBand(t *testing.T) {
	g := newTestGame(t, 2, 3, 3)
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoDuel, result.Outcome)
	assert.Equal(t, 1, g.duelPlayer)
}

func TestBingoDiscountBand(t *testing.T) {
	g := newTestGame(t, 2, 4, 4)
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoDiscount, result.Outcome)
	assert.Equal(t, BingoDiscountRate, g.players[0].BingoDiscount)
	require.NotNil(t, g.freePick, "the discount comes with a free pick")
	assert.Equal(t, 1, g.freePick.PlayerId)
}

func TestBingoCollectBand(t *testing.T) {
	g := newTestGame(t, 3, 5, 5)
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoCollect, result.Outcome)
	assert.Equal(t, StartingCash+20000, g.players[0].Cash)
	assert.Equal(t, StartingCash-10000, g.players[1].Cash)
	assert.Equal(t, StartingCash-10000, g.players[2].Cash)
}

func TestBingoDoubleSaleBand(t *testing.T) {
	g := newTestGame(t, 2, 6, 6)
	g.players[0].Cards = []OwnedCard{ownedFromCatalog(t, "prop_1")}
	g.bingoPlayer = 1

	result, err := g.BingoRoll(1)
	require.NoError(t, err)

	assert.Equal(t, BingoDoubleSale, result.Outcome)
	require.NotNil(t, g.forcedSale)
	assert.Equal(t, 2.0, g.forcedSale.Fraction)
}

func TestCasinoBetWin(t *testing.T) {
	g := newTestGame(t, 2, 3, 3)
	g.casinoPlayer = 1

	result, err := g.CasinoBet(1, 2000)
	require.NoError(t, err)

	assert.True(t, result.Won)
	assert.Equal(t, StartingCash+2000, g.players[0].Cash)
	assert.Zero(t, g.casinoPlayer)
}

func TestCasinoBetLoss(t *testing.T) {
	g := newTestGame(t, 2, 1, 2)
	g.casinoPlayer = 1

	result, err := g.CasinoBet(1, 2000)
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Equal(t, StartingCash-2000, g.players[0].Cash)
}

func TestCasinoBetStakeBounds(t *testing.T) {
	g := newTestGame(t, 2, 3, 3)
	g.casinoPlayer = 1

	_, err := g.CasinoBet(1, CasinoMinStake-100)
	assert.Error(t, err, "below the table minimum")

	_, err = g.CasinoBet(1, StartingCash+100)
	assert.Error(t, err, "beyond available cash")

	_, err = g.CasinoBet(2, 2000)
	assert.Error(t, err, "the decision belongs to another player")
}

func TestDuelPaysDifference(t *testing.T) {
	g := newTestGame(t, 2, 3, 4, 2)
	g.duelPlayer = 1

	result, err := g.ResolveDuel(1, 2)
	require.NoError(t, err)

	// initiator rolls 7 on two dice, opponent rolls 2 on one
	assert.Equal(t, 7, result.InitiatorRoll)
	assert.Equal(t, 2, result.OpponentRoll)
	assert.Equal(t, 1, result.WinnerId)
	assert.Equal(t, 5000, result.Payment)
	assert.Equal(t, StartingCash+5000, g.players[0].Cash)
	assert.Equal(t, StartingCash-5000, g.players[1].Cash)
	assert.Zero(t, g.duelPlayer)
}

func TestDuelTiePaysNothing(t *testing.T) {
	g := newTestGame(t, 2, 1, 1, 2)
	g.duelPlayer = 1

	result, err := g.ResolveDuel(1, 2)
	require.NoError(t, err)

	assert.True(t, result.Tie)
	assert.Equal(t, StartingCash, g.players[0].Cash)
	assert.Equal(t, StartingCash, g.players[1].Cash)
}

func TestDuelOpponentMustBeAnotherPlayer(t *testing.T) {
	g := newTestGame(t, 2, 3, 4, 2)
	g.duelPlayer = 1

	_, err := g.ResolveDuel(1, 1)
	assert.Error(t, err)
	_, err = g.ResolveDuel(1, 99)
	assert.Error(t, err)
}

func TestJailEscapeSuccess(t *testing.T) {
	g := newTestGame(t, 2, 3, 4)
	p := g.players[0]
	p.Jail = JailStatus{InJail: true, TurnsRemaining: 3}

	result, err := g.JailEscapeAttempt(1)
	require.NoError(t, err)

	assert.True(t, result.Escaped)
	assert.False(t, p.Jail.InJail)
	assert.Equal(t, StartingCash-JailEscapeCost, p.Cash)
}

func TestJailEscapeFailureKeepsJailed(t *testing.T) {
	g := newTestGame(t, 2, 1, 2)
	p := g.players[0]
	p.Jail = JailStatus{InJail: true, TurnsRemaining: 3, JustEntered: true}

	result, err := g.JailEscapeAttempt(1)
	require.NoError(t, err)

	assert.False(t, result.Escaped)
	assert.True(t, p.Jail.InJail)
	assert.False(t, p.Jail.JustEntered)
	assert.Equal(t, StartingCash-JailEscapeCost, p.Cash, "the cost is spent either way")
}

func TestJailEscapeRequiresFunds(t *testing.T) {
	g := newTestGame(t, 2, 3, 4)
	p := g.players[0]
	p.Jail = JailStatus{InJail: true, TurnsRemaining: 3}
	p.Cash = JailEscapeCost - 100

	_, err := g.JailEscapeAttempt(1)
	assert.Error(t, err)
	assert.Equal(t, JailEscapeCost-100, p.Cash)
}

func TestJailWaitCountsDownAndRotates(t *testing.T) {
	g := newTestGame(t, 2, 2, 4)
	p := g.players[0]
	p.Jail = JailStatus{InJail: true, TurnsRemaining: 2}

	_, err := g.RollAndMove(1)
	assert.Error(t, err, "a jailed player cannot roll")

	require.NoError(t, g.JailWait(1))
	assert.Equal(t, 1, p.Jail.TurnsRemaining)
	assert.Equal(t, 2, g.currentPlayer().Id, "waiting passes the turn")

	// opponent plays through, then the last wait releases
	_, err = g.RollAndMove(2)
	require.NoError(t, err)
	require.NoError(t, g.EndTurn(2))
	require.NoError(t, g.JailWait(1))
	assert.False(t, p.Jail.InJail)
}

func TestFreePickFlow(t *testing.T) {
	g := newTestGame(t, 2)
	g.freePick = &FreePickState{PlayerId: 1}

	assert.Error(t, g.FreePickSelect(1, "Nonsense"))
	assert.Error(t, g.FreePickExecute(1), "no pool selected yet")
	assert.Error(t, g.FreePickSelect(2, models.CategoryProperty), "not this player's pick")

	require.NoError(t, g.FreePickSelect(1, models.CategoryProperty))
	require.NoError(t, g.FreePickExecute(1))

	assert.Nil(t, g.freePick)
	require.NotNil(t, g.pending)
	assert.Equal(t, models.CategoryProperty, g.pending.Card.Type)
}

func TestFreePickExit(t *testing.T) {
	g := newTestGame(t, 2)
	g.freePick = &FreePickState{PlayerId: 1}

	require.NoError(t, g.FreePickExit(1))
	assert.Nil(t, g.freePick)
	assert.Error(t, g.FreePickExit(1))
}
