package engine

// Fixed game constants. Amounts are whole dollars.
const (
	MinPlayers = 2
	MaxPlayers = 6

	StartingCash    = 100000
	WinningCash     = 1000000
	DoubleRollBonus = 500

	DiceSides = 6

	JailPenaltyPercent = 10
	JailTurnsToSkip    = 3
	JailEscapeCost     = 10000
	JailEscapeTarget   = 7

	TaxPercent       = 10
	IncomeTaxPercent = 30

	CasinoMinStake = 1000
	CasinoTarget   = 6
	DuelUnit       = 1000

	BingoCollectPercent = 10
	BingoDiscountRate   = 0.5

	MarketResalePercent = 110

	ShortageSaleFraction = 0.5
)
