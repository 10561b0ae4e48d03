package models

// ActionKind tags the special behaviour of a board tile. Like Category it is
// a closed set; dispatch must handle every constant.
type ActionKind string

const (
	ActionNone      ActionKind = ""
	ActionMarket    ActionKind = "market"
	ActionFreePick  ActionKind = "freePick"
	ActionJail      ActionKind = "jail"
	ActionTax       ActionKind = "tax"
	ActionIncomeTax ActionKind = "incomeTax"
	ActionEvent     ActionKind = "event"
	ActionMafia     ActionKind = "mafia"
	ActionCycle     ActionKind = "cycle"
	ActionBingo     ActionKind = "bingo"
)

// Tile is one board cell. A tile may carry a draw pool, an action, or neither
// (the start tile); it never carries both.
type Tile struct {
	Id       int        `json:"id"`
	Label    string     `json:"label"`
	DrawPool Category   `json:"draw_pool,omitempty"`
	Action   ActionKind `json:"action,omitempty"`
}

// EventEffect identifies what an economic event does to prices.
type EventEffect string

const (
	EffectStockBoost       EventEffect = "stockBoost"
	EffectRawBoost         EventEffect = "rawBoost"
	EffectPropertyDiscount EventEffect = "propertyDiscount"
	EffectPropertyBoost    EventEffect = "propertyBoost"
)

// Event is one revealable economic event attached to a modifier.
type Event struct {
	Id          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Effect      EventEffect `json:"effect"`
	Multiplier  float64     `json:"multiplier,omitempty"`
	Discount    float64     `json:"discount,omitempty"`
}

// BorrowLimits holds the per-category borrowing percentages of a modifier.
// Bets covers the Bets, Risk and Chance pools.
type BorrowLimits struct {
	Property      int `json:"property"`
	Manufacturing int `json:"manufacturing"`
	Bets          int `json:"bets"`
}

func (b BorrowLimits) For(c Category) int {
	switch c {
	case CategoryProperty:
		return b.Property
	case CategoryManufacturing:
		return b.Manufacturing
	case CategoryBets, CategoryRisk, CategoryChance, CategoryLeisure:
		return b.Bets
	}
	return 0
}

// Modifier bundles borrowing limits, a bailout ceiling and an ordered event
// list. The modifier table is consulted cyclically.
type Modifier struct {
	Id      string       `json:"id"`
	Name    string       `json:"name"`
	Limits  BorrowLimits `json:"limits"`
	Bailout int          `json:"bailout"`
	Events  []Event      `json:"events"`
}
