package models

// Category tags every drawable card and every draw-pool tile. The set is
// closed; dispatch on it must handle every constant.
type Category string

const (
	CategoryProperty      Category = "Property"
	CategoryManufacturing Category = "Manufacturing"
	CategoryBets          Category = "Bets"
	CategoryLeisure       Category = "Leisure"
	CategoryRisk          Category = "Risk"
	CategoryChance        Category = "Chance"
)

func (c Category) Known() bool {
	switch c {
	case CategoryProperty, CategoryManufacturing, CategoryBets, CategoryLeisure, CategoryRisk, CategoryChance:
		return true
	}
	return false
}

// Card is an immutable catalog entry. Owned copies snapshot the price actually
// paid; the catalog itself is never mutated.
type Card struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Type         Category `json:"type"`
	Price        int      `json:"price"`
	Sale         int      `json:"sale"`
	PerLap       int      `json:"per_lap"`
	Trophy       bool     `json:"trophy"`
	PerWorkplace bool     `json:"per_workplace"`
	LapsToSell   int      `json:"laps_to_sell"`
	RollTarget   int      `json:"roll"`
	Multiplier   float64  `json:"multiplier"`
	Affected     string   `json:"affected"`
	Description  string   `json:"description"`
}

// LoanOption is one row of the fixed borrow table.
type LoanOption struct {
	Borrowed    int `json:"borrowed"`
	TotalRepaid int `json:"total_repaid"`
	Laps        int `json:"laps"`
	PerLap      int `json:"per_lap"`
}
