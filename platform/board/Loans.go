package board

import (
	"errors"

	"github.com/dm23046/Oligo-boardgame/app/models"
)

// LoanOptions is the fixed borrow table. Installments are set at grant time
// and never recomputed.
var LoanOptions = []models.LoanOption{
	{Borrowed: 100000, TotalRepaid: 120000, Laps: 24, PerLap: 5000},
	{Borrowed: 50000, TotalRepaid: 60000, Laps: 20, PerLap: 3000},
	{Borrowed: 20000, TotalRepaid: 22000, Laps: 11, PerLap: 2000},
	{Borrowed: 10000, TotalRepaid: 12000, Laps: 7, PerLap: 1500},
	{Borrowed: 5000, TotalRepaid: 6000, Laps: 6, PerLap: 1000},
	{Borrowed: 1000, TotalRepaid: 1200, Laps: 4, PerLap: 300},
}

// FindLoanOption returns the table row for an exact borrow amount.
func FindLoanOption(amount int) (models.LoanOption, error) {
	for _, option := range LoanOptions {
		if option.Borrowed == amount {
			return option, nil
		}
	}
	return models.LoanOption{}, errors.New("no loan option for amount")
}

// StartingLoan is the mandatory loan every player begins the game with.
func StartingLoan() models.LoanOption {
	return LoanOptions[0]
}
