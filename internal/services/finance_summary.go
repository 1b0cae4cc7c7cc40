package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/lifeboard/internal/models"
)

var ErrInvalidAccount = errors.New("invalid financial account")

type FinancialSummary struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
	AccountCount     int             `json:"account_count"`
}

// SummarizeAccounts totals assets and liabilities across accounts.
//
// Loans and liabilities always count as owed. A credit card with a positive
// balance is owed; zero or negative is an overpayment and counts as an
// asset. Every other type counts a positive balance as an asset and a
// non-positive one as owed. Totals are rounded to cents.
func SummarizeAccounts(accounts []models.FinancialAccount) (FinancialSummary, error) {
	assets := decimal.Zero
	liabilities := decimal.Zero

	for _, account := range accounts {
		if !account.CurrentBalance.Valid {
			return FinancialSummary{}, fmt.Errorf("%w: account %d has no balance", ErrInvalidAccount, account.ID)
		}
		balance := account.CurrentBalance.Decimal

		switch account.AccountType {
		case models.AccountTypeLoan, models.AccountTypeLiability:
			liabilities = liabilities.Add(balance.Abs())
		case models.AccountTypeCreditCard:
			if balance.IsPositive() {
				liabilities = liabilities.Add(balance)
			} else {
				assets = assets.Add(balance.Abs())
			}
		default:
			if balance.IsPositive() {
				assets = assets.Add(balance)
			} else {
				liabilities = liabilities.Add(balance.Abs())
			}
		}
	}

	return FinancialSummary{
		TotalAssets:      assets.Round(2),
		TotalLiabilities: liabilities.Round(2),
		NetWorth:         assets.Sub(liabilities).Round(2),
		AccountCount:     len(accounts),
	}, nil
}
