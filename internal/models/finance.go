package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeBanking    = "banking"
	AccountTypeInvestment = "investment"
	AccountTypeAsset      = "asset"
	AccountTypeCreditCard = "credit_card"
	AccountTypeLoan       = "loan"
	AccountTypeLiability  = "liability"
)

func init() {
	// Balances go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type FinancialAccount struct {
	ID                 uint                `gorm:"primaryKey" json:"id"`
	UserID             uint                `gorm:"not null;index" json:"-"`
	AccountType        string              `gorm:"not null;index" json:"account_type"`
	Name               string              `gorm:"not null" json:"name"`
	Institution        string              `json:"institution"`
	AccountNumberLast4 string              `json:"account_number_last4"`
	CurrentBalance     decimal.NullDecimal `gorm:"type:text" json:"current_balance"`
	InterestRate       *float64            `json:"interest_rate"`
	DueDate            *Date               `gorm:"type:date" json:"due_date"`
	Notes              string              `json:"notes"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func (account FinancialAccount) OwnerID() uint { return account.UserID }
