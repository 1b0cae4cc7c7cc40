package services

import (
	"fmt"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/lifeboard/internal/models"
)

type FinanceRepository interface {
	ListByUser(userID uint, accountType string) ([]models.FinancialAccount, error)
	FindByID(accountID uint) (models.FinancialAccount, bool, error)
	Create(account *models.FinancialAccount) error
	Save(account *models.FinancialAccount) error
	Delete(accountID uint) error
}

type FinancialAccountChanges struct {
	AccountType        *string          `json:"account_type"`
	Name               *string          `json:"name"`
	Institution        *string          `json:"institution"`
	AccountNumberLast4 *string          `json:"account_number_last4"`
	CurrentBalance     *decimal.Decimal `json:"current_balance"`
	InterestRate       *float64         `json:"interest_rate"`
	DueDate            *models.Date     `json:"due_date"`
	Notes              *string          `json:"notes"`
}

var financialAccountTypes = []string{
	models.AccountTypeBanking,
	models.AccountTypeInvestment,
	models.AccountTypeAsset,
	models.AccountTypeCreditCard,
	models.AccountTypeLoan,
	models.AccountTypeLiability,
}

type FinanceService struct {
	accounts FinanceRepository
}

func NewFinanceService(accounts FinanceRepository) *FinanceService {
	return &FinanceService{accounts: accounts}
}

func (service *FinanceService) List(userID uint, accountType string) ([]models.FinancialAccount, error) {
	if accountType != "" {
		if err := oneOf("account_type", accountType, financialAccountTypes...); err != nil {
			return nil, err
		}
	}
	return service.accounts.ListByUser(userID, accountType)
}

func (service *FinanceService) Get(userID uint, accountID uint) (models.FinancialAccount, error) {
	account, found, err := service.accounts.FindByID(accountID)
	return authorize(account, found, err, userID)
}

func (service *FinanceService) Create(userID uint, changes FinancialAccountChanges) (models.FinancialAccount, error) {
	if changes.AccountType == nil {
		return models.FinancialAccount{}, fmt.Errorf("%w: account_type is required", ErrInvalidInput)
	}
	if changes.Name == nil {
		return models.FinancialAccount{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	account := models.FinancialAccount{UserID: userID}
	if err := service.apply(&account, changes); err != nil {
		return models.FinancialAccount{}, err
	}
	if err := service.accounts.Create(&account); err != nil {
		return models.FinancialAccount{}, err
	}
	return account, nil
}

func (service *FinanceService) Update(userID uint, accountID uint, changes FinancialAccountChanges) (models.FinancialAccount, error) {
	account, err := service.Get(userID, accountID)
	if err != nil {
		return models.FinancialAccount{}, err
	}
	if err := service.apply(&account, changes); err != nil {
		return models.FinancialAccount{}, err
	}
	if err := service.accounts.Save(&account); err != nil {
		return models.FinancialAccount{}, err
	}
	return account, nil
}

func (service *FinanceService) Delete(userID uint, accountID uint) error {
	if _, err := service.Get(userID, accountID); err != nil {
		return err
	}
	return service.accounts.Delete(accountID)
}

// Summary aggregates every account of the user. Accounts without a recorded
// balance count as zero.
func (service *FinanceService) Summary(userID uint) (FinancialSummary, error) {
	accounts, err := service.accounts.ListByUser(userID, "")
	if err != nil {
		return FinancialSummary{}, err
	}
	for index := range accounts {
		if !accounts[index].CurrentBalance.Valid {
			accounts[index].CurrentBalance = decimal.NewNullDecimal(decimal.Zero)
		}
	}
	return SummarizeAccounts(accounts)
}

func (service *FinanceService) apply(account *models.FinancialAccount, changes FinancialAccountChanges) error {
	if changes.AccountType != nil {
		if err := oneOf("account_type", *changes.AccountType, financialAccountTypes...); err != nil {
			return err
		}
		account.AccountType = *changes.AccountType
	}
	if changes.Name != nil {
		name, err := requiredText("name", *changes.Name)
		if err != nil {
			return err
		}
		account.Name = name
	}
	applyText(&account.Institution, changes.Institution)
	if changes.AccountNumberLast4 != nil {
		last4 := *changes.AccountNumberLast4
		if !isLast4(last4) {
			return fmt.Errorf("%w: account_number_last4 must be at most 4 digits", ErrInvalidInput)
		}
		account.AccountNumberLast4 = last4
	}
	if changes.CurrentBalance != nil {
		account.CurrentBalance = decimal.NewNullDecimal(*changes.CurrentBalance)
	}
	if changes.InterestRate != nil {
		if *changes.InterestRate < 0 {
			return fmt.Errorf("%w: interest_rate must not be negative", ErrInvalidInput)
		}
		account.InterestRate = changes.InterestRate
	}
	if changes.DueDate != nil {
		account.DueDate = changes.DueDate
	}
	applyText(&account.Notes, changes.Notes)
	return nil
}

func isLast4(value string) bool {
	if len(value) > 4 {
		return false
	}
	for _, char := range value {
		if !unicode.IsDigit(char) {
			return false
		}
	}
	return true
}
