package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
)

type FinanceRepository struct {
	database *gorm.DB
}

func NewFinanceRepository(database *gorm.DB) *FinanceRepository {
	return &FinanceRepository{database: database}
}

func (repo *FinanceRepository) ListByUser(userID uint, accountType string) ([]models.FinancialAccount, error) {
	query := repo.database.Where("user_id = ?", userID)
	if accountType != "" {
		query = query.Where("account_type = ?", accountType)
	}

	accounts := make([]models.FinancialAccount, 0)
	if err := query.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (repo *FinanceRepository) FindByID(accountID uint) (models.FinancialAccount, bool, error) {
	account := models.FinancialAccount{}
	result := repo.database.Where("id = ?", accountID).Limit(1).Find(&account)
	if result.Error != nil {
		return models.FinancialAccount{}, false, result.Error
	}
	return account, result.RowsAffected > 0, nil
}

func (repo *FinanceRepository) Create(account *models.FinancialAccount) error {
	return repo.database.Create(account).Error
}

func (repo *FinanceRepository) Save(account *models.FinancialAccount) error {
	return repo.database.Save(account).Error
}

func (repo *FinanceRepository) Delete(accountID uint) error {
	return repo.database.Delete(&models.FinancialAccount{}, accountID).Error
}
