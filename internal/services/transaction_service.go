package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "armory/internal/errors"
	"armory/internal/models"
	"armory/internal/pagination"
)

// transactionService answers ledger queries. Entries are only ever
// written by the asset service.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions retrieves a filtered page of ledger entries, newest first.
func (s *transactionService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	query := func() *gorm.DB {
		return applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)
	}

	var totalItems int64
	if err := query().Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := query().
		Preload("Asset").
		Preload("User").
		Preload("FromBase").
		Preload("ToBase").
		Order("transactions.timestamp DESC").
		Order("transactions.id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// applyTransactionFilters narrows a ledger query. Columns are qualified
// since the asset type filter joins assets.
func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.BaseID != nil {
		q = q.Where("(transactions.from_base_id = ? OR transactions.to_base_id = ?)", *f.BaseID, *f.BaseID)
	}
	if f.AssetID != nil {
		q = q.Where("transactions.asset_id = ?", *f.AssetID)
	}
	if f.Type != nil {
		q = q.Where("transactions.type = ?", *f.Type)
	}
	if f.StartDate != nil {
		q = q.Where("transactions.timestamp >= ?", f.StartDate.UTC())
	}
	if f.EndDate != nil {
		q = q.Where("transactions.timestamp <= ?", f.EndDate.UTC())
	}
	if f.AssetType != nil {
		q = q.Joins("JOIN assets ON assets.id = transactions.asset_id").
			Where("assets.type = ?", *f.AssetType)
	}
	return q
}

// GetTransactionByID retrieves one ledger entry with its relations.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.
		Preload("Asset").
		Preload("User").
		Preload("FromBase").
		Preload("ToBase").
		First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}
