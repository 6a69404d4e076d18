package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"armory/internal/cache"
	apperrors "armory/internal/errors"
	"armory/internal/models"
	"armory/internal/pagination"
)

const purchaseNote = "Initial purchase/entry"

// assetService handles asset bookkeeping. Every state change of an asset
// and its ledger entry are written in one database transaction.
type assetService struct {
	db    *gorm.DB
	cache ReadCache
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, rc ReadCache) AssetServicer {
	return &assetService{db: db, cache: rc}
}

// CreateAsset registers an asset without a ledger entry.
func (s *assetService) CreateAsset(ctx context.Context, input AssetInput) (*models.Asset, error) {
	asset, err := newAssetFromInput(input)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertAsset(tx, asset)
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.cache.Store, cache.MutationAssetCreate)
	return asset, nil
}

// PurchaseAsset registers an asset and appends its PURCHASE entry.
func (s *assetService) PurchaseAsset(ctx context.Context, userID uint, input AssetInput) (*models.Asset, error) {
	asset, err := newAssetFromInput(input)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		notes = purchaseNote
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertAsset(tx, asset); err != nil {
			return err
		}
		return appendLedger(tx, &models.Transaction{
			AssetID:  asset.ID,
			Type:     models.TransactionTypePurchase,
			ToBaseID: asset.BaseID,
			UserID:   userID,
			Notes:    notes,
		})
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.cache.Store, cache.MutationAssetPurchase)
	return asset, nil
}

// TransferAsset moves an asset to another base. The asset becomes
// AVAILABLE at its destination and one TRANSFER entry records both sides.
func (s *assetService) TransferAsset(ctx context.Context, userID, assetID, toBaseID uint, notes string) (*models.Asset, error) {
	var asset *models.Asset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		asset, err = findAsset(tx, assetID)
		if err != nil {
			return err
		}
		if _, err := findBase(tx, toBaseID); err != nil {
			return err
		}
		if asset.BaseID != nil && *asset.BaseID == toBaseID {
			return apperrors.ErrSameBaseTransfer
		}

		// Updates writes the new base_id back through asset.BaseID.
		var from *uint
		if asset.BaseID != nil {
			prior := *asset.BaseID
			from = &prior
		}
		if err := tx.Model(asset).Updates(map[string]interface{}{
			"base_id": toBaseID,
			"status":  models.AssetStatusAvailable,
		}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		dest := toBaseID
		return appendLedger(tx, &models.Transaction{
			AssetID:    asset.ID,
			Type:       models.TransactionTypeTransfer,
			FromBaseID: from,
			ToBaseID:   &dest,
			UserID:     userID,
			Notes:      strings.TrimSpace(notes),
		})
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.cache.Store, cache.MutationAssetTransfer)
	return s.GetAsset(ctx, assetID)
}

// AssignAsset marks an asset ASSIGNED at its current base.
func (s *assetService) AssignAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error) {
	return s.changeStatus(ctx, statusChange{
		userID:   userID,
		assetID:  assetID,
		status:   models.AssetStatusAssigned,
		txType:   models.TransactionTypeAssign,
		notes:    notes,
		mutation: cache.MutationAssetAssign,
	})
}

// ReturnAsset marks an assigned asset AVAILABLE again at its current base.
func (s *assetService) ReturnAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error) {
	return s.changeStatus(ctx, statusChange{
		userID:   userID,
		assetID:  assetID,
		status:   models.AssetStatusAvailable,
		txType:   models.TransactionTypeReturn,
		notes:    notes,
		mutation: cache.MutationAssetReturn,
	})
}

// ExpendAsset marks an asset EXPENDED. The entry has no destination since
// the asset leaves the inventory.
func (s *assetService) ExpendAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error) {
	return s.changeStatus(ctx, statusChange{
		userID:          userID,
		assetID:         assetID,
		status:          models.AssetStatusExpended,
		txType:          models.TransactionTypeExpend,
		notes:           notes,
		mutation:        cache.MutationAssetExpend,
		leavesInventory: true,
	})
}

type statusChange struct {
	userID          uint
	assetID         uint
	status          models.AssetStatus
	txType          models.TransactionType
	notes           string
	mutation        cache.Mutation
	leavesInventory bool
}

// changeStatus sets the asset status in place and appends the matching
// entry with from = current base and to = current base, or no destination
// when the asset leaves the inventory.
func (s *assetService) changeStatus(ctx context.Context, change statusChange) (*models.Asset, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		asset, err := findAsset(tx, change.assetID)
		if err != nil {
			return err
		}

		if err := tx.Model(asset).Update("status", change.status).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.Transaction{
			AssetID:    asset.ID,
			Type:       change.txType,
			FromBaseID: asset.BaseID,
			UserID:     change.userID,
			Notes:      strings.TrimSpace(change.notes),
		}
		if !change.leavesInventory {
			entry.ToBaseID = asset.BaseID
		}
		return appendLedger(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.cache.Store, change.mutation)
	return s.GetAsset(ctx, change.assetID)
}

// UpdateAsset applies a partial update to descriptive fields and status.
// It writes no ledger entry.
func (s *assetService) UpdateAsset(ctx context.Context, assetID uint, fields AssetUpdateFields) (*models.Asset, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		asset, err := findAsset(tx, assetID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if fields.Name != nil {
			name := strings.TrimSpace(*fields.Name)
			if name == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name cannot be empty")
			}
			updates["name"] = name
		}
		if fields.Description != nil {
			updates["description"] = strings.TrimSpace(*fields.Description)
		}
		if fields.SerialNumber != nil {
			serial := normalizeSerial(fields.SerialNumber)
			if serial != nil {
				if err := ensureSerialFree(tx, *serial, asset.ID); err != nil {
					return err
				}
			}
			updates["serial_number"] = serial
		}
		if fields.Condition != nil {
			if !fields.Condition.Valid() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset condition")
			}
			updates["condition"] = *fields.Condition
		}
		if fields.Value != nil {
			if fields.Value.IsNegative() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "value cannot be negative")
			}
			updates["value"] = *fields.Value
		}
		if fields.Status != nil {
			if !fields.Status.Valid() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset status")
			}
			updates["status"] = *fields.Status
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(asset).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateSerialNumber
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.cache.Store, cache.MutationAssetUpdate)
	return s.GetAsset(ctx, assetID)
}

// GetAsset retrieves an asset with its base.
func (s *assetService) GetAsset(ctx context.Context, id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.WithContext(ctx).Preload("Base").First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// ListAssets returns a filtered page of assets, newest first.
func (s *assetService) ListAssets(ctx context.Context, filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	key := fmt.Sprintf("base=%s&type=%s&status=%s&%s",
		uintKey(filter.BaseID), stringKey(filter.Type), stringKey(filter.Status), page.CacheKey())

	return cache.Fetch(ctx, s.cache.Store, s.cache.TTL, cache.TopicAssets, key,
		func() (*pagination.PageResponse[models.Asset], error) {
			query := func() *gorm.DB {
				return applyAssetFilters(s.db.WithContext(ctx).Model(&models.Asset{}), filter)
			}

			var totalItems int64
			if err := query().Count(&totalItems).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			var assets []models.Asset
			if err := query().Preload("Base").Order("id DESC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
			return &result, nil
		})
}

func applyAssetFilters(q *gorm.DB, f AssetFilter) *gorm.DB {
	if f.BaseID != nil {
		q = q.Where("base_id = ?", *f.BaseID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	return q
}

// newAssetFromInput validates input and builds the row to insert.
func newAssetFromInput(input AssetInput) (*models.Asset, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name is required")
	}
	if input.Type == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset type is required")
	}
	if !input.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset type")
	}

	status := input.Status
	if status == "" {
		status = models.AssetStatusAvailable
	}
	if !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset status")
	}
	if !input.Condition.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset condition")
	}
	if input.Value.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value cannot be negative")
	}

	return &models.Asset{
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		SerialNumber: normalizeSerial(input.SerialNumber),
		Type:         input.Type,
		Status:       status,
		BaseID:       input.BaseID,
		Condition:    input.Condition,
		Value:        input.Value,
	}, nil
}

// insertAsset checks references and uniqueness, then inserts the asset.
func insertAsset(tx *gorm.DB, asset *models.Asset) error {
	if asset.BaseID != nil {
		if _, err := findBase(tx, *asset.BaseID); err != nil {
			return err
		}
	}
	if asset.SerialNumber != nil {
		if err := ensureSerialFree(tx, *asset.SerialNumber, 0); err != nil {
			return err
		}
	}

	if err := tx.Create(asset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateSerialNumber
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ensureSerialFree fails when another asset than exceptID holds serial.
func ensureSerialFree(tx *gorm.DB, serial string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.Asset{}).
		Where("serial_number = ? AND id <> ?", serial, exceptID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateSerialNumber
	}
	return nil
}

func findAsset(tx *gorm.DB, id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := tx.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

func appendLedger(tx *gorm.DB, entry *models.Transaction) error {
	if err := tx.Create(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// normalizeSerial trims the serial number; blank means none.
func normalizeSerial(serial *string) *string {
	if serial == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*serial)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stringKey[T ~string](v *T) string {
	if v == nil {
		return "*"
	}
	return string(*v)
}
