package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "armory/internal/errors"
	"armory/internal/logger"
	"armory/internal/models"
	"armory/internal/pagination"
)

// snapshotService records per-base inventory snapshots.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// statusTotal is one row of the per-status inventory aggregate.
type statusTotal struct {
	Status models.AssetStatus
	Count  int64
	Value  decimal.Decimal
}

// ComputeAndRecordSnapshots records the inventory of every base at
// recordedAt. Re-running for the same instant overwrites the earlier rows.
// It returns the number of bases recorded.
func (s *snapshotService) ComputeAndRecordSnapshots(ctx context.Context, recordedAt time.Time) (int, error) {
	db := s.db.WithContext(ctx)
	recordedAt = recordedAt.UTC().Truncate(time.Second)

	var baseIDs []uint
	if err := db.Model(&models.Base{}).Order("id ASC").Pluck("id", &baseIDs).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	count := 0
	for _, baseID := range baseIDs {
		snapshot, err := s.computeSnapshot(db, baseID, recordedAt)
		if err != nil {
			return count, err
		}

		var existing models.InventorySnapshot
		err = db.Where("base_id = ? AND recorded_at = ?", baseID, recordedAt).First(&existing).Error
		switch {
		case err == nil:
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"available":   snapshot.Available,
				"assigned":    snapshot.Assigned,
				"maintenance": snapshot.Maintenance,
				"in_transit":  snapshot.InTransit,
				"expended":    snapshot.Expended,
				"live_value":  snapshot.LiveValue,
			}).Error; err != nil {
				return count, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(snapshot).Error; err != nil {
				return count, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		default:
			return count, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		count++
	}

	logger.Get().Infow("inventory snapshots recorded", "bases", count, "recorded_at", recordedAt)
	return count, nil
}

// computeSnapshot counts a base's assets per status. Live value covers
// AVAILABLE and ASSIGNED assets only.
func (s *snapshotService) computeSnapshot(db *gorm.DB, baseID uint, recordedAt time.Time) (*models.InventorySnapshot, error) {
	var totals []statusTotal
	if err := db.Model(&models.Asset{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(value), 0) AS value").
		Where("base_id = ?", baseID).
		Group("status").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snapshot := &models.InventorySnapshot{
		BaseID:     baseID,
		RecordedAt: recordedAt,
		LiveValue:  decimal.Zero,
	}
	for _, t := range totals {
		switch t.Status {
		case models.AssetStatusAvailable:
			snapshot.Available = t.Count
		case models.AssetStatusAssigned:
			snapshot.Assigned = t.Count
		case models.AssetStatusMaintenance:
			snapshot.Maintenance = t.Count
		case models.AssetStatusTransit:
			snapshot.InTransit = t.Count
		case models.AssetStatusExpended:
			snapshot.Expended = t.Count
		}
		if t.Status.Live() {
			snapshot.LiveValue = snapshot.LiveValue.Add(t.Value)
		}
	}
	return snapshot, nil
}

// GetSnapshots returns a base's snapshots within [from, to], newest first.
func (s *snapshotService) GetSnapshots(
	ctx context.Context,
	baseID uint,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.InventorySnapshot], error) {
	db := s.db.WithContext(ctx)
	if _, err := findBase(db, baseID); err != nil {
		return nil, err
	}

	page.Defaults()

	query := func() *gorm.DB {
		return db.Model(&models.InventorySnapshot{}).
			Where("base_id = ? AND recorded_at >= ? AND recorded_at <= ?", baseID, from.UTC(), to.UTC())
	}

	var totalItems int64
	if err := query().Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.InventorySnapshot
	if err := query().Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
