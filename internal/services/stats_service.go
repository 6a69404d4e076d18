package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"armory/internal/cache"
	apperrors "armory/internal/errors"
	"armory/internal/models"
)

// statsService aggregates the ledger into dashboard figures.
type statsService struct {
	db    *gorm.DB
	cache ReadCache
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB, rc ReadCache) StatsServicer {
	return &statsService{db: db, cache: rc}
}

// ledgerRow is the projection of a ledger entry the tally needs.
type ledgerRow struct {
	Type       models.TransactionType
	FromBaseID *uint
	ToBaseID   *uint
}

// GetDashboardStats returns movement counts for the filtered period and
// the derived balances. Only store-read failures produce an error.
func (s *statsService) GetDashboardStats(ctx context.Context, filter DashboardFilter) (*DashboardStats, error) {
	return cache.Fetch(ctx, s.cache.Store, s.cache.TTL, cache.TopicDashboard, filter.cacheKey(),
		func() (*DashboardStats, error) {
			return s.compute(ctx, filter)
		})
}

func (s *statsService) compute(ctx context.Context, filter DashboardFilter) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)

	q := db.Model(&models.Transaction{}).
		Select("transactions.type, transactions.from_base_id, transactions.to_base_id")
	if filter.StartDate != nil {
		q = q.Where("transactions.timestamp >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		q = q.Where("transactions.timestamp <= ?", filter.EndDate.UTC())
	}
	if filter.BaseID != nil {
		q = q.Where("(transactions.from_base_id = ? OR transactions.to_base_id = ?)", *filter.BaseID, *filter.BaseID)
	}
	if filter.AssetType != nil {
		q = q.Joins("JOIN assets ON assets.id = transactions.asset_id").
			Where("assets.type = ?", *filter.AssetType)
	}

	var rows []ledgerRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := tally(rows, filter.BaseID)

	live := db.Model(&models.Asset{}).Where("status IN ?", models.LiveStatuses)
	if filter.BaseID != nil {
		live = live.Where("base_id = ?", *filter.BaseID)
	}
	if filter.AssetType != nil {
		live = live.Where("type = ?", *filter.AssetType)
	}
	if err := live.Count(&stats.ClosingBalance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats.OpeningBalance = stats.ClosingBalance - stats.NetMovement + stats.Expended
	return &stats, nil
}

// tally reduces ledger rows into movement counts relative to baseID.
// Transfer direction comes from the base fields only, never from the type
// tag. Without a base every transfer is internal and counts once each way.
func tally(rows []ledgerRow, baseID *uint) DashboardStats {
	var stats DashboardStats

	is := func(id *uint) bool {
		return baseID != nil && id != nil && *id == *baseID
	}

	for _, r := range rows {
		switch {
		case r.Type == models.TransactionTypePurchase:
			if baseID == nil || is(r.ToBaseID) {
				stats.Purchases++
			}
		case r.Type.IsTransfer():
			if baseID == nil {
				stats.TransfersIn++
				stats.TransfersOut++
				continue
			}
			if is(r.FromBaseID) {
				stats.TransfersOut++
			}
			if is(r.ToBaseID) {
				stats.TransfersIn++
			}
		case r.Type == models.TransactionTypeAssign:
			stats.Assigned++
		case r.Type == models.TransactionTypeExpend:
			stats.Expended++
		}
	}

	stats.NetMovement = stats.Purchases + stats.TransfersIn - stats.TransfersOut
	return stats
}

func (f DashboardFilter) cacheKey() string {
	return fmt.Sprintf("base=%s&start=%s&end=%s&type=%s",
		uintKey(f.BaseID), timeKey(f.StartDate), timeKey(f.EndDate), stringKey(f.AssetType))
}

func timeKey(t *time.Time) string {
	if t == nil {
		return "*"
	}
	return t.UTC().Format(time.RFC3339Nano)
}
