package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"armory/internal/cache"
	"armory/internal/models"
	"armory/internal/pagination"
)

// ReadCache configures the versioned read cache used by list and stats
// reads. The zero value disables caching.
type ReadCache struct {
	Store cache.Store
	TTL   time.Duration
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string, role models.Role, baseID *uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// BaseInput holds the fields of a new base.
type BaseInput struct {
	Name      string
	Location  string
	Commander string
	Budget    decimal.Decimal
}

// BaseUpdateFields holds the optional fields of a partial base update.
type BaseUpdateFields struct {
	Name      *string
	Location  *string
	Commander *string
	Budget    *decimal.Decimal
}

// BaseServicer defines the contract for base-related business logic.
type BaseServicer interface {
	CreateBase(ctx context.Context, input BaseInput) (*models.Base, error)
	GetBase(ctx context.Context, id uint) (*models.Base, error)
	ListBases(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Base], error)
	UpdateBase(ctx context.Context, id uint, fields BaseUpdateFields) (*models.Base, error)
}

// AssetInput holds the fields of a new asset. Notes only apply to the
// ledger entry written on purchase.
type AssetInput struct {
	Name         string
	Description  string
	SerialNumber *string
	Type         models.AssetType
	Status       models.AssetStatus
	BaseID       *uint
	Condition    models.AssetCondition
	Value        decimal.Decimal
	Notes        string
}

// AssetUpdateFields holds the optional fields of a partial asset update.
// Custody is absent: it only changes through TransferAsset.
type AssetUpdateFields struct {
	Name         *string
	Description  *string
	SerialNumber *string
	Condition    *models.AssetCondition
	Value        *decimal.Decimal
	Status       *models.AssetStatus
}

// AssetFilter holds optional filter parameters for listing assets.
type AssetFilter struct {
	BaseID *uint
	Type   *models.AssetType
	Status *models.AssetStatus
}

// AssetServicer defines the contract for asset bookkeeping. Every method
// that changes custody or status appends exactly one ledger entry in the
// same database transaction.
type AssetServicer interface {
	CreateAsset(ctx context.Context, input AssetInput) (*models.Asset, error)
	PurchaseAsset(ctx context.Context, userID uint, input AssetInput) (*models.Asset, error)
	TransferAsset(ctx context.Context, userID, assetID, toBaseID uint, notes string) (*models.Asset, error)
	AssignAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)
	ReturnAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)
	ExpendAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)
	UpdateAsset(ctx context.Context, assetID uint, fields AssetUpdateFields) (*models.Asset, error)
	GetAsset(ctx context.Context, id uint) (*models.Asset, error)
	ListAssets(ctx context.Context, filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
}

// TransactionFilter holds optional filter parameters for listing ledger
// entries. BaseID matches either side of an entry.
type TransactionFilter struct {
	BaseID    *uint
	AssetID   *uint
	Type      *models.TransactionType
	AssetType *models.AssetType
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionServicer defines the contract for ledger queries.
type TransactionServicer interface {
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id uint) (*models.Transaction, error)
}

// DashboardFilter holds the optional dashboard filters.
type DashboardFilter struct {
	BaseID    *uint
	StartDate *time.Time
	EndDate   *time.Time
	AssetType *models.AssetType
}

// DashboardStats is the movement summary for a filtered period.
// Balances are derived from current live inventory, not reconstructed
// history.
type DashboardStats struct {
	Purchases      int64 `json:"purchases"`
	TransfersIn    int64 `json:"transfers_in"`
	TransfersOut   int64 `json:"transfers_out"`
	Assigned       int64 `json:"assigned"`
	Expended       int64 `json:"expended"`
	NetMovement    int64 `json:"net_movement"`
	ClosingBalance int64 `json:"closing_balance"`
	OpeningBalance int64 `json:"opening_balance"`
}

// StatsServicer defines the contract for dashboard aggregation.
type StatsServicer interface {
	GetDashboardStats(ctx context.Context, filter DashboardFilter) (*DashboardStats, error)
}

// SnapshotServicer defines the contract for inventory snapshots.
type SnapshotServicer interface {
	ComputeAndRecordSnapshots(ctx context.Context, recordedAt time.Time) (int, error)
	GetSnapshots(ctx context.Context, baseID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.InventorySnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
