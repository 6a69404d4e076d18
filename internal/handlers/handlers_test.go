package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"armory/internal/config"
	"armory/internal/logger"
	"armory/internal/middleware"
	"armory/internal/models"
	"armory/internal/pagination"
	"armory/internal/services"
	"armory/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn            func(username, password string, role models.Role, baseID *uint) (*models.User, error)
	getUserByUsernameFn     func(username string) (*models.User, error)
	getUserByIDFn           func(id uint) (*models.User, error)
	verifyPasswordFn        func(user *models.User, password string) bool
	listUsersFn             func(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	storeRefreshTokenHashFn func(userID uint, tokenHash string) error
	getRefreshTokenHashFn   func(userID uint) (string, error)
}

func (m *mockUserService) CreateUser(username, password string, role models.Role, baseID *uint) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, password, role, baseID)
	}
	return &models.User{Username: username, Role: role, BaseID: baseID}, nil
}

func (m *mockUserService) GetUserByUsername(username string) (*models.User, error) {
	if m.getUserByUsernameFn != nil {
		return m.getUserByUsernameFn(username)
	}
	return &models.User{Username: username, Role: models.RoleLogistics}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Model: models.Model{ID: id}, Role: models.RoleLogistics}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(page)
	}
	resp := pagination.NewPageResponse([]models.User{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockUserService) StoreRefreshTokenHash(userID uint, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID uint) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// mockAuditService records the actions it was asked to log.
type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Log(_ uint, action, _ string, _ uint, _ string, _ map[string]interface{}) {
	m.actions = append(m.actions, action)
}

var _ services.AuditServicer = (*mockAuditService)(nil)

type mockBaseService struct {
	createBaseFn func(ctx context.Context, input services.BaseInput) (*models.Base, error)
	getBaseFn    func(ctx context.Context, id uint) (*models.Base, error)
	listBasesFn  func(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Base], error)
	updateBaseFn func(ctx context.Context, id uint, fields services.BaseUpdateFields) (*models.Base, error)
}

func (m *mockBaseService) CreateBase(ctx context.Context, input services.BaseInput) (*models.Base, error) {
	if m.createBaseFn != nil {
		return m.createBaseFn(ctx, input)
	}
	return &models.Base{Model: models.Model{ID: 1}, Name: input.Name, Location: input.Location, Budget: input.Budget}, nil
}

func (m *mockBaseService) GetBase(ctx context.Context, id uint) (*models.Base, error) {
	if m.getBaseFn != nil {
		return m.getBaseFn(ctx, id)
	}
	return &models.Base{Model: models.Model{ID: id}}, nil
}

func (m *mockBaseService) ListBases(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Base], error) {
	if m.listBasesFn != nil {
		return m.listBasesFn(ctx, page)
	}
	resp := pagination.NewPageResponse([]models.Base{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockBaseService) UpdateBase(ctx context.Context, id uint, fields services.BaseUpdateFields) (*models.Base, error) {
	if m.updateBaseFn != nil {
		return m.updateBaseFn(ctx, id, fields)
	}
	return &models.Base{Model: models.Model{ID: id}}, nil
}

var _ services.BaseServicer = (*mockBaseService)(nil)

type mockAssetService struct {
	createAssetFn   func(ctx context.Context, input services.AssetInput) (*models.Asset, error)
	purchaseAssetFn func(ctx context.Context, userID uint, input services.AssetInput) (*models.Asset, error)
	transferAssetFn func(ctx context.Context, userID, assetID, toBaseID uint, notes string) (*models.Asset, error)
	assignAssetFn   func(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)
	returnAssetFn   func(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)
	expendAssetFn   func(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)
	updateAssetFn   func(ctx context.Context, assetID uint, fields services.AssetUpdateFields) (*models.Asset, error)
	getAssetFn      func(ctx context.Context, id uint) (*models.Asset, error)
	listAssetsFn    func(ctx context.Context, filter services.AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
}

func (m *mockAssetService) CreateAsset(ctx context.Context, input services.AssetInput) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(ctx, input)
	}
	return &models.Asset{Model: models.Model{ID: 1}, Name: input.Name, Type: input.Type}, nil
}

func (m *mockAssetService) PurchaseAsset(ctx context.Context, userID uint, input services.AssetInput) (*models.Asset, error) {
	if m.purchaseAssetFn != nil {
		return m.purchaseAssetFn(ctx, userID, input)
	}
	return &models.Asset{Model: models.Model{ID: 1}, Name: input.Name, Type: input.Type}, nil
}

func (m *mockAssetService) TransferAsset(ctx context.Context, userID, assetID, toBaseID uint, notes string) (*models.Asset, error) {
	if m.transferAssetFn != nil {
		return m.transferAssetFn(ctx, userID, assetID, toBaseID, notes)
	}
	return &models.Asset{Model: models.Model{ID: assetID}, BaseID: &toBaseID, Status: models.AssetStatusAvailable}, nil
}

func (m *mockAssetService) AssignAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error) {
	if m.assignAssetFn != nil {
		return m.assignAssetFn(ctx, userID, assetID, notes)
	}
	return &models.Asset{Model: models.Model{ID: assetID}, Status: models.AssetStatusAssigned}, nil
}

func (m *mockAssetService) ReturnAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error) {
	if m.returnAssetFn != nil {
		return m.returnAssetFn(ctx, userID, assetID, notes)
	}
	return &models.Asset{Model: models.Model{ID: assetID}, Status: models.AssetStatusAvailable}, nil
}

func (m *mockAssetService) ExpendAsset(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error) {
	if m.expendAssetFn != nil {
		return m.expendAssetFn(ctx, userID, assetID, notes)
	}
	return &models.Asset{Model: models.Model{ID: assetID}, Status: models.AssetStatusExpended}, nil
}

func (m *mockAssetService) UpdateAsset(ctx context.Context, assetID uint, fields services.AssetUpdateFields) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(ctx, assetID, fields)
	}
	return &models.Asset{Model: models.Model{ID: assetID}}, nil
}

func (m *mockAssetService) GetAsset(ctx context.Context, id uint) (*models.Asset, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(ctx, id)
	}
	return &models.Asset{Model: models.Model{ID: id}}, nil
}

func (m *mockAssetService) ListAssets(ctx context.Context, filter services.AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(ctx, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Asset{}, 1, 20, 0)
	return &resp, nil
}

var _ services.AssetServicer = (*mockAssetService)(nil)

type mockTransactionService struct {
	listTransactionsFn   func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn func(id uint) (*models.Transaction, error)
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockStatsService struct {
	getDashboardStatsFn func(ctx context.Context, filter services.DashboardFilter) (*services.DashboardStats, error)
}

func (m *mockStatsService) GetDashboardStats(ctx context.Context, filter services.DashboardFilter) (*services.DashboardStats, error) {
	if m.getDashboardStatsFn != nil {
		return m.getDashboardStatsFn(ctx, filter)
	}
	return &services.DashboardStats{}, nil
}

var _ services.StatsServicer = (*mockStatsService)(nil)

type mockSnapshotService struct {
	computeFn      func(ctx context.Context, recordedAt time.Time) (int, error)
	getSnapshotsFn func(ctx context.Context, baseID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.InventorySnapshot], error)
}

func (m *mockSnapshotService) ComputeAndRecordSnapshots(ctx context.Context, recordedAt time.Time) (int, error) {
	if m.computeFn != nil {
		return m.computeFn(ctx, recordedAt)
	}
	return 0, nil
}

func (m *mockSnapshotService) GetSnapshots(ctx context.Context, baseID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.InventorySnapshot], error) {
	if m.getSnapshotsFn != nil {
		return m.getSnapshotsFn(ctx, baseID, from, to, page)
	}
	resp := pagination.NewPageResponse([]models.InventorySnapshot{}, 1, 20, 0)
	return &resp, nil
}

var _ services.SnapshotServicer = (*mockSnapshotService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		JWTSecret:                 "handler-test-secret",
		JWTExpirationDur:          15 * time.Minute,
		RefreshTokenExpirationDur: time.Hour,
	})
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
