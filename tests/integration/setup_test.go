package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"armory/internal/authz"
	"armory/internal/cache"
	"armory/internal/config"
	"armory/internal/handlers"
	"armory/internal/logger"
	"armory/internal/middleware"
	"armory/internal/models"
	"armory/internal/services"
	"armory/internal/testutil"
	"armory/internal/validator"
)

const pipelineKey = "integration-pipeline-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		JWTSecret:                 "integration-secret",
		JWTExpirationDur:          15 * time.Minute,
		RefreshTokenExpirationDur: time.Hour,
		PipelineAPIKey:            pipelineKey,
	})
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite and an in-memory read cache.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	rc := services.ReadCache{Store: store, TTL: time.Minute}

	// Services
	userService := services.NewUserService(db)
	baseService := services.NewBaseService(db, rc)
	assetService := services.NewAssetService(db, rc)
	transactionService := services.NewTransactionService(db)
	statsService := services.NewStatsService(db, rc)
	snapshotService := services.NewSnapshotService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	baseHandler := handlers.NewBaseHandler(baseService, auditService)
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(config.Get().PipelineAPIKey))
	pipeline.POST("/snapshots", snapshotHandler.ComputeSnapshots)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)

	bases := protected.Group("/bases")
	bases.GET("", middleware.RequirePermission(authz.BaseRead), baseHandler.ListBases)
	bases.POST("", middleware.RequirePermission(authz.BaseCreate), baseHandler.CreateBase)
	bases.GET("/:id", middleware.RequirePermission(authz.BaseRead), baseHandler.GetBase)
	bases.PATCH("/:id", middleware.RequirePermission(authz.BaseUpdate), baseHandler.UpdateBase)
	bases.GET("/:id/snapshots", middleware.RequirePermission(authz.SnapshotRead), snapshotHandler.GetSnapshots)

	assets := protected.Group("/assets")
	assets.GET("", middleware.RequirePermission(authz.AssetRead), assetHandler.ListAssets)
	assets.POST("", middleware.RequirePermission(authz.AssetPurchase), assetHandler.PurchaseAsset)
	assets.GET("/:id", middleware.RequirePermission(authz.AssetRead), assetHandler.GetAsset)
	assets.PUT("/:id", middleware.RequirePermission(authz.AssetUpdate), assetHandler.UpdateAsset)
	assets.POST("/:id/transfer", middleware.RequirePermission(authz.AssetTransfer), assetHandler.TransferAsset)
	assets.POST("/:id/assign", middleware.RequirePermission(authz.AssetAssign), assetHandler.AssignAsset)
	assets.POST("/:id/return", middleware.RequirePermission(authz.AssetReturn), assetHandler.ReturnAsset)
	assets.POST("/:id/expend", middleware.RequirePermission(authz.AssetExpend), assetHandler.ExpendAsset)

	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequirePermission(authz.TransactionRead))
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	protected.GET("/dashboard/stats", middleware.RequirePermission(authz.DashboardRead), dashboardHandler.GetStats)

	admin := protected.Group("/admin")
	admin.GET("/users", middleware.RequirePermission(authz.UserRead), userHandler.ListUsers)
	admin.POST("/users", middleware.RequirePermission(authz.UserCreate), userHandler.CreateUser)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// pipeline calls the snapshot pipeline endpoint with an API key.
func (app *testApp) pipeline(body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/v1/pipeline/snapshots", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new LOGISTICS user and returns the access token,
// refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, username, password string) (accessToken, refreshToken string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, username, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// tokenFor creates a user with role directly in the store and logs in.
func (app *testApp) tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := testutil.CreateTestUserWithRole(t, app.DB, role, nil)
	access, _ := app.loginUser(t, user.Username, testutil.TestPassword)
	return access
}

// createBase creates a base through the API and returns its ID.
func (app *testApp) createBase(t *testing.T, token, name string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"location":"Sector 7","budget":"250000"}`, name)
	rec := app.request("POST", "/api/v1/bases", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create base failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["base"].(map[string]interface{})["id"].(float64)
}

// purchaseAsset purchases an asset at base and returns its ID.
func (app *testApp) purchaseAsset(t *testing.T, token string, baseID float64, assetType, serial string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Item %s","type":%q,"serial_number":%q,"base_id":%.0f,"value":"1000"}`,
		serial, assetType, serial, baseID)
	rec := app.request("POST", "/api/v1/assets", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("purchase failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["asset"].(map[string]interface{})["id"].(float64)
}
