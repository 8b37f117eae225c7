package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/recyclezone/marketplace/internal/application/catalog"
	identityapp "github.com/recyclezone/marketplace/internal/application/identity"
	moderationapp "github.com/recyclezone/marketplace/internal/application/moderation"
	tradeapp "github.com/recyclezone/marketplace/internal/application/trade"
	"github.com/recyclezone/marketplace/internal/domain/identity"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/auth"
	"github.com/recyclezone/marketplace/internal/infrastructure/config"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testCallerHeader stands in for a verified bearer token
const testCallerHeader = "X-Test-Caller"

// fakeGateway records intent requests instead of calling a processor
type fakeGateway struct {
	mu       sync.Mutex
	requests []trade.IntentRequest
	disabled bool
}

func (g *fakeGateway) CreateIntent(_ context.Context, req trade.IntentRequest) (*trade.PaymentIntent, error) {
	if g.disabled {
		return nil, shared.ErrPaymentsDisabled
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return &trade.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		AmountMinor:  req.AmountMinor,
		Currency:     req.Currency,
	}, nil
}

type testApp struct {
	db       *persistence.Database
	engine   *gin.Engine
	gateway  *fakeGateway
	users    *persistence.GormUserRepository
	jwt      *auth.JWTService
	revoked  *auth.InMemoryTokenBlacklist
	products *persistence.GormProductRepository
}

// newTestApp wires every handler over an in-memory sqlite database. Routes
// that need a caller read it from testCallerHeader.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "handler-test-secret-with-enough-bytes",
		AccessTokenExpiration: time.Hour,
		Issuer:                "recycle-zone",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	gateway := &fakeGateway{}

	userService := identityapp.NewUserService(userRepo, blacklist, time.Hour, nil)
	tokenService := identityapp.NewTokenService(userRepo, jwtService, nil)
	productService := catalogapp.NewProductService(productRepo, userService, nil)
	categoryService := catalogapp.NewCategoryService(persistence.NewGormCategoryRepository(db.DB))
	adService := catalogapp.NewAdvertisementService(persistence.NewGormAdvertisementRepository(db.DB))
	orderService := tradeapp.NewOrderService(orderRepo, productRepo, nil)
	paymentService := tradeapp.NewPaymentService(orderRepo, paymentRepo, gateway, "usd", nil)
	reportService := moderationapp.NewReportService(persistence.NewGormReportRepository(db.DB), nil)

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	caller := func(c *gin.Context) {
		if email := c.GetHeader(testCallerHeader); email != "" {
			c.Set(middleware.CallerEmailKey, email)
		}
		c.Next()
	}
	engine.Use(caller)

	system := NewSystemHandler(db, nil)
	engine.GET("/", system.Root)
	engine.GET("/health", system.Health)

	engine.GET("/jwt", NewTokenHandler(tokenService).Issue)

	users := NewUserHandler(userService)
	engine.GET("/users", users.List)
	engine.POST("/users", users.Register)
	engine.DELETE("/users/:id", users.Delete)
	engine.GET("/users/buyer/:email", users.IsBuyer)
	engine.GET("/users/seller/:email", users.IsSeller)
	engine.GET("/users/admin/:email", users.IsAdmin)
	engine.GET("/users/allseller", users.ListSellers)
	engine.GET("/users/allbuyer", users.ListBuyers)
	engine.PUT("/users/seller/:id", users.VerifySeller)
	engine.GET("/veryfied/seller/:email", users.GetVerifiedSeller)

	categories := NewCategoryHandler(categoryService)
	engine.GET("/categories", categories.List)
	engine.POST("/categories", categories.Create)

	products := NewProductHandler(productService)
	engine.GET("/products", products.List)
	engine.POST("/products", products.Create)
	engine.GET("/products/:email", products.ListBySeller)
	engine.DELETE("/products/:id", products.Delete)
	engine.GET("/category/:categoryName", products.ListByCategory)
	engine.PATCH("/stockout/:id", products.StockOut)

	orders := NewOrderHandler(orderService)
	engine.POST("/orders", orders.Create)
	engine.GET("/orders/:email", orders.ListByBuyer)
	engine.GET("/orders/payment/:id", orders.GetForPayment)
	engine.DELETE("/orders/:id", orders.Delete)

	payments := NewPaymentHandler(paymentService)
	engine.POST("/create-payment-intent", payments.CreateIntent)
	engine.POST("/payments", payments.Record)
	engine.GET("/payments/:orderId", payments.ListForOrder)

	ads := NewAdvertisementHandler(adService)
	engine.POST("/advertisements", ads.Create)
	engine.GET("/advertisements", ads.List)

	reports := NewReportHandler(reportService)
	engine.POST("/report-items", reports.Create)
	engine.GET("/reports", reports.List)
	engine.DELETE("/reported-products/:id", reports.Delete)

	return &testApp{
		db:       db,
		engine:   engine,
		gateway:  gateway,
		users:    userRepo,
		jwt:      jwtService,
		revoked:  blacklist,
		products: productRepo,
	}
}

// do sends a request as caller (empty for anonymous)
func (a *testApp) do(method, path, caller string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != "" {
		req.Header.Set(testCallerHeader, caller)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// seedUser stores a user directly, which is the only way to create an admin
func (a *testApp) seedUser(t *testing.T, email string, role identity.Role) *identity.User {
	t.Helper()

	user, err := identity.NewUser("Test "+string(role), email, identity.RoleBuyer, "")
	require.NoError(t, err)
	user.Role = role
	require.NoError(t, a.users.Create(context.Background(), user))
	return user
}

// envelope is the decoded response with data left raw
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decode(t, w)
	require.True(t, env.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func insertedID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var result shared.InsertResult
	decodeData(t, w, &result)
	require.True(t, result.Acknowledged)
	return result.InsertedID.String()
}
