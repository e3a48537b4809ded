package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stone-shop.backend/internal/domain/entities"
	"stone-shop.backend/internal/infrastructure/repositories"
	"stone-shop.backend/internal/interfaces/http/handlers"
	"stone-shop.backend/internal/interfaces/http/middleware"
	"stone-shop.backend/internal/usecases"
	"stone-shop.backend/pkg/crypto"
	"stone-shop.backend/pkg/jwt"
)

// testApp wires the full HTTP stack over an in-memory database, mirroring
// the route table in cmd/server.
type testApp struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwt.JWTService

	userRepo    *repositories.UserRepository
	profileRepo *repositories.ProfileRepository
	stoneRepo   *repositories.StoneRepository
	productRepo *repositories.ProductRepository
	orderRepo   *repositories.OrderRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	createAllTables(t, db)

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	stoneRepo := repositories.NewStoneRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	jwtService := jwt.NewJWTService("handler-test-secret", 15*time.Minute, 24*time.Hour)

	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, uow, jwtService)
	profileUsecase := usecases.NewProfileUsecase(profileRepo)
	stoneUsecase := usecases.NewStoneUsecase(stoneRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, productRepo, uow)

	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase, authUsecase)
	stoneHandler := handlers.NewStoneHandler(stoneUsecase)
	productHandler := handlers.NewProductHandler(productRepo)
	orderHandler := handlers.NewOrderHandler(orderUsecase)

	authMW := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)
		v1.POST("/token/refresh", authHandler.RefreshToken)
		v1.POST("/reset-password", authHandler.ResetPassword)

		profile := v1.Group("/profile")
		profile.Use(authMW)
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PATCH("/update", profileHandler.UpdateProfile)
		}

		stones := v1.Group("/stones")
		{
			stones.GET("", stoneHandler.ListStones)
			stones.POST("", stoneHandler.CreateStone)
			stones.GET("/:id/comments", stoneHandler.ListComments)
			stones.POST("/:id/comments", stoneHandler.CreateComment)
			stones.GET("/:id/faqs", stoneHandler.ListFAQs)
			stones.POST("/:id/faqs", stoneHandler.CreateFAQ)
		}

		v1.PATCH("/faqs/:id/answer", authMW, middleware.RequireStaff(), stoneHandler.AnswerFAQ)

		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", authMW, middleware.RequireStaff(), productHandler.CreateProduct)
		}

		orders := v1.Group("/orders")
		orders.Use(authMW)
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/items/:itemId", orderHandler.UpdateItemQuantity)
			orders.POST("/:id/pay", orderHandler.PayOrder)
			orders.POST("/:id/fail", orderHandler.FailOrder)
		}
	}

	return &testApp{
		router:      r,
		db:          db,
		jwtService:  jwtService,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		stoneRepo:   stoneRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func createAllTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	stmts := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			is_staff BOOLEAN NOT NULL DEFAULT 0,
			is_superuser BOOLEAN NOT NULL DEFAULT 0,
			is_verified BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		);`,
		`CREATE TABLE profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			first_name TEXT,
			last_name TEXT,
			description TEXT,
			image TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE stones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			stone_type TEXT NOT NULL,
			description TEXT,
			main_color TEXT,
			image TEXT
		);`,
		`CREATE TABLE stone_comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stone_id INTEGER NOT NULL REFERENCES stones(id) ON DELETE CASCADE,
			author_name TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME
		);`,
		`CREATE TABLE stone_faqs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stone_id INTEGER NOT NULL REFERENCES stones(id) ON DELETE CASCADE,
			question TEXT NOT NULL,
			answer TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE product_stones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			scientific_name TEXT,
			stone_type TEXT NOT NULL,
			colors TEXT,
			hardness TEXT,
			density TEXT,
			description TEXT,
			applications TEXT,
			extraction_sites TEXT,
			image TEXT,
			price_per_kg TEXT,
			available_quantity INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			total_price TEXT NOT NULL DEFAULT '0',
			payment_date DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE order_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES product_stones(id) ON DELETE RESTRICT,
			quantity INTEGER NOT NULL,
			price_per_unit TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}
}

// do performs a JSON request and decodes the envelope body
func (a *testApp) do(t *testing.T, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	body := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	}
	return w, body
}

// seedUser inserts a user directly and returns its access token
func (a *testApp) seedUser(t *testing.T, email, password string, isStaff bool) (uuid.UUID, string) {
	t.Helper()

	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)

	user := &entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      isStaff,
	}
	require.NoError(t, a.userRepo.Create(t.Context(), user))
	require.NoError(t, a.profileRepo.Create(t.Context(), &entities.Profile{
		ID: uuid.New(), UserID: user.ID, FirstName: "Seed", LastName: "User",
	}))

	pair, err := a.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsStaff)
	require.NoError(t, err)
	return user.ID, pair.AccessToken
}

func dataOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected data object in %v", body)
	return data
}

func errorsOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, "expected errors object in %v", body)
	return errs
}
