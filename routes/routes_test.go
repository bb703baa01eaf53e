package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", Env: "test"}
	router := SetupRouter(
		cfg,
		zerolog.Nop(),
		controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret)),
		controllers.NewPropertyController(services.NewPropertyService(db)),
		controllers.NewReservationController(services.NewReservationService(db)),
		controllers.NewAdminController(services.NewAdminService(db)),
		controllers.NewCategoryController(services.NewCategoryService(db)),
	)
	return &testEnv{router: router, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sessionFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"hunter22"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := sessionFrom(t, w)

	// duplicate email conflicts
	w = env.do(t, http.MethodPost, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"hunter22"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodGet, "/auth/me", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alice@example.com"`)

	// anonymous me reads as null user, not an error
	w = env.do(t, http.MethodGet, "/auth/me", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":null`)

	w = env.do(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"hunter22"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGatesOnRoutes(t *testing.T) {
	env := newTestEnv(t)

	// a fresh registration is a BUYER and may not create properties
	w := env.do(t, http.MethodPost, "/auth/register", `{"name":"Bob","email":"bob@example.com","password":"hunter22"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	buyerSession := sessionFrom(t, w)

	propertyBody := `{"name":"Flat","description":"a long enough description","image":"https://example.com/p.jpg","price":"50.00","rooms":2,"address":"1 Main St","city":"Belgrade","categoryId":1}`

	w = env.do(t, http.MethodPost, "/properties", propertyBody, buyerSession)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/properties", propertyBody, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/admin/metrics", "", buyerSession)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSellerFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	seller := models.User{Name: "Seller", Email: "seller@example.com", Password: "x", Role: models.RoleSeller}
	require.NoError(t, env.db.Create(&seller).Error)
	category := models.Category{Name: "Apartment", Description: "test"}
	require.NoError(t, env.db.Create(&category).Error)

	token, err := utils.SignSessionToken("test-secret", seller.ID, models.RoleSeller)
	require.NoError(t, err)

	body := `{"name":"Flat","description":"a long enough description","image":"https://example.com/p.jpg","price":"50.00","rooms":2,"address":"1 Main St","city":"Belgrade","categoryId":1}`
	w := env.do(t, http.MethodPost, "/properties", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, seller.ID, created.Data.SellerID)

	// public listing sees it
	w = env.do(t, http.MethodGet, "/properties?city=belg", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	// unknown property 404s
	w = env.do(t, http.MethodGet, "/properties/999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
