package productcontroller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/auth"
	"github.com/Suggarr/OnlineStore-sub000/models"
	"github.com/Suggarr/OnlineStore-sub000/routes"
)

func setupCatalogTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret-key")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.CartItem{}, &models.Order{}, &models.OrderItem{}, &models.Favorite{},
	))

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupProductRoutes(r, testDB)
	return r, testDB
}

func catalogUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func catalogRequest(t *testing.T, router *gin.Engine, caller *models.User, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if caller != nil {
		token, err := auth.IssueToken(caller)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestProductCRUD(t *testing.T) {
	router, testDB := setupCatalogTestRouter(t)
	admin := catalogUser(t, testDB, "admin", models.RoleAdmin)
	shopper := catalogUser(t, testDB, "alice", models.RoleUser)

	category := models.Category{Name: "Kitchen"}
	require.NoError(t, testDB.Create(&category).Error)

	t.Run("mutation requires admin", func(t *testing.T) {
		body := gin.H{"name": "kettle", "price": "20.00", "category_id": category.ID}

		recorder := catalogRequest(t, router, nil, http.MethodPost, "/api/products", body)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		recorder = catalogRequest(t, router, &shopper, http.MethodPost, "/api/products", body)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("creates a product", func(t *testing.T) {
		recorder := catalogRequest(t, router, &admin, http.MethodPost, "/api/products",
			gin.H{"name": "kettle", "description": "electric", "price": "20.00", "category_id": category.ID})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var product models.Product
		require.NoError(t, testDB.Where("name = ?", "kettle").First(&product).Error)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("20.00")))
		assert.Equal(t, category.ID, product.CategoryID)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		recorder := catalogRequest(t, router, &admin, http.MethodPost, "/api/products",
			gin.H{"name": "freebie", "price": "-1", "category_id": category.ID})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		recorder := catalogRequest(t, router, &admin, http.MethodPost, "/api/products",
			gin.H{"name": "orphan", "price": "5.00", "category_id": 9999})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("reads are public", func(t *testing.T) {
		recorder := catalogRequest(t, router, nil, http.MethodGet, "/api/products", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &products))
		require.Len(t, products, 1)

		recorder = catalogRequest(t, router, nil, http.MethodGet,
			fmt.Sprintf("/api/products/%d", products[0].ID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("filters by category", func(t *testing.T) {
		other := models.Category{Name: "Garden"}
		require.NoError(t, testDB.Create(&other).Error)

		recorder := catalogRequest(t, router, nil, http.MethodGet,
			fmt.Sprintf("/api/products?category_id=%d", other.ID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &products))
		assert.Empty(t, products)
	})

	t.Run("updates a product", func(t *testing.T) {
		var product models.Product
		require.NoError(t, testDB.Where("name = ?", "kettle").First(&product).Error)

		recorder := catalogRequest(t, router, &admin, http.MethodPut,
			fmt.Sprintf("/api/products/%d", product.ID),
			gin.H{"name": "kettle pro", "price": "25.00", "category_id": category.ID})
		assert.Equal(t, http.StatusOK, recorder.Code)

		require.NoError(t, testDB.First(&product, product.ID).Error)
		assert.Equal(t, "kettle pro", product.Name)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("25.00")))
	})

	t.Run("deletes a product and its favorites", func(t *testing.T) {
		var product models.Product
		require.NoError(t, testDB.Where("name = ?", "kettle pro").First(&product).Error)
		require.NoError(t, testDB.Create(&models.Favorite{UserID: shopper.ID, ProductID: product.ID}).Error)

		recorder := catalogRequest(t, router, &admin, http.MethodDelete,
			fmt.Sprintf("/api/products/%d", product.ID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		var favCount int64
		testDB.Model(&models.Favorite{}).Where("product_id = ?", product.ID).Count(&favCount)
		assert.EqualValues(t, 0, favCount)

		recorder = catalogRequest(t, router, &admin, http.MethodDelete,
			fmt.Sprintf("/api/products/%d", product.ID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestCategoryCRUD(t *testing.T) {
	router, testDB := setupCatalogTestRouter(t)
	admin := catalogUser(t, testDB, "admin", models.RoleAdmin)

	t.Run("creates a category", func(t *testing.T) {
		recorder := catalogRequest(t, router, &admin, http.MethodPost, "/api/categories",
			gin.H{"name": "Outdoors", "description": "camping gear"})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		recorder := catalogRequest(t, router, &admin, http.MethodPost, "/api/categories",
			gin.H{"name": "Outdoors"})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("fetch includes products", func(t *testing.T) {
		var category models.Category
		require.NoError(t, testDB.Where("name = ?", "Outdoors").First(&category).Error)
		require.NoError(t, testDB.Create(&models.Product{
			Name: "tent", Price: decimal.RequireFromString("80.00"), CategoryID: category.ID,
		}).Error)

		recorder := catalogRequest(t, router, nil, http.MethodGet,
			fmt.Sprintf("/api/categories/%d", category.ID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var fetched models.Category
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
		require.Len(t, fetched.Products, 1)
		assert.Equal(t, "tent", fetched.Products[0].Name)
	})

	t.Run("delete cascades to products", func(t *testing.T) {
		var category models.Category
		require.NoError(t, testDB.Where("name = ?", "Outdoors").First(&category).Error)

		recorder := catalogRequest(t, router, &admin, http.MethodDelete,
			fmt.Sprintf("/api/categories/%d", category.ID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		var productCount int64
		testDB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount)
		assert.EqualValues(t, 0, productCount)
	})
}
