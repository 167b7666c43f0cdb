package orderControllers_test

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

func setupOrderTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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
	routes.SetupCartRoutes(r, testDB)
	routes.SetupOrderRoutes(r, testDB)
	return r, testDB
}

func seedOrderUser(t *testing.T, db *gorm.DB, username string) models.User {
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "irrelevant",
		Role:         models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func orderRequest(t *testing.T, router *gin.Engine, user *models.User, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := auth.IssueToken(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateOrderEmptyCart(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)
	user := seedOrderUser(t, testDB, "alice")

	recorder := orderRequest(t, router, &user, http.MethodPost, "/api/orders", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var orderCount, itemCount int64
	testDB.Model(&models.Order{}).Count(&orderCount)
	testDB.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

// Adds product P (price 10.00) quantity 2, then 3 more of P: the cart holds
// one line with quantity 5, and checkout turns it into one order with one
// line {P, 5, 10.00} and an empty cart.
func TestCreateOrderSnapshotsCartAndClearsIt(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)
	user := seedOrderUser(t, testDB, "bob")

	category := models.Category{Name: "Peripherals"}
	require.NoError(t, testDB.Create(&category).Error)
	product := models.Product{
		Name:       "keyboard",
		Price:      decimal.RequireFromString("10.00"),
		Image:      "/images/keyboard.png",
		CategoryID: category.ID,
	}
	require.NoError(t, testDB.Create(&product).Error)

	for _, qty := range []int{2, 3} {
		recorder := orderRequest(t, router, &user, http.MethodPost, "/api/cartitems",
			gin.H{"product_id": product.ID, "quantity": qty})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := orderRequest(t, router, &user, http.MethodPost, "/api/orders", nil)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var orders []models.Order
	require.NoError(t, testDB.Preload("Items").Where("user_id = ?", user.ID).Find(&orders).Error)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)

	line := orders[0].Items[0]
	assert.Equal(t, product.ID, line.ProductID)
	assert.Equal(t, "keyboard", line.ProductName)
	assert.True(t, line.ProductPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "/images/keyboard.png", line.ProductImage)
	assert.Equal(t, 5, line.Quantity)
	assert.False(t, orders[0].CreatedAt.IsZero())

	var cartCount int64
	testDB.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 0, cartCount)
}

func TestOrderSurvivesProductEdit(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)
	user := seedOrderUser(t, testDB, "carol")

	category := models.Category{Name: "Audio"}
	require.NoError(t, testDB.Create(&category).Error)
	product := models.Product{
		Name:       "headset",
		Price:      decimal.RequireFromString("25.00"),
		CategoryID: category.ID,
	}
	require.NoError(t, testDB.Create(&product).Error)

	recorder := orderRequest(t, router, &user, http.MethodPost, "/api/cartitems",
		gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, recorder.Code)
	recorder = orderRequest(t, router, &user, http.MethodPost, "/api/orders", nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Repricing and deleting the product must not rewrite history.
	require.NoError(t, testDB.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("99.00")).Error)
	require.NoError(t, testDB.Delete(&models.Product{}, product.ID).Error)

	var line models.OrderItem
	require.NoError(t, testDB.Where("product_id = ?", product.ID).First(&line).Error)
	assert.Equal(t, "headset", line.ProductName)
	assert.True(t, line.ProductPrice.Equal(decimal.RequireFromString("25.00")))
}

func TestGetOrders(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)
	owner := seedOrderUser(t, testDB, "dave")
	stranger := seedOrderUser(t, testDB, "erin")

	order := models.Order{
		UserID: owner.ID,
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "mug", ProductPrice: decimal.RequireFromString("4.00"), Quantity: 2},
		},
	}
	require.NoError(t, testDB.Create(&order).Error)

	t.Run("owner can fetch", func(t *testing.T) {
		recorder := orderRequest(t, router, &owner, http.MethodGet,
			fmt.Sprintf("/api/orders/%d", order.ID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var fetched models.Order
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
		assert.Equal(t, order.ID, fetched.ID)
		require.Len(t, fetched.Items, 1)
	})

	t.Run("someone else's order reads as absent", func(t *testing.T) {
		recorder := orderRequest(t, router, &stranger, http.MethodGet,
			fmt.Sprintf("/api/orders/%d", order.ID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("list is scoped to the caller", func(t *testing.T) {
		recorder := orderRequest(t, router, &stranger, http.MethodGet, "/api/orders", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var orders []models.Order
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &orders))
		assert.Empty(t, orders)
	})
}
