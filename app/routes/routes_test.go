package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/shashiranjanraj/arogya/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testHandler(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}))

	r := router.New()
	RegisterAPI(r, db)
	return r.Handler(), db
}

func doJSON(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

const registerBody = `{"name":"asha","fullName":"Asha Example","phone":"5550100","password":"secret123"}`

func TestRegisterAndLogin(t *testing.T) {
	h, _ := testHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/user/register", registerBody, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "asha", user["name"])
	assert.Equal(t, models.RoleUser, user["role"])
	assert.NotContains(t, user, "password")

	rec = doJSON(t, h, http.MethodPost, "/api/user/register", registerBody, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "This name is already taken", decodeBody(t, rec)["message"])

	rec = doJSON(t, h, http.MethodPost, "/api/user/login", `{"name":"asha","password":"wrong-pass"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])

	rec = doJSON(t, h, http.MethodPost, "/api/user/login", `{"name":"asha","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Login successful", decodeBody(t, rec)["message"])
}

func TestRegisterValidationBody(t *testing.T) {
	h, _ := testHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/user/register",
		`{"name":"asha","fullName":"Asha Example","phone":"5550100","password":"ab"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid data", body["message"])
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "password")
}

func TestAdminNamespaceIsGated(t *testing.T) {
	h, _ := testHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/admin/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization token required", decodeBody(t, rec)["message"])

	rec = doJSON(t, h, http.MethodGet, "/api/admin/users", "", "not-a-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, rec)["message"])

	userToken, err := auth.GenerateToken(1, "asha", models.RoleUser)
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodGet, "/api/admin/users", "", userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Insufficient permissions", decodeBody(t, rec)["message"])

	adminToken, err := auth.GenerateToken(1, "root", models.RoleAdmin)
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodGet, "/api/admin/users", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestOrderEndpoints(t *testing.T) {
	h, _ := testHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/user/register", registerBody, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	registered := decodeBody(t, rec)["user"].(map[string]interface{})
	userID := uint(registered["id"].(float64))

	rec = doJSON(t, h, http.MethodPost, "/api/user/orders",
		`{"userId":`+jsonUint(userID)+`,"description":"first visit"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	assert.Equal(t, "Order added successfully", created["message"])
	order := created["order"].(map[string]interface{})
	assert.EqualValues(t, 1, order["number"])
	orderID := jsonUint(uint(order["id"].(float64)))

	rec = doJSON(t, h, http.MethodGet, "/api/user/orders", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var waiting []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &waiting))
	require.Len(t, waiting, 1)
	owner := waiting[0]["user"].(map[string]interface{})
	assert.Equal(t, "asha", owner["name"])

	// Deleting with someone else's user id is rejected.
	rec = doJSON(t, h, http.MethodDelete, "/api/user/orders/"+orderID+"/9999", "", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not own this order", decodeBody(t, rec)["message"])

	rec = doJSON(t, h, http.MethodPut, "/api/user/orders/not-a-number", `{"price":5}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid order id", decodeBody(t, rec)["message"])

	rec = doJSON(t, h, http.MethodDelete, "/api/user/orders/"+orderID+"/"+jsonUint(userID), "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Order deleted successfully", decodeBody(t, rec)["message"])
}

func jsonUint(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}
