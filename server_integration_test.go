package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fintrack/logging"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	cfg = loadConfig()
	jwtSecret = []byte(cfg.JWTSecret)
	logging.Init("error")
	initDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

// registerAndLogin creates a fresh account and returns its id and token.
func registerAndLogin(t *testing.T, r http.Handler, email string) (uint, string) {
	resp := performRequest(r, http.MethodPost, "/api/User/register",
		jsonBody(t, map[string]string{"name": "Test User", "email": email, "password": "secret1"}), "")
	require.Equal(t, http.StatusCreated, resp.Code, "register failed: %s", resp.Body.String())

	var out userResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.ID, out.Token
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	_, token := registerAndLogin(t, r, uniqueEmail("user-a"))

	// login with an unknown email is rejected
	resp := performRequest(r, http.MethodPost, "/api/User/login",
		jsonBody(t, map[string]string{"email": uniqueEmail("nobody"), "password": "secret1"}), "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// monthly Food budget, 200.00, starting 2024-01-01
	resp = performRequest(r, http.MethodPost, "/api/budgets",
		jsonBody(t, map[string]any{"category": "Food", "limit": 200, "period": "monthly", "startDate": "2024-01-01"}), token)
	require.Equal(t, http.StatusCreated, resp.Code, "create budget failed: %s", resp.Body.String())
	var budgetOut budgetResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &budgetOut))

	// a second Food/monthly budget must be rejected
	resp = performRequest(r, http.MethodPost, "/api/budgets",
		jsonBody(t, map[string]any{"category": "Food", "limit": 300, "period": "monthly", "startDate": "2024-01-01"}), token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// expenses inside January 2024 totaling 150, plus noise outside the
	// window and in another category
	for _, e := range []map[string]any{
		{"title": "groceries", "amount": 100, "category": "Food", "date": "2024-01-05"},
		{"title": "dinner", "amount": 50, "category": "Food", "date": "2024-01-18"},
		{"title": "groceries feb", "amount": 999, "category": "Food", "date": "2024-02-02"},
		{"title": "fuel", "amount": 80, "category": "Transport", "date": "2024-01-10"},
	} {
		resp = performRequest(r, http.MethodPost, "/api/expenses", jsonBody(t, e), token)
		require.Equal(t, http.StatusCreated, resp.Code, "create expense failed: %s", resp.Body.String())
	}

	// derived status as of 2024-01-20: only the two January Food expenses count
	var budget models.Budget
	require.NoError(t, db.First(&budget, budgetOut.ID).Error)
	status, err := budgetStatus(budget, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 150.0, status.TotalSpent)
	assert.Equal(t, 50.0, status.Remaining)
	assert.InDelta(t, 75.0, status.UtilizationPercentage, 1e-9)
	assert.Equal(t, "Under Budget", status.StatusLabel)

	// status endpoint returns one entry per budget
	resp = performRequest(r, http.MethodGet, "/api/budgets/status/all", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	var statuses []budgetStatusResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &statuses))
	require.Len(t, statuses, 1)
	assert.Equal(t, "Food", statuses[0].Category)

	// summaries
	for _, path := range []string{
		"/api/expenses/summary/categories",
		"/api/expenses/summary/monthly",
		"/api/expenses/summary/yearly",
		"/api/expenses/summary/by-month/2024/1",
		"/api/expenses/summary/date-range?start=2024-01-01&end=2024-02-01",
	} {
		resp = performRequest(r, http.MethodGet, path, nil, token)
		assert.Equal(t, http.StatusOK, resp.Code, "summary %s failed: %s", path, resp.Body.String())
	}

	// income round trip
	resp = performRequest(r, http.MethodPost, "/api/incomes",
		jsonBody(t, map[string]any{"title": "salary", "amount": 3000, "category": "Salary", "date": "2024-01-01", "isRecurring": true, "recurringFrequency": "monthly"}), token)
	require.Equal(t, http.StatusCreated, resp.Code, "create income failed: %s", resp.Body.String())
	resp = performRequest(r, http.MethodGet, "/api/incomes", nil, token)
	assert.Equal(t, http.StatusOK, resp.Code)

	// unauthorized access to a protected endpoint is 401
	resp = performRequest(r, http.MethodGet, "/api/expenses", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// logout clears the cookie
	resp = performRequest(r, http.MethodGet, "/api/User/logout", nil, token)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestOwnershipIsolation(t *testing.T) {
	r := setupTestServer(t)

	_, tokenA := registerAndLogin(t, r, uniqueEmail("owner"))
	_, tokenB := registerAndLogin(t, r, uniqueEmail("intruder"))

	resp := performRequest(r, http.MethodPost, "/api/expenses",
		jsonBody(t, map[string]any{"title": "private", "amount": 42, "category": "Misc", "date": "2024-03-01"}), tokenA)
	require.Equal(t, http.StatusCreated, resp.Code)
	var exp expenseResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &exp))

	path := fmt.Sprintf("/api/expenses/%d", exp.ID)

	// user B must never see, modify, or delete user A's record
	resp = performRequest(r, http.MethodGet, path, nil, tokenB)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = performRequest(r, http.MethodPut, path,
		jsonBody(t, map[string]any{"title": "stolen", "amount": 1, "category": "Misc"}), tokenB)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = performRequest(r, http.MethodDelete, path, nil, tokenB)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// the owner still can
	resp = performRequest(r, http.MethodGet, path, nil, tokenA)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = performRequest(r, http.MethodDelete, path, nil, tokenA)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = performRequest(r, http.MethodGet, path, nil, tokenA)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestProfileUpdate(t *testing.T) {
	r := setupTestServer(t)

	_, token := registerAndLogin(t, r, uniqueEmail("profile"))

	resp := performRequest(r, http.MethodGet, "/api/User/profile", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(r, http.MethodPut, "/api/User/profile",
		jsonBody(t, map[string]string{"name": "Renamed User"}), token)
	require.Equal(t, http.StatusOK, resp.Code)
	var out userResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Renamed User", out.Name)

	// malformed email is rejected
	resp = performRequest(r, http.MethodPut, "/api/User/profile",
		jsonBody(t, map[string]string{"email": "not-an-email"}), token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
