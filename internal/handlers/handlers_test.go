package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/onehub-dev/onehub/db"
	"github.com/onehub-dev/onehub/internal/auth"
	"github.com/onehub-dev/onehub/internal/config"
	"github.com/onehub-dev/onehub/internal/handlers"
	"github.com/onehub-dev/onehub/internal/models"
	"github.com/onehub-dev/onehub/internal/router"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	os.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	database, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}, &models.UserPreference{}, &models.RecipeRequest{}))

	db.DB = database

	// Empty config: content clients run in mock mode.
	handlers.Init(config.Config{DefaultCity: "London"}, nil)

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, true, user["is_active"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "dup@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Other",
		"email":    "dup@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decode(t, w)["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "login@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])
}

func TestLoginSucceeds(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "ok@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ok@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestMeIncludesStoredPreferences(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "me@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{
		"news": gin.H{"categories": []string{"technology", "science"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	user := body["user"].(map[string]interface{})
	prefs := user["preferences"].(map[string]interface{})
	news := prefs["news"].(map[string]interface{})
	assert.Equal(t, []interface{}{"technology", "science"}, news["categories"])
}

func TestMeRequiresToken(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSavePreferencesReplacesDocument(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "prefs@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{
		"news": gin.H{"categories": []string{"technology"}},
		"food": gin.H{"cuisines": []string{"italian"}, "dietary": []string{}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second save without the food category drops its row.
	w = doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{
		"news": gin.H{"categories": []string{"science"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	prefs := decode(t, w)["preferences"].(map[string]interface{})
	assert.Contains(t, prefs, "news")
	assert.NotContains(t, prefs, "food")

	news := prefs["news"].(map[string]interface{})
	assert.Equal(t, []interface{}{"science"}, news["categories"])
}

func TestUpdateSingleCategoryLeavesOthers(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "single@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{
		"news": gin.H{"categories": []string{"technology"}},
		"food": gin.H{"cuisines": []string{"italian"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/preferences/food", token, gin.H{
		"cuisines": []string{"thai", "japanese"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "food preferences updated successfully", decode(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/preferences", token, nil)
	prefs := decode(t, w)["preferences"].(map[string]interface{})

	food := prefs["food"].(map[string]interface{})
	assert.Equal(t, []interface{}{"thai", "japanese"}, food["cuisines"])

	news := prefs["news"].(map[string]interface{})
	assert.Equal(t, []interface{}{"technology"}, news["categories"])
}

func TestPreferencesPreserveUnknownOptionIDs(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "legacy@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{
		"news": gin.H{"categories": []string{"technology", "legacy-option"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/preferences", token, nil)
	prefs := decode(t, w)["preferences"].(map[string]interface{})
	news := prefs["news"].(map[string]interface{})
	assert.Equal(t, []interface{}{"technology", "legacy-option"}, news["categories"])
}

func TestNewsServesMockWithoutAPIKey(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "news@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/news", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["is_mock"])
	assert.NotEmpty(t, body["articles"])
}

func TestNewsSearchRequiresQuery(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "search@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/news/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobsDefaultCategory(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "jobs@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/jobs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "technology", body["category"])
	assert.Equal(t, float64(2), body["count"])
}

func TestJobsSearchRequiresQuery(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "jobsearch@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/jobs/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/jobs/search?q=golang", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "golang", decode(t, w)["query"])
}

func TestDealsEcho(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "deals@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/deals?category=books", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "books", decode(t, w)["category"])
}

func TestFoodUsesPreferences(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "food@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{
		"food": gin.H{"cuisines": []string{"thai", "mexican"}, "dietary": []string{"vegan"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/food", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	recs := body["recommendations"].([]interface{})
	require.Len(t, recs, 2)

	first := recs[0].(map[string]interface{})
	assert.Equal(t, "thai", first["cuisine"])
	assert.Equal(t, []interface{}{"vegan"}, first["dietary_info"])
}

func TestRecipeRequestValidation(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "recipes@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/recipe-request", token, gin.H{
		"recipe_name": "",
		"cuisine":     "italian",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/recipe-request", token, gin.H{
		"recipe_name":         "Cacio e Pepe",
		"cuisine":             "italian",
		"dietary_preferences": []string{"vegetarian"},
		"description":         "The real one",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["request_id"])

	var saved models.RecipeRequest
	require.NoError(t, db.DB.Where("request_id = ?", body["request_id"]).First(&saved).Error)
	assert.Equal(t, "Cacio e Pepe", saved.RecipeName)
}

func TestRecipeSearchNoResults(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "noresults@example.com")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(gin.H{"meals": nil})
	}))
	defer server.Close()
	handlers.Meals.BaseURL = server.URL

	w := doJSON(t, r, http.MethodGet, "/api/recipes?query=zzzzzz", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["no_results"])
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["recipes"])
	assert.Equal(t, "zzzzzz", body["query"])
	assert.Contains(t, body["message"], "zzzzzz")
}

func TestHealthIsPublic(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestContentEndpointsRequireAuth(t *testing.T) {
	r := setupTest(t)

	for _, path := range []string{"/api/news", "/api/jobs", "/api/videos", "/api/reddit", "/api/dashboard", "/api/preferences"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, fmt.Sprintf("path %s", path))
	}
}
