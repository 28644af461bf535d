package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"growbit/internal/models"
	"growbit/internal/service"
	"growbit/internal/store"

	"github.com/gin-gonic/gin"
)

const testTokenSecret = "handlers-test-signing-key"

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.Migrate(); err != nil {
		t.Fatal("Failed to run migrations:", err)
	}

	svc := service.New(st, testTokenSecret, time.Hour)

	r := gin.New()
	SetupRoutes(r, svc)
	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatal("Failed to encode request body:", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) (string, string) {
	w := performRequest(t, r, http.MethodPost, "/api/register", models.RegisterRequest{
		Username: username,
		Password: "password1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Registration failed with status %d: %s", w.Code, w.Body.String())
	}

	w = performRequest(t, r, http.MethodPost, "/api/login", models.LoginRequest{
		Username: username,
		Password: "password1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	if resp.Token == "" || resp.UserID == "" {
		t.Fatalf("Login response missing token or userId: %+v", resp)
	}
	return resp.UserID, resp.Token
}

func createCategory(t *testing.T, r *gin.Engine, userID, name, colorCode string) models.CategoryResponse {
	w := performRequest(t, r, http.MethodPost, "/api/"+userID+"/categories", models.CategoryRequest{
		Name:      name,
		ColorCode: colorCode,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Category creation failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp models.CategoryResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestRegistrationAndLoginFlow(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/api/register", models.RegisterRequest{
		Username: "alice",
		Password: "password1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on registration, got %d: %s", w.Code, w.Body.String())
	}
	var regResp models.RegisterResponse
	decodeBody(t, w, &regResp)
	if regResp.Error {
		t.Errorf("Expected error:false, got %+v", regResp)
	}

	// Same username again: conflict
	w = performRequest(t, r, http.MethodPost, "/api/register", models.RegisterRequest{
		Username: "alice",
		Password: "password1",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate username, got %d", w.Code)
	}
	decodeBody(t, w, &regResp)
	if !regResp.Error || regResp.Reason == "" {
		t.Errorf("Expected error envelope with a reason, got %+v", regResp)
	}

	w = performRequest(t, r, http.MethodPost, "/api/login", models.LoginRequest{
		Username: "alice",
		Password: "password1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on login, got %d: %s", w.Code, w.Body.String())
	}
	var loginResp models.LoginResponse
	decodeBody(t, w, &loginResp)
	if loginResp.Token == "" {
		t.Error("Expected a non-empty token on login")
	}

	// Wrong password: 401 and no token
	w = performRequest(t, r, http.MethodPost, "/api/login", models.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 on wrong password, got %d", w.Code)
	}
	loginResp = models.LoginResponse{}
	decodeBody(t, w, &loginResp)
	if loginResp.Token != "" {
		t.Error("No token may be issued on a wrong password")
	}

	// Unknown user: 400
	w = performRequest(t, r, http.MethodPost, "/api/login", models.LoginRequest{
		Username: "nobody",
		Password: "password1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on unknown user, got %d", w.Code)
	}
}

func TestRegisterValidationStatus(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/api/register", models.RegisterRequest{
		Username: "alice",
		Password: "short",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 on short password, got %d", w.Code)
	}

	w = performRequest(t, r, http.MethodPost, "/api/register", models.RegisterRequest{
		Username: "",
		Password: "password1",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 on empty username, got %d", w.Code)
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "alice",
		"password": "password1",
		"isAdmin":  true,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for unknown field on register, got %d", w.Code)
	}

	userID, _ := registerAndLogin(t, r, "bob")
	w = performRequest(t, r, http.MethodPost, "/api/"+userID+"/categories", map[string]interface{}{
		"name":      "Work",
		"colorCode": "FF0000",
		"owner":     "someone-else",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown field on category creation, got %d", w.Code)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	r := setupTestRouter(t)
	userID, _ := registerAndLogin(t, r, "alice")

	category := createCategory(t, r, userID, "Work", "FF0000")
	if category.ColorCode != "#FF0000" {
		t.Errorf("Expected normalized color code '#FF0000', got %s", category.ColorCode)
	}
	if category.Name != "Work" {
		t.Errorf("Expected name 'Work', got %s", category.Name)
	}

	// Case-insensitive duplicate for the same user
	w := performRequest(t, r, http.MethodPost, "/api/"+userID+"/categories", models.CategoryRequest{
		Name:      "work",
		ColorCode: "00FF00",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate name, got %d", w.Code)
	}

	// Same name for another user succeeds
	otherID, _ := registerAndLogin(t, r, "bob")
	createCategory(t, r, otherID, "Work", "FF0000")

	// Listing returns exactly Alice's category
	w = performRequest(t, r, http.MethodGet, "/api/"+userID+"/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 listing categories, got %d", w.Code)
	}
	var categories []models.CategoryResponse
	decodeBody(t, w, &categories)
	if len(categories) != 1 || categories[0].Name != "Work" {
		t.Errorf("Expected exactly one category named 'Work', got %+v", categories)
	}

	// Invalid color code
	w = performRequest(t, r, http.MethodPost, "/api/"+userID+"/categories", models.CategoryRequest{
		Name:      "Rest",
		ColorCode: "GG0000",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on invalid color code, got %d", w.Code)
	}

	// Malformed userId path segment
	w = performRequest(t, r, http.MethodGet, "/api/not-a-uuid/categories", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on malformed userId, got %d", w.Code)
	}
}

func TestListCategoriesEmptyArray(t *testing.T) {
	r := setupTestRouter(t)
	userID, _ := registerAndLogin(t, r, "alice")

	w := performRequest(t, r, http.MethodGet, "/api/"+userID+"/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
		t.Errorf("Expected an empty JSON array, got %s", body)
	}
}

func TestDeleteCategory(t *testing.T) {
	r := setupTestRouter(t)
	aliceID, _ := registerAndLogin(t, r, "alice")
	bobID, _ := registerAndLogin(t, r, "bob")

	category := createCategory(t, r, aliceID, "Work", "FF0000")
	categoryID := category.ID.String()

	// Bob cannot delete Alice's category
	w := performRequest(t, r, http.MethodDelete, "/api/"+bobID+"/categories/"+categoryID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 deleting a foreign category, got %d", w.Code)
	}

	// Still listed for Alice
	w = performRequest(t, r, http.MethodGet, "/api/"+aliceID+"/categories", nil)
	var categories []models.CategoryResponse
	decodeBody(t, w, &categories)
	if len(categories) != 1 {
		t.Fatalf("Expected Alice's category to survive, got %+v", categories)
	}

	// Owner deletes it and receives the snapshot DTO
	w = performRequest(t, r, http.MethodDelete, "/api/"+aliceID+"/categories/"+categoryID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on delete, got %d: %s", w.Code, w.Body.String())
	}
	var snapshot models.CategoryResponse
	decodeBody(t, w, &snapshot)
	if snapshot.Name != "Work" || snapshot.ColorCode != "#FF0000" {
		t.Errorf("Unexpected snapshot: %+v", snapshot)
	}

	// Gone now
	w = performRequest(t, r, http.MethodDelete, "/api/"+aliceID+"/categories/"+categoryID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after deletion, got %d", w.Code)
	}

	// Malformed category id is a 400, not a 404
	w = performRequest(t, r, http.MethodDelete, "/api/"+aliceID+"/categories/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on malformed categoryId, got %d", w.Code)
	}
}

func TestItemCreation(t *testing.T) {
	r := setupTestRouter(t)
	aliceID, _ := registerAndLogin(t, r, "alice")
	bobID, _ := registerAndLogin(t, r, "bob")

	category := createCategory(t, r, aliceID, "Health", "FF0000")
	itemsPath := "/api/" + aliceID + "/categories/" + category.ID.String() + "/items"

	description := "20 push-ups every morning"
	w := performRequest(t, r, http.MethodPost, itemsPath, models.ItemRequest{
		Title:       "Push-ups",
		Description: &description,
		StartDate:   "2025-10-10T07:00:00Z",
		Frequency:   "daily",
		GoalDays:    30,
		CategoryID:  category.ID.String(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 creating item, got %d: %s", w.Code, w.Body.String())
	}
	var item models.ItemResponse
	decodeBody(t, w, &item)
	if item.Title != "Push-ups" || item.Frequency != models.FrequencyDaily || item.GoalDays != 30 {
		t.Errorf("Unexpected item: %+v", item)
	}
	if item.CompletedDays != 0 || item.IsCompleted {
		t.Errorf("New item must have zeroed progress, got %+v", item)
	}

	// Missing title
	w = performRequest(t, r, http.MethodPost, itemsPath, models.ItemRequest{
		StartDate:  "2025-10-10T07:00:00Z",
		Frequency:  "daily",
		GoalDays:   30,
		CategoryID: category.ID.String(),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on missing title, got %d", w.Code)
	}

	// goalDays 0
	w = performRequest(t, r, http.MethodPost, itemsPath, models.ItemRequest{
		Title:      "Push-ups",
		StartDate:  "2025-10-10T07:00:00Z",
		Frequency:  "daily",
		GoalDays:   0,
		CategoryID: category.ID.String(),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on goalDays 0, got %d", w.Code)
	}

	// Bob cannot create items under Alice's category
	w = performRequest(t, r, http.MethodPost, "/api/"+bobID+"/categories/"+category.ID.String()+"/items", models.ItemRequest{
		Title:      "Sneaky",
		StartDate:  "2025-10-10T07:00:00Z",
		Frequency:  "daily",
		GoalDays:   30,
		CategoryID: category.ID.String(),
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for a foreign category, got %d", w.Code)
	}

	// Items list for the category
	w = performRequest(t, r, http.MethodGet, itemsPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 listing items, got %d", w.Code)
	}
	var items []models.ItemResponse
	decodeBody(t, w, &items)
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}

	// Single item via the full chain
	w = performRequest(t, r, http.MethodGet, itemsPath+"/"+item.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 fetching item, got %d", w.Code)
	}
}

func TestBearerTokenMiddleware(t *testing.T) {
	r := setupTestRouter(t)
	userID, tok := registerAndLogin(t, r, "alice")

	// A valid bearer token passes through
	req := httptest.NewRequest(http.MethodGet, "/api/"+userID+"/categories", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with a valid token, got %d", w.Code)
	}

	// A garbage token is rejected before the handler runs
	req = httptest.NewRequest(http.MethodGet, "/api/"+userID+"/categories", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with an invalid token, got %d", w.Code)
	}
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
