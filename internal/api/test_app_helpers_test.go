package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gearbox-app/gearbox/internal/db"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "gearbox-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, cookie string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	_ = response.Body.Close()
	return response, responseBody
}

func decodeJSON(t *testing.T, body []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %s: %v", string(body), err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string, extra map[string]any) string {
	t.Helper()

	payload := map[string]any{
		"email":     email,
		"password":  "roadtrip42",
		"full_name": "Test User",
	}
	for key, value := range extra {
		payload[key] = value
	}

	response, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, response.StatusCode, string(body))
	}
	return authCookieFromResponse(t, response)
}

func authCookieFromResponse(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("no auth cookie in response")
	return ""
}

func createTestVehicle(t *testing.T, app *fiber.App, cookie string, overrides map[string]any) uint {
	t.Helper()

	payload := map[string]any{
		"make":            "Honda",
		"model":           "Civic",
		"year":            2019,
		"current_mileage": 50200,
		"unit":            "miles",
	}
	for key, value := range overrides {
		payload[key] = value
	}

	response, body := doJSON(t, app, http.MethodPost, "/api/vehicles", cookie, payload)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create vehicle: status %d, body %s", response.StatusCode, string(body))
	}

	var vehicle struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, body, &vehicle)
	if vehicle.ID == 0 {
		t.Fatalf("vehicle id missing in %s", string(body))
	}
	return vehicle.ID
}

func upgradeToPaid(t *testing.T, app *fiber.App, cookie string) {
	t.Helper()

	response, body := doJSON(t, app, http.MethodPatch, "/api/auth/me", cookie, map[string]any{
		"subscription_tier": "paid",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("upgrade tier: status %d, body %s", response.StatusCode, string(body))
	}
}

func bodyContains(body []byte, needle string) bool {
	return strings.Contains(string(body), needle)
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
