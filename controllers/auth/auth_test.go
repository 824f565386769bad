package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestRegister(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "Ana Student",
		"email":    "ana@example.com",
		"password": "secret123",
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, "student", user["role"]) // default role
	assert.Empty(t, user["password"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "Ben",
		"email":    "ben@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "Ben Again",
		"email":    "ben@example.com",
		"password": "secret456",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists!", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "",
		"email":    "not-an-email",
		"password": "short",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	errs := body["data"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "Cara",
		"email":    "cara@example.com",
		"password": "secret123",
		"role":     "superuser",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errs := body["data"].(map[string]interface{})
	assert.Contains(t, errs, "role")
}

func TestLogin(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "Dan",
		"email":    "dan@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "dan@example.com",
		"password": "secret123",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "eve@example.com",
		"password": "wrongpass",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials!", body["message"])
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "ghost@example.com",
		"password": "whatever",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials!", body["message"])
}
