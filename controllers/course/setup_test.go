package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	instructorRoutes "lms/routers/instructorRoutes"
	studentRoutes "lms/routers/studentRoutes"
)

var emailSeq atomic.Uint64

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

// registerUser creates an account with a unique email and returns its token
func registerUser(t *testing.T, app *fiber.App, name, role string) string {
	t.Helper()

	email := fmt.Sprintf("user%d@example.com", emailSeq.Add(1))
	resp, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	return body["data"].(map[string]interface{})["token"].(string)
}

// createCourse posts a course as the given instructor and returns its id
func createCourse(t *testing.T, app *fiber.App, instructorToken string, overrides fiber.Map) int {
	t.Helper()

	payload := fiber.Map{
		"title":       "Go for Backend Engineers",
		"description": "Build production HTTP services in Go.",
		"category":    "Programming",
		"level":       "Intermediate",
		"syllabus": []string{
			"Introduction", "HTTP basics", "Routing", "Databases",
			"Auth", "Testing", "Deployment", "Observability",
		},
	}
	for k, v := range overrides {
		payload[k] = v
	}

	resp, body := doJSON(t, app, "POST", "/courses", instructorToken, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	course := body["data"].(map[string]interface{})["course"].(map[string]interface{})
	return int(course["ID"].(float64))
}
