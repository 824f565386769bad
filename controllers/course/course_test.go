package courseController_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseRequiresInstructorRole(t *testing.T) {
	app := setupTestApp(t)

	student := registerUser(t, app, "Student", "student")

	resp, body := doJSON(t, app, "POST", "/courses", student, fiber.Map{
		"title":       "Sneaky Course",
		"description": "Should never exist.",
		"category":    "Programming",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["status"])
}

func TestCreateCourseRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/courses", "", fiber.Map{
		"title":       "Anonymous Course",
		"description": "Should never exist.",
		"category":    "Programming",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCourseValidation(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")

	resp, body := doJSON(t, app, "POST", "/courses", instructor, fiber.Map{
		"title":       "Go",
		"description": "X",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	errs := body["data"].(map[string]interface{})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "category")
}

func TestCreateAndFetchCourse(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	courseID := createCourse(t, app, instructor, fiber.Map{"title": "Distributed Systems"})

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/courses/%d", courseID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	course := body["data"].(map[string]interface{})["course"].(map[string]interface{})
	assert.Equal(t, "Distributed Systems", course["title"])
	assert.Equal(t, float64(8), course["totalLessons"]) // derived from syllabus
	assert.Equal(t, float64(0), course["enrolledCount"])
}

func TestUpdateCourseOwnerOnly(t *testing.T) {
	app := setupTestApp(t)

	owner := registerUser(t, app, "Owner", "instructor")
	other := registerUser(t, app, "Other", "instructor")
	courseID := createCourse(t, app, owner, nil)

	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/courses/%d", courseID), other, fiber.Map{
		"title": "Hijacked",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, body := doJSON(t, app, "PUT", fmt.Sprintf("/courses/%d", courseID), owner, fiber.Map{
		"title": "Renamed Course",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	course := body["data"].(map[string]interface{})["course"].(map[string]interface{})
	assert.Equal(t, "Renamed Course", course["title"])
}

func TestDeleteCourseRemovesFromCatalog(t *testing.T) {
	app := setupTestApp(t)

	owner := registerUser(t, app, "Owner", "instructor")
	student := registerUser(t, app, "Student", "student")
	courseID := createCourse(t, app, owner, nil)
	enrollStudent(t, app, student, courseID)

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/courses/%d", courseID), owner, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/courses/%d", courseID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Enrollment went with the course
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/unenroll", courseID), student, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCourseListFilters(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	createCourse(t, app, instructor, fiber.Map{"title": "Kubernetes Deep Dive", "category": "DevOps-Filters"})
	createCourse(t, app, instructor, fiber.Map{"title": "Terraform Basics", "category": "DevOps-Filters"})
	createCourse(t, app, instructor, fiber.Map{"title": "Watercolor Painting", "category": "Art-Filters"})

	resp, body := doJSON(t, app, "GET", "/courses?category=DevOps-Filters", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	assert.Len(t, courses, 2)

	resp, body = doJSON(t, app, "GET", "/courses?category=DevOps-Filters&search=terraform", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	courses = body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "Terraform Basics", courses[0].(map[string]interface{})["title"])
}

func TestInstructorCourseList(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	student := registerUser(t, app, "Student", "student")
	courseID := createCourse(t, app, instructor, fiber.Map{"title": "My Teaching Load"})
	enrollStudent(t, app, student, courseID)

	resp, body := doJSON(t, app, "GET", "/instructor/courses", instructor, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)

	course := courses[0].(map[string]interface{})
	assert.Equal(t, "My Teaching Load", course["title"])
	assert.Equal(t, float64(1), course["enrolledCount"])
}

func TestStudentRegisteredCourses(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	student := registerUser(t, app, "Student", "student")
	courseID := createCourse(t, app, instructor, fiber.Map{"title": "Registered Course"})
	enrollStudent(t, app, student, courseID)

	resp, body := doJSON(t, app, "GET", "/student/courses/registered", student, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "Registered Course", courses[0].(map[string]interface{})["title"])

	// Instructors do not get the student surface
	resp, _ = doJSON(t, app, "GET", "/student/courses/registered", instructor, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
