package courseController_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificate(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	student := registerUser(t, app, "Student", "student")
	courseID := createCourse(t, app, instructor, nil) // 8 lessons
	enrollStudent(t, app, student, courseID)

	// Not complete yet
	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/certificate", courseID), student, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please complete the course before requesting a certificate!", body["message"])

	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/progress", courseID), student, fiber.Map{
		"completedLessons": []int{0, 1, 2, 3, 4, 5, 6, 7},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/certificate", courseID), student, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	certificate := body["data"].(map[string]interface{})["certificate"].(map[string]interface{})
	assert.NotEmpty(t, certificate["certificateNumber"])

	// Issuing again returns the existing certificate instead of a new one
	resp, body = doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/certificate", courseID), student, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Certificate already issued!", body["message"])

	existing := body["data"].(map[string]interface{})["certificate"].(map[string]interface{})
	assert.Equal(t, certificate["certificateNumber"], existing["certificateNumber"])
}

func TestIssueCertificateRequiresEnrollment(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	student := registerUser(t, app, "Student", "student")
	courseID := createCourse(t, app, instructor, nil)

	resp, _ := doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/certificate", courseID), student, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestIssueCertificateNotOffered(t *testing.T) {
	app := setupTestApp(t)

	instructor := registerUser(t, app, "Instructor", "instructor")
	student := registerUser(t, app, "Student", "student")
	courseID := createCourse(t, app, instructor, fiber.Map{"certificate": false})
	enrollStudent(t, app, student, courseID)

	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/courses/%d/certificate", courseID), student, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "This course does not offer a certificate!", body["message"])
}
