package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Admin(t *testing.T) {
	env := setupGatewayTestEnv(t)
	cookie := env.login(t, "admin", "", adminPassword)

	t.Run("Dashboard", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/admin_dashboard", nil, cookie)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		students := decodeBody(t, rr)["students"].([]interface{})
		assert.Len(t, students, 1)
	})

	t.Run("Add Student", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/add_student", map[string]string{
			"matric": "2024/010", "name": "Bob", "level": "100L", "dept": "Physics",
		}, cookie)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Equal(t, "Registered 2024/010 at 100L.", decodeBody(t, rr)["message"])

		rr = env.do(t, http.MethodPost, "/add_student", map[string]string{
			"matric": "2024/010", "name": "Other", "level": "300L",
		}, cookie)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Student already exists.", decodeBody(t, rr)["message"])

		rr = env.do(t, http.MethodPost, "/add_student", map[string]string{"name": "No Matric"}, cookie)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Manage", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/manage/2024/010", nil, cookie)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decodeBody(t, rr)
		assert.Equal(t, "2024/010", resp["matric"])

		rr = env.do(t, http.MethodGet, "/manage/1999/000", nil, cookie)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Student not found!", decodeBody(t, rr)["message"])
	})

	t.Run("Upload Grade", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/upload_grade", map[string]interface{}{
			"matric": "2024/010", "course": "phy101", "units": 3, "score": 48, "target_level": "100L",
		}, cookie)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decodeBody(t, rr)
		assert.Equal(t, "Result uploaded for 2024/010 (100L)", resp["message"])
		result := resp["result"].(map[string]interface{})
		assert.Equal(t, "PHY101", result["course"])
		assert.Equal(t, "D", result["grade"])

		rr = env.do(t, http.MethodPost, "/upload_grade", map[string]interface{}{
			"matric": "2024/999", "course": "PHY101", "units": 3, "score": 48, "target_level": "100L",
		}, cookie)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Student Matric Number not found.", decodeBody(t, rr)["message"])

		rr = env.do(t, http.MethodPost, "/upload_grade", map[string]interface{}{
			"matric": "2024/010", "course": "PHY101", "units": 0, "score": 48, "target_level": "100L",
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete Course", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/delete_course", map[string]interface{}{
			"matric": "2024/010", "level": "100L", "index": 7,
		}, cookie)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, false, decodeBody(t, rr)["removed"])

		rr = env.do(t, http.MethodPost, "/delete_course", map[string]interface{}{
			"matric": "2024/010", "level": "100L", "index": 0,
		}, cookie)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decodeBody(t, rr)
		assert.Equal(t, true, resp["removed"])
		assert.Equal(t, "Course entry removed.", resp["message"])

		rr = env.do(t, http.MethodPost, "/delete_course", map[string]interface{}{
			"matric": "2024/010", "level": "100L",
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete Student", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/delete_student", map[string]string{"matric": "2024/010"}, cookie)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decodeBody(t, rr)
		assert.Equal(t, true, resp["deleted"])
		assert.Equal(t, "2024/010 deleted successfully.", resp["message"])

		rr = env.do(t, http.MethodPost, "/delete_student", map[string]string{"matric": "2024/010"}, cookie)
		require.Equal(t, http.StatusOK, rr.Code)
		resp = decodeBody(t, rr)
		assert.Equal(t, false, resp["deleted"])
		assert.NotContains(t, resp, "message")
	})

	t.Run("Anonymous Mutation Forbidden", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/delete_student", map[string]string{"matric": "2024/001"}, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr = env.do(t, http.MethodGet, "/admin_dashboard", nil, cookie)
		students := decodeBody(t, rr)["students"].([]interface{})
		assert.Len(t, students, 1)
	})
}
