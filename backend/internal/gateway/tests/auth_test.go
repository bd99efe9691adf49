package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sirms/backend/internal/gateway/util"
	"sirms/backend/internal/shared"
)

func TestGateway_Auth(t *testing.T) {
	env := setupGatewayTestEnv(t)

	t.Run("Home Anonymous", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody(t, rr)
		assert.Equal(t, "", resp["role"])
	})

	t.Run("Admin Login", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/login", map[string]string{
			"role": "admin", "username": "ignored", "password": adminPassword,
		}, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		resp := decodeBody(t, rr)
		assert.Equal(t, "admin", resp["role"])
		assert.Equal(t, "/admin_dashboard", resp["redirect"])
		assert.NotEmpty(t, resp["token"])

		var cookie *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == util.SessionCookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		home := decodeBody(t, env.do(t, http.MethodGet, "/", nil, cookie))
		assert.Equal(t, "admin", home["role"])
	})

	t.Run("Student Login", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/login", map[string]string{
			"role": "student", "username": "2024/001", "password": "123",
		}, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		resp := decodeBody(t, rr)
		assert.Equal(t, "/student_dashboard", resp["redirect"])
		assert.Equal(t, "2024/001", resp["student_id"])
	})

	t.Run("Bearer Token", func(t *testing.T) {
		token, _, err := env.Sessions.Issue(shared.StudentIdentity("2024/001"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		env.Router.ServeHTTP(rr, req)

		resp := decodeBody(t, rr)
		assert.Equal(t, "student", resp["role"])
		assert.Equal(t, "2024/001", resp["student_id"])
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		cases := []map[string]string{
			{"role": "admin", "password": "wrong"},
			{"role": "student", "username": "2024/001", "password": "wrong"},
			{"role": "student", "username": "2099/404", "password": "123"},
			{"role": "student", "username": "", "password": ""},
		}
		for _, body := range cases {
			rr := env.do(t, http.MethodPost, "/login", body, nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Invalid Identification or Password!", decodeBody(t, rr)["message"])
			assert.Empty(t, rr.Result().Cookies())
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rr := httptest.NewRecorder()
		env.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Tampered Cookie Is Anonymous", func(t *testing.T) {
		cookie := &http.Cookie{Name: util.SessionCookieName, Value: "not-a-jwt"}
		resp := decodeBody(t, env.do(t, http.MethodGet, "/", nil, cookie))
		assert.Equal(t, "", resp["role"])
	})

	t.Run("Logout", func(t *testing.T) {
		cookie := env.login(t, "admin", "", adminPassword)
		rr := env.do(t, http.MethodGet, "/logout", nil, cookie)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))

		cleared := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == util.SessionCookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared, "session cookie should be cleared")
	})

	t.Run("Health", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
