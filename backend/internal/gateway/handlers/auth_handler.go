package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sirms/backend/internal/auth"
	"sirms/backend/internal/gateway/util"
	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/shared"
)

const msgInvalidLogin = "Invalid Identification or Password!"

// AuthHandler handles login, logout and the landing route.
type AuthHandler struct {
	Authenticator *auth.Authenticator
	Sessions      *auth.SessionManager
	CookieSecure  bool
	Timeout       time.Duration
	Logger        *zap.Logger
}

// RESTLoginRequest mirrors the expected JSON input for /login
type RESTLoginRequest struct {
	Role     string `json:"role" validate:"max=32"`
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

// actorFrom maps the request identity onto the wire actor.
func actorFrom(r *http.Request) *pb.Actor {
	id := util.IdentityFrom(r.Context())
	return &pb.Actor{Role: string(id.Role), StudentId: id.StudentID}
}

func withTimeout(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), d)
}

// dashboardFor returns the landing page for an authenticated identity.
func dashboardFor(id shared.Identity) string {
	if id.IsAdmin() {
		return "/admin_dashboard"
	}
	return "/student_dashboard"
}

// Home handles GET /
// Reports who the caller currently is.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	id := util.IdentityFrom(r.Context())
	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"role":       string(id.Role),
		"student_id": id.StudentID,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var reqBody RESTLoginRequest
	if err := util.DecodeAndValidate(r, &reqBody); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// 1. Check credentials (students are verified by the Records Service)
	ctx, cancel := withTimeout(r, h.Timeout)
	defer cancel()

	identity, err := h.Authenticator.Authenticate(ctx, reqBody.Role, reqBody.Username, reqBody.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.WriteJSONError(w, http.StatusUnauthorized, msgInvalidLogin)
			return
		}
		util.HandleGRPCError(w, err)
		return
	}

	// 2. Issue the session
	token, expires, err := h.Sessions.Issue(identity)
	if err != nil {
		h.Logger.Error("failed to issue session", zap.Error(err))
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     util.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.Logger.Info("login", zap.String("role", string(identity.Role)), zap.String("student_id", identity.StudentID))

	// 3. Respond
	util.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"token":      token,
		"role":       string(identity.Role),
		"student_id": identity.StudentID,
		"redirect":   dashboardFor(identity),
	})
}

// Logout handles GET /logout
// Sessions are stateless, so clearing the cookie ends the session for this client.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     util.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	util.RedirectHome(w, r)
}
