package web

import (
	"net/http"
	"strings"

	"academy/internal/domain/user"
)

// loginRequest is the body of POST /api/login.
type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// handleLogin handles POST /api/login.
// Any email is accepted; unknown emails sign in as a session-only user with the chosen role.
func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(w, user.ErrEmptyEmail)
		return
	}
	role := req.Role
	if role == "" {
		role = user.RoleAdmin
	}
	if !user.IsValidRole(role) {
		writeError(w, user.ErrInvalidRole)
		return
	}
	snap := s.Store.Authenticate(r.Context(), email, role)
	writeJSON(w, http.StatusOK, snap.CurrentUser)
}

// handleLogout handles POST /api/logout
func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Store.EndSession(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// handleMe handles GET /api/me. Anonymous callers get null.
func (s *server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.Snapshot().CurrentUser)
}
