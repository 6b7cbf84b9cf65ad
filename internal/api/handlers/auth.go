package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ponmalar/snackstore/internal/models"
	"github.com/ponmalar/snackstore/internal/storage"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"` // accepted, never checked
}

// saveProfile writes the user blob. Sign-up and login do exactly the same
// thing; there is no account store and no credential check.
func (s *Storefront) saveProfile(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "email required")
		return
	}
	name := req.Name
	if name == "" {
		name = strings.SplitN(req.Email, "@", 2)[0]
	}
	profile := models.UserProfile{Email: req.Email, Name: name}
	data, err := json.Marshal(profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	if err := s.Blobs.Put(r.Context(), storage.KeyUser, data); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Login handles POST /auth/login.
func (s *Storefront) Login(w http.ResponseWriter, r *http.Request) {
	s.saveProfile(w, r)
}

// SignUp handles POST /auth/signup.
func (s *Storefront) SignUp(w http.ResponseWriter, r *http.Request) {
	s.saveProfile(w, r)
}

// AdminLogin handles POST /admin/login. It unconditionally sets the
// presence-only adminAuth flag.
func (s *Storefront) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := s.Blobs.Put(r.Context(), storage.KeyAdminAuth, []byte("true")); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": true})
}

// AdminLogout handles POST /admin/logout.
func (s *Storefront) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Blobs.Delete(r.Context(), storage.KeyAdminAuth); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": false})
}
