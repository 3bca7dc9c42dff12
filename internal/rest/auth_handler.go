package rest

import (
	"net/http"

	"storefront-be/internal/validate"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *credentialsRequest) Validate() error {
	var errs validate.Errors
	if req.Email == "" {
		errs.Add("email", "is required")
	}
	if len(req.Password) < 8 {
		errs.Add("password", "must be at least 8 characters")
	}
	return errs.Err()
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type userView struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, r, err)
		return
	}

	token, u, err := h.Users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	setAccessCookie(w, token)
	respondJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  userView{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, u, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	setAccessCookie(w, token)
	respondJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  userView{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}

type grantPermissionRequest struct {
	Permission string `json:"permission"`
}

// GrantPermission lets an admin hand a user a named capability, such as
// access to customer order history.
func (h *Handler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	var req grantPermissionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Permission == "" {
		var errs validate.Errors
		errs.Add("permission", "is required")
		respondServiceError(w, r, errs.Err())
		return
	}

	if err := h.Users.GrantPermission(r.Context(), int(id), req.Permission); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func setAccessCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
