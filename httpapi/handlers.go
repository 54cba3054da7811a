package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/mail"
	"time"

	"github.com/dealshop/accounts/auth"
	"github.com/dealshop/accounts/logger"
	"github.com/dealshop/accounts/user"
)

// minPasswordLen matches the storefront signup form validation.
const minPasswordLen = 5

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func badRequest(w http.ResponseWriter, code string) {
	errorJSON(w, http.StatusBadRequest, code)
}

func unauthorized(w http.ResponseWriter, code string) {
	errorJSON(w, http.StatusUnauthorized, code)
}

func tooMany(w http.ResponseWriter) {
	w.Header().Set("Retry-After", "60")
	errorJSON(w, http.StatusTooManyRequests, "too_many_requests")
}

func serverErr(w http.ResponseWriter) {
	errorJSON(w, http.StatusInternalServerError, "internal_server_error")
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid_json")
		return
	}

	email := user.NormalizeEmail(req.Email)
	if !validEmail(email) {
		badRequest(w, "invalid_email")
		return
	}
	if len(req.Password) < minPasswordLen {
		badRequest(w, "password_too_short")
		return
	}

	usr, err := a.auth.Register(r.Context(), email, req.Password)
	switch {
	case errors.Is(err, user.ErrAlreadyExists):
		errorJSON(w, http.StatusConflict, "email_taken")
		return
	case errors.Is(err, auth.ErrEmailRequired), errors.Is(err, auth.ErrPasswordRequired):
		badRequest(w, "missing_credentials")
		return
	case err != nil:
		a.log.ErrorContext(r.Context(), "signup failed", logger.Error(err))
		serverErr(w)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(usr))
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid_json")
		return
	}

	email := user.NormalizeEmail(req.Email)
	limitKey := "login:" + email + "|" + clientIP(r)

	if a.loginLimit != nil {
		allowed, err := a.loginLimit.Allow(r.Context(), limitKey)
		if err != nil {
			// Fail open: a broken limiter store must not lock customers out.
			a.log.ErrorContext(r.Context(), "rate limiter unavailable", logger.Error(err))
		} else if !allowed {
			tooMany(w)
			return
		}
	}

	usr, err := a.auth.Login(r.Context(), w, email, req.Password)
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, auth.ErrInvalidPassword):
		unauthorized(w, "invalid_credentials")
		return
	case err != nil:
		a.log.ErrorContext(r.Context(), "login failed", logger.Error(err))
		serverErr(w)
		return
	}

	if a.loginLimit != nil {
		if err := a.loginLimit.Reset(r.Context(), limitKey); err != nil {
			a.log.WarnContext(r.Context(), "rate limit reset failed", logger.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, toUserResponse(usr))
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.auth.Logout(r.Context(), w, r); err != nil {
		a.log.ErrorContext(r.Context(), "logout failed", logger.Error(err))
		serverErr(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	_, usr, err := a.auth.CurrentSession(r.Context(), r)
	switch {
	case auth.IsNotAuthenticated(err):
		unauthorized(w, "not_authenticated")
		return
	case err != nil:
		a.log.ErrorContext(r.Context(), "session lookup failed", logger.Error(err))
		serverErr(w)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(usr))
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		if err := a.health(r.Context()); err != nil {
			a.log.ErrorContext(r.Context(), "healthcheck failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
