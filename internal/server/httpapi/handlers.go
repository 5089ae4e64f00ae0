package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mantis/internal/common"
	"github.com/dmitrijs2005/mantis/internal/logging"
	"github.com/dmitrijs2005/mantis/internal/server/models"
	"github.com/dmitrijs2005/mantis/internal/server/services"
	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 100
	maxBodyBytes     = 1 << 20
)

// Users is the part of services.UserService the handlers need.
type Users interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, login, password string) (*services.AuthenticatedUser, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
}

type handlers struct {
	users  Users
	logger logging.Logger
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registrationRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"messages": "Hello world"})
}

func (h *handlers) authenticate(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusBadRequest, "Incorrect email or password")
			return
		}
		h.internal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, user.Public())
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, "The user with this username already exists in the system.")
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.internal(w, r, err)
	}
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", defaultListLimit)
	if !ok {
		return
	}

	users, err := h.users.List(r.Context(), skip, limit)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.internal(w, r, err)
		return
	}

	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusUnprocessableEntity, "user id must be a positive integer")
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.internal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func (h *handlers) testToken(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		unauthorized(w)
		return
	}

	user, err := h.users.CurrentUser(r.Context(), token)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, user.Public())
	case errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusForbidden, "Token has been expired")
	case errors.Is(err, common.ErrInvalidToken):
		unauthorized(w)
	default:
		h.internal(w, r, err)
	}
}

// --- helpers below ---

func (h *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed JSON body")
		return false
	}
	return true
}

func (h *handlers) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error.")
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Could not validate credentials")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
