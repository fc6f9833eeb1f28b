package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bite-reviews/internal/dto/request"
	"bite-reviews/internal/dto/response"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPassword) {
			utils.ResponseUnauthorized(w, "Incorrect password. Please try again.")
			return
		}
		h.log.Error("Failed to log in", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response.AdminLoginResponse{Token: token})
}

// Logout handles POST /api/admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		utils.ResponseBadRequest(w, "No token provided", nil)
		return
	}

	h.service.Logout(r.Context(), token)

	utils.ResponseSuccess(w, "Logged out", nil)
}
