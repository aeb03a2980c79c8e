package handlers

import (
	"encoding/json"
	"net/http"

	"rental-backend/internal/auth"
	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

type AuthHandler struct {
	Service     *services.UserService
	TOTPService *services.TOTPService
	JWT         *auth.JWTManager
}

func NewAuthHandler(s *services.UserService, totpService *services.TOTPService, jwt *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		Service:     s,
		TOTPService: totpService,
		JWT:         jwt,
	}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.JWT.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.JSON(w, http.StatusCreated, &models.AuthResponse{Token: token, User: user})
}

// Login handles step 1 of authentication. Accounts with 2FA enabled get a
// short-lived temp token to exchange together with a TOTP code.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	if user.TOTPEnabled {
		tempToken, err := h.JWT.GenerateTempToken(user)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		utils.JSON(w, http.StatusOK, &models.TwoFactorPendingResponse{
			TwoFactorRequired: true,
			TempToken:         tempToken,
		})
		return
	}

	token, err := h.JWT.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	utils.JSON(w, http.StatusOK, &models.AuthResponse{Token: token, User: user})
}

// VerifyTwoFactor handles step 2: the temp token plus a TOTP code.
func (h *AuthHandler) VerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TempToken string `json:"temp_token"`
		Code      string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, err := h.JWT.ValidateTempToken(req.TempToken)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if err := h.TOTPService.Verify(r.Context(), claims.UserID, req.Code); err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := h.Service.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	}

	token, err := h.JWT.GenerateToken(user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	utils.JSON(w, http.StatusOK, &models.AuthResponse{Token: token, User: user})
}
