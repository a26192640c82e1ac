package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/utils"
)

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshHandler exchanges a valid refresh token for a new access token and a
// new refresh token. The presented token is revoked so each refresh token is
// single-use.
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	rt, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid or expired refresh token"})
		return
	}

	// Rotate: revoke the old token before issuing a new pair.
	if err := database.DB.Model(rt).Update("revoked", true).Error; err != nil {
		log.Printf("[refresh] failed to revoke old token: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	accessToken, err := utils.GenerateAccessTokenWithExpiry(rt.UserID, accessTokenTTL)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create token"})
		return
	}
	newRefresh, err := utils.GenerateRefreshToken(rt.UserID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Token refreshed",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"access_expire": time.Now().Add(accessTokenTTL).UTC().Format(time.RFC3339),
			"refresh_token": newRefresh,
		},
	})
}
