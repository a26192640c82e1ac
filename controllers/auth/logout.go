package auth

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/utils"
)

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutHandler revokes the current access token's jti and, when supplied,
// the refresh token. Safe to call with an already revoked token.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	// Revoke the presented access token so it cannot be reused before expiry.
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if _, claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			jti, _ := claims["jti"].(string)
			ttl := time.Hour
			if expRaw, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(expRaw), 0)); until > 0 {
					ttl = until
				}
			}
			if err := utils.RevokeJTI(jti, ttl); err != nil {
				log.Printf("[logout] failed to revoke jti: %v", err)
			}
		}
	}

	if req.RefreshToken != "" {
		if err := database.DB.Model(&models.RefreshToken{}).
			Where("id = ?", req.RefreshToken).
			Update("revoked", true).Error; err != nil {
			log.Printf("[logout] failed to revoke refresh token: %v", err)
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
}

// LogoutAllHandler revokes every active refresh token belonging to the
// authenticated user. Outstanding access tokens expire on their own.
func LogoutAllHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	res := database.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true)
	if res.Error != nil {
		log.Printf("[logout-all] DB error for user %d: %v", userID, res.Error)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Logged out from all sessions",
		Data:    map[string]interface{}{"revoked_sessions": res.RowsAffected},
	})
}
