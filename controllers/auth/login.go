package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/services"
	"github.com/ketoo27/Evolution-project/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,pwdmin"`
}

const accessTokenTTL = 15 * time.Minute

// LoginHandler authenticates the user and, before responding, runs the daily
// habit rollover and the badge evaluation for the new day. Both run
// synchronously; the response reflects the rolled-over state.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid username or password"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if locked, retry := middleware.IsAccountLocked(user.ID); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{Success: false, Message: "Too many login attempts, please try again later", Data: map[string]interface{}{"retry_after_seconds": int(retry.Seconds())}})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		middleware.RecordFailedLogin(user.ID)
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	middleware.ResetFailedLogin(user.ID)

	// New-day rollover: finalize yesterday's trackers, update the streak and
	// materialize today's trackers and habit cards. Idempotent per day.
	today := time.Now()
	if err := services.RunDailyRollover(db, &user, today); err != nil {
		log.Printf("[login] rollover failed for user %d: %v", user.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	// Badge evaluation runs against the rolled-over aggregates. A missing
	// catalog entry is a configuration error; it is reported in the logs and
	// must not block the login.
	if err := services.CheckAndAwardBadges(db, &user); err != nil {
		log.Printf("[login] badge evaluation for user %d: %v", user.ID, err)
	}

	accessToken, err := utils.GenerateAccessTokenWithExpiry(user.ID, accessTokenTTL)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Login failed"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful!",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"access_expire": time.Now().Add(accessTokenTTL).UTC().Format(time.RFC3339),
			"refresh_token": refreshToken,
			"user": map[string]interface{}{
				"id":           user.ID,
				"username":     user.Username,
				"email":        user.Email,
				"name":         user.Name,
				"country":      user.Country,
				"bio":          user.Bio,
				"habit_streak": user.HabitStreak,
			},
		},
	})
}
