package users

import (
	"log"
	"net/http"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/services"
	"github.com/ketoo27/Evolution-project/utils"
)

// GetStreakHandler reports both streak representations side by side: the
// stored counter maintained by the rollover and a recomputation from raw
// tracker rows. They can legitimately differ between rollovers.
func GetStreakHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		log.Printf("[streak] DB error loading user %d: %v", userID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	recomputed, err := services.RecomputeHabitStreak(database.DB, userID, time.Now())
	if err != nil {
		log.Printf("[streak] recompute error for user %d: %v", userID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Streak retrieved",
		Data: map[string]interface{}{
			"habit_streak":      user.HabitStreak,
			"recomputed_streak": recomputed,
		},
	})
}
