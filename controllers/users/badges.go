package users

import (
	"log"
	"net/http"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/utils"
)

// earnedBadgeView joins catalog metadata onto the user's award row.
type earnedBadgeView struct {
	BadgeID     uint   `json:"badge_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	BadgeType   string `json:"badge_type"`
	Icon        string `json:"icon"`
	EarnedDate  string `json:"earned_date"`
}

// ListUserBadgesHandler returns the badges the authenticated user has earned.
// Awards are permanent; this list only ever grows.
func ListUserBadgesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var rows []earnedBadgeView
	err := database.DB.Model(&models.UserBadge{}).
		Select("user_badges.badge_id, badges.title, badges.description, badges.criteria, badges.badge_type, badges.icon, user_badges.earned_date").
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.user_id = ?", userID).
		Order("user_badges.earned_date ASC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[badges] DB list error for user %d: %v", userID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Badges retrieved", Data: rows})
}

// ListBadgeCatalogHandler returns the full badge catalog with display metadata.
func ListBadgeCatalogHandler(w http.ResponseWriter, r *http.Request) {
	var badges []models.Badge
	if err := database.DB.Order("id ASC").Find(&badges).Error; err != nil {
		log.Printf("[badges] DB catalog error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Badge catalog retrieved", Data: badges})
}
