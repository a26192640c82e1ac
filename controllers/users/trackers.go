package users

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/services"
	"github.com/ketoo27/Evolution-project/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type UpdateTrackerRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

// trackerView joins the habit name onto the tracker row for display.
type trackerView struct {
	models.HabitTracker
	HabitName string `json:"habit_name"`
}

// ListTodayTrackersHandler returns the authenticated user's trackers for the
// current calendar day, with the habit name joined in. Rows exist only after
// a rollover has run today.
func ListTodayTrackersHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	today := services.DateOnly(time.Now())
	var rows []trackerView
	err := database.DB.Model(&models.HabitTracker{}).
		Select("habit_trackers.*, habit_lists.habit_name").
		Joins("JOIN habit_lists ON habit_lists.id = habit_trackers.habit_id").
		Where("habit_lists.user_id = ? AND habit_trackers.tracking_date = ?", userID, today).
		Order("habit_trackers.habit_id ASC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[trackers] DB list error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Trackers retrieved", Data: rows})
}

// UpdateTrackerHandler flips a tracker's completion flag and mirrors the new
// state onto the task card generated for it.
func UpdateTrackerHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req UpdateTrackerRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.IsCompleted == nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "is_completed is required"})
		return
	}

	id := mux.Vars(r)["id"]
	var tracker models.HabitTracker
	err := database.DB.
		Joins("JOIN habit_lists ON habit_lists.id = habit_trackers.habit_id").
		Where("habit_trackers.id = ? AND habit_lists.user_id = ?", id, userID).
		First(&tracker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Tracker not found"})
		} else {
			log.Printf("[trackers] DB error loading tracker %s: %v", id, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tracker).Update("is_completed", *req.IsCompleted).Error; err != nil {
			return err
		}
		return services.SyncHabitToTask(tx, &tracker, *req.IsCompleted)
	})
	if err != nil {
		log.Printf("[trackers] DB update error for tracker %d: %v", tracker.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update tracker"})
		return
	}

	tracker.IsCompleted = *req.IsCompleted
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Tracker updated", Data: tracker})
}
