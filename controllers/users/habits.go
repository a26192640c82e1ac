package users

import (
	"errors"
	"log"
	"net/http"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type CreateHabitRequest struct {
	HabitName        string  `json:"habit_name" validate:"required"`
	HabitDescription *string `json:"habit_description"`
}

type UpdateHabitRequest struct {
	HabitName        *string `json:"habit_name"`
	HabitDescription *string `json:"habit_description"`
}

func findOwnedHabit(w http.ResponseWriter, r *http.Request, userID uint) (*models.HabitList, bool) {
	id := mux.Vars(r)["id"]
	var habit models.HabitList
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Habit not found"})
		} else {
			log.Printf("[habits] DB error loading habit %s: %v", id, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return nil, false
	}
	return &habit, true
}

// CreateHabitHandler registers a new habit. Trackers and cards for it appear
// at the next rollover; nothing is materialized here.
func CreateHabitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateHabitRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	habit := models.HabitList{
		UserID:           userID,
		HabitName:        req.HabitName,
		HabitDescription: req.HabitDescription,
	}
	if err := database.DB.Create(&habit).Error; err != nil {
		log.Printf("[habits] DB Create error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create habit"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Habit created", Data: habit})
}

func ListHabitsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var habits []models.HabitList
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&habits).Error; err != nil {
		log.Printf("[habits] DB list error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Habits retrieved", Data: habits})
}

func UpdateHabitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req UpdateHabitRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	habit, ok := findOwnedHabit(w, r, userID)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.HabitName != nil {
		if *req.HabitName == "" {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Habit name cannot be empty"})
			return
		}
		updates["habit_name"] = *req.HabitName
	}
	if req.HabitDescription != nil {
		updates["habit_description"] = *req.HabitDescription
	}

	if len(updates) > 0 {
		if err := database.DB.Model(habit).Updates(updates).Error; err != nil {
			log.Printf("[habits] DB update error for habit %d: %v", habit.ID, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update habit"})
			return
		}
		if err := database.DB.First(habit, habit.ID).Error; err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Habit updated", Data: habit})
}

// DeleteHabitHandler removes a habit along with its trackers and any task
// cards generated for them.
func DeleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	habit, ok := findOwnedHabit(w, r, userID)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var trackerIDs []uint
		if err := tx.Model(&models.HabitTracker{}).Where("habit_id = ?", habit.ID).
			Pluck("id", &trackerIDs).Error; err != nil {
			return err
		}
		if len(trackerIDs) > 0 {
			if err := tx.Where("tracker_id IN ?", trackerIDs).Delete(&models.TaskCard{}).Error; err != nil {
				return err
			}
			if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.HabitTracker{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(habit).Error
	})
	if err != nil {
		log.Printf("[habits] DB delete error for habit %d: %v", habit.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to delete habit"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Habit deleted"})
}
