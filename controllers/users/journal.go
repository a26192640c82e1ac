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

	"gorm.io/gorm"
)

type CreateJournalRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateJournalEntryHandler creates today's journal entry. One entry per
// calendar day; a second attempt on the same day is rejected.
func CreateJournalEntryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateJournalRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	dayStart := services.DateOnly(time.Now())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var existing models.JournalEntry
	err := database.DB.Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		First(&existing).Error
	if err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "You have already written a journal entry today"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[journal] DB error checking today's entry: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	entry := models.JournalEntry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("[journal] DB Create error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create journal entry"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Journal entry created", Data: entry})
}

func ListJournalEntriesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var entries []models.JournalEntry
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error; err != nil {
		log.Printf("[journal] DB list error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Journal entries retrieved", Data: entries})
}

// TodayJournalEntryHandler returns today's entry, if one was written.
func TodayJournalEntryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	dayStart := services.DateOnly(time.Now())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var entry models.JournalEntry
	err := database.DB.Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "No journal entry for today"})
		} else {
			log.Printf("[journal] DB error loading today's entry: %v", err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Journal entry retrieved", Data: entry})
}
