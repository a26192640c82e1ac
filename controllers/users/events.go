package users

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/middleware"
	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type CreateEventRequest struct {
	Subject       string  `json:"subject" validate:"required"`
	Location      *string `json:"location"`
	StartTime     string  `json:"start_time" validate:"required"`
	EndTime       string  `json:"end_time" validate:"required"`
	Description   *string `json:"description"`
	CategoryColor *string `json:"category_color"`
}

type UpdateEventRequest struct {
	Subject       *string `json:"subject"`
	Location      *string `json:"location"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Description   *string `json:"description"`
	CategoryColor *string `json:"category_color"`
}

func parseEventTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func findOwnedEvent(w http.ResponseWriter, r *http.Request, userID uint) (*models.Event, bool) {
	id := mux.Vars(r)["id"]
	var event models.Event
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Event not found"})
		} else {
			log.Printf("[events] DB error loading event %s: %v", id, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return nil, false
	}
	return &event, true
}

func CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateEventRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	start, err := parseEventTime(req.StartTime)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "start_time must be an RFC3339 timestamp"})
		return
	}
	end, err := parseEventTime(req.EndTime)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "end_time must be an RFC3339 timestamp"})
		return
	}
	if !end.After(start) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "end_time must be after start_time"})
		return
	}

	event := models.Event{
		UserID:        userID,
		Subject:       req.Subject,
		Location:      req.Location,
		StartTime:     start,
		EndTime:       end,
		Description:   req.Description,
		CategoryColor: req.CategoryColor,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		log.Printf("[events] DB Create error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create event"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Event created", Data: event})
}

func ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	q := database.DB.Where("user_id = ?", userID)
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := parseEventTime(from); err == nil {
			q = q.Where("end_time >= ?", t)
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := parseEventTime(to); err == nil {
			q = q.Where("start_time <= ?", t)
		}
	}

	var events []models.Event
	if err := q.Order("start_time ASC").Find(&events).Error; err != nil {
		log.Printf("[events] DB list error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Events retrieved", Data: events})
}

func UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req UpdateEventRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	event, ok := findOwnedEvent(w, r, userID)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Subject != nil {
		if *req.Subject == "" {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Subject cannot be empty"})
			return
		}
		updates["subject"] = *req.Subject
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryColor != nil {
		updates["category_color"] = *req.CategoryColor
	}

	start, end := event.StartTime, event.EndTime
	if req.StartTime != nil {
		t, err := parseEventTime(*req.StartTime)
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "start_time must be an RFC3339 timestamp"})
			return
		}
		start = t
		updates["start_time"] = t
	}
	if req.EndTime != nil {
		t, err := parseEventTime(*req.EndTime)
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "end_time must be an RFC3339 timestamp"})
			return
		}
		end = t
		updates["end_time"] = t
	}
	if !end.After(start) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "end_time must be after start_time"})
		return
	}

	if len(updates) > 0 {
		if err := database.DB.Model(event).Updates(updates).Error; err != nil {
			log.Printf("[events] DB update error for event %d: %v", event.ID, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update event"})
			return
		}
		if err := database.DB.First(event, event.ID).Error; err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Event updated", Data: event})
}

func DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	event, ok := findOwnedEvent(w, r, userID)
	if !ok {
		return
	}

	if err := database.DB.Delete(event).Error; err != nil {
		log.Printf("[events] DB delete error for event %d: %v", event.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to delete event"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Event deleted"})
}
