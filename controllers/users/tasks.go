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

type CreateTaskRequest struct {
	Title    string  `json:"title" validate:"required"`
	Summary  *string `json:"summary"`
	Status   string  `json:"status" validate:"statusok"`
	TaskType string  `json:"task_type" validate:"typeok"`
	Priority string  `json:"priority" validate:"priorityok"`
	DueDate  *string `json:"due_date" validate:"dateymd"`
}

type UpdateTaskRequest struct {
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	Status   *string `json:"status" validate:"statusok"`
	TaskType *string `json:"task_type" validate:"typeok"`
	Priority *string `json:"priority" validate:"priorityok"`
	DueDate  *string `json:"due_date" validate:"dateymd"`
}

// findOwnedTask loads a task by route id scoped to the authenticated user.
// A card belonging to someone else is indistinguishable from a missing one.
func findOwnedTask(w http.ResponseWriter, r *http.Request, userID uint) (*models.TaskCard, bool) {
	id := mux.Vars(r)["id"]
	var task models.TaskCard
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Task not found"})
		} else {
			log.Printf("[tasks] DB error loading task %s: %v", id, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return nil, false
	}
	return &task, true
}

func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateTaskRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	task := models.TaskCard{
		UserID:   userID,
		Title:    req.Title,
		Summary:  req.Summary,
		Status:   models.TaskStatusToDo,
		TaskType: "other",
		Priority: "medium",
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.TaskType != "" {
		task.TaskType = req.TaskType
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", *req.DueDate)
		task.DueDate = &due
	}

	if err := database.DB.Create(&task).Error; err != nil {
		log.Printf("[tasks] DB Create error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create task"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Task created", Data: task})
}

func ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	q := database.DB.Where("user_id = ?", userID)
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if isHabit := r.URL.Query().Get("is_habit"); isHabit != "" {
		q = q.Where("is_habit = ?", isHabit == "true")
	}

	var tasks []models.TaskCard
	if err := q.Order("due_date IS NULL, due_date ASC, id ASC").Find(&tasks).Error; err != nil {
		log.Printf("[tasks] DB list error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Tasks retrieved", Data: tasks})
}

func GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	task, ok := findOwnedTask(w, r, userID)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Task retrieved", Data: task})
}

// UpdateTaskHandler applies a partial update. When the status changes, the
// change is propagated to the linked habit tracker in the same transaction.
func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req UpdateTaskRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	task, ok := findOwnedTask(w, r, userID)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Title cannot be empty"})
			return
		}
		updates["title"] = *req.Title
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.TaskType != nil {
		updates["task_type"] = *req.TaskType
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			updates["due_date"] = nil
		} else {
			due, _ := time.Parse("2006-01-02", *req.DueDate)
			updates["due_date"] = due
		}
	}
	statusChanged := req.Status != nil && *req.Status != task.Status
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(task).Updates(updates).Error; err != nil {
				return err
			}
		}
		if statusChanged {
			return services.SyncTaskToHabit(tx, task, *req.Status)
		}
		return nil
	})
	if err != nil {
		log.Printf("[tasks] DB update error for task %d: %v", task.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update task"})
		return
	}

	if err := database.DB.First(task, task.ID).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Task updated", Data: task})
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	task, ok := findOwnedTask(w, r, userID)
	if !ok {
		return
	}

	if err := database.DB.Delete(task).Error; err != nil {
		log.Printf("[tasks] DB delete error for task %d: %v", task.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to delete task"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Task deleted"})
}
