package services

import (
	"github.com/ketoo27/Evolution-project/models"

	"gorm.io/gorm"
)

// SyncTaskToHabit propagates a task card status change onto its linked habit
// tracker. Only done and to_do map onto the tracker; processing has no
// tracker-side meaning and leaves it untouched. Propagation is one hop: the
// tracker row is written directly, nothing re-enters the sync.
func SyncTaskToHabit(db *gorm.DB, task *models.TaskCard, newStatus string) error {
	if !task.IsHabit || task.TrackerID == nil {
		return nil
	}
	switch newStatus {
	case models.TaskStatusDone:
		return db.Model(&models.HabitTracker{}).Where("id = ?", *task.TrackerID).
			Update("is_completed", true).Error
	case models.TaskStatusToDo:
		return db.Model(&models.HabitTracker{}).Where("id = ?", *task.TrackerID).
			Update("is_completed", false).Error
	}
	return nil
}

// SyncHabitToTask mirrors a tracker completion flip onto the task card
// generated for it, if one exists. One hop only, same as above.
func SyncHabitToTask(db *gorm.DB, tracker *models.HabitTracker, completed bool) error {
	status := models.TaskStatusToDo
	if completed {
		status = models.TaskStatusDone
	}
	return db.Model(&models.TaskCard{}).Where("tracker_id = ?", tracker.ID).
		Update("status", status).Error
}
