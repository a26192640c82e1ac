package services

import (
	"time"

	"github.com/ketoo27/Evolution-project/models"

	"gorm.io/gorm"
)

// RecomputeHabitStreak derives the consecutive-day streak from raw tracker
// rows, walking backward from yesterday. A day qualifies when it has at least
// one tracker row and its population completion is >= 80%; the walk stops at
// the first gap or sub-80% day.
//
// This is deliberately independent of the stored user.HabitStreak counter.
// The two can diverge (the counter is only advanced by the rollover) and both
// representations are reported, never silently unified.
func RecomputeHabitStreak(db *gorm.DB, userID uint, today time.Time) (int, error) {
	day := DateOnly(today).AddDate(0, 0, -1)
	streak := 0
	for {
		var rows []models.HabitTracker
		if err := db.Joins("JOIN habit_lists ON habit_lists.id = habit_trackers.habit_id").
			Where("habit_lists.user_id = ? AND habit_trackers.tracking_date = ?", userID, day).
			Find(&rows).Error; err != nil {
			return 0, err
		}
		if len(rows) == 0 {
			return streak, nil
		}
		completed := 0
		for _, r := range rows {
			if r.IsCompleted {
				completed++
			}
		}
		if float64(completed)/float64(len(rows))*100 < 80 {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
