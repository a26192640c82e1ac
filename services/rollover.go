package services

import (
	"errors"
	"sync"
	"time"

	"github.com/ketoo27/Evolution-project/models"
	"github.com/ketoo27/Evolution-project/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Per-user advisory locks around the rollover. Two concurrent logins for the
// same user would otherwise race the day-boundary check; the lock serializes
// them in-process and the (habit_id, tracking_date) unique index backstops
// anything that still slips through.
var (
	rolloverMu    sync.Mutex
	rolloverLocks = make(map[uint]*sync.Mutex)
)

func userLock(userID uint) *sync.Mutex {
	rolloverMu.Lock()
	defer rolloverMu.Unlock()
	l, ok := rolloverLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		rolloverLocks[userID] = l
	}
	return l
}

// DateOnly truncates t to midnight UTC so calendar-day equality is stable
// regardless of the caller's clock or driver.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextStreak is the state transition applied to the stored streak counter at
// each day boundary: a previous day at >= 80% population completion extends
// the streak, anything less resets it.
func NextStreak(prior uint, previousDayPct float64) uint {
	if previousDayPct >= 80 {
		return prior + 1
	}
	return 0
}

// RunDailyRollover finalizes the previous tracking day and materializes
// today's tracker rows and habit task cards for the user. Invoked on every
// login; idempotent within a calendar day. All steps run in one transaction
// so a failure leaves no partial rollover behind. On success user.HabitStreak
// reflects the persisted counter.
func RunDailyRollover(db *gorm.DB, user *models.User, today time.Time) error {
	today = DateOnly(today)

	lock := userLock(user.ID)
	lock.Lock()
	defer lock.Unlock()

	return db.Transaction(func(tx *gorm.DB) error {
		// Habit task cards live for exactly one day. Drop the expired ones
		// before anything else so they never accumulate across days.
		if err := tx.Where("user_id = ? AND is_habit = ? AND due_date < ?", user.ID, true, today).
			Delete(&models.TaskCard{}).Error; err != nil {
			return err
		}

		// Day-boundary detection on the most recent tracking date across all
		// of the user's habits.
		var last models.HabitTracker
		err := tx.Joins("JOIN habit_lists ON habit_lists.id = habit_trackers.habit_id").
			Where("habit_lists.user_id = ?", user.ID).
			Order("habit_trackers.tracking_date DESC").
			First(&last).Error
		hasPrevious := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if hasPrevious && DateOnly(last.TrackingDate).Equal(today) {
			// Already rolled over today.
			return nil
		}

		// Back-fill the previous day's population completion percentage onto
		// every tracker row of that day. The percentage is population-level:
		// completed habits over all habits tracked that day.
		prevPct := float64(0)
		if hasPrevious {
			prevDate := DateOnly(last.TrackingDate)
			var prev []models.HabitTracker
			if err := tx.Joins("JOIN habit_lists ON habit_lists.id = habit_trackers.habit_id").
				Where("habit_lists.user_id = ? AND habit_trackers.tracking_date = ?", user.ID, prevDate).
				Find(&prev).Error; err != nil {
				return err
			}
			if len(prev) > 0 {
				completed := 0
				ids := make([]uint, 0, len(prev))
				for _, t := range prev {
					if t.IsCompleted {
						completed++
					}
					ids = append(ids, t.ID)
				}
				prevPct = utils.RoundFloat(float64(completed)/float64(len(prev))*100, 2)
				if err := tx.Model(&models.HabitTracker{}).Where("id IN ?", ids).
					Update("completion_percentage", prevPct).Error; err != nil {
					return err
				}
			}
		}

		user.HabitStreak = NextStreak(user.HabitStreak, prevPct)
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("habit_streak", user.HabitStreak).Error; err != nil {
			return err
		}

		// Materialize today: a tracker row per habit plus a mirroring task
		// card, skipping whatever already exists.
		var habits []models.HabitList
		if err := tx.Where("user_id = ?", user.ID).Find(&habits).Error; err != nil {
			return err
		}
		for _, h := range habits {
			tracker := models.HabitTracker{HabitID: h.ID, TrackingDate: today}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "habit_id"}, {Name: "tracking_date"}},
				DoNothing: true,
			}).Create(&tracker).Error; err != nil {
				return err
			}
			if tracker.ID == 0 {
				// Conflict: the row for today already exists, load it.
				if err := tx.Where("habit_id = ? AND tracking_date = ?", h.ID, today).
					First(&tracker).Error; err != nil {
					return err
				}
			}

			if err := materializeHabitCard(tx, user.ID, &h, &tracker, today); err != nil {
				return err
			}
		}
		return nil
	})
}

// materializeHabitCard ensures exactly one task card mirrors the given
// tracker for the day. A matching card without the tracker linkage is adopted
// instead of duplicated.
func materializeHabitCard(tx *gorm.DB, userID uint, habit *models.HabitList, tracker *models.HabitTracker, today time.Time) error {
	var card models.TaskCard
	err := tx.Where("user_id = ? AND tracker_id = ?", userID, tracker.ID).First(&card).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = tx.Where("user_id = ? AND is_habit = ? AND title = ? AND due_date = ? AND tracker_id IS NULL",
		userID, true, habit.HabitName, today).First(&card).Error
	if err == nil {
		return tx.Model(&card).Update("tracker_id", tracker.ID).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	due := today
	card = models.TaskCard{
		UserID:    userID,
		Title:     habit.HabitName,
		Summary:   habit.HabitDescription,
		Status:    models.TaskStatusToDo,
		TaskType:  "personal",
		Priority:  "medium",
		DueDate:   &due,
		IsHabit:   true,
		TrackerID: &tracker.ID,
	}
	return tx.Create(&card).Error
}
