package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ketoo27/Evolution-project/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The badge set is fixed at compile time: each entry pairs a catalog title
// with its threshold check. The Badge rows in the database only supply
// display metadata for earned badges.
type badgeCheck struct {
	title string
	met   func(db *gorm.DB, user *models.User) (bool, error)
}

var badgeChecks = []badgeCheck{
	{models.BadgeOrganized, completedTasksAtLeast(10)},
	{models.BadgeProductive, completedTasksAtLeast(20)},
	{models.BadgeStreakStarter, storedStreakAtLeast(3)},
	{models.BadgeStreakBeginner, storedStreakAtLeast(7)},
	{models.BadgeScheduler, eventsAtLeast(10)},
	{models.BadgePlanner, eventsAtLeast(20)},
	{models.BadgeJournalStarter, journalDaysAtLeast(7)},
	{models.BadgeJournalBeginner, journalConsecutiveDays(7)},
}

// CheckAndAwardBadges evaluates every badge the user has not yet earned and
// creates UserBadge rows for thresholds that are met. Awards are permanent;
// an earned badge is never re-evaluated or revoked. A missing catalog row is
// a configuration error: it is logged, that badge is skipped, and the rest
// are still evaluated; the error is reported to the caller at the end.
func CheckAndAwardBadges(db *gorm.DB, user *models.User) error {
	var catalogErr error
	for _, c := range badgeChecks {
		var badge models.Badge
		if err := db.Where("title = ?", c.title).First(&badge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[badges] catalog entry %q missing, skipping", c.title)
				if catalogErr == nil {
					catalogErr = fmt.Errorf("badge catalog entry %q missing", c.title)
				}
				continue
			}
			return err
		}

		var existing models.UserBadge
		err := db.Where("user_id = ? AND badge_id = ?", user.ID, badge.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		met, err := c.met(db, user)
		if err != nil {
			return err
		}
		if !met {
			continue
		}

		award := models.UserBadge{UserID: user.ID, BadgeID: badge.ID, EarnedDate: time.Now()}
		// The unique index makes a concurrent duplicate award a no-op.
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&award).Error; err != nil {
			return err
		}
		log.Printf("[badges] awarded %q to user %d", c.title, user.ID)
	}
	return catalogErr
}

func completedTasksAtLeast(n int64) func(*gorm.DB, *models.User) (bool, error) {
	return func(db *gorm.DB, user *models.User) (bool, error) {
		var count int64
		err := db.Model(&models.TaskCard{}).
			Where("user_id = ? AND status = ?", user.ID, models.TaskStatusDone).
			Count(&count).Error
		return count >= n, err
	}
}

func storedStreakAtLeast(n uint) func(*gorm.DB, *models.User) (bool, error) {
	return func(db *gorm.DB, user *models.User) (bool, error) {
		return user.HabitStreak >= n, nil
	}
}

func eventsAtLeast(n int64) func(*gorm.DB, *models.User) (bool, error) {
	return func(db *gorm.DB, user *models.User) (bool, error) {
		var count int64
		err := db.Model(&models.Event{}).Where("user_id = ?", user.ID).Count(&count).Error
		return count >= n, err
	}
}

// journalDaysAtLeast counts distinct calendar days with at least one entry,
// in no particular order.
func journalDaysAtLeast(n int64) func(*gorm.DB, *models.User) (bool, error) {
	return func(db *gorm.DB, user *models.User) (bool, error) {
		var count int64
		err := db.Model(&models.JournalEntry{}).
			Where("user_id = ?", user.ID).
			Distinct("date(created_at)").
			Count(&count).Error
		return count >= n, err
	}
}

// journalConsecutiveDays requires an entry on each of the n days counting
// back from today, today included.
func journalConsecutiveDays(n int) func(*gorm.DB, *models.User) (bool, error) {
	return func(db *gorm.DB, user *models.User) (bool, error) {
		day := DateOnly(time.Now())
		for i := 0; i < n; i++ {
			var count int64
			err := db.Model(&models.JournalEntry{}).
				Where("user_id = ? AND created_at >= ? AND created_at < ?",
					user.ID, day, day.AddDate(0, 0, 1)).
				Count(&count).Error
			if err != nil {
				return false, err
			}
			if count == 0 {
				return false, nil
			}
			day = day.AddDate(0, 0, -1)
		}
		return true, nil
	}
}
