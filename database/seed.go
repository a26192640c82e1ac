package database

import (
	"log"

	"github.com/ketoo27/Evolution-project/models"

	"gorm.io/gorm"
)

// SeedBadgeCatalog inserts the badge catalog rows if they are missing. The
// award logic keys on these titles, so a missing row is a configuration
// error; seeding at startup keeps the catalog and the checks in step.
func SeedBadgeCatalog(db *gorm.DB) error {
	catalog := []models.Badge{
		{Title: models.BadgeOrganized, Description: "Completed 10 tasks.", Criteria: "10 task cards with status done", BadgeType: "task", Icon: "badges/organized.png"},
		{Title: models.BadgeProductive, Description: "Completed 20 tasks.", Criteria: "20 task cards with status done", BadgeType: "task", Icon: "badges/productive.png"},
		{Title: models.BadgeStreakStarter, Description: "Kept an 80% habit streak for 3 days.", Criteria: "habit streak of 3", BadgeType: "habit", Icon: "badges/streak_starter.png"},
		{Title: models.BadgeStreakBeginner, Description: "Kept an 80% habit streak for 7 days.", Criteria: "habit streak of 7", BadgeType: "habit", Icon: "badges/streak_beginner.png"},
		{Title: models.BadgeScheduler, Description: "Scheduled 10 events.", Criteria: "10 events created", BadgeType: "schedule", Icon: "badges/scheduler.png"},
		{Title: models.BadgePlanner, Description: "Scheduled 20 events.", Criteria: "20 events created", BadgeType: "schedule", Icon: "badges/planner.png"},
		{Title: models.BadgeJournalStarter, Description: "Journaled on 7 different days.", Criteria: "7 distinct days with a journal entry", BadgeType: "journal", Icon: "badges/journal_starter.png"},
		{Title: models.BadgeJournalBeginner, Description: "Journaled 7 days in a row.", Criteria: "7 consecutive days with a journal entry", BadgeType: "journal", Icon: "badges/journal_beginner.png"},
	}
	for _, b := range catalog {
		if err := db.Where("title = ?", b.Title).FirstOrCreate(&b).Error; err != nil {
			return err
		}
	}
	log.Printf("[database] badge catalog seeded (%d entries)", len(catalog))
	return nil
}
