package models

import "time"

// Badge titles are the authoritative identifiers for the award logic; the
// Badge rows themselves are display metadata (description, icon) seeded at
// startup.
const (
	BadgeOrganized       = "Organized"
	BadgeProductive      = "Productive"
	BadgeStreakStarter   = "Streak Starter"
	BadgeStreakBeginner  = "Streak Beginner"
	BadgeScheduler       = "Scheduler"
	BadgePlanner         = "Planner"
	BadgeJournalStarter  = "Journal Starter"
	BadgeJournalBeginner = "Journal Beginner"
)

type Badge struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Criteria    string `gorm:"type:text" json:"criteria"`
	BadgeType   string `gorm:"size:20;default:'general'" json:"badge_type"`
	Icon        string `gorm:"size:255" json:"icon"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge records a permanent award. The composite unique index means a
// badge can only ever be earned once per user.
type UserBadge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"user_id"`
	BadgeID    uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"badge_id"`
	EarnedDate time.Time `json:"earned_date"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
