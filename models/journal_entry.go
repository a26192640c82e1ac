package models

import "time"

// JournalEntry is limited to one entry per user per calendar day. The check
// lives at the API layer (lookup by date before create); a timestamp-based
// unique constraint cannot express "per day".
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"date_created"`
	UpdatedAt time.Time `json:"-"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
