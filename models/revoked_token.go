package models

import "time"

// RevokedToken is the DB fallback blacklist for access-token jtis when Redis
// is not configured.
type RevokedToken struct {
	ID        string    `gorm:"primaryKey;type:char(64)" json:"id"`
	RevokedAt time.Time `json:"revoked_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
