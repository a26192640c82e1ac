package services

import (
	"testing"
	"time"

	"github.com/ketoo27/Evolution-project/database"
	"github.com/ketoo27/Evolution-project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, database.SeedBadgeCatalog(db))
}

func hasBadge(t *testing.T, db *gorm.DB, userID uint, title string) bool {
	t.Helper()
	var count int64
	err := db.Model(&models.UserBadge{}).
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.user_id = ? AND badges.title = ?", userID, title).
		Count(&count).Error
	require.NoError(t, err)
	return count > 0
}

func createDoneTasks(t *testing.T, db *gorm.DB, userID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&models.TaskCard{UserID: userID, Title: "t", Status: models.TaskStatusDone}).Error)
	}
}

func TestBadgeTaskThresholds(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, 0)

	createDoneTasks(t, db, user.ID, 9)
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.False(t, hasBadge(t, db, user.ID, models.BadgeOrganized))

	createDoneTasks(t, db, user.ID, 1)
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeOrganized))
	assert.False(t, hasBadge(t, db, user.ID, models.BadgeProductive))

	createDoneTasks(t, db, user.ID, 10)
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeProductive))
}

func TestBadgeStreakThresholds(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	user := createTestUser(t, db, 2)
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.False(t, hasBadge(t, db, user.ID, models.BadgeStreakStarter))

	user.HabitStreak = 3
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeStreakStarter))
	assert.False(t, hasBadge(t, db, user.ID, models.BadgeStreakBeginner))

	user.HabitStreak = 7
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeStreakBeginner))
}

func TestBadgeAwardsArePermanent(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, 0)

	createDoneTasks(t, db, user.ID, 10)
	require.NoError(t, CheckAndAwardBadges(db, user))
	require.True(t, hasBadge(t, db, user.ID, models.BadgeOrganized))

	// Dropping back under the threshold must not revoke the award.
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.TaskCard{}).Error)
	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeOrganized))

	var awards int64
	require.NoError(t, db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&awards).Error)
	assert.Equal(t, int64(1), awards, "re-evaluation must not duplicate the award")
}

func TestBadgeMissingCatalogEntryReported(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	require.NoError(t, db.Where("title = ?", models.BadgeScheduler).Delete(&models.Badge{}).Error)

	user := createTestUser(t, db, 3)
	err := CheckAndAwardBadges(db, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), models.BadgeScheduler)

	// The remaining checks still ran.
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeStreakStarter))
}

func TestBadgeEventThresholds(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, 0)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		start := base.AddDate(0, 0, i)
		require.NoError(t, db.Create(&models.Event{UserID: user.ID, Subject: "standup", StartTime: start, EndTime: start.Add(time.Hour)}).Error)
	}

	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeScheduler))
	assert.False(t, hasBadge(t, db, user.ID, models.BadgePlanner))
}

func TestBadgeJournalDistinctDays(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, 0)

	// Seven distinct days, every other day, so not consecutive.
	for i := 0; i < 7; i++ {
		created := DateOnly(time.Now()).AddDate(0, 0, -2*i).Add(9 * time.Hour)
		require.NoError(t, db.Create(&models.JournalEntry{UserID: user.ID, Title: "d", Content: "c", CreatedAt: created}).Error)
	}

	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeJournalStarter))
	assert.False(t, hasBadge(t, db, user.ID, models.BadgeJournalBeginner))
}

func TestBadgeJournalConsecutiveDays(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := createTestUser(t, db, 0)

	// Today plus the six days before it.
	for i := 0; i < 7; i++ {
		created := DateOnly(time.Now()).AddDate(0, 0, -i).Add(9 * time.Hour)
		require.NoError(t, db.Create(&models.JournalEntry{UserID: user.ID, Title: "d", Content: "c", CreatedAt: created}).Error)
	}

	require.NoError(t, CheckAndAwardBadges(db, user))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeJournalStarter))
	assert.True(t, hasBadge(t, db, user.ID, models.BadgeJournalBeginner))
}
