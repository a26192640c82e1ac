package services

import (
	"testing"
	"time"

	"github.com/ketoo27/Evolution-project/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.TaskCard{},
		&models.HabitList{},
		&models.HabitTracker{},
		&models.Event{},
		&models.JournalEntry{},
		&models.Badge{},
		&models.UserBadge{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, streak uint) *models.User {
	t.Helper()
	user := models.User{
		Username:    "kasun",
		Email:       "kasun@example.com",
		Password:    "x",
		HabitStreak: streak,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestHabit(t *testing.T, db *gorm.DB, userID uint, name string) *models.HabitList {
	t.Helper()
	habit := models.HabitList{UserID: userID, HabitName: name}
	require.NoError(t, db.Create(&habit).Error)
	return &habit
}

func createTracker(t *testing.T, db *gorm.DB, habitID uint, day time.Time, completed bool) *models.HabitTracker {
	t.Helper()
	tracker := models.HabitTracker{HabitID: habitID, TrackingDate: DateOnly(day), IsCompleted: completed}
	require.NoError(t, db.Create(&tracker).Error)
	return &tracker
}
