package services

import (
	"testing"
	"time"

	"github.com/ketoo27/Evolution-project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTaskToHabit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	tracker := createTracker(t, db, habit.ID, today, false)

	card := models.TaskCard{UserID: user.ID, Title: "Read", IsHabit: true, TrackerID: &tracker.ID}
	require.NoError(t, db.Create(&card).Error)

	// done marks the tracker completed
	require.NoError(t, SyncTaskToHabit(db, &card, models.TaskStatusDone))
	var got models.HabitTracker
	require.NoError(t, db.First(&got, tracker.ID).Error)
	assert.True(t, got.IsCompleted)

	// processing leaves it untouched
	require.NoError(t, SyncTaskToHabit(db, &card, models.TaskStatusProcessing))
	require.NoError(t, db.First(&got, tracker.ID).Error)
	assert.True(t, got.IsCompleted)

	// back to to_do clears it
	require.NoError(t, SyncTaskToHabit(db, &card, models.TaskStatusToDo))
	require.NoError(t, db.First(&got, tracker.ID).Error)
	assert.False(t, got.IsCompleted)
}

func TestSyncTaskToHabitIgnoresUnlinkedCards(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")
	tracker := createTracker(t, db, habit.ID, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false)

	plain := models.TaskCard{UserID: user.ID, Title: "Taxes"}
	require.NoError(t, db.Create(&plain).Error)
	require.NoError(t, SyncTaskToHabit(db, &plain, models.TaskStatusDone))

	habitNoTracker := models.TaskCard{UserID: user.ID, Title: "Read", IsHabit: true}
	require.NoError(t, db.Create(&habitNoTracker).Error)
	require.NoError(t, SyncTaskToHabit(db, &habitNoTracker, models.TaskStatusDone))

	var got models.HabitTracker
	require.NoError(t, db.First(&got, tracker.ID).Error)
	assert.False(t, got.IsCompleted)
}

func TestSyncHabitToTask(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")
	tracker := createTracker(t, db, habit.ID, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false)

	card := models.TaskCard{UserID: user.ID, Title: "Read", IsHabit: true, TrackerID: &tracker.ID}
	require.NoError(t, db.Create(&card).Error)

	require.NoError(t, SyncHabitToTask(db, tracker, true))
	var got models.TaskCard
	require.NoError(t, db.First(&got, card.ID).Error)
	assert.Equal(t, models.TaskStatusDone, got.Status)

	require.NoError(t, SyncHabitToTask(db, tracker, false))
	require.NoError(t, db.First(&got, card.ID).Error)
	assert.Equal(t, models.TaskStatusToDo, got.Status)
}

func TestSyncHabitToTaskNoCard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")
	tracker := createTracker(t, db, habit.ID, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false)

	// No card generated for this tracker; the sync is a silent no-op.
	assert.NoError(t, SyncHabitToTask(db, tracker, true))
}
