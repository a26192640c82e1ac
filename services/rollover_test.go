package services

import (
	"testing"
	"time"

	"github.com/ketoo27/Evolution-project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStreak(t *testing.T) {
	cases := []struct {
		prior uint
		pct   float64
		want  uint
	}{
		{0, 100, 1},
		{2, 90, 3},
		{2, 80, 3},
		{2, 79.99, 0},
		{5, 50, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NextStreak(c.prior, c.pct), "prior=%d pct=%v", c.prior, c.pct)
	}
}

func TestRolloverFirstLogin(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	createTestHabit(t, db, user.ID, "Read")
	createTestHabit(t, db, user.ID, "Run")

	today := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	require.NoError(t, RunDailyRollover(db, user, today))

	var trackers []models.HabitTracker
	require.NoError(t, db.Find(&trackers).Error)
	require.Len(t, trackers, 2)
	for _, tr := range trackers {
		assert.True(t, DateOnly(tr.TrackingDate).Equal(DateOnly(today)))
		assert.False(t, tr.IsCompleted)
	}

	var cards []models.TaskCard
	require.NoError(t, db.Where("is_habit = ?", true).Find(&cards).Error)
	require.Len(t, cards, 2)
	for _, c := range cards {
		assert.Equal(t, models.TaskStatusToDo, c.Status)
		require.NotNil(t, c.TrackerID)
	}

	assert.Equal(t, uint(0), user.HabitStreak)
}

func TestRolloverIdempotentWithinDay(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	createTestHabit(t, db, user.ID, "Read")

	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, RunDailyRollover(db, user, today))
	// Flip the tracker so a second run would visibly reset it if not guarded.
	require.NoError(t, db.Model(&models.HabitTracker{}).Where("1=1").Update("is_completed", true).Error)

	require.NoError(t, RunDailyRollover(db, user, today.Add(5*time.Hour)))

	var trackerCount, cardCount int64
	require.NoError(t, db.Model(&models.HabitTracker{}).Count(&trackerCount).Error)
	require.NoError(t, db.Model(&models.TaskCard{}).Count(&cardCount).Error)
	assert.Equal(t, int64(1), trackerCount)
	assert.Equal(t, int64(1), cardCount)

	var tracker models.HabitTracker
	require.NoError(t, db.First(&tracker).Error)
	assert.True(t, tracker.IsCompleted, "second same-day run must not touch existing state")
	assert.Equal(t, uint(0), user.HabitStreak)
}

func TestRolloverBackfillAndStreakIncrement(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2)
	h1 := createTestHabit(t, db, user.ID, "Read")
	h2 := createTestHabit(t, db, user.ID, "Run")

	today := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	createTracker(t, db, h1.ID, yesterday, true)
	createTracker(t, db, h2.ID, yesterday, true)

	require.NoError(t, RunDailyRollover(db, user, today))

	// Both yesterday rows carry the population percentage.
	var prev []models.HabitTracker
	require.NoError(t, db.Where("tracking_date = ?", DateOnly(yesterday)).Find(&prev).Error)
	require.Len(t, prev, 2)
	for _, tr := range prev {
		assert.Equal(t, float64(100), tr.CompletionPercentage)
	}

	assert.Equal(t, uint(3), user.HabitStreak)
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, uint(3), stored.HabitStreak)
}

func TestRolloverStreakResetBelowThreshold(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 5)
	h1 := createTestHabit(t, db, user.ID, "Read")
	h2 := createTestHabit(t, db, user.ID, "Run")

	today := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	createTracker(t, db, h1.ID, yesterday, true)
	createTracker(t, db, h2.ID, yesterday, false)

	require.NoError(t, RunDailyRollover(db, user, today))

	var prev []models.HabitTracker
	require.NoError(t, db.Where("tracking_date = ?", DateOnly(yesterday)).Find(&prev).Error)
	for _, tr := range prev {
		assert.Equal(t, float64(50), tr.CompletionPercentage)
	}
	assert.Equal(t, uint(0), user.HabitStreak)

	var todayTrackers, todayCards int64
	require.NoError(t, db.Model(&models.HabitTracker{}).Where("tracking_date = ?", DateOnly(today)).Count(&todayTrackers).Error)
	require.NoError(t, db.Model(&models.TaskCard{}).Where("is_habit = ? AND due_date = ?", true, DateOnly(today)).Count(&todayCards).Error)
	assert.Equal(t, int64(2), todayTrackers)
	assert.Equal(t, int64(2), todayCards)
}

func TestRolloverExpiresStaleHabitCards(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")

	today := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	yesterday := DateOnly(today.AddDate(0, 0, -1))
	tracker := createTracker(t, db, habit.ID, yesterday, false)

	staleHabit := models.TaskCard{UserID: user.ID, Title: "Read", IsHabit: true, DueDate: &yesterday, TrackerID: &tracker.ID}
	require.NoError(t, db.Create(&staleHabit).Error)
	staleNormal := models.TaskCard{UserID: user.ID, Title: "Taxes", DueDate: &yesterday}
	require.NoError(t, db.Create(&staleNormal).Error)

	require.NoError(t, RunDailyRollover(db, user, today))

	var gone models.TaskCard
	err := db.First(&gone, staleHabit.ID).Error
	assert.Error(t, err, "expired habit card must be deleted")

	var kept models.TaskCard
	assert.NoError(t, db.First(&kept, staleNormal.ID).Error, "ordinary overdue cards survive the rollover")
}

func TestRolloverAdoptsUnlinkedCard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	createTestHabit(t, db, user.ID, "Read")

	today := DateOnly(time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC))
	orphan := models.TaskCard{UserID: user.ID, Title: "Read", IsHabit: true, DueDate: &today}
	require.NoError(t, db.Create(&orphan).Error)

	require.NoError(t, RunDailyRollover(db, user, today))

	var cards []models.TaskCard
	require.NoError(t, db.Where("is_habit = ?", true).Find(&cards).Error)
	require.Len(t, cards, 1, "matching unlinked card is adopted, not duplicated")
	require.NotNil(t, cards[0].TrackerID)

	var tracker models.HabitTracker
	require.NoError(t, db.First(&tracker).Error)
	assert.Equal(t, tracker.ID, *cards[0].TrackerID)
}

func TestRolloverNoHabitsStillUpdatesStreak(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 4)

	require.NoError(t, RunDailyRollover(db, user, time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)))

	assert.Equal(t, uint(0), user.HabitStreak, "no previous day means 0% and a reset")

	var trackerCount int64
	require.NoError(t, db.Model(&models.HabitTracker{}).Count(&trackerCount).Error)
	assert.Equal(t, int64(0), trackerCount)
}
