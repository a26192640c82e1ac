package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeHabitStreak(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")

	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		createTracker(t, db, habit.ID, today.AddDate(0, 0, -i), true)
	}

	got, err := RecomputeHabitStreak(db, user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestRecomputeHabitStreakStopsBelowThreshold(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	h1 := createTestHabit(t, db, user.ID, "Read")
	h2 := createTestHabit(t, db, user.ID, "Run")

	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	// Yesterday and the day before fully complete, three days back only 50%.
	for i := 1; i <= 2; i++ {
		createTracker(t, db, h1.ID, today.AddDate(0, 0, -i), true)
		createTracker(t, db, h2.ID, today.AddDate(0, 0, -i), true)
	}
	createTracker(t, db, h1.ID, today.AddDate(0, 0, -3), true)
	createTracker(t, db, h2.ID, today.AddDate(0, 0, -3), false)

	got, err := RecomputeHabitStreak(db, user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestRecomputeHabitStreakStopsAtGap(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)
	habit := createTestHabit(t, db, user.ID, "Read")

	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	createTracker(t, db, habit.ID, today.AddDate(0, 0, -1), true)
	// No row two days back; older history must not count.
	createTracker(t, db, habit.ID, today.AddDate(0, 0, -3), true)

	got, err := RecomputeHabitStreak(db, user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRecomputeIndependentOfStoredCounter(t *testing.T) {
	db := newTestDB(t)
	// Stored counter says 9, raw rows say 1. Both views stand on their own.
	user := createTestUser(t, db, 9)
	habit := createTestHabit(t, db, user.ID, "Read")

	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	createTracker(t, db, habit.ID, today.AddDate(0, 0, -1), true)

	got, err := RecomputeHabitStreak(db, user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, uint(9), user.HabitStreak)
}

func TestRecomputeHabitStreakNoHistory(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 0)

	got, err := RecomputeHabitStreak(db, user.ID, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
