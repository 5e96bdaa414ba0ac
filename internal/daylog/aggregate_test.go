package daylog_test

import (
	"testing"

	"github.com/2beens/aztracker/internal/daylog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealLogs(completed ...bool) []daylog.MealLog {
	logs := make([]daylog.MealLog, 0, len(completed))
	for i, c := range completed {
		logs = append(logs, daylog.MealLog{Slot: i + 1, Completed: c})
	}
	return logs
}

func TestRecomputeMealsCompleted(t *testing.T) {
	testCases := []struct {
		name      string
		meals     []daylog.MealLog
		shakeDone bool
		isRest    bool
		expected  bool
	}{
		{
			name:     "all meals, no shake, training day",
			meals:    mealLogs(true, true, true, true, true),
			expected: false,
		},
		{
			name:      "all meals and shake",
			meals:     mealLogs(true, true, true, true, true),
			shakeDone: true,
			expected:  true,
		},
		{
			name:     "all meals on full rest day",
			meals:    mealLogs(true, true, true, true, true),
			isRest:   true,
			expected: true,
		},
		{
			name:      "one meal missing",
			meals:     mealLogs(true, true, false, true, true),
			shakeDone: true,
			expected:  false,
		},
		{
			name:      "only four logs",
			meals:     mealLogs(true, true, true, true),
			shakeDone: true,
			isRest:    true,
			expected:  false,
		},
		{
			name:      "no logs",
			shakeDone: true,
			expected:  false,
		},
		{
			name: "same slot repeated",
			meals: []daylog.MealLog{
				{Slot: 1, Completed: true},
				{Slot: 1, Completed: true},
				{Slot: 1, Completed: true},
				{Slot: 1, Completed: true},
				{Slot: 1, Completed: true},
			},
			shakeDone: true,
			expected:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, daylog.RecomputeMealsCompleted(tc.meals, tc.shakeDone, tc.isRest))
		})
	}
}

func TestRecomputeMealsCompleted_ShakeFlipsResult(t *testing.T) {
	meals := mealLogs(true, true, true, true, true)
	before := append([]daylog.MealLog(nil), meals...)

	assert.False(t, daylog.RecomputeMealsCompleted(meals, false, false))
	assert.True(t, daylog.RecomputeMealsCompleted(meals, true, false))
	assert.Equal(t, before, meals)
}

func TestDayRecord_Toggle(t *testing.T) {
	rec := &daylog.DayRecord{}

	for _, task := range []daylog.Task{daylog.TaskCardio, daylog.TaskLift, daylog.TaskSupplements, daylog.TaskShake} {
		require.NoError(t, rec.Toggle(task))
		assert.True(t, rec.Done(task), task)
	}
	assert.True(t, rec.CardioDone)
	assert.True(t, rec.LiftDone)
	assert.True(t, rec.SupplementsDone)
	assert.True(t, rec.ShakeDone)
	assert.False(t, rec.MealsCompleted)

	require.NoError(t, rec.Toggle(daylog.TaskLift))
	assert.False(t, rec.LiftDone)

	err := rec.Toggle("meals")
	assert.ErrorIs(t, err, daylog.ErrUnknownTask)
	assert.False(t, rec.MealsCompleted)
}

func TestParseTask(t *testing.T) {
	task, err := daylog.ParseTask("supplements")
	require.NoError(t, err)
	assert.Equal(t, daylog.TaskSupplements, task)

	for _, invalid := range []string{"", "meals", "mealsCompleted", "CARDIO"} {
		_, err := daylog.ParseTask(invalid)
		assert.ErrorIs(t, err, daylog.ErrUnknownTask, invalid)
	}
}

func TestDayState_ConsumedCalories(t *testing.T) {
	state := &daylog.DayState{
		Meals: []daylog.MealLog{
			{Slot: 1, Completed: true, Calories: 515},
			{Slot: 2, Completed: false, Calories: 212},
			{Slot: 3, Completed: true, Calories: 430},
		},
	}
	assert.Equal(t, 945, state.ConsumedCalories())

	require.NotNil(t, state.Meal(2))
	assert.Equal(t, 212, state.Meal(2).Calories)
	assert.Nil(t, state.Meal(5))
}
