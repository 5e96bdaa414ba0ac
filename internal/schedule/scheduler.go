package schedule

import (
	"fmt"
	"slices"
	"time"
)

const (
	cardioDescription     = "30 min fasted cardio"
	cardioRestDescription = "Rest Day"
)

type DayKind string

const (
	DayKindTraining   DayKind = "training"
	DayKindCardioOnly DayKind = "cardio_only"
	DayKindFullRest   DayKind = "full_rest"
)

// Scheduler maps calendar dates to the fixed weekly split and meal plan.
// All of its methods are pure functions of the date's weekday in loc.
type Scheduler struct {
	loc *time.Location
}

func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		loc: loc,
	}
}

func (s *Scheduler) Location() *time.Location {
	return s.loc
}

// Day normalizes t to midnight of its calendar day in the scheduler's location.
func (s *Scheduler) Day(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// ParseDay parses a YYYY-MM-DD date in the scheduler's location.
func (s *Scheduler) ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, value, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day [%s]: %w", value, err)
	}
	return day, nil
}

func (s *Scheduler) Weekday(date time.Time) time.Weekday {
	return date.In(s.loc).Weekday()
}

func (s *Scheduler) WorkoutFor(date time.Time) WorkoutDay {
	wd := workouts[s.Weekday(date)]
	return WorkoutDay{
		Name:      wd.Name,
		Exercises: slices.Clone(wd.Exercises),
	}
}

func (s *Scheduler) CarbTypeFor(date time.Time) CarbType {
	return carbTypes[s.Weekday(date)]
}

func (s *Scheduler) IsHighCarb(date time.Time) bool {
	return s.CarbTypeFor(date) == CarbTypeHigh
}

func (s *Scheduler) IsFullRestDay(date time.Time) bool {
	return s.Weekday(date) == time.Sunday
}

// IsCardioOnlyDay reports the workout rest day that still has cardio scheduled.
func (s *Scheduler) IsCardioOnlyDay(date time.Time) bool {
	return s.Weekday(date) == time.Wednesday
}

func (s *Scheduler) DayKind(date time.Time) DayKind {
	switch {
	case s.IsFullRestDay(date):
		return DayKindFullRest
	case s.IsCardioOnlyDay(date):
		return DayKindCardioOnly
	default:
		return DayKindTraining
	}
}

func (s *Scheduler) CardioDescription(date time.Time) string {
	if s.IsFullRestDay(date) {
		return cardioRestDescription
	}
	return cardioDescription
}

func ValidMealSlot(slot int) bool {
	return slot >= 1 && slot <= MealSlots
}

// MealPlan returns the plan for the given meal slot (1..5) of the date's carb type.
// Slots outside 1..5 are a programming error and panic.
func (s *Scheduler) MealPlan(date time.Time, slot int) MealPlan {
	if !ValidMealSlot(slot) {
		panic(fmt.Sprintf("schedule: meal slot %d out of range [1, %d]", slot, MealSlots))
	}
	return mealTables[s.CarbTypeFor(date)][slot-1]
}

// MealPlans returns all five plans of the date, ordered by slot.
func (s *Scheduler) MealPlans(date time.Time) []MealPlan {
	table := mealTables[s.CarbTypeFor(date)]
	return slices.Clone(table[:])
}

func (s *Scheduler) PostWorkoutShake(isHighCarb bool) MealOption {
	if isHighCarb {
		return shakes[CarbTypeHigh]
	}
	return shakes[CarbTypeLow]
}

func (s *Scheduler) ComfortFood() MealOption {
	return comfortFood
}

// TotalTargetCalories sums the first option of every meal slot, the shake
// (skipped on full rest days) and the comfort food.
func (s *Scheduler) TotalTargetCalories(date time.Time) int {
	total := 0
	for slot := 1; slot <= MealSlots; slot++ {
		total += s.MealPlan(date, slot).Options[0].Calories
	}
	if !s.IsFullRestDay(date) {
		total += s.PostWorkoutShake(s.IsHighCarb(date)).Calories
	}
	total += s.ComfortFood().Calories
	return total
}

// WeekStart returns the Monday of the week containing date.
func (s *Scheduler) WeekStart(date time.Time) time.Time {
	day := s.Day(date)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the seven days, Monday to Sunday, of the week containing date.
func (s *Scheduler) WeekDays(date time.Time) []time.Time {
	start := s.WeekStart(date)
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
