package daylog

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/aztracker/internal/schedule"
)

var (
	ErrDayNotFound        = errors.New("day record not found")
	ErrWorkoutLogNotFound = errors.New("workout log not found")
	ErrInvalidMealSlot    = errors.New("invalid meal slot")
	ErrInvalidMealOption  = errors.New("invalid meal option")
	ErrUnknownTask        = errors.New("unknown task")
	ErrUnknownExercise    = errors.New("exercise not scheduled for this day")
)

// Task is a user-toggleable daily task. Meals are not a task:
// their completion is derived from the meal logs and the shake.
type Task string

const (
	TaskCardio      Task = "cardio"
	TaskLift        Task = "lift"
	TaskSupplements Task = "supplements"
	TaskShake       Task = "shake"
)

func ParseTask(value string) (Task, error) {
	switch t := Task(value); t {
	case TaskCardio, TaskLift, TaskSupplements, TaskShake:
		return t, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTask, value)
}

type DayRecord struct {
	Day             time.Time `json:"day"`
	CardioDone      bool      `json:"cardioDone"`
	LiftDone        bool      `json:"liftDone"`
	MealsCompleted  bool      `json:"mealsCompleted"`
	SupplementsDone bool      `json:"supplementsDone"`
	ShakeDone       bool      `json:"shakeDone"`
	Note            string    `json:"note"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type MealLog struct {
	Day         time.Time `json:"-"`
	Slot        int       `json:"slot"`
	Completed   bool      `json:"completed"`
	OptionIndex int       `json:"optionIndex"`
	Calories    int       `json:"calories"`
}

// DayState is a day record together with its meal logs, ordered by slot.
type DayState struct {
	Record DayRecord `json:"record"`
	Meals  []MealLog `json:"meals"`
}

// ConsumedCalories sums the calorie snapshots of completed meals.
func (ds *DayState) ConsumedCalories() int {
	total := 0
	for _, m := range ds.Meals {
		if m.Completed {
			total += m.Calories
		}
	}
	return total
}

func (ds *DayState) Meal(slot int) *MealLog {
	for i := range ds.Meals {
		if ds.Meals[i].Slot == slot {
			return &ds.Meals[i]
		}
	}
	return nil
}

type WorkoutLog struct {
	Day       time.Time `json:"-"`
	Exercise  string    `json:"exercise"`
	Weights   []float64 `json:"weights"`
	Note      string    `json:"note"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExerciseLog is a scheduled exercise next to what was logged for it.
type ExerciseLog struct {
	schedule.Exercise
	Weights         []float64 `json:"weights"`
	Note            string    `json:"note"`
	LastWeekWeights []float64 `json:"lastWeekWeights,omitempty"`
}

type DayWorkout struct {
	Day       time.Time     `json:"day"`
	Name      string        `json:"name"`
	Exercises []ExerciseLog `json:"exercises"`
}

// DaySummary is one day of the week overview: its plan, record and
// which of the progress dots apply to it.
type DaySummary struct {
	Plan           schedule.DayPlan `json:"plan"`
	Record         DayRecord        `json:"record"`
	RunScheduled   bool             `json:"runScheduled"`
	LiftScheduled  bool             `json:"liftScheduled"`
	MealsScheduled bool             `json:"mealsScheduled"`
}

// Dots returns the number of scheduled and done progress dots of the day.
func (ds DaySummary) Dots() (scheduled, done int) {
	count := func(isScheduled, isDone bool) {
		if !isScheduled {
			return
		}
		scheduled++
		if isDone {
			done++
		}
	}
	count(ds.RunScheduled, ds.Record.CardioDone)
	count(ds.LiftScheduled, ds.Record.LiftDone)
	count(ds.MealsScheduled, ds.Record.MealsCompleted)
	return scheduled, done
}

type WeekOverview struct {
	WeekStart      time.Time    `json:"weekStart"`
	Days           []DaySummary `json:"days"`
	CompletionRate float64      `json:"completionRate"`
}
