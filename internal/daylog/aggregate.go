package daylog

import (
	"fmt"

	"github.com/2beens/aztracker/internal/schedule"
)

// RecomputeMealsCompleted is true iff all meal slots are logged as completed
// and the shake is done. On a full rest day no shake is scheduled, so it
// counts as done.
func RecomputeMealsCompleted(mealLogs []MealLog, shakeDone, isRestDay bool) bool {
	completed := make(map[int]bool, schedule.MealSlots)
	for _, m := range mealLogs {
		if m.Completed && schedule.ValidMealSlot(m.Slot) {
			completed[m.Slot] = true
		}
	}
	if len(completed) != schedule.MealSlots {
		return false
	}
	return isRestDay || shakeDone
}

// Toggle flips the boolean behind task.
func (r *DayRecord) Toggle(task Task) error {
	switch task {
	case TaskCardio:
		r.CardioDone = !r.CardioDone
	case TaskLift:
		r.LiftDone = !r.LiftDone
	case TaskSupplements:
		r.SupplementsDone = !r.SupplementsDone
	case TaskShake:
		r.ShakeDone = !r.ShakeDone
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTask, task)
	}
	return nil
}

func (r *DayRecord) Done(task Task) bool {
	switch task {
	case TaskCardio:
		return r.CardioDone
	case TaskLift:
		return r.LiftDone
	case TaskSupplements:
		return r.SupplementsDone
	case TaskShake:
		return r.ShakeDone
	}
	return false
}

// normalizeWeights pads or truncates weights to the exercise's set count.
// Negative weights are treated as unset.
func normalizeWeights(weights []float64, sets int) []float64 {
	normalized := make([]float64, sets)
	for i := 0; i < sets && i < len(weights); i++ {
		if weights[i] > 0 {
			normalized[i] = weights[i]
		}
	}
	return normalized
}
