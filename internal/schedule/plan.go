package schedule

import "time"

// DayPlan is everything the schedule says about a single day.
type DayPlan struct {
	Date              time.Time   `json:"date"`
	Weekday           string      `json:"weekday"`
	Kind              DayKind     `json:"kind"`
	CarbType          CarbType    `json:"carbType"`
	Workout           WorkoutDay  `json:"workout"`
	CardioDescription string      `json:"cardioDescription"`
	Meals             []MealPlan  `json:"meals"`
	Shake             *MealOption `json:"shake,omitempty"`
	ComfortFood       MealOption  `json:"comfortFood"`
	TargetCalories    int         `json:"targetCalories"`
}

func (s *Scheduler) Plan(date time.Time) DayPlan {
	day := s.Day(date)
	plan := DayPlan{
		Date:              day,
		Weekday:           s.Weekday(day).String(),
		Kind:              s.DayKind(day),
		CarbType:          s.CarbTypeFor(day),
		Workout:           s.WorkoutFor(day),
		CardioDescription: s.CardioDescription(day),
		Meals:             s.MealPlans(day),
		ComfortFood:       s.ComfortFood(),
		TargetCalories:    s.TotalTargetCalories(day),
	}
	if !s.IsFullRestDay(day) {
		shake := s.PostWorkoutShake(s.IsHighCarb(day))
		plan.Shake = &shake
	}
	return plan
}

func (s *Scheduler) WeekPlan(date time.Time) []DayPlan {
	days := s.WeekDays(date)
	plans := make([]DayPlan, 0, len(days))
	for _, d := range days {
		plans = append(plans, s.Plan(d))
	}
	return plans
}
