package daylog

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/aztracker/internal/schedule"
	"github.com/2beens/aztracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=daylog_test

type dayRepo interface {
	GetOrCreateDay(ctx context.Context, day time.Time) (*DayState, error)
	UpdateDay(ctx context.Context, day time.Time, fn func(*DayState) error) (*DayState, error)
	EnsureDays(ctx context.Context, days []time.Time) error
	ListDays(ctx context.Context, from, to time.Time) ([]DayState, error)
	GetOrCreateWorkoutLog(ctx context.Context, day time.Time, exercise string) (*WorkoutLog, error)
	ListWorkoutLogs(ctx context.Context, day time.Time) ([]WorkoutLog, error)
	UpdateWorkoutLog(ctx context.Context, wl *WorkoutLog) error
}

type Service struct {
	repo      dayRepo
	scheduler *schedule.Scheduler
}

func NewService(repo dayRepo, scheduler *schedule.Scheduler) *Service {
	return &Service{
		repo:      repo,
		scheduler: scheduler,
	}
}

// Day returns the state of the date's day, creating it on first access.
func (s *Service) Day(ctx context.Context, date time.Time) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.day")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	state, err := s.repo.GetOrCreateDay(ctx, s.scheduler.Day(date))
	if err != nil {
		return nil, fmt.Errorf("get or create day: %w", err)
	}
	return state, nil
}

// update applies fn and recomputes the meals-completed flag inside the
// same store transaction.
func (s *Service) update(ctx context.Context, day time.Time, fn func(*DayState) error) (*DayState, error) {
	isRestDay := s.scheduler.IsFullRestDay(day)
	return s.repo.UpdateDay(ctx, day, func(state *DayState) error {
		if err := fn(state); err != nil {
			return err
		}
		state.Record.MealsCompleted = RecomputeMealsCompleted(state.Meals, state.Record.ShakeDone, isRestDay)
		return nil
	})
}

func (s *Service) ToggleTask(ctx context.Context, date time.Time, task Task) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.toggle")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("task", string(task)))

	if _, err := ParseTask(string(task)); err != nil {
		return nil, err
	}

	state, err := s.update(ctx, s.scheduler.Day(date), func(state *DayState) error {
		return state.Record.Toggle(task)
	})
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", task, err)
	}
	return state, nil
}

// SetMeal marks a meal slot as (not) completed with the chosen option,
// snapshotting that option's calories.
func (s *Service) SetMeal(ctx context.Context, date time.Time, slot int, completed bool, optionIndex int) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.meal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("slot", slot),
		attribute.Bool("completed", completed),
		attribute.Int("option", optionIndex),
	)

	if !schedule.ValidMealSlot(slot) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMealSlot, slot)
	}

	day := s.scheduler.Day(date)
	plan := s.scheduler.MealPlan(day, slot)
	if optionIndex < 0 || optionIndex >= len(plan.Options) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMealOption, optionIndex)
	}

	state, err := s.update(ctx, day, func(state *DayState) error {
		meal := state.Meal(slot)
		if meal == nil {
			return fmt.Errorf("meal log %d missing for %s", slot, day.Format(time.DateOnly))
		}
		meal.Completed = completed
		meal.OptionIndex = optionIndex
		meal.Calories = plan.Options[optionIndex].Calories
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set meal %d: %w", slot, err)
	}
	return state, nil
}

func (s *Service) SetNote(ctx context.Context, date time.Time, note string) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.note")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	state, err := s.update(ctx, s.scheduler.Day(date), func(state *DayState) error {
		state.Record.Note = note
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set note: %w", err)
	}
	return state, nil
}

// Workout lists the day's scheduled exercises with the weights logged for
// them, and the weights logged for the same exercise a week earlier.
func (s *Service) Workout(ctx context.Context, date time.Time) (_ *DayWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.workout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	day := s.scheduler.Day(date)
	workoutDay := s.scheduler.WorkoutFor(day)

	logs, err := s.repo.ListWorkoutLogs(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	lastWeekLogs, err := s.repo.ListWorkoutLogs(ctx, day.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("list last week workout logs: %w", err)
	}

	byExercise := func(logs []WorkoutLog) map[string]WorkoutLog {
		m := make(map[string]WorkoutLog, len(logs))
		for _, wl := range logs {
			m[wl.Exercise] = wl
		}
		return m
	}
	current := byExercise(logs)
	lastWeek := byExercise(lastWeekLogs)

	workout := &DayWorkout{
		Day:       day,
		Name:      workoutDay.Name,
		Exercises: make([]ExerciseLog, 0, len(workoutDay.Exercises)),
	}
	for _, ex := range workoutDay.Exercises {
		exLog := ExerciseLog{
			Exercise: ex,
			Weights:  normalizeWeights(nil, ex.Sets),
		}
		if wl, ok := current[ex.Name]; ok {
			exLog.Weights = normalizeWeights(wl.Weights, ex.Sets)
			exLog.Note = wl.Note
		}
		if wl, ok := lastWeek[ex.Name]; ok {
			exLog.LastWeekWeights = wl.Weights
		}
		workout.Exercises = append(workout.Exercises, exLog)
	}

	return workout, nil
}

// LogSets stores the set weights of one of the day's scheduled exercises.
func (s *Service) LogSets(ctx context.Context, date time.Time, exercise string, weights []float64, note string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.logsets")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("exercise", exercise))

	day := s.scheduler.Day(date)
	ex, ok := s.scheduler.WorkoutFor(day).Exercise(exercise)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExercise, exercise)
	}

	wl, err := s.repo.GetOrCreateWorkoutLog(ctx, day, ex.Name)
	if err != nil {
		return nil, fmt.Errorf("get or create workout log: %w", err)
	}

	wl.Weights = normalizeWeights(weights, ex.Sets)
	wl.Note = note
	if err := s.repo.UpdateWorkoutLog(ctx, wl); err != nil {
		return nil, fmt.Errorf("update workout log: %w", err)
	}

	return wl, nil
}

// Week makes sure all seven days of the date's week exist and returns
// their summaries together with the week's completion rate.
func (s *Service) Week(ctx context.Context, date time.Time) (_ *WeekOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.daylog.week")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	days := s.scheduler.WeekDays(date)
	if err := s.repo.EnsureDays(ctx, days); err != nil {
		return nil, fmt.Errorf("ensure week days: %w", err)
	}

	states, err := s.repo.ListDays(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, fmt.Errorf("list week days: %w", err)
	}
	records := make(map[string]DayRecord, len(states))
	for _, st := range states {
		records[st.Record.Day.Format(time.DateOnly)] = st.Record
	}

	overview := &WeekOverview{
		WeekStart: days[0],
		Days:      make([]DaySummary, 0, len(days)),
	}
	scheduled, done := 0, 0
	for _, day := range days {
		record, ok := records[day.Format(time.DateOnly)]
		if !ok {
			record = DayRecord{Day: day}
		}
		summary := DaySummary{
			Plan:           s.scheduler.Plan(day),
			Record:         record,
			RunScheduled:   !s.scheduler.IsFullRestDay(day),
			LiftScheduled:  s.scheduler.DayKind(day) == schedule.DayKindTraining,
			MealsScheduled: true,
		}
		dayScheduled, dayDone := summary.Dots()
		scheduled += dayScheduled
		done += dayDone
		overview.Days = append(overview.Days, summary)
	}
	if scheduled > 0 {
		overview.CompletionRate = float64(done) / float64(scheduled) * 100
	}

	return overview, nil
}

// WeeklyCompletionRate is the percentage of done progress dots in the
// week containing date.
func (s *Service) WeeklyCompletionRate(ctx context.Context, date time.Time) (float64, error) {
	week, err := s.Week(ctx, date)
	if err != nil {
		return 0, err
	}
	return week.CompletionRate, nil
}
