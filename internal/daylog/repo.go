package daylog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/aztracker/internal/schedule"
	"github.com/2beens/aztracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// dbtx is satisfied by both the pool and a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo stores day records, meal logs and workout logs. Days are DATE
// columns; values read back are placed at midnight in loc.
type Repo struct {
	db  *pgxpool.Pool
	loc *time.Location
}

func NewRepo(db *pgxpool.Pool, loc *time.Location) *Repo {
	if loc == nil {
		loc = time.Local
	}
	return &Repo{
		db:  db,
		loc: loc,
	}
}

func dateParam(day time.Time) string {
	return day.Format(time.DateOnly)
}

func (r *Repo) fromDBDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, r.loc)
}

func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(tx)
}

func ensureDay(ctx context.Context, db dbtx, day time.Time) error {
	if _, err := db.Exec(ctx, `
		INSERT INTO day_record (day)
		VALUES ($1::date)
		ON CONFLICT (day) DO NOTHING
	`, dateParam(day)); err != nil {
		return fmt.Errorf("insert day record: %w", err)
	}

	if _, err := db.Exec(ctx, `
		INSERT INTO meal_log (day, slot)
		SELECT $1::date, slot FROM generate_series(1, $2::int) AS slot
		ON CONFLICT (day, slot) DO NOTHING
	`, dateParam(day), schedule.MealSlots); err != nil {
		return fmt.Errorf("insert meal logs: %w", err)
	}

	return nil
}

func (r *Repo) loadDay(ctx context.Context, db dbtx, day time.Time, forUpdate bool) (*DayState, error) {
	query := `
		SELECT day, cardio_done, lift_done, meals_completed, supplements_done, shake_done, note, updated_at
		FROM day_record
		WHERE day = $1::date
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var (
		state DayState
		d     time.Time
	)
	err := db.QueryRow(ctx, query, dateParam(day)).Scan(
		&d,
		&state.Record.CardioDone,
		&state.Record.LiftDone,
		&state.Record.MealsCompleted,
		&state.Record.SupplementsDone,
		&state.Record.ShakeDone,
		&state.Record.Note,
		&state.Record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("select day record: %w", err)
	}
	state.Record.Day = r.fromDBDate(d)

	meals, err := r.loadMeals(ctx, db, day, day)
	if err != nil {
		return nil, err
	}
	state.Meals = meals

	return &state, nil
}

func (r *Repo) loadMeals(ctx context.Context, db dbtx, from, to time.Time) ([]MealLog, error) {
	rows, err := db.Query(ctx, `
		SELECT day, slot, completed, option_index, calories
		FROM meal_log
		WHERE day BETWEEN $1::date AND $2::date
		ORDER BY day, slot
	`, dateParam(from), dateParam(to))
	if err != nil {
		return nil, fmt.Errorf("select meal logs: %w", err)
	}
	defer rows.Close()

	var meals []MealLog
	for rows.Next() {
		var (
			m MealLog
			d time.Time
		)
		if err := rows.Scan(&d, &m.Slot, &m.Completed, &m.OptionIndex, &m.Calories); err != nil {
			return nil, fmt.Errorf("scan meal log: %w", err)
		}
		m.Day = r.fromDBDate(d)
		meals = append(meals, m)
	}

	return meals, rows.Err()
}

func (r *Repo) GetOrCreateDay(ctx context.Context, day time.Time) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.getorcreate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", dateParam(day)))

	var state *DayState
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := ensureDay(ctx, tx, day); err != nil {
			return err
		}
		state, err = r.loadDay(ctx, tx, day, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (r *Repo) GetDay(ctx context.Context, day time.Time) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", dateParam(day)))

	return r.loadDay(ctx, r.db, day, false)
}

// UpdateDay locks the day record (creating it first if needed), lets fn
// modify the loaded state and writes it back, all in one transaction.
func (r *Repo) UpdateDay(ctx context.Context, day time.Time, fn func(*DayState) error) (_ *DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", dateParam(day)))

	var state *DayState
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := ensureDay(ctx, tx, day); err != nil {
			return err
		}

		state, err = r.loadDay(ctx, tx, day, true)
		if err != nil {
			return err
		}

		if err := fn(state); err != nil {
			return err
		}

		state.Record.UpdatedAt = time.Now()
		if _, err := tx.Exec(ctx, `
			UPDATE day_record
			SET cardio_done = $2, lift_done = $3, meals_completed = $4,
				supplements_done = $5, shake_done = $6, note = $7, updated_at = $8
			WHERE day = $1::date
		`,
			dateParam(day),
			state.Record.CardioDone,
			state.Record.LiftDone,
			state.Record.MealsCompleted,
			state.Record.SupplementsDone,
			state.Record.ShakeDone,
			state.Record.Note,
			state.Record.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update day record: %w", err)
		}

		for _, m := range state.Meals {
			if _, err := tx.Exec(ctx, `
				UPDATE meal_log
				SET completed = $3, option_index = $4, calories = $5
				WHERE day = $1::date AND slot = $2
			`, dateParam(day), m.Slot, m.Completed, m.OptionIndex, m.Calories); err != nil {
				return fmt.Errorf("update meal log %d: %w", m.Slot, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// EnsureDays creates the missing day records (and their meal logs) for days.
func (r *Repo) EnsureDays(ctx context.Context, days []time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.ensure")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("days", len(days)))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		for _, day := range days {
			if err := ensureDay(ctx, tx, day); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListDays returns the existing day states in [from, to], ordered by day.
func (r *Repo) ListDays(ctx context.Context, from, to time.Time) (_ []DayState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("from", dateParam(from)),
		attribute.String("to", dateParam(to)),
	)

	rows, err := r.db.Query(ctx, `
		SELECT day, cardio_done, lift_done, meals_completed, supplements_done, shake_done, note, updated_at
		FROM day_record
		WHERE day BETWEEN $1::date AND $2::date
		ORDER BY day
	`, dateParam(from), dateParam(to))
	if err != nil {
		return nil, fmt.Errorf("select day records: %w", err)
	}
	defer rows.Close()

	var states []DayState
	for rows.Next() {
		var (
			rec DayRecord
			d   time.Time
		)
		if err := rows.Scan(
			&d,
			&rec.CardioDone,
			&rec.LiftDone,
			&rec.MealsCompleted,
			&rec.SupplementsDone,
			&rec.ShakeDone,
			&rec.Note,
			&rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan day record: %w", err)
		}
		rec.Day = r.fromDBDate(d)
		states = append(states, DayState{Record: rec})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	meals, err := r.loadMeals(ctx, r.db, from, to)
	if err != nil {
		return nil, err
	}
	byDay := make(map[time.Time][]MealLog, len(states))
	for _, m := range meals {
		byDay[m.Day] = append(byDay[m.Day], m)
	}
	for i := range states {
		states[i].Meals = byDay[states[i].Record.Day]
	}

	return states, nil
}

func (r *Repo) scanWorkoutLog(row pgx.Row) (*WorkoutLog, error) {
	var (
		wl WorkoutLog
		d  time.Time
	)
	if err := row.Scan(&d, &wl.Exercise, &wl.Weights, &wl.Note, &wl.UpdatedAt); err != nil {
		return nil, err
	}
	wl.Day = r.fromDBDate(d)
	if wl.Weights == nil {
		wl.Weights = []float64{}
	}
	return &wl, nil
}

func (r *Repo) GetWorkoutLog(ctx context.Context, day time.Time, exercise string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.workout.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("day", dateParam(day)),
		attribute.String("exercise", exercise),
	)

	wl, err := r.scanWorkoutLog(r.db.QueryRow(ctx, `
		SELECT day, exercise, weights, note, updated_at
		FROM workout_log
		WHERE day = $1::date AND exercise = $2
	`, dateParam(day), exercise))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutLogNotFound
		}
		return nil, fmt.Errorf("select workout log: %w", err)
	}
	return wl, nil
}

func (r *Repo) GetOrCreateWorkoutLog(ctx context.Context, day time.Time, exercise string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.workout.getorcreate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("day", dateParam(day)),
		attribute.String("exercise", exercise),
	)

	// the no-op update makes RETURNING yield the existing row on conflict
	wl, err := r.scanWorkoutLog(r.db.QueryRow(ctx, `
		INSERT INTO workout_log (day, exercise)
		VALUES ($1::date, $2)
		ON CONFLICT (day, exercise) DO UPDATE SET exercise = EXCLUDED.exercise
		RETURNING day, exercise, weights, note, updated_at
	`, dateParam(day), exercise))
	if err != nil {
		return nil, fmt.Errorf("get or create workout log: %w", err)
	}
	return wl, nil
}

// ListWorkoutLogs returns all workout logs of a day, without creating any.
func (r *Repo) ListWorkoutLogs(ctx context.Context, day time.Time) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.workout.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", dateParam(day)))

	rows, err := r.db.Query(ctx, `
		SELECT day, exercise, weights, note, updated_at
		FROM workout_log
		WHERE day = $1::date
		ORDER BY exercise
	`, dateParam(day))
	if err != nil {
		return nil, fmt.Errorf("select workout logs: %w", err)
	}
	defer rows.Close()

	var logs []WorkoutLog
	for rows.Next() {
		wl, err := r.scanWorkoutLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		logs = append(logs, *wl)
	}
	return logs, rows.Err()
}

func (r *Repo) UpdateWorkoutLog(ctx context.Context, wl *WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylog.workout.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("day", dateParam(wl.Day)),
		attribute.String("exercise", wl.Exercise),
	)

	wl.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, `
		UPDATE workout_log
		SET weights = $3, note = $4, updated_at = $5
		WHERE day = $1::date AND exercise = $2
	`, dateParam(wl.Day), wl.Exercise, wl.Weights, wl.Note, wl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutLogNotFound
	}
	return nil
}
