package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/aztracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entryColumns = `id, entry_date, weight_kg, run_time_seconds, completion_rate, notes, front_photo, back_photo, side_photo`

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

func (r *Repo) scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	if err := row.Scan(
		&e.ID,
		&e.EntryDate,
		&e.WeightKg,
		&e.RunTimeSeconds,
		&e.CompletionRate,
		&e.Notes,
		&e.Photos.Front,
		&e.Photos.Back,
		&e.Photos.Side,
	); err != nil {
		return nil, err
	}
	e.EntryDate = e.EntryDate.In(r.loc)
	return &e, nil
}

func (r *Repo) Add(ctx context.Context, entry *Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	added, err := r.scanEntry(r.db.QueryRow(ctx, `
		INSERT INTO progress_entry (entry_date, weight_kg, run_time_seconds, completion_rate, notes, front_photo, back_photo, side_photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+entryColumns,
		entry.EntryDate,
		entry.WeightKg,
		entry.RunTimeSeconds,
		entry.CompletionRate,
		entry.Notes,
		entry.Photos.Front,
		entry.Photos.Back,
		entry.Photos.Side,
	))
	if err != nil {
		return nil, fmt.Errorf("insert progress entry: %w", err)
	}

	span.SetAttributes(attribute.Int("id", added.ID))
	return added, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	entry, err := r.scanEntry(r.db.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM progress_entry
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("select progress entry: %w", err)
	}
	return entry, nil
}

// Latest returns the entry with the greatest entry date.
func (r *Repo) Latest(ctx context.Context) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.latest")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entry, err := r.scanEntry(r.db.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM progress_entry
		ORDER BY entry_date DESC, id DESC
		LIMIT 1
	`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("select latest progress entry: %w", err)
	}
	return entry, nil
}

// List returns entries sorted by entry date, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var (
		conditions []string
		args       []any
	)
	if params.From != nil {
		args = append(args, *params.From)
		conditions = append(conditions, fmt.Sprintf("entry_date >= $%d", len(args)))
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		args = append(args, *params.To)
		conditions = append(conditions, fmt.Sprintf("entry_date < $%d", len(args)))
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	query := `SELECT ` + entryColumns + ` FROM progress_entry`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY entry_date DESC, id DESC`
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		span.SetAttributes(attribute.Int("limit", params.Limit))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select progress entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM progress_entry WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete progress entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
