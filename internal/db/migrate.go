package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/2beens/aztracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

//go:embed schema.sql
var Schema string

// Migrate applies the schema. All statements are idempotent, so it is safe
// to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "db.migrate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	// simple protocol: the schema holds several statements
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Conn().PgConn().Exec(ctx, Schema).ReadAll(); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	log.Debugln("db schema applied")
	return nil
}
