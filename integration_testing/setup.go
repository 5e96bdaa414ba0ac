//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/2beens/aztracker/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const testDBName = "aztracker"

type Suite struct {
	DB         *sql.DB
	Pool       *pgxpool.Pool
	dockerPool *dockertest.Pool
	teardown   []func()
}

func newSuite(ctx context.Context) (*Suite, error) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	suite.dockerPool.MaxWait = time.Minute

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("failed to setup postgres: %w", err)
	}

	suite.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: testDBName,
	})
	if err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	return suite, nil
}

func (s *Suite) cleanup() {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Errorf("test suite db close: %s", err)
		}
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

// truncate empties all tables between tests.
func (s *Suite) truncate() error {
	_, err := s.DB.Exec(`TRUNCATE day_record, meal_log, workout_log, progress_entry RESTART IDENTITY CASCADE`)
	return err
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			log.Errorf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %w", err)
	}
	s.DB = sqlDB

	if err := s.dockerPool.Retry(sqlDB.Ping); err != nil {
		return "", fmt.Errorf("ping db: %w", err)
	}

	if _, err := sqlDB.Exec(db.Schema); err != nil {
		return "", fmt.Errorf("run schema: %w", err)
	}

	log.Debugf("postgres ready on port %s", pgPort)
	return pgPort, nil
}
