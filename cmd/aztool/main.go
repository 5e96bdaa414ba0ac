package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/2beens/aztracker/internal/config"
	"github.com/2beens/aztracker/internal/daylog"
	"github.com/2beens/aztracker/internal/db"
	"github.com/2beens/aztracker/internal/logging"
	"github.com/2beens/aztracker/internal/progress"
	"github.com/2beens/aztracker/internal/schedule"
	"github.com/2beens/aztracker/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	appConfigKey   = "aztracker.config"
	appLocationKey = "aztracker.location"
)

func appConfig(c *cli.Context) *config.Config {
	return c.App.Metadata[appConfigKey].(*config.Config)
}

func appLocation(c *cli.Context) *time.Location {
	return c.App.Metadata[appLocationKey].(*time.Location)
}

func openPool(c *cli.Context) (*pgxpool.Pool, error) {
	cfg := appConfig(c)
	pool, err := db.NewDBPool(c.Context, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(c.Context); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func parseDate(c *cli.Context, scheduler *schedule.Scheduler) (time.Time, error) {
	value := c.String("date")
	if value == "" {
		return scheduler.Day(time.Now()), nil
	}
	return scheduler.ParseDay(value)
}

func encode(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var dateFlag = &cli.StringFlag{
	Name:    "date",
	Aliases: []string{"d"},
	Usage:   "day in YYYY-MM-DD format, today by default",
}

func migrate() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create the database schema",
		Action: func(c *cli.Context) error {
			pool, err := openPool(c)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(c.Context, pool); err != nil {
				return err
			}
			log.Info("schema applied")
			return nil
		},
	}
}

func plan() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "print the plan of a day",
		Flags: []cli.Flag{
			dateFlag,
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the full plan as json",
			},
		},
		Action: func(c *cli.Context) error {
			scheduler := schedule.NewScheduler(appLocation(c))
			date, err := parseDate(c, scheduler)
			if err != nil {
				return err
			}

			dayPlan := scheduler.Plan(date)
			if c.Bool("json") {
				return encode(c, dayPlan)
			}

			w := c.App.Writer
			fmt.Fprintf(w, "%s %s: %s, %s carb, %d kcal\n",
				dayPlan.Date.Format(time.DateOnly), dayPlan.Weekday, dayPlan.Kind, dayPlan.CarbType, dayPlan.TargetCalories)
			fmt.Fprintf(w, "cardio: %s\n", dayPlan.CardioDescription)
			fmt.Fprintf(w, "workout: %s\n", dayPlan.Workout.Name)
			for _, ex := range dayPlan.Workout.Exercises {
				fmt.Fprintf(w, "  %-28s %dx %s\n", ex.Name, ex.Sets, ex.RepRange)
			}
			for _, meal := range dayPlan.Meals {
				fmt.Fprintf(w, "%s %s\n", meal.Time, meal.Title)
				for i, opt := range meal.Options {
					fmt.Fprintf(w, "  [%d] %s (%d kcal)\n", i, opt.Description, opt.Calories)
				}
			}
			if dayPlan.Shake != nil {
				fmt.Fprintf(w, "shake: %s (%d kcal)\n", dayPlan.Shake.Description, dayPlan.Shake.Calories)
			}
			return nil
		},
	}
}

func week() *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "print the tracked week of a day",
		Flags: []cli.Flag{dateFlag},
		Action: func(c *cli.Context) error {
			loc := appLocation(c)
			scheduler := schedule.NewScheduler(loc)
			date, err := parseDate(c, scheduler)
			if err != nil {
				return err
			}

			pool, err := openPool(c)
			if err != nil {
				return err
			}
			defer pool.Close()

			service := daylog.NewService(daylog.NewRepo(pool, loc), scheduler)
			overview, err := service.Week(c.Context, date)
			if err != nil {
				return err
			}

			w := c.App.Writer
			fmt.Fprintf(w, "week of %s\n", overview.WeekStart.Format(time.DateOnly))
			for _, day := range overview.Days {
				scheduled, done := day.Dots()
				fmt.Fprintf(w, "  %-9s %-12s %s\n",
					day.Plan.Weekday, day.Plan.Kind, strings.Repeat("●", done)+strings.Repeat("○", scheduled-done))
			}
			fmt.Fprintf(w, "completion: %s\n", progress.FormatCompletionRate(overview.CompletionRate))
			return nil
		},
	}
}

func summary() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "print progress statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "window",
				Aliases: []string{"w"},
				Value:   "week",
				Usage:   "statistics window [week | month | 3months]",
			},
		},
		Action: func(c *cli.Context) error {
			window, err := progress.ParseWindow(c.String("window"))
			if err != nil {
				return err
			}

			cfg := appConfig(c)
			pool, err := openPool(c)
			if err != nil {
				return err
			}
			defer pool.Close()

			service := progress.NewService(progress.NewRepo(pool, appLocation(c)), nil, nil, progress.NopSummaryCache{})
			s, err := service.Summary(c.Context, window)
			if err != nil {
				return err
			}
			return encode(c, progress.NewSummaryResponse(s, progress.ParseWeightUnit(cfg.DisplayWeightUnit)))
		},
	}
}

func hashToken() *cli.Command {
	return &cli.Command{
		Name:      "hash-token",
		Usage:     "hash an app token for AZ_APP_TOKEN_HASH",
		ArgsUsage: "<token>",
		Action: func(c *cli.Context) error {
			token := c.Args().First()
			if token == "" {
				return errors.New("missing token")
			}
			hash, err := pkg.HashToken(token)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hash)
			return nil
		},
	}
}

func main() {
	app := &cli.App{
		Name:     "aztool",
		HelpName: "aztool",
		Usage:    "aztracker maintenance tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Value:   "development",
				Usage:   "config environment [dev | development | prod | production]",
				EnvVars: []string{"AZ_ENV"},
			},
			&cli.StringFlag{
				Name:    "config",
				Value:   "./config.toml",
				Usage:   "path of the TOML config file",
				EnvVars: []string{"AZ_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error(err)
		},
		Before: func(c *cli.Context) error {
			level := "info"
			if c.Bool("verbose") {
				level = "debug"
			}
			logging.Setup(logging.LoggerSetupParams{
				LogToStdout: true,
				LogLevel:    level,
			})

			cfg, err := config.Load(c.String("env"), c.String("config"))
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			if c.App.Metadata == nil {
				c.App.Metadata = make(map[string]interface{})
			}
			c.App.Metadata[appConfigKey] = cfg
			c.App.Metadata[appLocationKey] = loc
			return nil
		},
		Commands: []*cli.Command{
			migrate(),
			plan(),
			week(),
			summary(),
			hashToken(),
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
