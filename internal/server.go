package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/aztracker/internal/config"
	"github.com/2beens/aztracker/internal/daylog"
	"github.com/2beens/aztracker/internal/db"
	"github.com/2beens/aztracker/internal/middleware"
	"github.com/2beens/aztracker/internal/photos"
	"github.com/2beens/aztracker/internal/progress"
	"github.com/2beens/aztracker/internal/schedule"
	"github.com/2beens/aztracker/internal/telemetry/metrics"
	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"
)

const photoUploadRateLimitKey = "aztracker::ratelimit::photo-upload"
const dbStartupWait = 30 * time.Second

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	displayUnit progress.WeightUnit
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	scheduler       *schedule.Scheduler
	daylogService   *daylog.Service
	progressService *progress.Service
	photoStore      *photos.Store
	tokenChecker    *middleware.HashTokenChecker

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AppTokenHash            string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	summaryTTL, err := cfg.SummaryTTL()
	if err != nil {
		return nil, err
	}
	if summaryTTL == 0 {
		summaryTTL = progress.DefaultSummaryTTL
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	// the tracker is useless without its tables: wait for postgres, then migrate
	if err := db.WaitForDB(ctx, dbPool, dbStartupWait); err != nil {
		dbPool.Close()
		return nil, err
	}
	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("aztracker", "main", promRegistry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "aztracker", rdb)
	if err != nil {
		return nil, err
	}

	cacheSize := photos.DefaultCacheSize
	if cfg.PhotosCacheSizeMB > 0 {
		cacheSize = cfg.PhotosCacheSizeMB << 20
	}
	photoStore, err := photos.NewStore(cfg.PhotosRootPath, cacheSize)
	if err != nil {
		return nil, fmt.Errorf("new photo store: %w", err)
	}

	scheduler := schedule.NewScheduler(loc)
	daylogService := daylog.NewService(daylog.NewRepo(dbPool, loc), scheduler)
	progressService := progress.NewService(
		progress.NewRepo(dbPool, loc),
		daylogService,
		photoStore,
		progress.NewRedisSummaryCache(rdb, summaryTTL),
	)

	return &Server{
		config:      cfg,
		displayUnit: progress.ParseWeightUnit(cfg.DisplayWeightUnit),
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		scheduler:       scheduler,
		daylogService:   daylogService,
		progressService: progressService,
		photoStore:      photoStore,
		tokenChecker:    middleware.NewHashTokenChecker(params.AppTokenHash),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	schedule.NewHandler(s.scheduler).SetupRoutes(r)

	daylog.NewHandler(s.daylogService, s.scheduler, s.metricsManager).SetupRoutes(r)

	progress.NewHandler(
		s.progressService,
		s.scheduler.Location(),
		s.displayUnit,
		s.metricsManager,
	).SetupRoutes(r)

	uploadRateLimit := s.config.UploadRateLimitPerMin
	if uploadRateLimit <= 0 {
		uploadRateLimit = 20
	}
	photos.NewHandler(s.photoStore, s.metricsManager).SetupRoutes(
		r,
		middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			photoUploadRateLimitKey,
			uploadRateLimit,
			s.metricsManager,
		),
	)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteTextResponseOK(w, version)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "aztracker"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before closing what they use
	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
	}
	log.Warnln("servers shut down")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf("graceful shutdown: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
