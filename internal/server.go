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
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/ali-ismaeel564/fitxAPI/internal/auth"
	"github.com/ali-ismaeel564/fitxAPI/internal/config"
	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/fitx/leaderboard"
	"github.com/ali-ismaeel564/fitxAPI/internal/fitx/reps"
	"github.com/ali-ismaeel564/fitxAPI/internal/fitx/users"
	"github.com/ali-ismaeel564/fitxAPI/internal/middleware"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/metrics"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/pkg"
)

const (
	maxRequestBodyBytes = 1 << 20
	livenessMessage     = "I'm OK, thanks ;)"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	mongoClient *mongo.Client

	redisClient    *redis.Client
	tokenService   *auth.TokenService
	revocations    *auth.RevocationList
	rateLimiter    middleware.RequestRateLimiter
	trustedProxies pkg.TrustedProxies

	usersRepo        users.Repository
	repsRepo         reps.Repository
	leaderboardRepo  leaderboard.Repository
	leaderboardCache *leaderboard.Cache

	// video provider credentials, kept for the upcoming integration
	videoClientID     string
	videoClientSecret string

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config  *config.Config
	Secrets *config.Secrets
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	trustedProxies, err := pkg.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("parse trusted proxies: %w", err)
	}

	s := &Server{
		config:            cfg,
		trustedProxies:    trustedProxies,
		videoClientID:     secrets.VideoClientID,
		videoClientSecret: secrets.VideoClientSecret,
	}

	var extraCollectors []prometheus.Collector
	switch cfg.StoreBackend {
	case config.StoreBackendMongo:
		mongoClient, err := db.NewMongoClient(ctx, secrets.DBURL)
		if err != nil {
			return nil, fmt.Errorf("new mongo client: %w", err)
		}
		database := mongoClient.Database(cfg.MongoDatabase)
		if err := db.EnsureMongoIndexes(ctx, database); err != nil {
			return nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}

		s.mongoClient = mongoClient
		s.usersRepo = users.NewMongoRepo(database)
		s.repsRepo = reps.NewMongoRepo(database)
		s.leaderboardRepo = leaderboard.NewMongoRepo(database)
	default:
		if cfg.RunMigrations {
			if err := db.MigrateUp(ctx, secrets.DBURL); err != nil {
				return nil, fmt.Errorf("migrate up: %w", err)
			}
		}

		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			ConnString:     secrets.DBURL,
			TracingEnabled: secrets.HoneycombEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}

		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		s.dbPool = dbPool
		s.usersRepo = users.NewRepo(dbPool)
		s.repsRepo = reps.NewRepo(dbPool)
		s.leaderboardRepo = leaderboard.NewRepo(dbPool)
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": "fitx"},
		))
	}
	log.Debugf("using [%s] store backend", cfg.StoreBackend)

	s.promRegistry = metrics.SetupPrometheus("fitx-backend", extraCollectors...)
	s.metricsManager = metrics.NewManager("fitx", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	s.redisClient = redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := s.redisClient.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, "fitx-backend", s.redisClient)
	if err != nil {
		return nil, err
	}
	s.otelShutdown = otelShutdown

	s.tokenService = auth.NewTokenService(secrets.TokenSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	s.revocations = auth.NewRevocationList(s.redisClient)
	s.rateLimiter = redis_rate.NewLimiter(s.redisClient)
	s.leaderboardCache = leaderboard.NewCache(0, time.Duration(cfg.LeaderboardCacheTTLSeconds)*time.Second)

	log.Debugf("video provider client configured: %t", s.videoClientID != "" && s.videoClientSecret != "")

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitx-router"))

	leaderboardService := leaderboard.NewService(leaderboard.ServiceParams{
		Repo:           s.leaderboardRepo,
		Cache:          s.leaderboardCache,
		DefaultLimit:   s.config.LeaderboardDefaultLimit,
		MetricsManager: s.metricsManager,
	})
	usersHandler := users.NewHandler(users.NewService(users.ServiceParams{
		Repo:             s.usersRepo,
		Tokens:           s.tokenService,
		Revocations:      s.revocations,
		OnProfileCreated: leaderboardService.Invalidate,
		MetricsManager:   s.metricsManager,
	}))
	repsHandler := reps.NewHandler(reps.NewService(reps.ServiceParams{
		Repo:                       s.repsRepo,
		EnforceGoodRepsLeAttempted: s.config.EnforceGoodRepsLeAttempted,
		OnRepAdded:                 leaderboardService.Invalidate,
		MetricsManager:             s.metricsManager,
	}))
	leaderboardHandler := leaderboard.NewHandler(leaderboardService)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, livenessMessage)
	}).Methods("GET").Name("liveness")

	// signup and login are open, so they are rate limited per client ip
	openRouter := r.NewRoute().Subrouter()
	openRouter.HandleFunc("/api/signup", usersHandler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	openRouter.HandleFunc("/api/login", usersHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	openRouter.Use(middleware.RateLimit(
		s.rateLimiter,
		"fitx-open",
		s.config.LoginRateLimitAllowedPerMin,
		s.trustedProxies,
		s.metricsManager,
	))

	r.HandleFunc("/api/logout", usersHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/api/user", usersHandler.HandleCreateProfile).Methods("POST", "OPTIONS").Name("create-profile")
	r.HandleFunc("/api/user/{userID}", usersHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/api/userPatchup", usersHandler.HandleAddPatch).Methods("POST", "OPTIONS").Name("add-patchup")
	r.HandleFunc("/api/userPatchup", usersHandler.HandleListPatches).Methods("GET").Name("list-patchups")
	r.HandleFunc("/api/userReps", repsHandler.HandleAddRep).Methods("POST", "OPTIONS").Name("add-rep")
	r.HandleFunc("/api/userLift/{userID}", repsHandler.HandleWeeklyLift).Methods("GET", "OPTIONS").Name("weekly-lift")
	r.HandleFunc("/api/leaderboards", leaderboardHandler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboards")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteFail(w, http.StatusNotFound, "not found")
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenService, s.revocations, s.metricsManager)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest(s.trustedProxies))
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.StoreTimeout(time.Duration(s.config.StoreTimeoutSeconds) * time.Second))
	r.Use(middleware.LimitRequestBody(maxRequestBodyBytes))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
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

// GracefulShutdown stops both http servers first, then releases the store and redis connections.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if s.mongoClient != nil {
		if err := s.mongoClient.Disconnect(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("disconnect mongo: %w", err))
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return shutdownErr
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
