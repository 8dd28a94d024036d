package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/avator7/todoapi/config"
	"github.com/avator7/todoapi/internal/hasher"
	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/middleware"
	"github.com/avator7/todoapi/internal/routes"
	"github.com/avator7/todoapi/internal/server"
	"github.com/avator7/todoapi/internal/todorepo"
	"github.com/avator7/todoapi/internal/todoservice"
	"github.com/avator7/todoapi/internal/userrepo"
	"github.com/avator7/todoapi/internal/userservice"
	"github.com/avator7/todoapi/pkg/databases/postgres"
	"github.com/avator7/todoapi/pkg/databases/sqlite"
	"github.com/avator7/todoapi/pkg/metrics"
	zerologger "github.com/avator7/todoapi/pkg/zerolog"
)

const DefaultSqlitePath = "./todo_app.db"

// App represents the main application, containing server and configuration.
// It initializes with a config file, validates settings, and manages routes.
type App struct {
	Server *server.Server
	Config *config.ServiceConfig
	Logger interfaces.Logger
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerologger.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	serverInstance := server.NewServer(cfg.Host, cfg.Port, logger)
	app.Server = serverInstance

	metricsInstance := app.initializeMetrics()

	dbClient, err := app.initializeDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database client: %v", err)
	}

	userRepo, todoRepo, err := initializeRepositories(dbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %v", err)
	}

	passwordHasher := hasher.NewBcryptHasher(0)
	userService := userservice.NewUserService(userRepo, passwordHasher, logger)
	todoService := todoservice.NewTodoService(todoRepo, logger)

	route := routes.NewRoute(metricsInstance, userService, todoService, validator)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})
	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	if err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %v", err)
	}

	// User creation is the only endpoint reachable without credentials.
	if err := app.Server.AddRoute(routes.CreateUserRouteAPI, route.CreateUser); err != nil {
		return nil, fmt.Errorf("failed to add create user route: %v", err)
	}

	// Every todo route re-authenticates the Basic credential pair.
	authGate := middleware.BasicAuth(userService, logger)
	todoRoutes := map[string]http.HandlerFunc{
		routes.ListTodosRouteAPI:  route.ListTodos,
		routes.CreateTodoRouteAPI: route.CreateTodo,
		routes.GetTodoRouteAPI:    route.GetTodo,
		routes.UpdateTodoRouteAPI: route.UpdateTodo,
		routes.DeleteTodoRouteAPI: route.DeleteTodo,
	}
	for pattern, handler := range todoRoutes {
		if err := app.Server.AddRoute(pattern, authGate(handler).ServeHTTP); err != nil {
			return nil, fmt.Errorf("failed to add route %s: %v", pattern, err)
		}
	}

	app.Server.Use(middleware.RequestID(logger))
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		app.Server.Use(middleware.RateLimitMiddleware(limiter))
	}

	return app, nil
}

func (app *App) Run() error {
	// start the server
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.RegisterCounter(routes.UserCreateRequestsTotal, routes.UserCreateRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.UserCreateErrorsTotal, routes.UserCreateErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.UserCreateDurationSeconds,
		routes.UserCreateDurationSecondsHelp,
		routes.UserCreateDurationSecondsBuckets)

	appMetrics.RegisterCounterVec(routes.TodoRequestsTotal, routes.TodoRequestsTotalHelp, []string{"op"})
	appMetrics.RegisterCounterVec(routes.TodoErrorsTotal, routes.TodoErrorsTotalHelp, []string{"op"})
	appMetrics.RegisterCounterVec(routes.TodoNotFoundTotal, routes.TodoNotFoundTotalHelp, []string{"op"})
	appMetrics.RegisterHistogramVec(
		routes.TodoDurationSeconds,
		routes.TodoDurationSecondsHelp,
		routes.TodoDurationSecondsBuckets,
		[]string{"op"})

	return appMetrics
}

func (app *App) initializeDBClient() (interfaces.DBClient, error) {
	var dbClient interfaces.DBClient
	var dsn string

	switch app.Config.Database.Type {
	case "sqlite":
		dbClient = sqlite.NewSqliteDatabaseClient()
		dsn = app.Config.Database.Sqlite.Path
		if dsn == "" {
			dsn = DefaultSqlitePath
		}

	case "postgres":
		pgCfg := app.Config.Database.Postgres
		dbClient = postgres.NewPostgresDatabaseClient(
			pgCfg.MaxOpenConns,
			pgCfg.MaxIdleConns,
			secondsToDuration(pgCfg.ConnMaxLifetimeSecs))
		dsn = pgCfg.DSN

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	if err := dbClient.Connect(context.Background(), dsn); err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", app.Config.Database.Type, err)
	}

	return dbClient, nil
}

func secondsToDuration(secs int) time.Duration {
	return time.Duration(secs) * time.Second
}

func initializeRepositories(dbClient interfaces.DBClient) (interfaces.UserRepository, interfaces.TodoRepository, error) {
	userRepo, err := userrepo.NewUserRepository(dbClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize user repository: %v", err)
	}
	todoRepo, err := todorepo.NewTodoRepository(dbClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize todo repository: %v", err)
	}

	// Create both tables on startup; both statements are idempotent.
	if err := userRepo.EnsureSchema(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure users schema: %v", err)
	}
	if err := todoRepo.EnsureSchema(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure todos schema: %v", err)
	}

	return userRepo, todoRepo, nil
}
