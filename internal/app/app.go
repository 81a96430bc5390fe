package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/movierental/movie-rental-service/internal/domain"
	"github.com/movierental/movie-rental-service/internal/payment"
	"github.com/movierental/movie-rental-service/internal/repository"
	appvalidator "github.com/movierental/movie-rental-service/internal/validator"
	"github.com/movierental/movie-rental-service/migrations"
)

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type Config struct {
	Port           int
	Env            string
	DB             DBConfig
	PaymentTimeout time.Duration
}

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	validator *validator.Validate

	customerRepo domain.CustomerRepository
	movieRepo    domain.MovieRepository
	rentalRepo   domain.RentalRepository

	payments *payment.Resolver
}

func New(cfg Config, logger *slog.Logger) (*Application, error) {
	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	err = runMigrations(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := &Application{
		config:       cfg,
		logger:       logger,
		db:           db,
		validator:    appvalidator.NewValidator(),
		customerRepo: repository.NewPostgresCustomerRepository(db),
		movieRepo:    repository.NewPostgresMovieRepository(db),
		rentalRepo:   repository.NewPostgresRentalRepository(db),
		payments:     payment.NewDefaultResolver(),
	}

	return app, nil
}

func (app *Application) Close() {
	app.db.Close()
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(cfg Config) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return fmt.Errorf("failed to parse DSN: %w", err)
	}

	db := pgxstd.OpenDB(*config.ConnConfig)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/healthz", app.GetHealth)

	r.Route("/customer", func(r chi.Router) {
		r.Post("/", app.SaveCustomer)
		r.Get("/", app.ListCustomers)
	})

	r.Route("/movie", func(r chi.Router) {
		r.Post("/", app.SaveMovie)
		r.Get("/", app.ListMovies)
	})

	r.Route("/rental", func(r chi.Router) {
		r.Post("/", app.CreateRental)
		r.Get("/", app.GetRentals)
	})

	return r
}

func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
