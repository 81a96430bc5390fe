package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/movierental/movie-rental-service/internal/app"
	"github.com/movierental/movie-rental-service/internal/vcs"
)

var (
	version = vcs.Version()
)

func main() {
	// A .env file can seed the environment in development; flags still win.
	_ = godotenv.Load()

	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.DurationVar(&cfg.PaymentTimeout, "payment-timeout", 10*time.Second, "Upper bound on a payment settlement call")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer application.Close()

	err = application.Serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
