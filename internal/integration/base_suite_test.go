package integration_test

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/movierental/movie-rental-service/client"
	"github.com/movierental/movie-rental-service/internal/app"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// BaseSuite starts one Postgres container per suite and serves the real
// application on top of it. Migrations run inside app.New, so the schema
// is in place before any test executes.
type BaseSuite struct {
	suite.Suite
	app         *app.Application
	dbContainer *PostgresContainer
	server      *httptest.Server
	client      *client.Client
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	s.dbContainer = postgresContainer

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
		DB: app.DBConfig{
			DSN:          postgresContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		PaymentTimeout: 5 * time.Second,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testApp, err := app.New(cfg, logger)
	if err != nil {
		log.Printf("cannot initialize app: %s", err)
		return
	}

	s.app = testApp
	s.server = httptest.NewServer(testApp.Routes())
	s.client = client.New(s.server.URL, s.server.Client())
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.app != nil {
		s.app.Close()
	}
	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}
