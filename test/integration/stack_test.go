//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	transport "github.com/jsamuelsen/quote-vote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-vote-service/internal/adapters/store"
	"github.com/jsamuelsen/quote-vote-service/internal/app"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

// stack is the full service wired in-process over a fresh SQLite database.
type stack struct {
	server *httptest.Server
	store  *store.Store
	dir    string
}

// startStack opens a store of the given driver and serves the router on a
// local listener. An empty dsn selects a temporary SQLite file.
func startStack(driver, dsn string) (*stack, error) {
	gin.SetMode(gin.TestMode)

	dir := ""
	if dsn == "" {
		var err error

		dir, err = os.MkdirTemp("", "quote-vote-*")
		if err != nil {
			return nil, err
		}

		driver = store.DriverSQLite
		dsn = "file:" + filepath.Join(dir, "ledger.db")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	db, err := store.Open(ctx, &store.Config{
		Driver:       driver,
		DSN:          dsn,
		MaxOpenConns: 16,
		MaxIdleConns: 16,
		PingTimeout:  5 * time.Second,
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	registry := ports.NewHealthRegistry(time.Second)
	if err := registry.Register(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	engine := gin.New()
	transport.SetupRouter(engine, transport.RouterConfig{
		Logger:        logger,
		AuthConfig:    &config.AuthConfig{SubjectHeader: "X-User-ID"},
		Timeout:       10 * time.Second,
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "unknown")),
		VoteHandler:   handlers.NewVoteHandler(app.NewVoteService(app.VoteServiceConfig{Store: db, Logger: logger})),
		QuoteHandler:  handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{Repository: db, Logger: logger})),
		StatsHandler:  handlers.NewStatsHandler(app.NewStatsService(app.StatsServiceConfig{Store: db, Logger: logger})),
	})

	return &stack{server: httptest.NewServer(engine), store: db, dir: dir}, nil
}

func (s *stack) URL() string {
	return s.server.URL
}

func (s *stack) Close() {
	s.server.Close()
	_ = s.store.Close()

	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}
