package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/db"
	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/handler"
	transport "feedrelay/backend/internal/http"
	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/network"
	"feedrelay/backend/internal/repository"
	"feedrelay/backend/internal/scheduler"
	"feedrelay/backend/internal/service"
	"feedrelay/backend/internal/snowflake"
)

const shutdownTimeout = 10 * time.Second

// @title FeedRelay API
// @version 1.0
// @description Dashboard API for managing feed subscriptions relayed into chat servers.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:    "feedrelay",
		Usage:   "feed relay dashboard backend",
		Version: config.AppVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file",
				EnvVars: []string{config.ConfigPathEnvVar},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("fatal", "module", "app", "action", "run", "resource", "process", "result", "failed", "error", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (*config.Config, *sql.DB, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	logger.Init(logger.ParseLevel(cfg.Server.LogLevel))

	if err := snowflake.Init(cfg.Snowflake.NodeID); err != nil {
		return nil, nil, fmt.Errorf("init snowflake: %w", err)
	}

	dbConn, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, dbConn, nil
}

func migrate(c *cli.Context) error {
	cfg, dbConn, err := setup(c)
	if err != nil {
		return err
	}
	defer dbConn.Close()
	logger.Info("database migrated", "module", "app", "action", "migrate", "resource", "database", "result", "ok", "path", cfg.Database.Path)
	return nil
}

func serve(c *cli.Context) error {
	cfg, dbConn, err := setup(c)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	feedRepo := repository.NewFeedRepository(dbConn)
	failRecordRepo := repository.NewFailRecordRepository(dbConn)
	profileRepo := repository.NewServerProfileRepository(dbConn)

	clientFactory := network.NewClientFactory(cfg.Discord.ProxyURL)
	gateway := discord.NewClient(cfg.Discord, clientFactory)
	benefits := service.BenefitsFromConfig(cfg.Defaults)

	feedService := service.NewFeedService(feedRepo, failRecordRepo, gateway, benefits, clientFactory.NewHTTPClient(cfg.Discord.Timeout))
	serverService := service.NewServerService(profileRepo, gateway, cfg.Defaults)
	userService := service.NewUserService(gateway, benefits)

	router := transport.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewServerHandler(serverService),
		handler.NewFeedHandler(feedService, cfg.API, cfg.Defaults.RefreshRateSeconds),
		userService,
		dbConn,
		cfg.Server.StaticDir,
	)

	if cfg.Server.StatsInterval > 0 {
		sched := scheduler.New(service.NewStatsService(repository.NewStatsRepository(dbConn)), cfg.Server.StatsInterval)
		sched.Start()
		defer sched.Stop()
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "module", "app", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Server.Addr)
		if err := router.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "app", "action", "stop", "resource", "http", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
