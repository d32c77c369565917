package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Jothi-Sri-K/ImpactLens/internal/config"
	"github.com/Jothi-Sri-K/ImpactLens/internal/ingest"
	"github.com/Jothi-Sri-K/ImpactLens/internal/repository/postgres"
	"github.com/Jothi-Sri-K/ImpactLens/internal/service"
	myhttp "github.com/Jothi-Sri-K/ImpactLens/internal/transport/http"

	"github.com/Jothi-Sri-K/ImpactLens/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting impactlens", slog.String("env", cfg.Env))

	errChan := make(chan error, 1)

	db, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %v", err)
	}
	defer func() {
		err = db.DB().Close()
		if err != nil {
			errChan <- fmt.Errorf("db close failed: %v", err)
		}
	}()

	teamRepo := postgres.NewTeamRepository(db.DB(), log)
	userRepo := postgres.NewUserRepository(db.DB(), log)
	commitRepo := postgres.NewCommitRepository(db.DB(), log)
	activityRepo := postgres.NewActivityRepository(db.DB(), log)
	scoreRepo := postgres.NewScoreRepository(db.DB(), log)

	githubSource := ingest.NewGithubSource(cfg.Github, log)
	demoSource := ingest.NewDemoSource()

	base := service.NewBaseService(db.DB(), log)

	teamService := service.NewTeamService(teamRepo, db.DB())
	userService := service.NewUserService(userRepo)
	activityService := service.NewActivityService(activityRepo)
	scoreService := service.NewScoreService(
		base,
		teamRepo, userRepo, commitRepo, activityRepo, scoreRepo,
		githubSource, demoSource, githubSource,
	)

	srv := myhttp.NewServer(log, teamService, userService, activityService, scoreService)
	httpServer := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Routes(),
	}

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %v", err)

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shuting down http server: %v", err)
	}

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errChan <- fmt.Errorf("error listening and serving: %v", err)
	}
}
