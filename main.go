package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/kingmaker/cliparse"
	"github.com/danielhkuo/kingmaker/db"
	"github.com/danielhkuo/kingmaker/election"
	"github.com/danielhkuo/kingmaker/report"
	"github.com/danielhkuo/kingmaker/router"
	"github.com/danielhkuo/kingmaker/scenario"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	if cfg.Serve {
		serve(dbConn, cfg)
		return
	}

	if err := simulate(dbConn, cfg); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// simulate runs the configured scenario once, prints the report and stores
// it when a database is configured
func simulate(dbConn *sql.DB, cfg cliparse.Config) error {
	s := scenario.Example()
	if cfg.Scenario != "" {
		loaded, err := scenario.Load(cfg.Scenario)
		if err != nil {
			return err
		}
		s = loaded
	}

	sim, err := scenario.Build(s, election.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	// Ctrl-C abandons outstanding runs
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, err := sim.RunMany(ctx, cfg.Runs, cfg.Seed)
	if err != nil {
		return err
	}

	rep, err := report.New(sim, outcomes, report.Meta{Name: s.Name, Seed: cfg.Seed, Key: cfg.ReportKey})
	if err != nil {
		return err
	}

	if dbConn != nil {
		if err := db.SaveSnapshot(ctx, dbConn, rep); err != nil {
			return err
		}
		slog.Info("report stored", "id", rep.ID, "slug", rep.Slug)
	}

	if cfg.Output == cliparse.OutputJSON {
		return report.WriteJSON(os.Stdout, rep)
	}
	return report.WriteText(os.Stdout, rep)
}

func serve(dbConn *sql.DB, cfg cliparse.Config) {
	mux := router.NewRouter(dbConn, cfg)

	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
