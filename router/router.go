// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/kingmaker/cliparse"
	"github.com/danielhkuo/kingmaker/handlers"
	"github.com/danielhkuo/kingmaker/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	simHandler := handlers.NewSimulationHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Simulations
	mux.HandleFunc("POST /simulations", middleware.WithLogging(simHandler.CreateSimulation))
	mux.HandleFunc("GET /simulations", middleware.WithLogging(simHandler.ListSimulations))
	mux.HandleFunc("GET /simulations/{id}", middleware.WithLogging(simHandler.GetSimulation))
	mux.HandleFunc("GET /simulations/{id}/text", middleware.WithLogging(simHandler.GetSimulationText))
	mux.HandleFunc("GET /simulations/{id}/verify", middleware.WithLogging(simHandler.VerifySimulation))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("kingmaker API v1"))
	})

	return middleware.CORS(mux)
}
