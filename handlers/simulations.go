// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/kingmaker/cliparse"
	"github.com/danielhkuo/kingmaker/db"
	"github.com/danielhkuo/kingmaker/election"
	"github.com/danielhkuo/kingmaker/middleware"
	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/report"
	"github.com/danielhkuo/kingmaker/scenario"
)

const (
	// MaxRuns bounds the work a single request can ask for
	MaxRuns = 100_000
	// MaxVoters bounds the electorate of a submitted scenario
	MaxVoters = 1_000_000

	defaultListLimit = 50
	maxListLimit     = 500
)

type SimulationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSimulationHandler(db *sql.DB, cfg cliparse.Config) *SimulationHandler {
	return &SimulationHandler{db: db, cfg: cfg}
}

// CreateSimulation handles POST /simulations
func (h *SimulationHandler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	var req models.SimulationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Runs == 0 {
		req.Runs = h.cfg.Runs
	}
	if req.Runs < 1 || req.Runs > MaxRuns {
		middleware.ErrorResponse(w, http.StatusBadRequest, "runs must be between 1 and "+strconv.Itoa(MaxRuns))
		return
	}
	if req.Workers < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "workers must not be negative")
		return
	}

	s := scenario.Example()
	if len(req.Scenario) > 0 && string(req.Scenario) != "null" {
		parsed, err := scenario.Parse(req.Scenario)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s = parsed
	}
	if s.Voters() > MaxVoters {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scenario may declare at most "+strconv.Itoa(MaxVoters)+" voters")
		return
	}

	name := req.Name
	if name == "" {
		name = s.Name
	}

	workers := req.Workers
	if workers == 0 {
		workers = h.cfg.Workers
	}
	sim, err := scenario.Build(s, election.WithWorkers(workers))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	outcomes, err := sim.RunMany(r.Context(), req.Runs, req.Seed)
	if err != nil {
		slog.Error("simulation failed", "scenario", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Simulation failed")
		return
	}

	rep, err := report.New(sim, outcomes, report.Meta{Name: name, Seed: req.Seed, Key: h.cfg.ReportKey})
	if err != nil {
		slog.Error("failed to build report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	if err := db.SaveSnapshot(r.Context(), h.db, rep); err != nil {
		slog.Error("failed to save snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("simulation stored", "id", rep.ID, "method", rep.Method, "runs", rep.Runs)

	middleware.JSONResponse(w, http.StatusCreated, rep)
}

// ListSimulations handles GET /simulations?limit=n
func (h *SimulationHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxListLimit))
			return
		}
		limit = n
	}

	snapshots, err := db.ListSnapshots(r.Context(), h.db, limit)
	if err != nil {
		slog.Error("failed to list snapshots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshots)
}

// GetSimulation handles GET /simulations/{id}, where id is a report ID or share slug
func (h *SimulationHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.load(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rep)
}

// GetSimulationText handles GET /simulations/{id}/text
func (h *SimulationHandler) GetSimulationText(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := report.WriteText(w, rep); err != nil {
		slog.Error("failed to render report", "id", rep.ID, "error", err)
	}
}

// VerifySimulation handles GET /simulations/{id}/verify
func (h *SimulationHandler) VerifySimulation(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.load(w, r)
	if !ok {
		return
	}

	valid := rep.Verify(h.cfg.ReportKey) == nil
	if !valid {
		slog.Warn("report fingerprint mismatch", "id", rep.ID)
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"id":          rep.ID,
		"fingerprint": rep.Fingerprint,
		"valid":       valid,
	})
}

func (h *SimulationHandler) load(w http.ResponseWriter, r *http.Request) (*report.Report, bool) {
	key := r.PathValue("id")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return nil, false
	}

	rep, err := db.GetSnapshot(r.Context(), h.db, key)
	if errors.Is(err, db.ErrSnapshotNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Simulation not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load snapshot", "key", key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}

	return rep, true
}
