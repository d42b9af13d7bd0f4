package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/WessleyAI/autospecs/engine/compare"
	"github.com/WessleyAI/autospecs/engine/domain"
	"github.com/WessleyAI/autospecs/engine/specs"
)

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleCarSpecs(svc *specs.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Lookup(r.Context(), r.URL.Query().Get("model"))
		if err != nil {
			status, msg := errorResponse(err)
			if status == http.StatusInternalServerError {
				logger.Error("car specs lookup failed", "err", err)
			}
			writeJSON(w, status, domain.Failed(msg))
			return
		}
		w.Header().Set("X-Specs-Source", string(out.Source))
		writeJSON(w, http.StatusOK, domain.Found(out.Spec))
	}
}

// Comparison is the data payload of GET /api/compare.
type Comparison struct {
	Cars    []domain.Spec   `json:"cars"`
	Summary compare.Summary `json:"summary"`
	// Skipped lists terms whose record duplicated an earlier one.
	Skipped []string `json:"skipped,omitempty"`
}

// CompareResult is the response envelope for GET /api/compare.
type CompareResult struct {
	Success bool        `json:"success"`
	Data    *Comparison `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func handleCompare(svc *specs.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms := r.URL.Query()["model"]
		outs, err := svc.LookupMany(r.Context(), terms)
		if err != nil {
			status, msg := errorResponse(err)
			if status == http.StatusInternalServerError {
				logger.Error("comparison lookup failed", "err", err)
			}
			writeJSON(w, status, CompareResult{Error: msg})
			return
		}

		c := compare.NewCollection()
		var skipped []string
		for i, o := range outs {
			if err := c.Add(o.Spec); err != nil {
				skipped = append(skipped, terms[i])
			}
		}
		sum, _ := c.Summary()
		writeJSON(w, http.StatusOK, CompareResult{
			Success: true,
			Data:    &Comparison{Cars: c.Specs(), Summary: sum, Skipped: skipped},
		})
	}
}

// errorResponse maps a service error to a status and a client-safe message.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyModel):
		return http.StatusBadRequest, "Car model parameter is required"
	case errors.Is(err, domain.ErrModelTooLong):
		return http.StatusBadRequest, "Car model parameter is too long"
	case errors.Is(err, domain.ErrTooManyModels):
		return http.StatusBadRequest, "At most 4 models can be compared"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Car specifications not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
