package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"kas/internal/core"
	"kas/internal/report"
)

const dashboardCacheKey = "dashboard"

// transactionsResponse mirrors the payload the frontend already consumes.
type transactionsResponse struct {
	Transactions []core.Transaction   `json:"transactions"`
	Count        int                  `json:"count"`
	Type         core.TransactionKind `json:"type"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleDashboard serves the reconciled snapshot. The service never fails,
// so this handler only ever answers 200 (or 405).
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if data, found := s.dashCache.Get(dashboardCacheKey); found {
		slog.DebugContext(r.Context(), "Dashboard cache hit")
		writeJSON(w, http.StatusOK, data)
		return
	}

	data := s.svc.DashboardData(r.Context())
	s.dashCache.Set(dashboardCacheKey, data)
	writeJSON(w, http.StatusOK, data)
}

// handleTransactions serves the on-demand detail list for one year's sheet.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	yearParam := strings.TrimSpace(r.URL.Query().Get("year"))
	if yearParam == "" {
		writeError(w, http.StatusBadRequest, "year parameter required")
		return
	}
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year parameter")
		return
	}

	kind, err := core.ParseTransactionKind(strings.TrimSpace(r.URL.Query().Get("type")))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid type parameter")
		return
	}

	txs, err := s.svc.Transactions(r.Context(), year, kind)
	if err != nil {
		if errors.Is(err, report.ErrYearNotConfigured) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Transaction listing failed", "error", err, "year", year, "type", kind)
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, transactionsResponse{
		Transactions: txs,
		Count:        len(txs),
		Type:         kind,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
