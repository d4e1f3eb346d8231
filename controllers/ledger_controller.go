package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/services"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 16

// LedgerController serves the JSON and plain-text ledger API
type LedgerController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewLedgerController creates a new ledger controller
func NewLedgerController(services *services.Services, logger *zap.Logger) *LedgerController {
	return &LedgerController{
		services: services,
		logger:   logger,
	}
}

type askRequest struct {
	Input string `json:"input"`
}

type auditResponse struct {
	Entries []models.AuditLogEntry `json:"entries"`
	Total   int                    `json:"total"`
}

// Ask handles POST /ask
func (c *LedgerController) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		writeJSONError(w, http.StatusBadRequest, "input is required")
		return
	}

	writeText(w, c.services.Commands.Ask(r.Context(), req.Input))
}

// Execute handles POST /api/commands
func (c *LedgerController) Execute(w http.ResponseWriter, r *http.Request) {
	var cmd models.Command
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&cmd); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid command: "+err.Error())
		return
	}

	writeText(w, c.services.Commands.Execute(r.Context(), cmd))
}

// Summary handles GET /api/summary
func (c *LedgerController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.services.Reports.GetSummary(r.Context())
	if err != nil {
		c.logger.Error("failed to build summary", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Audit handles GET /api/audit
func (c *LedgerController) Audit(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := c.services.Audit.GetRecentEntries(r.Context(), limit)
	if err != nil {
		c.logger.Error("failed to read audit log", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := c.services.Audit.GetEntryCount(r.Context())
	if err != nil {
		c.logger.Error("failed to count audit log", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if entries == nil {
		entries = []models.AuditLogEntry{}
	}
	writeJSON(w, http.StatusOK, auditResponse{Entries: entries, Total: total})
}
