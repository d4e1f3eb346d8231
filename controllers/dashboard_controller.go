package controllers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/services"
)

const dashboardAuditLimit = 10

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		services: services,
		logger:   logger,
	}
}

type dashboardData struct {
	Title       string
	CurrentPage string
	Error       string
	Query       string
	Reply       string
	Summary     *services.LedgerSummary
	Recent      []models.AuditLogEntry
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	data, err := c.loadDashboard(r)
	if err != nil {
		http.Error(w, "Failed to load dashboard data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	renderTemplate(w, "dashboard", "templates/dashboard.html", data)
}

// Query handles POST /
func (c *DashboardController) Query(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	query := strings.TrimSpace(r.FormValue("query"))
	var reply, formErr string
	if query == "" {
		formErr = "Please enter a question or command."
	} else {
		reply = c.services.Commands.Ask(r.Context(), query)
	}

	// Reload after the command so the totals reflect any mutation
	data, err := c.loadDashboard(r)
	if err != nil {
		http.Error(w, "Failed to load dashboard data: "+err.Error(), http.StatusInternalServerError)
		return
	}
	data.Query = query
	data.Reply = reply
	data.Error = formErr

	status := http.StatusOK
	if formErr != "" {
		status = http.StatusBadRequest
	}
	renderTemplateWithStatus(w, status, "dashboard", "templates/dashboard.html", data)
}

func (c *DashboardController) loadDashboard(r *http.Request) (*dashboardData, error) {
	summary, err := c.services.Reports.GetSummary(r.Context())
	if err != nil {
		c.logger.Error("failed to load summary", zap.Error(err))
		return nil, err
	}

	recent, err := c.services.Audit.GetRecentEntries(r.Context(), dashboardAuditLimit)
	if err != nil {
		c.logger.Error("failed to load audit log", zap.Error(err))
		return nil, err
	}

	return &dashboardData{
		Title:       "Dues Ledger",
		CurrentPage: "dashboard",
		Summary:     summary,
		Recent:      recent,
	}, nil
}
