package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/analyzer"
	"github.com/patriotech/marketing-intel/internal/service"
)

// AnalysisHandler serves the stateless funnel analyses plus the ROI,
// alert and CSV report views over stored data.
type AnalysisHandler struct {
	Dashboard *service.DashboardService
	Funnel    *analyzer.FunnelOptimizer
}

func NewAnalysisHandler(dashboard *service.DashboardService) *AnalysisHandler {
	return &AnalysisHandler{
		Dashboard: dashboard,
		Funnel:    analyzer.NewFunnelOptimizer(analyzer.DefaultFunnelStages),
	}
}

// AnalyzeFunnel analyzes posted stage data without touching storage.
func (h *AnalysisHandler) AnalyzeFunnel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stages map[string]analyzer.StageInput `json:"stages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(body.Stages) == 0 {
		writeError(w, http.StatusBadRequest, "stages are required")
		return
	}

	writeJSON(w, http.StatusOK, h.Funnel.Analyze(body.Stages))
}

// SimulateFunnel applies hypothetical stage improvements.
func (h *AnalysisHandler) SimulateFunnel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stages       map[string]analyzer.StageInput `json:"stages"`
		Improvements map[string]float64             `json:"improvements"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(body.Stages) == 0 {
		writeError(w, http.StatusBadRequest, "stages are required")
		return
	}

	writeJSON(w, http.StatusOK, h.Funnel.Simulate(body.Stages, body.Improvements))
}

// AnalyzeROI runs the ROI analyzer over the organization's channels.
func (h *AnalysisHandler) AnalyzeROI(w http.ResponseWriter, r *http.Request) {
	report, err := h.Dashboard.AnalyzeROI(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Alerts runs the alert engine; ?summary=true adds severity counts.
func (h *AnalysisHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	if r.URL.Query().Get("summary") == "true" {
		found, summary, err := h.Dashboard.SummarizeAlerts(orgID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"alerts": found, "summary": summary})
		return
	}

	found, err := h.Dashboard.CheckAlerts(orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": found})
}

// ReportCSV streams a CSV export of the organization's dashboard.
func (h *AnalysisHandler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("type")
	if reportType == "" {
		reportType = "full"
	}

	csvData, err := h.Dashboard.GenerateReport(chi.URLParam(r, "id"), reportType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="marketing_report.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csvData))
}
