// internal/api/handler/web/analyze.go
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dwhitmore/finlens/internal/core"
)

// AnalyzeData holds data for the analysis page template
type AnalyzeData struct {
	Title   string
	Ticker  string
	Warning string
	Report  *core.Report

	FundamentalsDegraded bool
	NewsDegraded         bool
	TechnicalsDegraded   bool
	NarrativeDegraded    bool
}

// Index renders the empty analysis form
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render(w, "analyze.html", AnalyzeData{Title: "Stock Analysis"})
}

// Analyze handles the form submission and renders the report on the same page
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ticker := strings.TrimSpace(r.FormValue("ticker"))
	data := AnalyzeData{Title: "Stock Analysis", Ticker: ticker}

	report, err := h.analyzer.Analyze(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, core.ErrEmptyTicker) {
			data.Warning = "Please enter a stock ticker."
		} else {
			data.Warning = fmt.Sprintf("Analysis failed: %v", err)
		}
		h.render(w, "analyze.html", data)
		return
	}

	data.Report = report
	data.FundamentalsDegraded = report.StageDegraded(core.StageFundamentals)
	data.NewsDegraded = report.StageDegraded(core.StageNews)
	data.TechnicalsDegraded = report.StageDegraded(core.StageTechnicals)
	data.NarrativeDegraded = report.StageDegraded(core.StageNarrative)

	h.render(w, "analyze.html", data)
}
