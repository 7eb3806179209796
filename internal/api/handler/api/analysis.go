// internal/api/handler/api/analysis.go
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dwhitmore/finlens/internal/api/response"
	"github.com/dwhitmore/finlens/internal/core"
)

// Analyzer runs one full analysis for a ticker.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string) (*core.Report, error)
}

// AnalysisHandler handles analysis API requests.
type AnalysisHandler struct {
	analyzer Analyzer
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

type analysisRequest struct {
	Ticker string `json:"ticker"`
}

// Analyze runs an analysis for the requested ticker. The ticker comes from
// the JSON body on POST or the "ticker" query parameter on GET.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var ticker string

	switch r.Method {
	case http.MethodPost:
		var req analysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest,
				core.WrapError(core.ErrMalformedData, err))
			return
		}
		ticker = req.Ticker
	case http.MethodGet:
		ticker = r.URL.Query().Get("ticker")
	default:
		w.Header().Set("Allow", "GET, POST")
		response.Error(w, http.StatusMethodNotAllowed,
			core.WrapError(core.ErrMalformedData, nil))
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), ticker)
	if err != nil {
		response.Error(w, response.StatusFor(err), err)
		return
	}

	response.JSON(w, http.StatusOK, report)
}
