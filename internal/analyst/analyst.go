// Package analyst runs the single-ticker analysis pipeline: fundamentals,
// news, technical signals, and the generated narrative. Every data-gathering
// stage degrades to a placeholder on failure so the pipeline always reaches
// the narrative stage.
package analyst

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dwhitmore/finlens/internal/core"
	"github.com/dwhitmore/finlens/internal/gateway"
	"github.com/dwhitmore/finlens/internal/indicator"
	"github.com/dwhitmore/finlens/internal/metrics"
	"github.com/dwhitmore/finlens/internal/narrative"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds pipeline parameters.
type Config struct {
	HistoryPeriod time.Duration // trailing price window, default one year
	NewsLimit     int           // headlines fed to the prompt, default 5
}

// Analyst orchestrates one analysis per user action. It is synchronous and
// holds no per-request state.
type Analyst struct {
	gateway   gateway.Provider
	generator *narrative.Generator
	logger    *zap.Logger
	metrics   *metrics.Registry

	historyPeriod time.Duration
	newsLimit     int
}

// New creates an analyst. The metrics registry may be nil.
func New(gw gateway.Provider, gen *narrative.Generator, logger *zap.Logger, reg *metrics.Registry, cfg Config) *Analyst {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.HistoryPeriod <= 0 {
		cfg.HistoryPeriod = 365 * 24 * time.Hour
	}
	if cfg.NewsLimit <= 0 {
		cfg.NewsLimit = 5
	}
	return &Analyst{
		gateway:       gw,
		generator:     gen,
		logger:        logger,
		metrics:       reg,
		historyPeriod: cfg.HistoryPeriod,
		newsLimit:     cfg.NewsLimit,
	}
}

// Analyze runs the full pipeline for one ticker. The only hard failure is an
// empty ticker; every downstream stage records a classified degradation and
// continues, so a report is always produced for a non-empty symbol.
func (a *Analyst) Analyze(ctx context.Context, ticker string) (*core.Report, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, core.ErrEmptyTicker
	}

	start := time.Now()
	report := &core.Report{
		ID:          uuid.NewString(),
		Symbol:      strings.ToUpper(ticker),
		GeneratedAt: start,
	}

	log := a.logger.With(
		zap.String("request_id", report.ID),
		zap.String("symbol", report.Symbol),
	)
	log.Info("analysis started")

	// Fundamentals
	info, err := a.gateway.Info(ctx, report.Symbol)
	if err != nil {
		a.degrade(report, log, core.StageFundamentals, err)
		report.Fundamentals = core.PlaceholderFundamentals()
	} else {
		report.Fundamentals = *info
	}

	// News
	items, err := a.gateway.News(ctx, report.Symbol, a.newsLimit)
	if err != nil {
		a.degrade(report, log, core.StageNews, err)
	}
	report.News = items
	report.NewsText = narrative.NewsText(items)

	// Technicals
	series, err := a.gateway.History(ctx, report.Symbol, a.historyPeriod)
	if err != nil {
		a.degrade(report, log, core.StageTechnicals, err)
		report.Signals = core.UnavailableSignals()
	} else {
		report.Signals = indicator.Derive(core.Closes(series))
		if report.Signals.Trend == core.TrendInsufficient {
			a.degrade(report, log, core.StageTechnicals,
				core.WrapError(core.ErrInsufficientHistory, nil))
		}
	}

	// Narrative. This stage is always reached, whatever degraded above.
	prompt := narrative.BuildPrompt(report.Fundamentals, report.NewsText, report.Signals)
	text, usage, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		a.degrade(report, log, core.StageNarrative, err)
	} else {
		report.Narrative = text
		if a.metrics != nil {
			a.metrics.RecordLLMTokens(usage.InputTokens, usage.OutputTokens)
		}
	}

	duration := time.Since(start)
	outcome := "ok"
	if len(report.Degraded) > 0 {
		outcome = "degraded"
	}
	if a.metrics != nil {
		a.metrics.RecordAnalysis(outcome, duration.Seconds())
	}
	log.Info("analysis finished",
		zap.String("outcome", outcome),
		zap.Duration("duration", duration),
		zap.Int("degraded_stages", len(report.Degraded)),
	)

	return report, nil
}

// degrade records a classified degraded state for a stage.
func (a *Analyst) degrade(report *core.Report, log *zap.Logger, stage core.Stage, err error) {
	code := "UNKNOWN"
	detail := ""

	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		code = coreErr.Code
		if coreErr.Cause != nil {
			detail = coreErr.Cause.Error()
		}
	} else if err != nil {
		detail = err.Error()
	}

	report.Degraded = append(report.Degraded, core.Degradation{
		Stage:  stage,
		Code:   code,
		Detail: detail,
	})

	if a.metrics != nil {
		a.metrics.RecordDegradation(string(stage), code)
	}
	log.Warn("stage degraded",
		zap.String("stage", string(stage)),
		zap.String("code", code),
		zap.Error(err),
	)
}
