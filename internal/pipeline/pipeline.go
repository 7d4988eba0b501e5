package pipeline

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgallion1/workflowdoc/internal/checklist"
	"github.com/dgallion1/workflowdoc/internal/config"
	"github.com/dgallion1/workflowdoc/internal/parser"
	"github.com/dgallion1/workflowdoc/internal/stats"
)

// Phase names the step the pipeline is in, for logging.
type Phase string

const (
	PhaseReading     Phase = "reading"
	PhaseParsing     Phase = "parsing"
	PhaseAggregating Phase = "aggregating"
	PhaseWriting     Phase = "writing"
	PhaseCompleted   Phase = "completed"
)

// Result is the outcome of one run.
type Result struct {
	Document    *checklist.Document
	Stats       *stats.Stats
	ContentHash string
	OutputPath  string
	StatsPath   string
	Duration    time.Duration
}

// Run parses the configured checklist and writes the structured document and
// its statistics. Nothing is written unless both payloads encode.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (*Result, error) {
	if err := cfg.ValidateParse(); err != nil {
		return nil, err
	}
	start := time.Now()
	log = log.With("input", cfg.InputPath)

	p, err := parser.ForFile(cfg.InputPath, checklist.Meta{
		Title:   cfg.Title,
		Version: cfg.Version,
		Date:    cfg.Date,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("pipeline phase", "phase", PhaseReading)
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	hash := ContentHashHex(data)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("pipeline phase", "phase", PhaseParsing, "bytes", len(data))
	doc, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.InputPath, err)
	}

	log.Debug("pipeline phase", "phase", PhaseAggregating)
	st := stats.Aggregate(doc)

	docJSON, err := EncodeJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	statsJSON, err := EncodeJSON(st)
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}

	log.Debug("pipeline phase", "phase", PhaseWriting)
	if err := WriteFileAtomic(cfg.OutputPath, docJSON); err != nil {
		return nil, err
	}
	if err := WriteFileAtomic(cfg.StatsPath, statsJSON); err != nil {
		return nil, err
	}

	res := &Result{
		Document:    doc,
		Stats:       st,
		ContentHash: hash,
		OutputPath:  cfg.OutputPath,
		StatsPath:   cfg.StatsPath,
		Duration:    time.Since(start),
	}
	log.Info("checklist parsed",
		"phase", PhaseCompleted,
		"content_hash", hash[:16],
		"sections", st.TotalSections,
		"checklist_items", st.ChecklistItems,
		"total_items", st.TotalItems,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
