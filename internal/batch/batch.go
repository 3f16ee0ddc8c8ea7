// Package batch runs resumes through extraction, the model and normalization, one at a time.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-extractor/internal/logger"
	"github.com/spigell/resume-extractor/internal/resume"
	"github.com/spigell/resume-extractor/internal/utils"
)

const (
	// DocumentExt is the only file suffix picked up from the input directory.
	DocumentExt = ".pdf"
	// DefaultSize is how many documents go through between pauses.
	DefaultSize = 10
	// DefaultDelay is the pause inserted before each batch.
	DefaultDelay = 2 * time.Second
)

// TextExtractor turns a document on disk into plain text.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// Invoker sends a prompt for filename to the model and returns its raw reply.
type Invoker interface {
	Invoke(ctx context.Context, prompt, filename string) string
}

// Config controls where documents come from and how the run is paced.
type Config struct {
	Dir   string
	Delay time.Duration
	Size  int
}

// Orchestrator processes a directory of resumes into records.
type Orchestrator struct {
	cfg       Config
	extractor TextExtractor
	invoker   Invoker
	logger    *zap.Logger
	pause     func(time.Duration)
}

func New(cfg *Config, extractor TextExtractor, invoker Invoker, log *zap.Logger) *Orchestrator {
	c := Config{Delay: DefaultDelay, Size: DefaultSize}
	if cfg != nil {
		c = *cfg
		if c.Size <= 0 {
			c.Size = DefaultSize
		}
		if c.Delay < 0 {
			c.Delay = 0
		}
	}

	return &Orchestrator{
		cfg:       c,
		extractor: extractor,
		invoker:   invoker,
		logger:    log,
		pause:     utils.Pause,
	}
}

// Documents lists the PDF names in the input directory in lexical order.
func (o *Orchestrator) Documents() ([]string, error) {
	entries, err := os.ReadDir(o.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing resumes in %q: %w", o.cfg.Dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DocumentExt) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// Run lists the input directory and processes every document in it.
func (o *Orchestrator) Run(ctx context.Context) ([]resume.Record, error) {
	names, err := o.Documents()
	if err != nil {
		return nil, err
	}
	return o.Process(ctx, names), nil
}

// Process returns exactly one record per name, in the same order. A pause runs before
// the first document of every batch, including the very first one.
func (o *Orchestrator) Process(ctx context.Context, names []string) []resume.Record {
	records := make([]resume.Record, 0, len(names))

	for count, name := range names {
		if count%o.cfg.Size == 0 {
			o.pause(o.cfg.Delay)
		}

		log := logger.ForDocument(o.logger, name)
		log.Info("processing resume")

		record := o.processOne(ctx, name, log)
		records = append(records, record)

		log.Info("completed resume")
	}

	return records
}

func (o *Orchestrator) processOne(ctx context.Context, name string, log *zap.Logger) resume.Record {
	text, err := o.extractor.Extract(filepath.Join(o.cfg.Dir, name))
	if err != nil {
		log.Warn("text extraction failed, using placeholder record", zap.Error(err))
		return resume.Placeholder(name)
	}

	if text == "" {
		log.Warn("no text extracted, using placeholder record")
		return resume.Placeholder(name)
	}

	raw := o.invoker.Invoke(ctx, resume.BuildPrompt(text), name)

	record, outcome := resume.Normalize(raw, name)
	if outcome.Placeholder() {
		log.Warn("unable to interpret model response, using placeholder record",
			zap.Stringer("outcome", outcome),
		)
	} else {
		log.Debug("model response normalized", zap.Stringer("outcome", outcome))
	}

	return record
}
