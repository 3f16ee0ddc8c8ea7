package ai

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/resume-extractor/internal/logger"
)

const defaultMaxLogLength = 200

// Invoker calls the configured backend once per document. Backend failures never leave
// it as errors; they come back in-band as the Sentinel text.
type Invoker struct {
	backend   Backend
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewInvoker(backend Backend, generator Generator, log *zap.Logger, maxLogLength int) *Invoker {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Invoker{
		backend:   backend,
		generator: generator,
		logger:    logger.ForBackend(log, string(backend), generator.Model()),
		maxLogLen: maxLogLength,
	}
}

// Sentinel is the pseudo-JSON text returned in place of a failed backend reply.
// It is intentionally not valid JSON.
func Sentinel(filename string) string {
	return fmt.Sprintf("{'Name': '*** UNABLE TO PROCESS - %s ***'}", filename)
}

// Invoke returns the backend output for prompt, or the Sentinel for filename.
func (i *Invoker) Invoke(ctx context.Context, prompt, filename string) (out string) {
	log := logger.ForDocument(i.logger, filename)

	defer func() {
		if r := recover(); r != nil {
			log.Error("backend call panicked, using placeholder response", zap.Any("panic", r))
			out = Sentinel(filename)
		}
	}()

	log.Debug("generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.Preview(prompt, i.maxLogLen)),
	)

	raw, err := i.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Warn("backend call failed, using placeholder response", zap.Error(err))
		return Sentinel(filename)
	}

	log.Debug("generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.Preview(raw, i.maxLogLen)),
	)

	return raw
}
