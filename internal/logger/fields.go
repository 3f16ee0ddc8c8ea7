package logger

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field keys shared by every component that reports on an extraction run.
const (
	FieldRunID   = "run_id"
	FieldFile    = "file"
	FieldBackend = "ai_backend"
	FieldModel   = "ai_model"
)

// ForRun tags every entry of one extraction run with a fresh run id.
func ForRun(log *zap.Logger) *zap.Logger {
	return orNop(log).With(zap.String(FieldRunID, uuid.NewString()))
}

// ForDocument scopes log to a single resume file.
func ForDocument(log *zap.Logger, file string) *zap.Logger {
	return orNop(log).With(zap.String(FieldFile, file))
}

// ForBackend describes the AI backend answering prompts. Blank values are left out.
func ForBackend(log *zap.Logger, backend, model string) *zap.Logger {
	log = orNop(log)

	fields := make([]zap.Field, 0, 2)
	if backend = strings.TrimSpace(backend); backend != "" {
		fields = append(fields, zap.String(FieldBackend, backend))
	}
	if model = strings.TrimSpace(model); model != "" {
		fields = append(fields, zap.String(FieldModel, model))
	}

	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
