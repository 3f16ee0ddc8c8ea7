package logger

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestForRun(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	log := zap.New(core)
	ForRun(log).Info("first run")
	ForRun(log).Info("second run")

	entries := observed.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first, _ := entries[0].ContextMap()[FieldRunID].(string)
	second, _ := entries[1].ContextMap()[FieldRunID].(string)
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid run id, got %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct run ids, got %q twice", first)
	}

	if ForRun(nil) == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
}

func TestForDocument(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	ForDocument(zap.New(core), "ana.pdf").Info("processing resume")

	if got := observed.All()[0].ContextMap()[FieldFile]; got != "ana.pdf" {
		t.Fatalf("expected file field, got %v", got)
	}

	if ForDocument(nil, "x.pdf") == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
}

func TestForBackend(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	log := zap.New(core)
	ForBackend(log, "google", " gemini-2.5-pro ").Info("with model")
	ForBackend(log, "openai", "  ").Info("without model")

	entries := observed.All()
	ctx := entries[0].ContextMap()
	if ctx[FieldBackend] != "google" {
		t.Fatalf("expected backend field to be google, got %v", ctx[FieldBackend])
	}
	if ctx[FieldModel] != "gemini-2.5-pro" {
		t.Fatalf("expected trimmed model field, got %v", ctx[FieldModel])
	}

	ctx = entries[1].ContextMap()
	if _, ok := ctx[FieldModel]; ok {
		t.Fatalf("expected blank model to be dropped, got %v", ctx)
	}

	if ForBackend(nil, "", "") == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
}

func TestNew(t *testing.T) {
	for _, tc := range []struct{ json, debug bool }{{false, false}, {true, true}} {
		l, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := l.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Fatalf("expected debug enabled=%v, got %v", tc.debug, got)
		}
	}
}
