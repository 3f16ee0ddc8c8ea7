package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		src       Source
		expect    string
		notConfig bool
		wantErr   bool
	}{
		{name: "inline value", src: Source{Name: "gemini api key", Value: " inline "}, expect: "inline"},
		{name: "file wins over value", src: Source{Value: "inline", File: keyFile}, expect: "file-key"},
		{name: "nothing configured", src: Source{Name: "openai api key"}, notConfig: true, wantErr: true},
		{name: "empty file", src: Source{File: emptyFile, Value: "inline"}, notConfig: true, wantErr: true},
		{name: "missing file", src: Source{File: filepath.Join(dir, "missing")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got secret %q", got)
				}
				if tt.notConfig != errors.Is(err, ErrNotConfigured) {
					t.Fatalf("unexpected error kind: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
