package resume

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsText(t *testing.T) {
	prompt := BuildPrompt("Jane Doe\njane@doe.io")

	if !strings.Contains(prompt, "Jane Doe\njane@doe.io") {
		t.Fatalf("expected resume text in prompt, got: %s", prompt)
	}

	if strings.Contains(prompt, textPlaceholder) {
		t.Fatalf("expected placeholder to be replaced")
	}

	for _, field := range []string{"- Name", "- Email Address", "- Degrees", "- University attended", "- Work Title", "- Employer", "- Years of Experience", "- Specialty Area"} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("expected field %q in prompt", field)
		}
	}

	if !strings.Contains(prompt, "JSON format") {
		t.Fatalf("expected an explicit ask for JSON")
	}
}

func TestBuildPromptAcceptsEmptyText(t *testing.T) {
	if prompt := BuildPrompt(""); strings.TrimSpace(prompt) == "" {
		t.Fatalf("expected templated prompt for empty text")
	}
}
