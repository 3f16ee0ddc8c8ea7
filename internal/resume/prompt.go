package resume

import (
	_ "embed"
	"strings"
)

//go:embed prompt.md
var promptTemplate string

const textPlaceholder = "{{RESUME_TEXT}}"

// BuildPrompt embeds resume text into the extraction instructions. The text is not
// checked; callers skip empty documents before getting here.
func BuildPrompt(text string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n" + textPlaceholder + "\n\nReturn Name, Email Address, Degrees, University attended, Work Title, Employer, Years of Experience and Specialty Area in JSON format."
	}
	return strings.ReplaceAll(template, textPlaceholder, text)
}
