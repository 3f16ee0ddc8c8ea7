package resume

import "strings"

// Outcome tells how a response was turned into a record.
type Outcome int

const (
	// OutcomeParsed means the requested key names carried an email.
	OutcomeParsed Outcome = iota
	// OutcomeFallbackSchema means only the lowercase key names carried an email.
	OutcomeFallbackSchema
	// OutcomeInvalidJSON means the response was not a JSON object; the record is a placeholder.
	OutcomeInvalidJSON
	// OutcomeSchemaMismatch means neither key scheme carried an email; the record is a placeholder.
	OutcomeSchemaMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeParsed:
		return "parsed"
	case OutcomeFallbackSchema:
		return "fallback_schema"
	case OutcomeInvalidJSON:
		return "invalid_json"
	case OutcomeSchemaMismatch:
		return "schema_mismatch"
	default:
		return "unknown"
	}
}

// Placeholder reports whether the outcome produced a placeholder record.
func (o Outcome) Placeholder() bool {
	return o == OutcomeInvalidJSON || o == OutcomeSchemaMismatch
}

// keyScheme names the response keys read for each logical field.
// Name and email are matched ignoring case, the rest exactly.
type keyScheme struct {
	name       string
	email      string
	degrees    string
	university string
	title      string
	employer   string
	years      string
	specialty  string
}

var (
	primaryKeys = keyScheme{
		name:       "Name",
		email:      "Email Address",
		degrees:    "Degree",
		university: "University attended",
		title:      "Work Title",
		employer:   "Employer",
		years:      "Years of Experience",
		specialty:  "Specialty Area",
	}

	fallbackKeys = keyScheme{
		name:       "name",
		email:      "email",
		degrees:    "degrees",
		university: "university",
		title:      "title",
		employer:   "employer",
		years:      "total_years_of_experience",
		specialty:  "specialty_area",
	}
)

const joinSeparator = "\n"

// Normalize turns a raw model response for file into exactly one record.
func Normalize(raw, file string) (Record, Outcome) {
	doc, err := Decode([]byte(stripFences(raw)))
	if err != nil || doc.Kind != KindMap {
		return Placeholder(file), OutcomeInvalidJSON
	}

	if record, ok := extract(doc, primaryKeys, file); ok {
		return record, OutcomeParsed
	}

	if record, ok := extract(doc, fallbackKeys, file); ok {
		return record, OutcomeFallbackSchema
	}

	return Placeholder(file), OutcomeSchemaMismatch
}

// stripFences drops markdown code fences wherever they appear.
func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// extract reads one key scheme out of doc. ok is false when the scheme yields no email.
func extract(doc Value, keys keyScheme, file string) (Record, bool) {
	email, _ := doc.GetFold(keys.email)
	if !email.Truthy() {
		return Record{}, false
	}

	name, _ := doc.GetFold(keys.name)

	years, found := doc.Get(keys.years)
	if !found {
		years = String("")
	}

	return Record{
		Name:              Join(name),
		Email:             Join(email),
		Degrees:           Join(lookup(doc, keys.degrees)),
		University:        Join(lookup(doc, keys.university)),
		WorkTitle:         Join(lookup(doc, keys.title)),
		Employer:          Join(lookup(doc, keys.employer)),
		YearsOfExperience: years.Scalar(),
		SpecialtyArea:     Join(lookup(doc, keys.specialty)),
		File:              file,
	}, true
}

// lookup returns the exact-key value, or an empty list when absent.
func lookup(doc Value, key string) Value {
	if v, ok := doc.Get(key); ok {
		return v
	}
	return List()
}

// Join flattens a field into display text. Strings are kept, lists and maps have their
// elements (map values, in document order) joined by newlines, and anything else is
// rendered as its scalar text. A list or map holding a non-string gives FailedToExtract.
func Join(v Value) string {
	switch v.Kind {
	case KindString:
		return v.Text
	case KindList:
		return joinStrings(v.Items)
	case KindMap:
		values := make([]Value, 0, len(v.Members))
		for _, m := range v.Members {
			values = append(values, m.Value)
		}
		return joinStrings(values)
	default:
		return Cell(v.Scalar())
	}
}

func joinStrings(values []Value) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v.Kind != KindString {
			return FailedToExtract
		}
		parts = append(parts, v.Text)
	}
	return strings.Join(parts, joinSeparator)
}
