package resume

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

const (
	// NotAvailable fills every placeholder column except Name and File.
	NotAvailable = "N/A"
	// FailedToExtract replaces a multi-valued field whose elements are not all strings.
	FailedToExtract = "*** Failed to Extract ***"
)

// Columns is the fixed header of the exported table.
var Columns = []string{
	"Name",
	"Email",
	"Degrees",
	"University Attended",
	"Work Title",
	"Employer",
	"Years of Experience",
	"Specialty Area",
	"File",
}

// Record is one exported row. YearsOfExperience carries whatever scalar the
// responder supplied (see Value.Scalar); every other field is display text.
type Record struct {
	Name              string `mapstructure:"Name"`
	Email             string `mapstructure:"Email"`
	Degrees           string `mapstructure:"Degrees"`
	University        string `mapstructure:"University Attended"`
	WorkTitle         string `mapstructure:"Work Title"`
	Employer          string `mapstructure:"Employer"`
	YearsOfExperience any    `mapstructure:"Years of Experience"`
	SpecialtyArea     string `mapstructure:"Specialty Area"`
	File              string `mapstructure:"File"`
}

// Placeholder is the row emitted when nothing usable came back for file. The Name
// column carries the marker used for manual triage.
func Placeholder(file string) Record {
	return Record{
		Name:              UnableToProcess(file),
		Email:             NotAvailable,
		Degrees:           NotAvailable,
		University:        NotAvailable,
		WorkTitle:         NotAvailable,
		Employer:          NotAvailable,
		YearsOfExperience: NotAvailable,
		SpecialtyArea:     NotAvailable,
		File:              file,
	}
}

// UnableToProcess formats the triage marker for file.
func UnableToProcess(file string) string {
	return fmt.Sprintf("*** UNABLE TO PROCESS - %s ***", file)
}

// Fields returns the record keyed by column title.
func (r Record) Fields() (map[string]any, error) {
	fields := make(map[string]any, len(Columns))
	if err := mapstructure.Decode(r, &fields); err != nil {
		return nil, fmt.Errorf("decode record %q: %w", r.File, err)
	}
	return fields, nil
}

// Values returns the record in column order.
func (r Record) Values() ([]any, error) {
	fields, err := r.Fields()
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, len(Columns))
	for _, column := range Columns {
		values = append(values, fields[column])
	}
	return values, nil
}

// Cell renders a single record value as text.
func Cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
