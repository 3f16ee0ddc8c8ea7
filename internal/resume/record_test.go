package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	record := Placeholder("bob.pdf")

	assert.Equal(t, "*** UNABLE TO PROCESS - bob.pdf ***", record.Name)
	assert.Equal(t, "bob.pdf", record.File)

	values, err := record.Values()
	require.NoError(t, err)
	require.Len(t, values, len(Columns))
	for i, column := range Columns {
		if column == "Name" || column == "File" {
			continue
		}
		assert.Equal(t, NotAvailable, values[i], column)
	}
}

func TestRecordValuesFollowColumns(t *testing.T) {
	record := Record{
		Name:              "n",
		Email:             "e",
		Degrees:           "d",
		University:        "u",
		WorkTitle:         "w",
		Employer:          "emp",
		YearsOfExperience: json.Number("4"),
		SpecialtyArea:     "s",
		File:              "f.pdf",
	}

	values, err := record.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{"n", "e", "d", "u", "w", "emp", json.Number("4"), "s", "f.pdf"}, values)

	fields, err := record.Fields()
	require.NoError(t, err)
	assert.Len(t, fields, len(Columns))
	assert.Equal(t, "u", fields["University Attended"])
}

func TestRecordFieldsKeepNilYears(t *testing.T) {
	record, outcome := Normalize(`{"Name": "N", "Email Address": "n@x", "Years of Experience": null}`, "n.pdf")
	require.Equal(t, OutcomeParsed, outcome)
	require.Nil(t, record.YearsOfExperience)

	fields, err := record.Fields()
	require.NoError(t, err)
	years, ok := fields["Years of Experience"]
	require.True(t, ok, "column must survive as a key")
	assert.Nil(t, years)

	values, err := record.Values()
	require.NoError(t, err)
	assert.Nil(t, values[6])
	assert.Equal(t, "", Cell(values[6]))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "", Cell(nil))
	assert.Equal(t, "x", Cell("x"))
	assert.Equal(t, "1.5", Cell(json.Number("1.5")))
	assert.Equal(t, "false", Cell(false))
	assert.Equal(t, "3", Cell(3))
}
