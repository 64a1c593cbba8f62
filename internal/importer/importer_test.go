package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicCSV(t *testing.T) {
	csvText := `Name,Email,Priority,Party Size
Alice Smith,alice@example.com,high,2
Bob Jones,bob@example.com,low,1
`
	preview, err := Parse(strings.NewReader(csvText), nil)
	require.NoError(t, err)

	require.Len(t, preview.Rows, 2)
	assert.Equal(t, 2, preview.ValidCount)
	assert.Equal(t, 0, preview.InvalidCount)

	alice := preview.Rows[0]
	assert.Equal(t, "Alice Smith", alice.Name)
	assert.Equal(t, "alice@example.com", alice.Email)
	assert.Equal(t, "high", alice.Priority)
	assert.Equal(t, 2, alice.PartySize)
	assert.True(t, alice.Valid)
}

func TestParse_QuotedFields(t *testing.T) {
	csvText := `name,address,notes
"Smith, John","123 Main St, Apt 4, Springfield, IL","brings a ""plus one"""
`
	preview, err := Parse(strings.NewReader(csvText), nil)
	require.NoError(t, err)
	require.Len(t, preview.Rows, 1)

	row := preview.Rows[0]
	assert.Equal(t, "Smith, John", row.Name)
	assert.Equal(t, "123 Main St, Apt 4, Springfield, IL", row.Address)
	assert.Equal(t, `brings a "plus one"`, row.Notes)
}

func TestParse_NameColumnAliases(t *testing.T) {
	for _, header := range []string{"name", "Guest Name", "GUEST", "Full Name"} {
		csvText := header + "\nCarol\n"
		preview, err := Parse(strings.NewReader(csvText), nil)
		require.NoError(t, err, "header %q", header)
		require.Len(t, preview.Rows, 1)
		assert.Equal(t, "Carol", preview.Rows[0].Name)
	}
}

func TestParse_NoNameColumn(t *testing.T) {
	csvText := "email,phone\na@b.com,555-1234\n"
	_, err := Parse(strings.NewReader(csvText), nil)
	assert.ErrorIs(t, err, ErrNoNameColumn)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParse_InvalidPriorityDefaults(t *testing.T) {
	csvText := "name,priority\nDave,urgent\nErin,HIGH\nFrank,\n"
	preview, err := Parse(strings.NewReader(csvText), nil)
	require.NoError(t, err)
	require.Len(t, preview.Rows, 3)

	assert.Equal(t, "medium", preview.Rows[0].Priority)
	assert.NotEmpty(t, preview.Rows[0].Warnings)

	// case-insensitive match on the closed set
	assert.Equal(t, "high", preview.Rows[1].Priority)
	assert.Empty(t, preview.Rows[1].Warnings)

	// blank defaults silently
	assert.Equal(t, "medium", preview.Rows[2].Priority)
	assert.Empty(t, preview.Rows[2].Warnings)
}

func TestParse_MissingNameIsInvalid(t *testing.T) {
	csvText := "name,email\n,missing@example.com\nGrace,ok@example.com\n"
	preview, err := Parse(strings.NewReader(csvText), nil)
	require.NoError(t, err)

	assert.False(t, preview.Rows[0].Valid)
	assert.Equal(t, 1, preview.InvalidCount)
	assert.True(t, preview.Rows[1].Valid)
	assert.Equal(t, 1, preview.ValidCount)
}

func TestParse_DuplicatesAgainstExistingGuests(t *testing.T) {
	csvText := "name\nAlice Smith\nNew Guest\nalice smith\n"
	preview, err := Parse(strings.NewReader(csvText), []string{"Alice Smith"})
	require.NoError(t, err)

	assert.True(t, preview.Rows[0].Duplicate, "matches existing guest")
	assert.False(t, preview.Rows[1].Duplicate)
	assert.True(t, preview.Rows[2].Duplicate, "matches earlier row in same file")
	assert.Equal(t, 2, preview.DuplicateCount)

	// duplicates are flagged, not rejected
	assert.Equal(t, 3, preview.ValidCount)
}

func TestParse_RowCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("name\n")
	for i := 0; i <= MaxRows; i++ {
		b.WriteString("Guest\n")
	}

	_, err := Parse(strings.NewReader(b.String()), nil)
	assert.ErrorIs(t, err, ErrTooManyRows)
}

func TestParse_InvalidPartySize(t *testing.T) {
	csvText := "name,party size\nHeidi,zero\nIvan,0\nJudy,3\n"
	preview, err := Parse(strings.NewReader(csvText), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, preview.Rows[0].PartySize)
	assert.NotEmpty(t, preview.Rows[0].Warnings)
	assert.Equal(t, 1, preview.Rows[1].PartySize)
	assert.Equal(t, 3, preview.Rows[2].PartySize)
}
