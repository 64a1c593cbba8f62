// Package importer parses guest lists uploaded as CSV. Parsing produces a
// preview with per-row validity and warnings; committing the valid rows is
// the service layer's job.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

// MaxRows caps a single import.
const MaxRows = 500

var (
	ErrNoHeader     = errors.New("csv has no header row")
	ErrNoNameColumn = errors.New("csv has no recognizable name column")
	ErrTooManyRows  = fmt.Errorf("csv exceeds %d rows", MaxRows)
)

// nameAliases are accepted, in order, for the required name column.
var nameAliases = []string{"name", "guest name", "guest", "full name"}

// Row is one parsed CSV line with its validation outcome.
type Row struct {
	Line      int      `json:"line"`
	Name      string   `json:"name"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Address   string   `json:"address,omitempty"`
	Priority  string   `json:"priority"`
	PartySize int      `json:"party_size"`
	Notes     string   `json:"notes,omitempty"`
	Valid     bool     `json:"valid"`
	Duplicate bool     `json:"duplicate"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Preview is the result shown before committing an import.
type Preview struct {
	Rows           []Row `json:"rows"`
	ValidCount     int   `json:"valid_count"`
	InvalidCount   int   `json:"invalid_count"`
	DuplicateCount int   `json:"duplicate_count"`
}

// Parse reads CSV text and maps recognized columns onto guest fields.
// Headers are matched case-insensitively; unknown columns are ignored.
// Duplicate detection compares names case-insensitively against the
// existing guest set. Duplicates stay valid but are flagged so the caller
// can decide whether to skip them.
func Parse(r io.Reader, existingNames []string) (*Preview, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := mapColumns(header)
	if _, ok := columns["name"]; !ok {
		return nil, ErrNoNameColumn
	}

	existing := make(map[string]bool, len(existingNames))
	for _, n := range existingNames {
		existing[strings.ToLower(strings.TrimSpace(n))] = true
	}

	preview := &Preview{}
	seen := make(map[string]bool)
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			preview.Rows = append(preview.Rows, Row{
				Line:     line,
				Valid:    false,
				Warnings: []string{fmt.Sprintf("unparseable row: %v", err)},
			})
			preview.InvalidCount++
			continue
		}

		if len(preview.Rows) >= MaxRows {
			return nil, ErrTooManyRows
		}

		row := parseRow(record, columns, line)

		key := strings.ToLower(row.Name)
		if row.Valid && (existing[key] || seen[key]) {
			row.Duplicate = true
			row.Warnings = append(row.Warnings, "a guest with this name already exists")
			preview.DuplicateCount++
		}
		if row.Valid {
			seen[key] = true
			preview.ValidCount++
		} else {
			preview.InvalidCount++
		}

		preview.Rows = append(preview.Rows, row)
	}

	return preview, nil
}

// mapColumns resolves header names to field keys, first alias wins.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)

	set := func(key string, idx int) {
		if _, taken := columns[key]; !taken {
			columns[key] = idx
		}
	}

	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch h {
		case "email", "e-mail":
			set("email", i)
		case "phone", "phone number":
			set("phone", i)
		case "address":
			set("address", i)
		case "priority":
			set("priority", i)
		case "party size", "party_size", "guests":
			set("party_size", i)
		case "notes":
			set("notes", i)
		default:
			for _, alias := range nameAliases {
				if h == alias {
					set("name", i)
					break
				}
			}
		}
	}

	return columns
}

func parseRow(record []string, columns map[string]int, line int) Row {
	field := func(key string) string {
		idx, ok := columns[key]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	row := Row{
		Line:      line,
		Name:      field("name"),
		Email:     field("email"),
		Phone:     field("phone"),
		Address:   field("address"),
		Notes:     field("notes"),
		Priority:  strings.ToLower(field("priority")),
		PartySize: 1,
		Valid:     true,
	}

	if row.Name == "" {
		row.Valid = false
		row.Warnings = append(row.Warnings, "missing name")
	}

	if row.Priority == "" {
		row.Priority = model.PriorityMedium
	} else if !model.ValidPriority(row.Priority) {
		row.Warnings = append(row.Warnings,
			fmt.Sprintf("unknown priority %q, defaulting to %s", row.Priority, model.PriorityMedium))
		row.Priority = model.PriorityMedium
	}

	if raw := field("party_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			row.Warnings = append(row.Warnings, fmt.Sprintf("invalid party size %q, using 1", raw))
		} else {
			row.PartySize = n
		}
	}

	return row
}
