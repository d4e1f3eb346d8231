package models

import (
	"strconv"
	"time"
)

// RosterSeed is the on-disk format used to load a roster into an empty sheet.
type RosterSeed struct {
	Columns []string   `yaml:"columns" json:"columns"`
	Rows    [][]string `yaml:"rows" json:"rows"`
}

// Validate checks the seed for structural problems
func (s *RosterSeed) Validate() []string {
	var errors []string

	if len(s.Columns) == 0 {
		errors = append(errors, "At least one column is required")
	}

	seen := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		if col == "" {
			errors = append(errors, "Column names must not be empty")
			continue
		}
		if seen[col] {
			errors = append(errors, "Duplicate column: "+col)
		}
		seen[col] = true
	}

	for i, row := range s.Rows {
		if len(row) > len(s.Columns) {
			errors = append(errors, "Row "+strconv.Itoa(i+1)+" has more cells than columns")
		}
	}

	return errors
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
