package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// parseIntOrDefault attempts to parse a string as an integer.
// Returns the parsed value or defaultValue if parsing fails.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return val
}

// parseIntInRange parses a string as an integer and validates it's within the given range.
// Returns the parsed value, or an error if parsing fails or value is out of range.
func parseIntInRange(s string, min, max int, fieldName string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}

	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %d and %d", fieldName, min, max)
	}

	return val, nil
}

// parseTableList parses a stored preference string like "2,5,10" into table
// numbers, silently dropping anything outside the supported range.
func parseTableList(s string) []int {
	var tables []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < model.MinTable || n > model.MaxTable {
			continue
		}
		tables = append(tables, n)
	}
	return tables
}

// formatTableList joins table numbers into the comma-separated preference form.
func formatTableList(tables []int) string {
	parts := make([]string, len(tables))
	for i, n := range tables {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
