package utils

import (
	"encoding/json"
	"strings"
)

// StringsToJSON converts []string to a JSON string (safe for DB columns)
func StringsToJSON(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// JSONToStrings converts a DB string column back to []string
func JSONToStrings(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return strings.Split(s, ",")
	}
	return items
}
