package utils

import (
	"strconv"
)

// ParseBool converts string to bool with default value
func ParseBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseID converts a path parameter to an int64 id
func ParseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
