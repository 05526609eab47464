package persist

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseInt parses a stored value as a base-10 integer. Surrounding whitespace and a
// leading sign are accepted. Anything else, including the empty string and values out of
// range, yields 0.
func ParseInt(value string) int {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return i
}

// FormatInt returns the representation SetIntValue stores for value.
func FormatInt(value int) string {
	return strconv.Itoa(value)
}

// ValidateRecord checks that key and value survive the file encoding unchanged.
// Both must be valid UTF-8, the json encoder would replace invalid bytes with U+FFFD.
func ValidateRecord(key, value string) error {
	if !utf8.ValidString(key) {
		return NewError(RetCInvalidValue, fmt.Sprintf("key %q is not valid UTF-8", key))
	}
	if !utf8.ValidString(value) {
		return NewError(RetCInvalidValue, fmt.Sprintf("value for key %q is not valid UTF-8", key))
	}
	return nil
}

// ValidateRecords runs ValidateRecord for every pair of records.
func ValidateRecords(records map[string]string) error {
	for k, v := range records {
		if err := ValidateRecord(k, v); err != nil {
			return err
		}
	}
	return nil
}
