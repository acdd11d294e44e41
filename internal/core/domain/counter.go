package domain

import "regexp"

var counterNamePattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// Counter is a named integer incremented under serializable transactions.
type Counter struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ValidCounterName reports whether name may be used as a counter key.
func ValidCounterName(name string) bool {
	return counterNamePattern.MatchString(name)
}
