// Package employee holds canonical employee identity handling. External HRIS
// exports disagree about leading zeros on numeric badge ids ("00042" vs "42"),
// so every id is normalized exactly once at usecase entry; repositories and
// the fitness engine only ever see canonical ids.
package employee

import (
	"errors"
	"strings"
)

var ErrInvalidID = errors.New("invalid employee id")

// CanonicalID normalizes a raw employee identifier. Purely numeric ids lose
// leading zeros (an all-zero id becomes "0"); anything else passes through
// trimmed. Empty input is rejected.
func CanonicalID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrInvalidID
	}
	if !isDigits(id) {
		return id, nil
	}
	id = strings.TrimLeft(id, "0")
	if id == "" {
		return "0", nil
	}
	return id, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
