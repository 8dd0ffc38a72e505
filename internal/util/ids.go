// internal/util/ids.go
// Generator ID untuk request/audit

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// IsID true jika s adalah UUID valid (dipakai untuk menerima X-Request-ID dari klien).
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
