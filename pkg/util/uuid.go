package util

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a random UUID v4 string. Used for server-assigned
// session tokens when the tracking client does not supply one.
func GenerateUUID() string {
	return uuid.NewString()
}
