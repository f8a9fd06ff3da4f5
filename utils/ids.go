package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (version 4) UUID string, used for bid and subscriber IDs
func GenerateID() string {
	return uuid.NewString()
}
