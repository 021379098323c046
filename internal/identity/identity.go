package identity

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var generator = DefaultGenerator

// Block identifiers are 32 lowercase hexadecimal characters, i.e. a UUIDv4
// with the dashes stripped.
var idRegex = regexp.MustCompile(`^[0-9a-f]{32}$`)

// ValidID checks if the given id is a valid block identifier.
func ValidID(id string) bool {
	return idRegex.MatchString(id)
}

// GenerateID generates a new block identifier.
func GenerateID() string {
	return generator()
}

func DefaultGenerator() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func ResetGenerator() {
	generator = DefaultGenerator
}

func MockGenerator(mockValue string) {
	generator = func() string {
		return mockValue
	}
}
