// Package namegen produces the random base names files are renamed to.
package namegen

import (
	"github.com/google/uuid"

	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// GeneratedNameLength is the length of a canonical hyphenated UUID.
const GeneratedNameLength = 36

// Generator creates version-4 UUIDs in canonical 8-4-4-4-12 form.
// It is a zero-size type and safe for concurrent use.
type Generator struct{}

// New creates a new UUID based generator.
func New() Generator {
	return Generator{}
}

// NewName returns a fresh random identifier.
func (Generator) NewName() string {
	return uuid.NewString()
}

// IsGeneratedName reports whether stem looks like something NewName returned:
// lowercase canonical form, version 4.
func IsGeneratedName(stem string) bool {
	if len(stem) != GeneratedNameLength {
		return false
	}
	id, err := uuid.Parse(stem)
	if err != nil {
		return false
	}
	// uuid.Parse accepts upper case; NewName never produces it
	if id.String() != stem {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

var _ uuidify.NameGenerator = Generator{}
