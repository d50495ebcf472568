package kernel

import (
	"strings"

	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// maxIDLength bounds identifiers accepted from the outside world.
const maxIDLength = 64

// ID is an opaque identifier. The zero value is invalid.
//
// Example:
//
//	id := kernel.NewID()
//	same, err := kernel.ParseID(id.String())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.IsEqual(same)) // true
type ID struct {
	value string
}

// NewID generates a fresh random identifier (UUID version 4).
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// ParseID accepts an identifier that was assigned elsewhere (storage, URL path,
// seed data). Surrounding whitespace is not trimmed: ids are compared byte for byte.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if len(s) > maxIDLength {
		return ID{}, errs.NewValueIsOutOfRangeError("id length", len(s), 1, maxIDLength)
	}
	if strings.ContainsAny(s, "\n\r\t") {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{value: s}, nil
}

// MustParseID is ParseID for identifiers known to be valid, such as seed data.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier as stored and transmitted.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
