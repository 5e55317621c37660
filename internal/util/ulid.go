package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string. ulid.Make reads from a
// cryptographically secure source, which is sufficient for question
// identifiers that only need to be unique per process.
func NewULID() string {
	return ulid.Make().String()
}
