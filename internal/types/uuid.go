package types

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefixes for generated identifiers. Prefixed ULIDs stay lexically
// sortable by creation time while remaining recognizable in logs.
const (
	UUID_PREFIX_METER      = "meter"
	UUID_PREFIX_READING    = "read"
	UUID_PREFIX_SUBSCRIBER = "sub"
	UUID_PREFIX_REQUEST    = "req"
)

// GenerateUUID generates a ULID string.
func GenerateUUID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
}

// GenerateUUIDWithPrefix generates a prefixed ULID, e.g. "meter_01J...".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
