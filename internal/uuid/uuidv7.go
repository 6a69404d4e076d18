// Package uuid generates the time-ordered references stamped on ledger
// entries.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 for the current instant.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a UUIDv7 whose 48-bit timestamp prefix is t in Unix
// milliseconds. References created later sort after earlier ones.
//
// Layout: 48 bits timestamp, 4 bits version (0111), 12 bits random,
// 2 bits variant (10), 62 bits random.
func NewAt(t time.Time) string {
	var u googleuuid.UUID

	binary.BigEndian.PutUint64(u[0:8], uint64(t.UnixMilli())<<16)

	if _, err := rand.Read(u[6:]); err != nil {
		// crypto/rand failing is unrecoverable for ordering; a v4 still
		// keeps references unique.
		return googleuuid.New().String()
	}

	u[6] = (u[6] & 0x0f) | 0x70
	u[8] = (u[8] & 0x3f) | 0x80

	return u.String()
}

// Time extracts the creation instant embedded in a UUIDv7 reference.
func Time(s string) (time.Time, error) {
	u, err := googleuuid.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	ms := int64(binary.BigEndian.Uint64(u[0:8]) >> 16)
	return time.UnixMilli(ms).UTC(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
