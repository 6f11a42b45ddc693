// guid package derives stable identifiers from names: hash the name, stamp
// the result as a UUID. Same input, same GUID, on every box, forever. Handy
// for keying things that have no natural id but do have a name.
//
// FromString and FromBytes mint SHA-1 name-based UUIDs (version 5) under a
// configurable Namespace. MD5FromString covers identifiers minted the old
// MD5 (version 3) way. If you want a random UUID you want uuid.New, not this
// package.
package guid

import (
	"github.com/google/uuid"

	"github.com/aerth/strictly/tryparse"
)

// Namespace used by everything here. Swap it before minting anything if your
// project has its own.
var Namespace = uuid.NameSpaceOID

// FromString returns the version 5 (SHA-1) UUID of s under Namespace.
func FromString(s string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(s))
}

// FromBytes is FromString for raw bytes.
func FromBytes(b []byte) uuid.UUID {
	return uuid.NewSHA1(Namespace, b)
}

// MD5FromString returns the version 3 (MD5) UUID of s under Namespace, only
// for reading identifiers that predate the SHA-1 switch.
func MD5FromString(s string) uuid.UUID {
	return uuid.NewMD5(Namespace, []byte(s))
}

// Parse reads a UUID in any textual form the uuid package accepts, with
// whitespace tolerated at the edges. Not ok on garbage, never panics.
func Parse(s string) (uuid.UUID, bool) {
	at, n, ok := tryparse.TrimRange(s, 0, len(s))
	if !ok {
		return uuid.UUID{}, false
	}
	u, err := uuid.Parse(s[at : at+n])
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}
