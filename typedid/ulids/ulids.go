// Package ulids fixes the underlying representation of a marked identifier
// to ulid.ULID. It only parses and inspects caller-supplied values; it never
// mints new identifiers.
package ulids

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/krew-solutions/typed-id-go/typedid"
)

// ID is a ULID identifier marked with the entity type T.
type ID[T any] = typedid.ID[ulid.ULID, T]

// Parse parses the canonical 26-character form of a ULID and marks it with
// T. Parsing is strict: lowercase and malformed input are rejected.
func Parse[T any](s string) (ID[T], error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return ID[T]{}, errors.Wrapf(err, "parse ulid %q", s)
	}
	return typedid.New[T](u), nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse[T any](s string) ID[T] {
	id, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromBytes marks a raw 16-byte ULID representation with T.
func FromBytes[T any](b []byte) (ID[T], error) {
	var u ulid.ULID
	if err := u.UnmarshalBinary(b); err != nil {
		return ID[T]{}, errors.Wrap(err, "ulid from bytes")
	}
	return typedid.New[T](u), nil
}

// ParseAll parses a batch of canonical ULIDs, collecting every failure. On
// any failure it returns nil ids and the accumulated error.
func ParseAll[T any](ss []string) ([]ID[T], error) {
	ids := make([]ID[T], 0, len(ss))
	var errs error
	for i, s := range ss {
		id, err := Parse[T](s)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "element %d", i))
			continue
		}
		ids = append(ids, id)
	}
	if errs != nil {
		return nil, errs
	}
	return ids, nil
}

// Timestamp returns the time encoded in the identifier's ULID.
func Timestamp[T any](id ID[T]) time.Time {
	return ulid.Time(id.Unwrap().Time())
}
