// Package uuids fixes the underlying representation of a marked identifier
// to uuid.UUID. It only parses and inspects caller-supplied values; it never
// mints new identifiers.
package uuids

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/typed-id-go/typedid"
)

// ID is a UUID identifier marked with the entity type T.
type ID[T any] = typedid.ID[uuid.UUID, T]

// Parse parses a textual UUID and marks it with T.
func Parse[T any](s string) (ID[T], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, errors.Wrapf(err, "parse uuid %q", s)
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

// FromBytes marks a raw 16-byte UUID representation with T.
func FromBytes[T any](b []byte) (ID[T], error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return ID[T]{}, errors.Wrap(err, "uuid from bytes")
	}
	return typedid.New[T](u), nil
}

// ParseAll parses a batch of textual UUIDs, collecting every failure. On any
// failure it returns nil ids and the accumulated error.
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
