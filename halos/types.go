package halos

import "errors"

const (
	// HostHaloPropPrefix prefixes host-halo property columns inside galaxy
	// tables: the host mass for column "mvir" lives under "halo_mvir".
	HostHaloPropPrefix = "halo_"

	// DefaultMassKey is the canonical virial-mass column name.
	DefaultMassKey = "mvir"
)

var (
	// ErrMissingInput signals a MassInput with no channel set.
	ErrMissingInput = errors.New("halos: no mass input supplied")

	// ErrColumnNotFound signals a lookup of an absent table column.
	ErrColumnNotFound = errors.New("halos: column not found")

	// ErrColumnLength signals a column whose length differs from the
	// table's established row count.
	ErrColumnLength = errors.New("halos: column length mismatch")

	// ErrNonPositiveMass signals a resolved mass that is zero, negative,
	// or non-finite.
	ErrNonPositiveMass = errors.New("halos: non-positive or non-finite mass")
)
