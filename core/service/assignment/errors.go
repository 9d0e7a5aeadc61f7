package assignment

import "ticketassign/pkg/apperr"

// errStore, errInvalidInput and errInvariant are thin constructors over
// pkg/apperr's taxonomy so call sites in this package read in terms of the
// engine's own error contract (§7) rather than the generic apperr names.
func errStore(op string, err error) error {
	return apperr.StoreError(op, err)
}

func errInvalidInput(field, reason string) error {
	return apperr.InvalidInput(field, reason)
}

func errInvariant(message string) error {
	return apperr.InvariantViolation(message)
}
