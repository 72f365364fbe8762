// Package errs holds the error kinds shared by every layer. Concrete errors are
// marked with one of the sentinels below so callers can classify them with
// errors.Is regardless of how much context was wrapped on the way up.
package errs

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrDuplicateCatalogName = errors.New("duplicate catalog name")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAlreadyPaid          = errors.New("already paid")
)

// Validation returns an ErrValidation-marked error with a client-facing hint.
func Validation(format string, args ...any) error {
	err := errors.Newf(format, args...)
	return errors.Mark(errors.WithHint(err, err.Error()), ErrValidation)
}

// NotFound returns an ErrNotFound-marked error.
func NotFound(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// PermissionDenied reports an operation the current principal may not perform.
func PermissionDenied(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrPermissionDenied)
}

// AlreadyPaid reports a settlement attempt on a paid invoice.
func AlreadyPaid(serviceID int64) error {
	return errors.Mark(errors.Newf("work order %d is already paid", serviceID), ErrAlreadyPaid)
}

// StoreUnavailable wraps a driver/transport failure of the durable store.
func StoreUnavailable(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, op), ErrStoreUnavailable)
}

// DuplicateCatalogName reports a catalog name collision.
func DuplicateCatalogName(name string) error {
	return errors.Mark(errors.Newf("catalog entry %q already exists", name), ErrDuplicateCatalogName)
}

func IsValidation(err error) bool           { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool             { return errors.Is(err, ErrNotFound) }
func IsStoreUnavailable(err error) bool     { return errors.Is(err, ErrStoreUnavailable) }
func IsDuplicateCatalogName(err error) bool { return errors.Is(err, ErrDuplicateCatalogName) }
func IsPermissionDenied(err error) bool     { return errors.Is(err, ErrPermissionDenied) }
func IsAlreadyPaid(err error) bool          { return errors.Is(err, ErrAlreadyPaid) }

// Hint returns the first client-facing hint attached to err, or "".
func Hint(err error) string {
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}
