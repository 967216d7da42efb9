package errs

import cr "github.com/cockroachdb/errors"

// Error categories shared by every layer. Domain and usecase errors carry one of
// these as a mark so handlers can pick the status code without knowing the
// concrete sentinel.
var (
	ErrInvalid     = cr.New("category: invalid input")
	ErrNotFound    = cr.New("category: not found")
	ErrConflict    = cr.New("category: conflict")
	ErrUnavailable = cr.New("category: unavailable")
)

func Invalid(msg string) error {
	return cr.Mark(cr.New(msg), ErrInvalid)
}

func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

func Conflict(msg string) error {
	return cr.Mark(cr.New(msg), ErrConflict)
}

func Unavailable(msg string) error {
	return cr.Mark(cr.New(msg), ErrUnavailable)
}

// Category returns the category mark carried by err, or nil for internal errors.
func Category(err error) error {
	for _, c := range []error{ErrInvalid, ErrNotFound, ErrConflict, ErrUnavailable} {
		if cr.Is(err, c) {
			return c
		}
	}
	return nil
}
