package localeinfo

import "errors"

// ErrIllegalArgument indicates a locale name that could not be parsed, or a
// query whose answer is structurally empty (ISO code lookups on a locale
// without one).
var ErrIllegalArgument = errors.New("localeinfo: illegal argument")

// ErrUnsupportedField indicates a Field value the dispatcher does not know.
var ErrUnsupportedField = errors.New("localeinfo: unsupported field")

// ErrNoData indicates the locale parsed fine but no value exists for the query.
var ErrNoData = errors.New("localeinfo: no data for locale")

// Succeeded collapses an operation outcome into the boolean success flag the
// consuming runtime works with.
func Succeeded(err error) bool {
	return err == nil
}
