package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidInput marks client input that fails validation, answered with 400.
var ErrInvalidInput = errors.New("invalid input")

// emailPart excludes @ and every unicode space, \s alone only covers ASCII.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var emailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// IsValidEmail reports whether s looks like local-part@domain.tld, without whitespace.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Message strips the sentinel prefix so the reason can be shown to the client.
func Message(err error) string {
	var msg string
	if err != nil {
		msg = err.Error()
	}
	prefix := ErrInvalidInput.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
