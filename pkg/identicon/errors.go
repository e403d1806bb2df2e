// errors.go — pipeline error taxonomy.
package identicon

import (
	"errors"
	"fmt"
)

// ErrNoGenerator is returned by New when construction options left the
// pipeline without a generator.
var ErrNoGenerator = errors.New("identicon: a generator is required; omit WithGenerator to use the default pixel generator")

// InsufficientEntropyError is returned by Generate when the last
// preprocessor in the chain declares fewer bits than the generator
// requires. Deterministic configuration mismatch: retrying cannot help.
type InsufficientEntropyError struct {
	Preprocessor string // concrete type of the offending preprocessor
	Provided     int
	Required     int
}

func (e *InsufficientEntropyError) Error() string {
	return fmt.Sprintf("identicon: preprocessor %s supplies %d bits of entropy, generator requires at least %d",
		e.Preprocessor, e.Provided, e.Required)
}

// typeName names a preprocessor for error messages by its concrete type.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
