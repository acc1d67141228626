package ast

import (
	"errors"
	"fmt"
)

// ErrStructural covers document-assembly conflicts: duplicate keys and
// attempts to extend a path through a non-table value.
var ErrStructural = errors.New("structural error")

func duplicateKeyErr(key string) error {
	return fmt.Errorf("%w: duplicate key %q", ErrStructural, key)
}

func extendErr(key string, t Type) error {
	return fmt.Errorf("%w: cannot extend %q through a %s value", ErrStructural, key, t)
}
