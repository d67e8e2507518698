package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrian-kriegel/vtx/token"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrMissingAttrName = errors.New("missing attribute name")
	ErrBadContentMode  = errors.New("invalid content parse mode")
)

func errExpected(kinds []token.Kind) error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return fmt.Errorf("%w, expected one of: %s", ErrUnexpectedEOF, strings.Join(names, ", "))
}
