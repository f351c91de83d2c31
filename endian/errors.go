package endian

import (
	"fmt"

	"github.com/projectida/seedcss/errs"
)

func errInvalidWordOrder(s string) error {
	return fmt.Errorf("%w: invalid 32 bit word order %q", errs.ErrFormat, s)
}

func errInvalidShortOrder(s string) error {
	return fmt.Errorf("%w: invalid 16 bit word order %q", errs.ErrFormat, s)
}
