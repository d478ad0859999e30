//go:build !linux

package schema

import (
	"os"
)

// AdviseSequential is a no-op on platforms without posix_fadvise.
func (*Unix) AdviseSequential(_ *os.File) error {
	return nil
}
