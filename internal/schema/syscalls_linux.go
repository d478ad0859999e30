//go:build linux

package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// AdviseSequential wraps around [unix.Fadvise], announcing that the entire
// given file is about to be read sequentially.
func (*Unix) AdviseSequential(f *os.File) error {
	return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
