//go:build unix

package physmem

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// DevMem maps physical memory through a memory device such as /dev/mem.
// Reading it usually requires root and a kernel that does not restrict
// access to the low megabyte.
type DevMem struct {
	Path string
}

type mmapView struct {
	bs []byte
}

func (v *mmapView) Bytes() []byte {
	return v.bs
}

func (v *mmapView) Close() error {
	if v.bs == nil {
		return nil
	}
	err := unix.Munmap(v.bs)
	v.bs = nil
	return errors.Wrap(err, "mmapView.Close error")
}

func (m DevMem) Map(base int64, size int) (View, error) {
	path := m.Path
	if path == "" {
		path = DefaultDevice
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "DevMem.Map error opening %s", path)
	}
	// the mapping stays valid after the descriptor is closed
	defer file.Close()

	bs, err := unix.Mmap(int(file.Fd()), base, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "DevMem.Map error mapping %#x+%#x of %s", base, size, path)
	}
	return &mmapView{bs: bs}, nil
}
