package physmem

import (
	"github.com/pkg/errors"
)

// Buffer serves mappings out of an in-memory copy of physical memory starting
// at address zero.
type Buffer []byte

func (b Buffer) Map(base int64, size int) (View, error) {
	if base < 0 || size < 0 || base+int64(size) > int64(len(b)) {
		return nil, errors.Wrapf(ErrOutOfRange, "Buffer.Map error: %#x+%#x of %#x", base, size, len(b))
	}
	return bytesView(b[base : base+int64(size)]), nil
}
