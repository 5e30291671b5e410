package physmem

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Image serves mappings out of a raw dump of physical memory, for example one
// taken with `dd if=/dev/mem of=low.bin bs=1M count=1`. Bytes past the end of
// the file read as zero.
type Image struct {
	Path string
}

func (m Image) Map(base int64, size int) (View, error) {
	if base < 0 || size < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "Image.Map error: %#x+%#x", base, size)
	}
	file, err := os.Open(m.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "Image.Map error opening %s", m.Path)
	}
	defer file.Close()

	bs := make([]byte, size)
	if _, err := file.ReadAt(bs, base); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "Image.Map error reading %s", m.Path)
	}
	return bytesView(bs), nil
}
