package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadUInt32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of buffer
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	// a short read is an error here: headers are fixed-size
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, errors.Wrapf(err, "ReadBytes error reading %d bytes", n)
	}
	return bs, nil
}
