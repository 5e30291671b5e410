package lbytes

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Fits reports whether [offset, offset+length) lies inside a buffer of size n.
// The arithmetic is done in 64 bits so lengths read from untrusted memory
// cannot wrap around.
func Fits(n int, offset uint64, length uint64) bool {
	end := offset + length
	if end < offset {
		return false
	}
	return end <= uint64(n)
}

// Slice returns bs[offset:offset+length] without copying, or ErrOutOfBounds.
func Slice(bs []byte, offset uint64, length uint64) ([]byte, error) {
	if !Fits(len(bs), offset, length) {
		return nil, errors.Wrapf(
			ErrOutOfBounds,
			"Slice error: offset %#x length %d buffer %d", offset, length, len(bs),
		)
	}
	return bs[offset : offset+length], nil
}

func UInt32At(bs []byte, offset uint64) (uint32, error) {
	window, err := Slice(bs, offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(window), nil
}

func UInt8At(bs []byte, offset uint64) (uint8, error) {
	window, err := Slice(bs, offset, 1)
	if err != nil {
		return 0, err
	}
	return window[0], nil
}
