package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []uint64{0, 16, 32}, MakeRange[uint64](0, 48, 16))
	assert.Equal(t, []uint64{0, 16, 32, 48}, MakeRange[uint64](0, 49, 16))
	assert.Equal(t, []int{}, MakeRange(5, 5, 1))
	assert.Equal(t, []int{}, MakeRange(0, 5, 0))
	assert.Len(t, MakeRange[uint64](0xF0000, 0x100000, 16), 0x1000)
}
