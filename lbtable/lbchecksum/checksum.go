// Package lbchecksum computes the 16-bit one's-complement checksum used by
// the LinuxBIOS table header and record area.
package lbchecksum

import (
	"github.com/samber/lo"
)

// Compute returns the IP-style checksum of bs.
//
// Odd-indexed bytes are the high byte of a 16-bit word, even-indexed bytes
// the low byte, so a trailing odd byte only contributes its low weight.
// A range that embeds its own correct checksum computes to zero.
func Compute(bs []byte) uint16 {
	sum := lo.Reduce(
		bs,
		func(sum uint32, b byte, i int) uint32 {
			value := uint32(b)
			if i&1 == 1 {
				value <<= 8
			}
			sum += value
			// wrap around the carry
			if sum > 0xFFFF {
				sum = (sum + (sum >> 16)) & 0xFFFF
			}
			return sum
		},
		0,
	)
	return ^uint16(sum)
}

func Valid(bs []byte) bool {
	return Compute(bs) == 0
}
