package lbytes

import (
	"bytes"

	"github.com/pkg/errors"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

var (
	ErrOutOfBounds = errors.New("lbytes: read out of bounds")
)
