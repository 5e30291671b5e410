//go:build !unix

package physmem

import (
	"github.com/pkg/errors"
)

type DevMem struct {
	Path string
}

func (m DevMem) Map(base int64, size int) (View, error) {
	return nil, errors.Wrapf(ErrUnsupported, "DevMem.Map error mapping %s", m.Path)
}
