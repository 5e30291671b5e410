//go:build unix

package physmem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevMem_MapRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem")
	content := make([]byte, os.Getpagesize()*2)
	copy(content[os.Getpagesize():], "LBIO")
	require.NoError(t, os.WriteFile(path, content, 0644))

	view, err := DevMem{Path: path}.Map(int64(os.Getpagesize()), os.Getpagesize())
	require.NoError(t, err)
	assert.Equal(t, []byte("LBIO"), view.Bytes()[:4])
	assert.NoError(t, view.Close())
	// closing twice is harmless
	assert.NoError(t, view.Close())
}

func TestDevMem_MissingDevice(t *testing.T) {
	_, err := DevMem{Path: filepath.Join(t.TempDir(), "missing")}.Map(0, 4096)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
