package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) (FileStorageInterface, string) {
	t.Helper()
	base := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalFileStorage(base)
	require.NoError(t, err)
	return s, base
}

func TestSaveThenOpenRoundTrip(t *testing.T) {
	s, _ := newStorage(t)

	ruta, err := s.Save(strings.NewReader("contenido del acta"), "acta-entrega.pdf", "actas")
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(ruta), "la ruta guardada es relativa a basePath")
	assert.True(t, strings.HasPrefix(ruta, "actas/"))
	assert.True(t, strings.HasSuffix(ruta, ".pdf"))

	fullPath, err := s.Open(ruta)
	require.NoError(t, err)

	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, "contenido del acta", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	s, _ := newStorage(t)

	_, err := s.Open("actas/2024/01/01/no-existe.pdf")
	assert.Error(t, err)
}

func TestOpenRejectsEscapeFromBasePath(t *testing.T) {
	s, base := newStorage(t)

	// Archivo real fuera del directorio de cargas: una ruta_acta
	// manipulada no debe poder alcanzarlo.
	outside := filepath.Join(filepath.Dir(base), "secreto.txt")
	require.NoError(t, os.WriteFile(outside, []byte("fuera"), 0o600))

	for _, ruta := range []string{
		"../secreto.txt",
		"actas/../../secreto.txt",
		outside,
	} {
		got, err := s.Open(ruta)
		assert.Error(t, err, "ruta %q", ruta)
		assert.Empty(t, got, "ruta %q", ruta)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s, _ := newStorage(t)

	ruta1, err := s.Save(strings.NewReader("a"), "acta.pdf", "actas")
	require.NoError(t, err)
	ruta2, err := s.Save(strings.NewReader("b"), "acta.pdf", "actas")
	require.NoError(t, err)

	assert.NotEqual(t, ruta1, ruta2)
}
