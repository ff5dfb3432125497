package rtb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, CategoryLaserBeam, r.Lookup("laserbeam"))
	assert.Equal(t, CategoryLaserBeam, r.Lookup("LaserBeam"))
	assert.Equal(t, CategoryTarget, r.Lookup("teleportertarget"))
	assert.Equal(t, CategoryNone, r.Lookup(""))
	assert.Equal(t, CategoryNone, r.Lookup("decoration"))
}

func TestRegisterOverrides(t *testing.T) {
	r := DefaultRegistry()
	r.Register("Zapper", CategoryLaserBeam)

	assert.Equal(t, CategoryLaserBeam, r.Lookup("zapper"))
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
aliases:
  zapper: laserbeam
  spawn: startlocation
`), 0o644))

	r, err := LoadRegistry(path)
	require.NoError(t, err)

	// Aliases layer over the defaults.
	assert.Equal(t, CategoryLaserBeam, r.Lookup("zapper"))
	assert.Equal(t, CategoryStartLocation, r.Lookup("spawn"))
	assert.Equal(t, CategoryButton, r.Lookup("button"))
}

func TestLoadRegistryUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases:\n  thing: warpgate\n"), 0o644))

	_, err := LoadRegistry(path)
	require.ErrorContains(t, err, `unknown category "warpgate"`)
}

func TestLoadRegistryMissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
