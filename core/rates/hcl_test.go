package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warequote/core/quote"
	"warequote/internal/errors"
)

func TestLoadBytesAppliesOverrides(t *testing.T) {
	table := Default()
	src := []byte(`
storage "standard" {
  rate       = 4.25
  min_charge = 30.00
}

vehicle "truck" {
  hourly = 125.00
  per_km = 2.55
}

surcharges {
  local_fuel_pct = 22.5
  road_toll      = 38.00
}
`)
	require.NoError(t, table.LoadBytes(src, "overrides.hcl"))

	std := table.Storage[quote.StorageStandard]
	assert.Equal(t, "4.25", std.Rate.String())
	assert.Equal(t, "30", std.MinCharge.String())

	truck := table.Vehicles["truck"]
	assert.Equal(t, "125", truck.Hourly.String())
	assert.Equal(t, "2.55", truck.PerKm.String())

	assert.Equal(t, "22.5", table.LocalFuelPct.String())
	assert.Equal(t, "38", table.RoadToll.String())

	// Untouched entries keep their defaults.
	assert.Equal(t, "6.5", table.Storage[quote.StorageClimateControlled].Rate.String())
	assert.Equal(t, "95", table.Vehicles["van"].Hourly.String())
}

func TestLoadBytesNewVehicleType(t *testing.T) {
	table := Default()
	src := []byte(`
vehicle "tilt_tray" {
  name   = "Tilt tray"
  hourly = 140.00
  per_km = 2.90
}
`)
	require.NoError(t, table.LoadBytes(src, "overrides.hcl"))

	tray, ok := table.Vehicles["tilt_tray"]
	require.True(t, ok)
	assert.Equal(t, "Tilt tray", tray.DisplayName)
	assert.Equal(t, "140", tray.Hourly.String())
}

func TestLoadBytesUnknownStorageType(t *testing.T) {
	table := Default()
	src := []byte(`
storage "cryogenic" {
  rate = 99.0
}
`)
	err := table.LoadBytes(src, "overrides.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeRate))
	assert.Contains(t, err.Error(), "cryogenic")
}

func TestLoadBytesMalformedSource(t *testing.T) {
	table := Default()
	err := table.LoadBytes([]byte(`storage "standard" {`), "broken.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeRate))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
surcharges {
  fumigation_fee = 395.00
}
`), 0o644))

	table := Default()
	require.NoError(t, table.LoadFile(path))
	assert.Equal(t, "395", table.FumigationFee.String())

	err := table.LoadFile(filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
}
