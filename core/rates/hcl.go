// Package rates - HCL rate override loading
// Operators tune rates with a small HCL file instead of a rebuild:
//
//	storage "standard" {
//	  rate       = 4.25
//	  min_charge = 30.00
//	}
//
//	vehicle "truck" {
//	  hourly = 125.00
//	  per_km = 2.55
//	}
//
//	surcharges {
//	  local_fuel_pct = 22.5
//	  road_toll      = 38.00
//	}
package rates

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"warequote/core/quote"
	"warequote/internal/errors"
	"warequote/internal/logging"
)

type overrideFile struct {
	Storage    []storageBlock  `hcl:"storage,block"`
	Vehicle    []vehicleBlock  `hcl:"vehicle,block"`
	Surcharges *surchargeBlock `hcl:"surcharges,block"`
}

type storageBlock struct {
	Type      string   `hcl:"type,label"`
	Name      string   `hcl:"name,optional"`
	Rate      *float64 `hcl:"rate"`
	Unit      string   `hcl:"unit,optional"`
	MinCharge *float64 `hcl:"min_charge"`
}

type vehicleBlock struct {
	Type   string   `hcl:"type,label"`
	Name   string   `hcl:"name,optional"`
	Hourly *float64 `hcl:"hourly"`
	PerKm  *float64 `hcl:"per_km"`
}

type surchargeBlock struct {
	LocalFuelPct     *float64 `hcl:"local_fuel_pct"`
	LongHaulFuelPct  *float64 `hcl:"long_haul_fuel_pct"`
	ContainerFuelPct *float64 `hcl:"container_fuel_pct"`
	RoadToll         *float64 `hcl:"road_toll"`
	TransportDGFee   *float64 `hcl:"transport_dg_fee"`
	DGStoragePct     *float64 `hcl:"dg_storage_pct"`
	FumigationFee    *float64 `hcl:"fumigation_fee"`
}

// LoadFile applies overrides from an HCL file onto the table
func (t *Table) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return errors.Rate("failed to parse rates file", diags)
	}
	return t.applyBody(file.Body, path)
}

// LoadBytes applies overrides from in-memory HCL source onto the table
func (t *Table) LoadBytes(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return errors.Rate("failed to parse rates source", diags)
	}
	return t.applyBody(file.Body, filename)
}

func (t *Table) applyBody(body hcl.Body, name string) error {
	var overrides overrideFile
	if diags := gohcl.DecodeBody(body, nil, &overrides); diags.HasErrors() {
		return errors.Rate("failed to decode rates overrides", diags)
	}

	for _, block := range overrides.Storage {
		storageType := quote.StorageType(block.Type)
		entry, ok := t.Storage[storageType]
		if !ok {
			return errors.Newf(errors.TypeRate, "unknown storage type in overrides: %s", block.Type)
		}
		if block.Name != "" {
			entry.DisplayName = block.Name
		}
		if block.Rate != nil {
			entry.Rate = decimal.NewFromFloat(*block.Rate)
		}
		if block.Unit != "" {
			entry.Unit = BillingUnit(block.Unit)
		}
		if block.MinCharge != nil {
			entry.MinCharge = decimal.NewFromFloat(*block.MinCharge)
		}
		t.Storage[storageType] = entry
	}

	for _, block := range overrides.Vehicle {
		entry, ok := t.Vehicles[block.Type]
		if !ok {
			// New vehicle types may be introduced entirely from the file.
			entry = VehicleRate{DisplayName: block.Type}
		}
		if block.Name != "" {
			entry.DisplayName = block.Name
		}
		if block.Hourly != nil {
			entry.Hourly = decimal.NewFromFloat(*block.Hourly)
		}
		if block.PerKm != nil {
			entry.PerKm = decimal.NewFromFloat(*block.PerKm)
		}
		t.Vehicles[block.Type] = entry
	}

	if s := overrides.Surcharges; s != nil {
		if s.LocalFuelPct != nil {
			t.LocalFuelPct = decimal.NewFromFloat(*s.LocalFuelPct)
		}
		if s.LongHaulFuelPct != nil {
			t.LongHaulFuelPct = decimal.NewFromFloat(*s.LongHaulFuelPct)
		}
		if s.ContainerFuelPct != nil {
			t.ContainerFuelPct = decimal.NewFromFloat(*s.ContainerFuelPct)
		}
		if s.RoadToll != nil {
			t.RoadToll = decimal.NewFromFloat(*s.RoadToll)
		}
		if s.TransportDGFee != nil {
			t.TransportDGFee = decimal.NewFromFloat(*s.TransportDGFee)
		}
		if s.DGStoragePct != nil {
			t.DGStoragePct = decimal.NewFromFloat(*s.DGStoragePct)
		}
		if s.FumigationFee != nil {
			t.FumigationFee = decimal.NewFromFloat(*s.FumigationFee)
		}
	}

	logging.Debug("applied rate overrides",
		zap.String("source", name),
		zap.Int("storage_blocks", len(overrides.Storage)),
		zap.Int("vehicle_blocks", len(overrides.Vehicle)))
	return nil
}
