// Package rates holds the rate tables behind every calculator.
// Defaults are compiled in; operators may override individual entries
// with an HCL file (see hcl.go).
package rates

import (
	"github.com/shopspring/decimal"

	"warequote/core/money"
	"warequote/core/quote"
)

// BillingUnit identifies how a storage rate is applied
type BillingUnit string

const (
	// UnitCubicMetreWeek bills rate x volume per week
	UnitCubicMetreWeek BillingUnit = "m3/week"

	// UnitSquareMetreDay bills rate x floor area per day
	UnitSquareMetreDay BillingUnit = "m2/day"

	// UnitPerItemWeek bills rate per item per week
	UnitPerItemWeek BillingUnit = "item/week"
)

// NeedsVolume reports whether the unit requires full dimensions
func (u BillingUnit) NeedsVolume() bool {
	return u == UnitCubicMetreWeek
}

// NeedsFootprint reports whether the unit requires length and width
func (u BillingUnit) NeedsFootprint() bool {
	return u == UnitSquareMetreDay
}

// PerDay reports whether the rate is a daily rate (billed 7 days/week)
func (u BillingUnit) PerDay() bool {
	return u == UnitSquareMetreDay
}

// StorageRate is one storage rate table entry
type StorageRate struct {
	// DisplayName is used in line item descriptions
	DisplayName string

	// Rate is the unit rate
	Rate decimal.Decimal

	// Unit is the billing unit
	Unit BillingUnit

	// MinCharge is the minimum charge per request
	MinCharge decimal.Decimal
}

// VehicleRate is one transport vehicle rate table entry
type VehicleRate struct {
	// DisplayName is used in line item descriptions
	DisplayName string

	// Hourly is the local hourly rate
	Hourly decimal.Decimal

	// PerKm is the long-haul per-kilometre rate
	PerKm decimal.Decimal
}

// QuantityBreak is a single packing discount threshold
type QuantityBreak struct {
	// Threshold is the minimum item count
	Threshold int

	// Discount is the flat discount applied when the threshold is met
	Discount decimal.Decimal
}

// Table holds every rate used by the calculators
type Table struct {
	// Storage maps storage type to its rate entry
	Storage map[quote.StorageType]StorageRate

	// HandlingPerUnit is the standard per-item handling fee
	HandlingPerUnit decimal.Decimal

	// DGHandlingPerUnit is the additional per-item DG handling fee
	DGHandlingPerUnit decimal.Decimal

	// DGStoragePct is the percent surcharge on the storage base for DG
	DGStoragePct decimal.Decimal

	// Vehicles maps vehicle type to its rate entry
	Vehicles map[string]VehicleRate

	// LocalMinimumHours is the mandatory local billing floor
	LocalMinimumHours int

	// LocalFuelPct is the local fuel surcharge percentage
	LocalFuelPct decimal.Decimal

	// LongHaulFuelPct is the long-haul fuel surcharge percentage
	LongHaulFuelPct decimal.Decimal

	// ContainerFuelPct is the container transport fuel surcharge percentage
	ContainerFuelPct decimal.Decimal

	// RoadToll is the flat toll line added to every transport quote
	RoadToll decimal.Decimal

	// TransportDGFee is the flat DG fee per transported container/load
	TransportDGFee decimal.Decimal

	// ContainerTransportBase maps container size to the flat transport rate
	ContainerTransportBase map[quote.ContainerSize]decimal.Decimal

	// TerminalFee maps container size to the fixed terminal fee
	TerminalFee map[quote.ContainerSize]decimal.Decimal

	// PackingPersonal maps container size to the personal-effects base rate
	PackingPersonal map[quote.ContainerSize]decimal.Decimal

	// PackingCommercial maps container size to the commercial base rate
	PackingCommercial map[quote.ContainerSize]decimal.Decimal

	// QuantityBreaks maps container size to thresholds, ordered descending
	QuantityBreaks map[quote.ContainerSize][]QuantityBreak

	// CartonRate is the per-carton rate
	CartonRate decimal.Decimal

	// BubbleWrapRate is the per-metre bubble wrap rate
	BubbleWrapRate decimal.Decimal

	// TapeRate is the per-roll tape rate
	TapeRate decimal.Decimal

	// BlanketRate is the per-blanket rate
	BlanketRate decimal.Decimal

	// DGPerPiece is the per-item packing DG surcharge
	DGPerPiece decimal.Decimal

	// FumigationFee is the flat fumigation fee
	FumigationFee decimal.Decimal

	// SpecialHandlingFees maps handling tags to flat fees
	SpecialHandlingFees map[string]decimal.Decimal
}

// Default returns the built-in rate tables
func Default() *Table {
	d := money.MustFromString
	return &Table{
		Storage: map[quote.StorageType]StorageRate{
			quote.StorageStandard: {
				DisplayName: "Standard storage",
				Rate:        d("4.00"),
				Unit:        UnitCubicMetreWeek,
				MinCharge:   d("25.00"),
			},
			quote.StorageClimateControlled: {
				DisplayName: "Climate controlled storage",
				Rate:        d("6.50"),
				Unit:        UnitCubicMetreWeek,
				MinCharge:   d("45.00"),
			},
			quote.StorageHazardous: {
				DisplayName: "Hazardous goods storage",
				Rate:        d("8.00"),
				Unit:        UnitCubicMetreWeek,
				MinCharge:   d("65.00"),
			},
			quote.StoragePallet: {
				DisplayName: "Pallet storage",
				Rate:        d("8.50"),
				Unit:        UnitPerItemWeek,
				MinCharge:   d("17.00"),
			},
			quote.StorageFloorSpace: {
				DisplayName: "Floor space storage",
				Rate:        d("2.50"),
				Unit:        UnitSquareMetreDay,
				MinCharge:   d("150.00"),
			},
		},
		HandlingPerUnit:   d("10.00"),
		DGHandlingPerUnit: d("15.00"),
		DGStoragePct:      d("25"),
		Vehicles: map[string]VehicleRate{
			"van":   {DisplayName: "Van", Hourly: d("95.00"), PerKm: d("1.80")},
			"truck": {DisplayName: "Truck", Hourly: d("120.00"), PerKm: d("2.40")},
			"semi":  {DisplayName: "Semi-trailer", Hourly: d("150.00"), PerKm: d("3.10")},
		},
		LocalMinimumHours: 4,
		LocalFuelPct:      d("24"),
		LongHaulFuelPct:   d("15"),
		ContainerFuelPct:  d("19.67"),
		RoadToll:          d("35.00"),
		TransportDGFee:    d("180.00"),
		ContainerTransportBase: map[quote.ContainerSize]decimal.Decimal{
			quote.Container20ft: d("850.00"),
			quote.Container40ft: d("1200.00"),
		},
		TerminalFee: map[quote.ContainerSize]decimal.Decimal{
			quote.Container20ft: d("180.00"),
			quote.Container40ft: d("250.00"),
		},
		PackingPersonal: map[quote.ContainerSize]decimal.Decimal{
			quote.Container20ft: d("1850.00"),
			quote.Container40ft: d("2950.00"),
		},
		PackingCommercial: map[quote.ContainerSize]decimal.Decimal{
			quote.Container20ft: d("1450.00"),
			quote.Container40ft: d("2400.00"),
		},
		QuantityBreaks: map[quote.ContainerSize][]QuantityBreak{
			quote.Container20ft: {
				{Threshold: 400, Discount: d("150.00")},
				{Threshold: 200, Discount: d("75.00")},
			},
			quote.Container40ft: {
				{Threshold: 800, Discount: d("275.00")},
				{Threshold: 400, Discount: d("150.00")},
			},
		},
		CartonRate:     d("8.50"),
		BubbleWrapRate: d("3.20"),
		TapeRate:       d("4.00"),
		BlanketRate:    d("15.00"),
		DGPerPiece:     d("12.00"),
		FumigationFee:  d("350.00"),
		SpecialHandlingFees: map[string]decimal.Decimal{
			"fragile":               d("150.00"),
			"temperature_sensitive": d("200.00"),
		},
	}
}
