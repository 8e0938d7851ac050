// Package quote - Quote request types
package quote

import (
	"github.com/shopspring/decimal"
)

// Dimensions holds optional item dimensions in metres.
// Volume and floor area are derived, never stored.
type Dimensions struct {
	// Length in metres
	Length decimal.Decimal `json:"length"`

	// Width in metres
	Width decimal.Decimal `json:"width"`

	// Height in metres
	Height decimal.Decimal `json:"height"`
}

// HasFootprint reports whether length and width are both present
func (d Dimensions) HasFootprint() bool {
	return d.Length.IsPositive() && d.Width.IsPositive()
}

// HasVolume reports whether all three dimensions are present
func (d Dimensions) HasVolume() bool {
	return d.HasFootprint() && d.Height.IsPositive()
}

// Volume returns length x width x height in cubic metres
func (d Dimensions) Volume() decimal.Decimal {
	return d.Length.Mul(d.Width).Mul(d.Height)
}

// FloorArea returns length x width in square metres
func (d Dimensions) FloorArea() decimal.Decimal {
	return d.Length.Mul(d.Width)
}

// StorageRequest describes a storage quote request
type StorageRequest struct {
	// StorageType selects the rate table entry
	StorageType StorageType `json:"storage_type"`

	// Dimensions are required for volumetric and floor-space billing
	Dimensions Dimensions `json:"dimensions,omitempty"`

	// DurationWeeks is the storage term, at least 1
	DurationWeeks int `json:"duration_weeks"`

	// Quantity is the number of items/pallets, at least 1
	Quantity int `json:"quantity"`

	// HasDangerousGoods flags DG handling and surcharges
	HasDangerousGoods bool `json:"has_dangerous_goods"`
}

// TransportRequest describes a transport quote request
type TransportRequest struct {
	// TransportType may be overridden by zone lookup, except "container"
	TransportType TransportType `json:"transport_type"`

	// FromPostcode is the pickup postcode
	FromPostcode string `json:"from_postcode"`

	// ToPostcode is the delivery postcode
	ToPostcode string `json:"to_postcode"`

	// ContainerSize applies to container transport
	ContainerSize ContainerSize `json:"container_size,omitempty"`

	// DurationHours is the estimated local job duration
	DurationHours int `json:"duration_hours,omitempty"`

	// VehicleType selects the vehicle rate entry
	VehicleType string `json:"vehicle_type,omitempty"`

	// IsDangerousGoods flags the DG transport surcharge
	IsDangerousGoods bool `json:"is_dangerous_goods"`

	// ReturnJourney doubles the billed long-haul distance
	ReturnJourney bool `json:"return_journey"`
}

// SpecialItem is a named packing item priced individually
type SpecialItem struct {
	// Name describes the item (e.g., "piano", "artwork crate")
	Name string `json:"name"`

	// Quantity is the item count
	Quantity int `json:"quantity"`

	// UnitRate is the per-item packing rate
	UnitRate decimal.Decimal `json:"unit_rate"`
}

// PackingMaterials lists requested packing consumables
type PackingMaterials struct {
	// Cartons is a carton count
	Cartons int `json:"cartons,omitempty"`

	// BubbleWrapMetres is bubble wrap length in metres
	BubbleWrapMetres int `json:"bubble_wrap_metres,omitempty"`

	// TapeRolls is a tape roll count
	TapeRolls int `json:"tape_rolls,omitempty"`

	// Blankets is a furniture blanket count
	Blankets int `json:"blankets,omitempty"`

	// SpecialItems are individually priced items
	SpecialItems []SpecialItem `json:"special_items,omitempty"`
}

// ContainerRequest describes a container packing quote request
type ContainerRequest struct {
	// ContainerSize selects the base packing rate
	ContainerSize ContainerSize `json:"container_size"`

	// IsPersonalEffects selects the personal-effects rate card
	IsPersonalEffects bool `json:"is_personal_effects"`

	// ItemCount drives quantity-break discounts and DG surcharges
	ItemCount int `json:"item_count"`

	// HasDangerousGoods flags the per-piece DG surcharge
	HasDangerousGoods bool `json:"has_dangerous_goods"`

	// RequiresFumigation flags the flat fumigation fee
	RequiresFumigation bool `json:"requires_fumigation"`

	// SpecialHandling lists handling tags (fragile, temperature_sensitive)
	SpecialHandling []string `json:"special_handling,omitempty"`

	// Materials are optional packing consumables
	Materials *PackingMaterials `json:"packing_materials,omitempty"`
}
