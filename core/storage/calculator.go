// Package storage - Storage rate calculator
// Prices storage by volume, floor area or item count against the rate
// table, with minimum charges, DG surcharges and per-unit handling.
package storage

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"warequote/core/money"
	"warequote/core/quote"
	"warequote/core/rates"
	"warequote/internal/logging"
)

// Calculator prices storage requests
type Calculator struct {
	rates *rates.Table
}

// NewCalculator creates a storage calculator
func NewCalculator(table *rates.Table) *Calculator {
	return &Calculator{rates: table}
}

// Calculate prices a storage request.
// Missing or invalid input never fails: the result carries the missing
// slot names and no line items for them instead.
func (c *Calculator) Calculate(req quote.StorageRequest) *quote.QuoteResult {
	result := quote.NewQuoteResult()

	entry, ok := c.rates.Storage[req.StorageType]
	if !ok {
		result.MissingInformation = append(result.MissingInformation, "storage_type")
		result.AddQuestion(fmt.Sprintf(
			"What type of storage do you need? We offer %s.", storageTypeList(c.rates)))
		return result
	}

	if req.DurationWeeks < 1 {
		result.MissingInformation = append(result.MissingInformation, "duration_weeks")
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// Volumetric and floor-space billing cannot proceed without dimensions.
	var measure decimal.Decimal
	switch {
	case entry.Unit.NeedsVolume():
		if !req.Dimensions.HasVolume() {
			result.MissingInformation = append(result.MissingInformation, "dimensions")
		} else {
			measure = req.Dimensions.Volume()
		}
	case entry.Unit.NeedsFootprint():
		if !req.Dimensions.HasFootprint() {
			result.MissingInformation = append(result.MissingInformation, "dimensions")
		} else {
			measure = req.Dimensions.FloorArea()
		}
	default:
		measure = decimal.NewFromInt(1)
	}

	if !result.IsComplete() {
		return result
	}

	perWeek := money.RoundCents(entry.Rate.Mul(measure))
	multiplier := decimal.NewFromInt(int64(quantity * req.DurationWeeks))
	if entry.Unit.PerDay() {
		multiplier = multiplier.Mul(decimal.NewFromInt(7))
	}
	base := money.RoundCents(perWeek.Mul(multiplier))

	if base.LessThan(entry.MinCharge) {
		base = entry.MinCharge
		result.AddMessage(fmt.Sprintf(
			"A minimum charge of %s applies to %s.", money.Format(entry.MinCharge), entry.DisplayName))
	}

	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("%s (%d week(s))", entry.DisplayName, req.DurationWeeks),
		Amount:      base,
		Quantity:    quantity,
		Unit:        string(entry.Unit),
	})

	if req.HasDangerousGoods {
		result.AddItem(quote.LineItem{
			Description: fmt.Sprintf("Dangerous goods surcharge (%s%%)", c.rates.DGStoragePct.String()),
			Amount:      money.Percent(base, c.rates.DGStoragePct),
			Unit:        "flat",
		})
	}

	result.AddItem(quote.LineItem{
		Description: "Handling fee",
		Amount:      money.MulInt(c.rates.HandlingPerUnit, quantity),
		Quantity:    quantity,
		Unit:        "item",
	})
	if req.HasDangerousGoods {
		result.AddItem(quote.LineItem{
			Description: "Dangerous goods handling",
			Amount:      money.MulInt(c.rates.DGHandlingPerUnit, quantity),
			Quantity:    quantity,
			Unit:        "item",
		})
		result.AddMessage("Dangerous goods are stored and handled under our licensed DG procedures; a current SDS is required before intake.")
	}

	if req.StorageType == quote.StorageClimateControlled {
		result.AddMessage("Climate controlled storage is maintained at 18-22C and 45-55% relative humidity.")
	}
	if req.DurationWeeks > 52 {
		result.AddMessage("Storage terms over 52 weeks qualify for our long-term discount; ask our team when accepting the quote.")
	}

	logging.Debug("storage quote calculated",
		zap.String("storage_type", string(req.StorageType)),
		zap.Int("quantity", quantity),
		zap.Int("duration_weeks", req.DurationWeeks),
		zap.String("total", result.TotalAmount.StringFixed(2)))
	return result
}

func storageTypeList(table *rates.Table) string {
	// Stable display order for prompts.
	order := []quote.StorageType{
		quote.StorageStandard,
		quote.StorageClimateControlled,
		quote.StorageHazardous,
		quote.StoragePallet,
		quote.StorageFloorSpace,
	}
	list := ""
	for _, t := range order {
		if _, ok := table.Storage[t]; !ok {
			continue
		}
		if list != "" {
			list += ", "
		}
		list += string(t)
	}
	return list
}
