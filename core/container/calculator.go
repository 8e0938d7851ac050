// Package container - Container packing rate calculator
// Prices commercial and personal-effects packing with quantity-break
// discounts, packing materials, and DG/fumigation/special handling fees.
package container

import (
	"fmt"

	"go.uber.org/zap"

	"warequote/core/money"
	"warequote/core/quote"
	"warequote/core/rates"
	"warequote/internal/logging"
)

// Calculator prices container packing requests
type Calculator struct {
	rates *rates.Table
}

// NewCalculator creates a container packing calculator
func NewCalculator(table *rates.Table) *Calculator {
	return &Calculator{rates: table}
}

// Calculate prices a container packing request
func (c *Calculator) Calculate(req quote.ContainerRequest) *quote.QuoteResult {
	result := quote.NewQuoteResult()

	card := c.rates.PackingCommercial
	label := "Commercial packing"
	if req.IsPersonalEffects {
		card = c.rates.PackingPersonal
		label = "Personal effects packing"
	}

	base, ok := card[req.ContainerSize]
	if !ok {
		result.MissingInformation = append(result.MissingInformation, "container_size")
		result.AddQuestion("Is that a 20ft or 40ft container?")
		return result
	}

	result.AddItem(quote.LineItem{
		Description: fmt.Sprintf("%s (%s)", label, req.ContainerSize),
		Amount:      base,
		Unit:        "container",
	})

	// Commercial jobs get the single best quantity break; thresholds are
	// ordered descending and are not cumulative.
	if !req.IsPersonalEffects {
		for _, brk := range c.rates.QuantityBreaks[req.ContainerSize] {
			if req.ItemCount >= brk.Threshold {
				// The discount magnitude is rounded before negation.
				result.AddItem(quote.LineItem{
					Description: fmt.Sprintf("Quantity discount (%d+ items)", brk.Threshold),
					Amount:      money.RoundCents(brk.Discount).Neg(),
					Unit:        "flat",
				})
				break
			}
		}
	}

	c.rateMaterials(req.Materials, result)

	if req.HasDangerousGoods {
		// No surcharge line without a piece count to bill against.
		if req.ItemCount > 0 {
			result.AddItem(quote.LineItem{
				Description: "Dangerous goods packing surcharge",
				Amount:      money.MulInt(c.rates.DGPerPiece, req.ItemCount),
				Quantity:    req.ItemCount,
				Unit:        "item",
			})
		}
		result.AddMessage("Dangerous goods must be declared on the packing list with UN numbers before the container is packed.")
	}
	if req.RequiresFumigation {
		result.AddItem(quote.LineItem{
			Description: "Fumigation",
			Amount:      c.rates.FumigationFee,
			Unit:        "flat",
		})
	}

	for _, tag := range req.SpecialHandling {
		fee, ok := c.rates.SpecialHandlingFees[tag]
		if !ok {
			result.AddMessage(fmt.Sprintf("No special handling fee applies for %q.", tag))
			continue
		}
		result.AddItem(quote.LineItem{
			Description: fmt.Sprintf("Special handling - %s", tag),
			Amount:      fee,
			Unit:        "flat",
		})
	}

	if req.IsPersonalEffects {
		result.AddMessage("Personal effects shipments require a packing inventory and a copy of your passport photo page.")
		result.AddMessage("Transit insurance is recommended for personal effects; we can arrange cover on request.")
	}

	logging.Debug("container packing quote calculated",
		zap.String("container_size", string(req.ContainerSize)),
		zap.Bool("personal_effects", req.IsPersonalEffects),
		zap.Int("item_count", req.ItemCount),
		zap.String("total", result.TotalAmount.StringFixed(2)))
	return result
}

func (c *Calculator) rateMaterials(m *quote.PackingMaterials, result *quote.QuoteResult) {
	if m == nil {
		return
	}
	if m.Cartons > 0 {
		result.AddItem(quote.LineItem{
			Description: "Cartons",
			Amount:      money.MulInt(c.rates.CartonRate, m.Cartons),
			Quantity:    m.Cartons,
			Unit:        "each",
		})
	}
	if m.BubbleWrapMetres > 0 {
		result.AddItem(quote.LineItem{
			Description: "Bubble wrap",
			Amount:      money.MulInt(c.rates.BubbleWrapRate, m.BubbleWrapMetres),
			Quantity:    m.BubbleWrapMetres,
			Unit:        "metre",
		})
	}
	if m.TapeRolls > 0 {
		result.AddItem(quote.LineItem{
			Description: "Packing tape",
			Amount:      money.MulInt(c.rates.TapeRate, m.TapeRolls),
			Quantity:    m.TapeRolls,
			Unit:        "roll",
		})
	}
	if m.Blankets > 0 {
		result.AddItem(quote.LineItem{
			Description: "Furniture blankets",
			Amount:      money.MulInt(c.rates.BlanketRate, m.Blankets),
			Quantity:    m.Blankets,
			Unit:        "each",
		})
	}
	for _, item := range m.SpecialItems {
		if item.Quantity < 1 {
			continue
		}
		result.AddItem(quote.LineItem{
			Description: fmt.Sprintf("Special item - %s", item.Name),
			Amount:      money.MulInt(item.UnitRate, item.Quantity),
			Quantity:    item.Quantity,
			Unit:        "each",
		})
	}
}
