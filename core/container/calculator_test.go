package container

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warequote/core/quote"
	"warequote/core/rates"
)

func newCalc() *Calculator {
	return NewCalculator(rates.Default())
}

func discountLines(result *quote.QuoteResult) []quote.LineItem {
	var out []quote.LineItem
	for _, item := range result.LineItems {
		if strings.Contains(item.Description, "Quantity discount") {
			out = append(out, item)
		}
	}
	return out
}

func TestCommercialQuantityBreakBestThresholdOnly(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize: quote.Container40ft,
		ItemCount:     850,
	})
	require.True(t, result.IsComplete())

	discounts := discountLines(result)
	require.Len(t, discounts, 1, "only the single best threshold applies")
	assert.Equal(t, "-275.00", discounts[0].Amount.StringFixed(2))
	assert.Contains(t, discounts[0].Description, "800+")
}

func TestCommercialQuantityBreakLowerThreshold(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize: quote.Container40ft,
		ItemCount:     450,
	})
	discounts := discountLines(result)
	require.Len(t, discounts, 1)
	assert.Equal(t, "-150.00", discounts[0].Amount.StringFixed(2))
}

func TestNoQuantityBreakBelowThreshold(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize: quote.Container40ft,
		ItemCount:     120,
	})
	assert.Empty(t, discountLines(result))
}

func TestPersonalEffectsGetNoQuantityBreak(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize:     quote.Container40ft,
		IsPersonalEffects: true,
		ItemCount:         900,
	})
	require.True(t, result.IsComplete())
	assert.Equal(t, "2950.00", result.LineItems[0].Amount.StringFixed(2))
	assert.Empty(t, discountLines(result))

	joined := strings.Join(result.Messages, "\n")
	assert.Contains(t, joined, "packing inventory")
	assert.Contains(t, joined, "insurance")
}

func TestPackingMaterialsLines(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize: quote.Container20ft,
		ItemCount:     50,
		Materials: &quote.PackingMaterials{
			Cartons:          10,
			BubbleWrapMetres: 20,
			TapeRolls:        5,
			Blankets:         2,
			SpecialItems: []quote.SpecialItem{
				{Name: "piano", Quantity: 1, UnitRate: decimal.RequireFromString("95.00")},
			},
		},
	})
	require.True(t, result.IsComplete())

	amounts := map[string]string{}
	for _, item := range result.LineItems {
		amounts[item.Description] = item.Amount.StringFixed(2)
	}
	assert.Equal(t, "85.00", amounts["Cartons"])
	assert.Equal(t, "64.00", amounts["Bubble wrap"])
	assert.Equal(t, "20.00", amounts["Packing tape"])
	assert.Equal(t, "30.00", amounts["Furniture blankets"])
	assert.Equal(t, "95.00", amounts["Special item - piano"])
}

func TestDGFumigationAndHandlingFees(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize:      quote.Container20ft,
		ItemCount:          50,
		HasDangerousGoods:  true,
		RequiresFumigation: true,
		SpecialHandling:    []string{"fragile", "temperature_sensitive"},
	})
	require.True(t, result.IsComplete())

	amounts := map[string]string{}
	for _, item := range result.LineItems {
		amounts[item.Description] = item.Amount.StringFixed(2)
	}
	// 50 items x $12.00
	assert.Equal(t, "600.00", amounts["Dangerous goods packing surcharge"])
	assert.Equal(t, "350.00", amounts["Fumigation"])
	assert.Equal(t, "150.00", amounts["Special handling - fragile"])
	assert.Equal(t, "200.00", amounts["Special handling - temperature_sensitive"])
}

func TestDGWithoutItemCountEmitsNoSurchargeLine(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize:     quote.Container20ft,
		HasDangerousGoods: true,
	})
	require.True(t, result.IsComplete())

	for _, item := range result.LineItems {
		assert.NotContains(t, item.Description, "Dangerous goods")
	}
	joined := strings.Join(result.Messages, "\n")
	assert.Contains(t, joined, "declared on the packing list")
}

func TestFractionalDiscountRoundsOnMagnitude(t *testing.T) {
	table := rates.Default()
	table.QuantityBreaks[quote.Container20ft] = []rates.QuantityBreak{
		{Threshold: 100, Discount: decimal.RequireFromString("150.005")},
	}

	result := NewCalculator(table).Calculate(quote.ContainerRequest{
		ContainerSize: quote.Container20ft,
		ItemCount:     150,
	})
	discounts := discountLines(result)
	require.Len(t, discounts, 1)
	assert.Equal(t, "-150.01", discounts[0].Amount.StringFixed(2))
}

func TestUnknownHandlingTagIsAdvisory(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{
		ContainerSize:   quote.Container20ft,
		SpecialHandling: []string{"left_handed"},
	})
	require.True(t, result.IsComplete())
	require.NotEmpty(t, result.Messages)
	assert.Contains(t, result.Messages[0], "left_handed")
}

func TestMissingContainerSize(t *testing.T) {
	result := newCalc().Calculate(quote.ContainerRequest{})
	assert.Contains(t, result.MissingInformation, "container_size")
	assert.Empty(t, result.LineItems)
}
