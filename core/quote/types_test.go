package quote

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemRoundsHalfUpAndSums(t *testing.T) {
	q := NewQuoteResult()
	q.AddItem(LineItem{Description: "a", Amount: decimal.RequireFromString("10.005")})
	q.AddItem(LineItem{Description: "b", Amount: decimal.RequireFromString("0.994")})

	assert.Equal(t, "10.01", q.LineItems[0].Amount.StringFixed(2))
	assert.Equal(t, "0.99", q.LineItems[1].Amount.StringFixed(2))
	assert.Equal(t, "11.00", q.TotalAmount.StringFixed(2))
	assert.Equal(t, 1, q.LineItems[0].Quantity, "quantity defaults to 1")
}

func TestQuoteResultJSONRoundTrip(t *testing.T) {
	q := NewQuoteResult()
	q.AddItem(LineItem{Description: "Standard storage (1 week(s))", Amount: decimal.RequireFromString("449.04"), Unit: "m3/week"})
	q.AddItem(LineItem{Description: "Handling fee", Amount: decimal.RequireFromString("10.00"), Quantity: 1, Unit: "item"})
	q.AddMessage("note")
	q.AddQuestion("anything else?")

	data, err := json.Marshal(q)
	require.NoError(t, err)

	var back QuoteResult
	require.NoError(t, json.Unmarshal(data, &back))

	require.Len(t, back.LineItems, 2)
	assert.Equal(t, "Standard storage (1 week(s))", back.LineItems[0].Description)
	assert.True(t, back.LineItems[0].Amount.Equal(decimal.RequireFromString("449.04")),
		"amounts must survive serialization exactly")
	assert.Equal(t, "Handling fee", back.LineItems[1].Description)
	assert.True(t, back.TotalAmount.Equal(q.TotalAmount))
	assert.Equal(t, q.Messages, back.Messages)
	assert.Equal(t, q.FollowUpQuestions, back.FollowUpQuestions)
}

func TestAggregatePreservesOrder(t *testing.T) {
	a := NewQuoteResult()
	a.AddItem(LineItem{Description: "storage", Amount: decimal.RequireFromString("100.00")})
	b := NewQuoteResult()
	b.AddItem(LineItem{Description: "transport", Amount: decimal.RequireFromString("50.50")})
	b.MissingInformation = []string{"container_size"}

	combined := Aggregate(a, b)
	require.Len(t, combined.LineItems, 2)
	assert.Equal(t, "storage", combined.LineItems[0].Description)
	assert.Equal(t, "transport", combined.LineItems[1].Description)
	assert.Equal(t, "150.50", combined.TotalAmount.StringFixed(2))
	assert.Equal(t, []string{"container_size"}, combined.MissingInformation)
}

func TestDimensionsDerivation(t *testing.T) {
	d := Dimensions{
		Length: decimal.RequireFromString("9.02"),
		Width:  decimal.RequireFromString("3.76"),
		Height: decimal.RequireFromString("3.31"),
	}
	require.True(t, d.HasVolume())
	assert.Equal(t, "112.259312", d.Volume().String())
	assert.Equal(t, "33.9152", d.FloorArea().String())

	flat := Dimensions{Length: decimal.RequireFromString("25"), Width: decimal.RequireFromString("20")}
	assert.True(t, flat.HasFootprint())
	assert.False(t, flat.HasVolume())
}
