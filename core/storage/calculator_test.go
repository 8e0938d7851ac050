package storage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warequote/core/quote"
	"warequote/core/rates"
)

func dims(l, w, h string) quote.Dimensions {
	return quote.Dimensions{
		Length: decimal.RequireFromString(l),
		Width:  decimal.RequireFromString(w),
		Height: decimal.RequireFromString(h),
	}
}

func newCalc() *Calculator {
	return NewCalculator(rates.Default())
}

func TestFloorSpaceWeeklyRate(t *testing.T) {
	cases := []struct {
		name   string
		length string
		width  string
		want   string
	}{
		{"500 square metres", "25", "20", "8750.00"},
		{"1000 square metres", "50", "20", "17500.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := newCalc().Calculate(quote.StorageRequest{
				StorageType:   quote.StorageFloorSpace,
				Dimensions:    quote.Dimensions{Length: decimal.RequireFromString(tc.length), Width: decimal.RequireFromString(tc.width)},
				DurationWeeks: 1,
				Quantity:      1,
			})
			require.True(t, result.IsComplete())
			require.NotEmpty(t, result.LineItems)
			assert.Equal(t, tc.want, result.LineItems[0].Amount.StringFixed(2))
		})
	}
}

func TestPalletStorageDGHandling(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType:       quote.StoragePallet,
		DurationWeeks:     1,
		Quantity:          8,
		HasDangerousGoods: true,
	})
	require.True(t, result.IsComplete())

	var handling, dgHandling decimal.Decimal
	for _, item := range result.LineItems {
		switch item.Description {
		case "Handling fee":
			handling = item.Amount
		case "Dangerous goods handling":
			dgHandling = item.Amount
		}
	}
	assert.Equal(t, "80.00", handling.StringFixed(2))
	assert.Equal(t, "120.00", dgHandling.StringFixed(2))
	assert.Equal(t, "200.00", handling.Add(dgHandling).StringFixed(2))
}

func TestVolumeStorageExactDecimal(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType:   quote.StorageStandard,
		Dimensions:    dims("9.02", "3.76", "3.31"),
		DurationWeeks: 1,
		Quantity:      1,
	})
	require.True(t, result.IsComplete())
	// 9.02 x 3.76 x 3.31 = 112.259312 m3; x $4.00 = 449.037248 -> 449.04
	// Exact decimal arithmetic is deliberate; see the volume arithmetic
	// note in DESIGN.md.
	assert.Equal(t, "449.04", result.LineItems[0].Amount.StringFixed(2))
}

func TestMinimumChargeClamp(t *testing.T) {
	table := rates.Default()
	result := NewCalculator(table).Calculate(quote.StorageRequest{
		StorageType:   quote.StorageStandard,
		Dimensions:    dims("0.5", "0.5", "0.5"),
		DurationWeeks: 1,
		Quantity:      1,
	})
	require.True(t, result.IsComplete())

	minCharge := table.Storage[quote.StorageStandard].MinCharge
	assert.True(t, result.TotalAmount.GreaterThanOrEqual(minCharge),
		"total %s below minimum charge %s", result.TotalAmount, minCharge)
	assert.Equal(t, minCharge.StringFixed(2), result.LineItems[0].Amount.StringFixed(2))
	require.NotEmpty(t, result.Messages)
	assert.Contains(t, result.Messages[0], "minimum charge")
}

func TestMissingDimensionsIsSoft(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType:   quote.StorageStandard,
		DurationWeeks: 4,
		Quantity:      2,
	})
	assert.Equal(t, []string{"dimensions"}, result.MissingInformation)
	assert.Empty(t, result.LineItems)
	assert.True(t, result.TotalAmount.IsZero())
}

func TestMissingDurationIsSoft(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType: quote.StoragePallet,
		Quantity:    3,
	})
	assert.Contains(t, result.MissingInformation, "duration_weeks")
	assert.Empty(t, result.LineItems)
}

func TestUnknownStorageTypeAsksQuestion(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType:   "underwater",
		DurationWeeks: 1,
		Quantity:      1,
	})
	assert.Contains(t, result.MissingInformation, "storage_type")
	require.NotEmpty(t, result.FollowUpQuestions)
	assert.Contains(t, result.FollowUpQuestions[0], "climate_controlled")
}

func TestDGSurchargeOnBase(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType:       quote.StoragePallet,
		DurationWeeks:     2,
		Quantity:          4,
		HasDangerousGoods: true,
	})
	require.True(t, result.IsComplete())
	// base 8.50 x 4 x 2 = 68.00; surcharge 25% = 17.00
	assert.Equal(t, "68.00", result.LineItems[0].Amount.StringFixed(2))
	assert.Equal(t, "17.00", result.LineItems[1].Amount.StringFixed(2))
}

func TestLongTermAndClimateNotes(t *testing.T) {
	result := newCalc().Calculate(quote.StorageRequest{
		StorageType:   quote.StorageClimateControlled,
		Dimensions:    dims("2", "2", "2"),
		DurationWeeks: 60,
		Quantity:      1,
	})
	require.True(t, result.IsComplete())

	joined := ""
	for _, msg := range result.Messages {
		joined += msg + "\n"
	}
	assert.Contains(t, joined, "humidity")
	assert.Contains(t, joined, "long-term discount")
}
