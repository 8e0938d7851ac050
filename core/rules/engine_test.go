package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warequote/core/quote"
)

func kinds(disclosures []Disclosure) []DisclosureKind {
	out := make([]DisclosureKind, 0, len(disclosures))
	for _, d := range disclosures {
		out = append(out, d.Kind)
	}
	return out
}

func TestStorageWithPackingIsFlaggedIncompatible(t *testing.T) {
	engine := NewEngine()
	disclosures := engine.Validate(ValidationContext{
		Services: []quote.ServiceType{quote.ServiceStorage, quote.ServiceContainerPacking},
	})
	require.Contains(t, kinds(disclosures), KindIncompatibleServices)

	msg := strings.Join(Render(disclosures), "\n")
	assert.Contains(t, msg, "storage")
	assert.Contains(t, msg, "container packing")
}

func TestCompatibleCombinationsStaySilent(t *testing.T) {
	engine := NewEngine()
	disclosures := engine.Validate(ValidationContext{
		Services: []quote.ServiceType{quote.ServiceStorage, quote.ServiceTransport},
	})
	assert.NotContains(t, kinds(disclosures), KindIncompatibleServices)
}

func TestDGDisclosurePerActiveService(t *testing.T) {
	engine := NewEngine()
	disclosures := engine.Validate(ValidationContext{
		Services:          []quote.ServiceType{quote.ServiceStorage, quote.ServiceTransport},
		HasDangerousGoods: true,
	})

	count := 0
	for _, d := range disclosures {
		if d.Kind == KindDangerousGoods {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestPersonalEffectsDisclosures(t *testing.T) {
	engine := NewEngine()
	got := kinds(engine.Validate(ValidationContext{
		Services:          []quote.ServiceType{quote.ServiceContainerPacking},
		IsPersonalEffects: true,
	}))
	assert.Contains(t, got, KindPersonalEffectsDocs)
	assert.Contains(t, got, KindPersonalEffectsInsurance)
}

func TestStorageDurationTiers(t *testing.T) {
	engine := NewEngine()
	storageCtx := func(weeks int) ValidationContext {
		return ValidationContext{
			Services:             []quote.ServiceType{quote.ServiceStorage},
			StorageDurationWeeks: weeks,
		}
	}

	cases := []struct {
		weeks   int
		want    []DisclosureKind
		exclude []DisclosureKind
	}{
		{2, nil, []DisclosureKind{KindFreeFortnight, KindLongTermHalfYear, KindLongTermFullYear}},
		{3, []DisclosureKind{KindFreeFortnight}, []DisclosureKind{KindLongTermHalfYear}},
		{26, []DisclosureKind{KindLongTermHalfYear, KindFreeFortnight}, []DisclosureKind{KindLongTermFullYear}},
		{52, []DisclosureKind{KindLongTermFullYear, KindFreeFortnight}, []DisclosureKind{KindLongTermHalfYear}},
	}
	for _, tc := range cases {
		got := kinds(engine.Validate(storageCtx(tc.weeks)))
		for _, k := range tc.want {
			assert.Contains(t, got, k, "weeks=%d", tc.weeks)
		}
		for _, k := range tc.exclude {
			assert.NotContains(t, got, k, "weeks=%d", tc.weeks)
		}
	}
}

func TestClarifyingQuestions(t *testing.T) {
	engine := NewEngine()
	questions := engine.ClarifyingQuestions(ValidationContext{
		Services:          []quote.ServiceType{quote.ServiceStorage},
		HasDangerousGoods: true,
	})
	require.Len(t, questions, 2)
	assert.Contains(t, questions[0], "dangerous goods class")
	assert.Contains(t, questions[1], "weeks")
}
