// Package rules - Business rule engine
package rules

import (
	"warequote/core/quote"
)

// ValidationContext carries the facts the rule engine evaluates
type ValidationContext struct {
	// Services are the requested service types, in request order
	Services []quote.ServiceType `json:"services"`

	// HasDangerousGoods flags DG anywhere in the request
	HasDangerousGoods bool `json:"has_dangerous_goods"`

	// IsPersonalEffects flags a personal effects packing job
	IsPersonalEffects bool `json:"is_personal_effects"`

	// StorageDurationWeeks is the requested storage term (0 when no storage)
	StorageDurationWeeks int `json:"storage_duration_weeks"`
}

// compatibility defines which services a service may be combined with.
// Combinability is advisory guidance, not a hard constraint.
var compatibility = map[quote.ServiceType][]quote.ServiceType{
	quote.ServiceStorage:          {quote.ServiceTransport},
	quote.ServiceTransport:        {quote.ServiceStorage, quote.ServiceContainerPacking},
	quote.ServiceContainerPacking: {quote.ServiceTransport},
}

// Engine evaluates business rules over a validation context.
// It never fails: every outcome is an advisory disclosure.
type Engine struct{}

// NewEngine creates a business rule engine
func NewEngine() *Engine {
	return &Engine{}
}

// Validate evaluates all rules and returns structured disclosures
func (e *Engine) Validate(ctx ValidationContext) []Disclosure {
	var out []Disclosure

	for i, a := range ctx.Services {
		for _, b := range ctx.Services[i+1:] {
			if a == b {
				continue
			}
			if !compatibleWith(a, b) {
				out = append(out, Disclosure{Kind: KindIncompatibleServices, Service: a, Other: b})
			}
		}
	}

	if ctx.HasDangerousGoods {
		for _, s := range ctx.Services {
			out = append(out, Disclosure{Kind: KindDangerousGoods, Service: s})
		}
	}

	if ctx.IsPersonalEffects {
		out = append(out,
			Disclosure{Kind: KindPersonalEffectsDocs, Service: quote.ServiceContainerPacking},
			Disclosure{Kind: KindPersonalEffectsInsurance, Service: quote.ServiceContainerPacking})
	}

	if hasService(ctx.Services, quote.ServiceStorage) {
		if ctx.StorageDurationWeeks >= 52 {
			out = append(out, Disclosure{Kind: KindLongTermFullYear, Service: quote.ServiceStorage})
		} else if ctx.StorageDurationWeeks >= 26 {
			out = append(out, Disclosure{Kind: KindLongTermHalfYear, Service: quote.ServiceStorage})
		}
		if ctx.StorageDurationWeeks > 2 {
			out = append(out, Disclosure{Kind: KindFreeFortnight, Service: quote.ServiceStorage})
		}
	}

	return out
}

// Messages evaluates all rules and renders them to customer-facing text
func (e *Engine) Messages(ctx ValidationContext) []string {
	return Render(e.Validate(ctx))
}

// ClarifyingQuestions returns questions that would sharpen the quote
func (e *Engine) ClarifyingQuestions(ctx ValidationContext) []string {
	var questions []string

	if ctx.HasDangerousGoods {
		questions = append(questions, "What dangerous goods class and UN number are we dealing with?")
	}
	if ctx.IsPersonalEffects {
		questions = append(questions, "Which country are the personal effects being shipped to?")
	}
	if hasService(ctx.Services, quote.ServiceStorage) && ctx.StorageDurationWeeks < 1 {
		questions = append(questions, "How many weeks of storage do you need?")
	}

	return questions
}

func compatibleWith(a, b quote.ServiceType) bool {
	for _, c := range compatibility[a] {
		if c == b {
			return true
		}
	}
	return false
}

func hasService(services []quote.ServiceType, s quote.ServiceType) bool {
	for _, have := range services {
		if have == s {
			return true
		}
	}
	return false
}
