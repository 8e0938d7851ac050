// Package rules - Disclosure variants
// Business outcomes are structured values; English copy lives only in
// the renderer so the engine stays testable independent of wording.
package rules

import (
	"fmt"

	"warequote/core/quote"
)

// DisclosureKind identifies a business rule outcome
type DisclosureKind string

const (
	// KindIncompatibleServices flags a discouraged service combination
	KindIncompatibleServices DisclosureKind = "incompatible_services"

	// KindDangerousGoods is the per-service DG disclosure
	KindDangerousGoods DisclosureKind = "dangerous_goods"

	// KindPersonalEffectsDocs is the personal effects documentation notice
	KindPersonalEffectsDocs DisclosureKind = "personal_effects_docs"

	// KindPersonalEffectsInsurance is the personal effects insurance notice
	KindPersonalEffectsInsurance DisclosureKind = "personal_effects_insurance"

	// KindLongTermHalfYear is the 26-week discount guidance
	KindLongTermHalfYear DisclosureKind = "long_term_half_year"

	// KindLongTermFullYear is the 52-week discount guidance
	KindLongTermFullYear DisclosureKind = "long_term_full_year"

	// KindFreeFortnight is the first-two-weeks-free guidance
	KindFreeFortnight DisclosureKind = "free_fortnight"
)

// Disclosure is one structured business rule outcome.
// All disclosures are advisory; none blocks quote generation.
type Disclosure struct {
	// Kind identifies the outcome
	Kind DisclosureKind `json:"kind"`

	// Service is the service the disclosure applies to, when specific
	Service quote.ServiceType `json:"service,omitempty"`

	// Other is the counterpart service for incompatibility outcomes
	Other quote.ServiceType `json:"other,omitempty"`
}

// Render converts disclosures to customer-facing text
func Render(disclosures []Disclosure) []string {
	messages := make([]string, 0, len(disclosures))
	for _, d := range disclosures {
		messages = append(messages, renderOne(d))
	}
	return messages
}

func renderOne(d Disclosure) string {
	switch d.Kind {
	case KindIncompatibleServices:
		return fmt.Sprintf(
			"Note: %s and %s are usually quoted separately; we'll confirm whether they can be combined for your job.",
			serviceLabel(d.Service), serviceLabel(d.Other))
	case KindDangerousGoods:
		return fmt.Sprintf(
			"Dangerous goods declared for %s: a safety data sheet and DG declaration are required before work begins.",
			serviceLabel(d.Service))
	case KindPersonalEffectsDocs:
		return "Personal effects require a full packing inventory and photo identification for customs clearance."
	case KindPersonalEffectsInsurance:
		return "We recommend transit insurance for personal effects; standard liability does not cover owner-packed goods."
	case KindLongTermHalfYear:
		return "Storage terms of 26 weeks or more qualify for our half-year discount tier."
	case KindLongTermFullYear:
		return "Storage terms of 52 weeks or more qualify for our best annual discount tier."
	case KindFreeFortnight:
		return "Your first 2 weeks of storage are free on terms longer than 2 weeks."
	}
	return string(d.Kind)
}

func serviceLabel(s quote.ServiceType) string {
	switch s {
	case quote.ServiceStorage:
		return "storage"
	case quote.ServiceTransport:
		return "transport"
	case quote.ServiceContainerPacking:
		return "container packing"
	}
	return string(s)
}
