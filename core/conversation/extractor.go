// Package conversation - Extractor boundary
// The production extractor is an external NLP model that turns free
// text into an Extraction. KeywordExtractor is the deterministic
// stand-in used by the CLI and tests.
package conversation

import (
	"regexp"
	"strconv"
	"strings"
)

// Extractor turns a customer's free-text turn into structured slots
type Extractor interface {
	Extract(text string) Extraction
}

// KeywordExtractor is a rule-based extractor for offline use
type KeywordExtractor struct{}

// NewKeywordExtractor creates a keyword extractor
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

var (
	weeksPattern    = regexp.MustCompile(`(\d+)\s*(?:weeks?|wks?)`)
	numberPattern   = regexp.MustCompile(`\b(\d+)\b`)
	discountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

// Extract performs keyword and pattern matching over the turn
func (e *KeywordExtractor) Extract(text string) Extraction {
	lower := strings.ToLower(text)
	var ext Extraction

	switch {
	case containsAny(lower, "restart", "start over", "start again"):
		ext.Intent = IntentRestart
	case containsAny(lower, "discount", "cheaper", "better price", "best price"):
		ext.Intent = IntentDiscountRequest
	case containsAny(lower, "accept", "sounds good", "go ahead", "book it", "yes please"):
		ext.Intent = IntentAccept
	case containsAny(lower, "decline", "reject", "no thanks", "too expensive"):
		ext.Intent = IntentReject
	}

	for _, t := range []string{"climate controlled", "climate_controlled", "hazardous", "pallet", "floor space", "floor_space", "standard"} {
		if strings.Contains(lower, t) {
			value := strings.ReplaceAll(t, " ", "_")
			ext.StorageType = &value
			break
		}
	}

	for _, size := range []string{"small", "medium", "large"} {
		if strings.Contains(lower, size) {
			s := size
			ext.QuantitySize = &s
			break
		}
	}

	if m := weeksPattern.FindStringSubmatch(lower); m != nil {
		if weeks, err := strconv.Atoi(m[1]); err == nil {
			ext.DurationWeeks = &weeks
		}
	} else if ext.StorageType == nil && ext.QuantitySize == nil && ext.Intent == IntentNone {
		// A bare number is taken as weeks when nothing else matched.
		if m := numberPattern.FindStringSubmatch(lower); m != nil {
			if weeks, err := strconv.Atoi(m[1]); err == nil {
				ext.DurationWeeks = &weeks
			}
		}
	}

	if m := discountPattern.FindStringSubmatch(lower); m != nil && ext.Intent == IntentDiscountRequest {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
			ext.DiscountPercent = &pct
		}
	}

	if containsAny(lower, "dangerous goods", "flammable", "hazmat", "chemical") {
		yes := true
		ext.HasDangerousGoods = &yes
	}

	// Free text with no other signal fills the special instructions slot.
	if ext.Intent == IntentNone && ext.StorageType == nil && ext.QuantitySize == nil &&
		ext.DurationWeeks == nil && strings.TrimSpace(text) != "" {
		instructions := strings.TrimSpace(text)
		ext.SpecialInstructions = &instructions
	}

	return ext
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
