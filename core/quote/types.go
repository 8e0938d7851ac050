// Package quote - Quote value types
// LineItem and QuoteResult are the units every rate calculator produces.
package quote

import (
	"github.com/shopspring/decimal"

	"warequote/core/money"
)

// ServiceType identifies a quotable service
type ServiceType string

const (
	ServiceStorage          ServiceType = "storage"
	ServiceTransport        ServiceType = "transport"
	ServiceContainerPacking ServiceType = "container_packing"
)

// String returns the string representation
func (s ServiceType) String() string {
	return string(s)
}

// StorageType identifies a storage rate class
type StorageType string

const (
	StorageStandard          StorageType = "standard"
	StorageClimateControlled StorageType = "climate_controlled"
	StorageHazardous         StorageType = "hazardous"
	StoragePallet            StorageType = "pallet"
	StorageFloorSpace        StorageType = "floor_space"
)

// TransportType identifies a transport rating mode
type TransportType string

const (
	TransportLocal     TransportType = "local"
	TransportLongHaul  TransportType = "long_haul"
	TransportContainer TransportType = "container"
)

// ContainerSize identifies a shipping container size
type ContainerSize string

const (
	Container20ft ContainerSize = "20ft"
	Container40ft ContainerSize = "40ft"
)

// LineItem represents a single billable quote line
type LineItem struct {
	// Description is a human-readable label
	Description string `json:"description"`

	// Amount is the line total, always rounded half-up to the cent
	Amount decimal.Decimal `json:"amount"`

	// Quantity is the billed count (1 for flat fees)
	Quantity int `json:"quantity"`

	// Unit is the billing unit (e.g., "m3/week", "hours", "each")
	Unit string `json:"unit"`

	// Notes provides additional context
	Notes string `json:"notes,omitempty"`
}

// QuoteResult is the aggregate output of one or more rate calculators
type QuoteResult struct {
	// LineItems are the billable lines, in calculation order
	LineItems []LineItem `json:"line_items"`

	// TotalAmount is the sum of all line item amounts
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Messages are informational or warning strings
	Messages []string `json:"messages,omitempty"`

	// FollowUpQuestions ask the customer for optional detail
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`

	// MissingInformation names slots still required before pricing
	MissingInformation []string `json:"missing_information,omitempty"`
}

// NewQuoteResult creates an empty quote result
func NewQuoteResult() *QuoteResult {
	return &QuoteResult{
		LineItems:   make([]LineItem, 0),
		TotalAmount: decimal.Zero,
	}
}

// AddItem rounds the amount to the cent, appends the line and updates the total
func (q *QuoteResult) AddItem(item LineItem) {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	item.Amount = money.RoundCents(item.Amount)
	q.LineItems = append(q.LineItems, item)
	q.TotalAmount = q.TotalAmount.Add(item.Amount)
}

// AddMessage appends an informational message
func (q *QuoteResult) AddMessage(msg string) {
	q.Messages = append(q.Messages, msg)
}

// AddQuestion appends a follow-up question
func (q *QuoteResult) AddQuestion(question string) {
	q.FollowUpQuestions = append(q.FollowUpQuestions, question)
}

// IsComplete reports whether the result carries no missing slots
func (q *QuoteResult) IsComplete() bool {
	return len(q.MissingInformation) == 0
}

// Merge appends another result's lines, messages and questions onto q
func (q *QuoteResult) Merge(other *QuoteResult) {
	for _, item := range other.LineItems {
		// Amounts are already rounded; keep them byte-exact.
		q.LineItems = append(q.LineItems, item)
		q.TotalAmount = q.TotalAmount.Add(item.Amount)
	}
	q.Messages = append(q.Messages, other.Messages...)
	q.FollowUpQuestions = append(q.FollowUpQuestions, other.FollowUpQuestions...)
	q.MissingInformation = append(q.MissingInformation, other.MissingInformation...)
}

// Aggregate combines per-service results into a single quote,
// preserving service order
func Aggregate(results ...*QuoteResult) *QuoteResult {
	combined := NewQuoteResult()
	for _, r := range results {
		combined.Merge(r)
	}
	return combined
}
