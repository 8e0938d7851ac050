// Package conversation - Session and slot types
package conversation

import (
	"time"

	"github.com/google/uuid"

	"warequote/core/quote"
)

// State is a conversation state
type State string

const (
	StateInitial               State = "initial"
	StateGatheringRequirements State = "gathering_requirements"
	StateGeneratingQuote       State = "generating_quote"
	StateQuoteGenerated        State = "quote_generated"
	StateNegotiating           State = "negotiating"
	StateQuoteUpdated          State = "quote_updated"
	StateCompleted             State = "completed"
)

// Role identifies a message author
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the session history
type Message struct {
	// Role is the message author
	Role Role `json:"role"`

	// Content is the message text
	Content string `json:"content"`

	// At is when the message was recorded
	At time.Time `json:"at"`
}

// Slots holds every quote parameter the dialogue can gather.
// Fields are pointers: nil means "not gathered yet", which keeps
// "not mentioned" distinct from an explicitly empty value.
type Slots struct {
	// StorageType is the requested storage class
	StorageType *quote.StorageType `json:"storage_type,omitempty"`

	// QuantitySize is the coarse load size (small, medium, large)
	QuantitySize *string `json:"quantity_size,omitempty"`

	// DurationWeeks is the storage term in weeks
	DurationWeeks *int `json:"duration_weeks,omitempty"`

	// SpecialInstructions is free-text handling guidance ("none" allowed)
	SpecialInstructions *string `json:"special_instructions,omitempty"`

	// Dimensions are optional item dimensions, taken whenever mentioned
	Dimensions *quote.Dimensions `json:"dimensions,omitempty"`

	// HasDangerousGoods is set when the customer mentions DG
	HasDangerousGoods *bool `json:"has_dangerous_goods,omitempty"`
}

// Intent classifies the customer's latest turn beyond slot values
type Intent string

const (
	IntentNone            Intent = ""
	IntentDiscountRequest Intent = "discount_request"
	IntentAccept          Intent = "accept"
	IntentReject          Intent = "reject"
	IntentRestart         Intent = "restart"
)

// Extraction is the structured output of the external NLP extractor
// for a single customer turn. A nil field means the slot was not
// mentioned this turn, not that it is empty.
type Extraction struct {
	StorageType         *string           `json:"storage_type,omitempty"`
	QuantitySize        *string           `json:"quantity_size,omitempty"`
	DurationWeeks       *int              `json:"duration_weeks,omitempty"`
	SpecialInstructions *string           `json:"special_instructions,omitempty"`
	Dimensions          *quote.Dimensions `json:"dimensions,omitempty"`
	HasDangerousGoods   *bool             `json:"has_dangerous_goods,omitempty"`
	DiscountPercent     *float64          `json:"discount_percent,omitempty"`
	Intent              Intent            `json:"intent,omitempty"`
}

// Session is one customer's quoting conversation.
// A session is owned by exactly one user; the surrounding service must
// serialize turns per session id.
type Session struct {
	// ID is the opaque session token
	ID uuid.UUID `json:"id"`

	// UserID references the owning user
	UserID string `json:"user_id"`

	// State is the current conversation state
	State State `json:"state"`

	// Slots is the gathered quote information
	Slots Slots `json:"gathered_info"`

	// History is the append-only message log
	History []Message `json:"history"`

	// Quote is the generated quote, once available
	Quote *quote.QuoteResult `json:"quote,omitempty"`

	// CreatedAt is when the session began
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a session in the initial state
func NewSession(userID string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		State:     StateInitial,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append records a message on the session history
func (s *Session) Append(role Role, content string) {
	now := time.Now().UTC()
	s.History = append(s.History, Message{Role: role, Content: content, At: now})
	s.UpdatedAt = now
}

// Restart returns the session to the initial state, clearing gathered
// slots, the quote and the message history
func (s *Session) Restart() {
	s.State = StateInitial
	s.Slots = Slots{}
	s.Quote = nil
	s.History = nil
	s.UpdatedAt = time.Now().UTC()
}

// Response is the per-turn output returned to the API layer
type Response struct {
	// Messages are statements for the customer, in order
	Messages []string `json:"messages"`

	// Questions ask for the next slot or clarification
	Questions []string `json:"questions,omitempty"`

	// Quote is attached once a quote has been generated this turn
	Quote *quote.QuoteResult `json:"quote,omitempty"`

	// State is the session state after this turn
	State State `json:"state"`
}
