// Package conversation - Slot-filling state machine
// Each state expects exactly one next slot. Input that fails the slot's
// validator never advances the state: the customer gets an explicit
// "didn't understand" message and the same question restated.
package conversation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"warequote/core/quote"
	"warequote/core/rules"
	"warequote/core/storage"
	"warequote/internal/errors"
	"warequote/internal/logging"
)

const (
	greeting             = "Welcome! I can put together a storage quote for you."
	didNotUnderstand     = "Sorry, I didn't understand that."
	storageTypeQuestion  = "What type of storage do you need? Options are standard, climate_controlled, hazardous, pallet, or floor_space."
	quantityQuestion     = "How much are you looking to store - small, medium, or large?"
	durationQuestion     = "How many weeks will you need storage for?"
	instructionsQuestion = "Any special instructions we should know about? Say 'none' if not."
	dimensionsQuestion   = "What are the item dimensions (length, width and height in metres)?"
)

// quantity sizes map the coarse load size to a pallet count for pricing
var quantityPallets = map[string]int{
	"small":  5,
	"medium": 15,
	"large":  30,
}

// Machine drives the slot-filling dialogue and quote generation
type Machine struct {
	storage *storage.Calculator
	rules   *rules.Engine
}

// NewMachine creates a conversation state machine
func NewMachine(storageCalc *storage.Calculator, ruleEngine *rules.Engine) *Machine {
	return &Machine{storage: storageCalc, rules: ruleEngine}
}

// HandleTurn processes one customer turn against the session.
// The extraction comes from the external NLP extractor; the raw text is
// recorded on the history only.
func (m *Machine) HandleTurn(s *Session, userText string, ext Extraction) *Response {
	if userText != "" {
		s.Append(RoleCustomer, userText)
	}

	if ext.Intent == IntentRestart {
		s.Restart()
	}

	// Dimensions and DG mentions are merged whenever they appear,
	// independent of which slot is being gathered.
	if ext.Dimensions != nil {
		s.Slots.Dimensions = ext.Dimensions
	}
	if ext.HasDangerousGoods != nil {
		s.Slots.HasDangerousGoods = ext.HasDangerousGoods
	}

	var resp *Response
	switch s.State {
	case StateInitial:
		resp = m.handleInitial(s)
	case StateGatheringRequirements:
		resp = m.handleGathering(s, ext)
	case StateQuoteGenerated, StateQuoteUpdated:
		resp = m.handleQuoteDecision(s, ext)
	case StateNegotiating:
		resp = m.handleNegotiating(s, ext)
	case StateCompleted:
		resp = &Response{
			Messages: []string{"This quote conversation is finished. Say 'restart' to begin a new one."},
		}
	default:
		resp = &Response{Messages: []string{didNotUnderstand}}
	}

	resp.State = s.State
	for _, msg := range resp.Messages {
		s.Append(RoleAssistant, msg)
	}
	for _, q := range resp.Questions {
		s.Append(RoleAssistant, q)
	}
	return resp
}

func (m *Machine) handleInitial(s *Session) *Response {
	s.State = StateGatheringRequirements
	return &Response{
		Messages:  []string{greeting},
		Questions: []string{storageTypeQuestion},
	}
}

func (m *Machine) handleGathering(s *Session, ext Extraction) *Response {
	slot, question := nextSlot(s.Slots)

	filled := false
	switch slot {
	case "storage_type":
		if ext.StorageType != nil {
			if t, ok := parseStorageType(*ext.StorageType); ok {
				s.Slots.StorageType = &t
				filled = true
			}
		}
	case "quantity":
		if ext.QuantitySize != nil {
			size := strings.ToLower(strings.TrimSpace(*ext.QuantitySize))
			if _, ok := quantityPallets[size]; ok {
				s.Slots.QuantitySize = &size
				filled = true
			}
		}
	case "duration":
		if ext.DurationWeeks != nil && *ext.DurationWeeks >= 1 {
			s.Slots.DurationWeeks = ext.DurationWeeks
			filled = true
		}
	case "special_instructions":
		if ext.SpecialInstructions != nil && strings.TrimSpace(*ext.SpecialInstructions) != "" {
			instructions := strings.TrimSpace(*ext.SpecialInstructions)
			s.Slots.SpecialInstructions = &instructions
			filled = true
		}
	}

	if !filled {
		return &Response{
			Messages:  []string{didNotUnderstand},
			Questions: []string{question},
		}
	}

	if next, nextQuestion := nextSlot(s.Slots); next != "" {
		return &Response{Questions: []string{nextQuestion}}
	}

	// Last slot gathered: generate the quote synchronously.
	s.State = StateGeneratingQuote
	return m.generateQuote(s)
}

func (m *Machine) generateQuote(s *Session) *Response {
	storageType := *s.Slots.StorageType
	hasDG := storageType == quote.StorageHazardous
	if s.Slots.HasDangerousGoods != nil && *s.Slots.HasDangerousGoods {
		hasDG = true
	}

	req := quote.StorageRequest{
		StorageType:       storageType,
		Quantity:          quantityPallets[*s.Slots.QuantitySize],
		DurationWeeks:     *s.Slots.DurationWeeks,
		HasDangerousGoods: hasDG,
	}
	if s.Slots.Dimensions != nil {
		req.Dimensions = *s.Slots.Dimensions
	}

	result := m.storage.Calculate(req)

	ctx := rules.ValidationContext{
		Services:             []quote.ServiceType{quote.ServiceStorage},
		HasDangerousGoods:    hasDG,
		StorageDurationWeeks: req.DurationWeeks,
	}
	for _, msg := range m.rules.Messages(ctx) {
		result.AddMessage(msg)
	}

	s.Quote = result
	s.State = StateQuoteGenerated

	resp := &Response{Quote: result}
	if !result.IsComplete() {
		resp.Messages = append(resp.Messages,
			"I need a little more information before I can price that.")
		resp.Questions = append(resp.Questions, result.FollowUpQuestions...)
		if missing(result.MissingInformation, "dimensions") {
			resp.Questions = append(resp.Questions, dimensionsQuestion)
		}
		return resp
	}

	resp.Messages = append(resp.Messages,
		fmt.Sprintf("Here's your quote: %d line item(s), total $%s.",
			len(result.LineItems), result.TotalAmount.StringFixed(2)),
		"You can accept the quote, decline it, or ask about a discount.")

	logging.Info("conversation quote generated",
		zap.String("session_id", s.ID.String()),
		zap.String("storage_type", string(storageType)),
		zap.String("total", result.TotalAmount.StringFixed(2)))
	return resp
}

func (m *Machine) handleQuoteDecision(s *Session, ext Extraction) *Response {
	incomplete := s.Quote == nil || !s.Quote.IsComplete()

	// An incomplete quote is still waiting on dimensions. They have
	// already been merged into the slots this turn, so price again.
	if incomplete && ext.Dimensions != nil {
		s.State = StateGeneratingQuote
		return m.generateQuote(s)
	}

	switch ext.Intent {
	case IntentDiscountRequest:
		s.State = StateNegotiating
		msg := "I've passed your discount request to our team."
		if ext.DiscountPercent != nil {
			msg = fmt.Sprintf("I've passed your request for a %.0f%% discount to our team.", *ext.DiscountPercent)
		}
		return &Response{Messages: []string{msg, "You'll hear back shortly; you can still accept or decline in the meantime."}}
	case IntentAccept:
		if incomplete {
			return &Response{
				Messages:  []string{"I can't finalise this quote until it's fully priced."},
				Questions: []string{dimensionsQuestion},
			}
		}
		s.State = StateCompleted
		return &Response{Messages: []string{"Great - your quote is accepted. Our team will be in touch to arrange the details."}}
	case IntentReject:
		s.State = StateCompleted
		return &Response{Messages: []string{"No problem, we've closed this quote. Come back any time."}}
	}
	if incomplete {
		return &Response{
			Messages:  []string{didNotUnderstand},
			Questions: []string{dimensionsQuestion},
		}
	}
	return &Response{
		Messages:  []string{didNotUnderstand},
		Questions: []string{"You can accept the quote, decline it, or ask about a discount."},
	}
}

func (m *Machine) handleNegotiating(s *Session, ext Extraction) *Response {
	switch ext.Intent {
	case IntentAccept:
		s.State = StateCompleted
		return &Response{Messages: []string{"Accepted - our team will confirm the final pricing with you."}}
	case IntentReject:
		s.State = StateCompleted
		return &Response{Messages: []string{"Understood, we've closed this quote."}}
	}
	return &Response{
		Messages: []string{"Your discount request is still with our team. You can accept or decline the current quote at any time."},
	}
}

// ApplyNegotiatedTotal records a negotiated total on the session quote
// and moves the conversation to quote_updated. Only valid while the
// session is negotiating.
func (m *Machine) ApplyNegotiatedTotal(s *Session, newTotal decimal.Decimal) error {
	if s.State != StateNegotiating {
		return errors.State(fmt.Sprintf("cannot apply negotiated total in state %s", s.State))
	}
	if s.Quote == nil {
		return errors.State("session has no quote to update")
	}
	s.Quote.TotalAmount = newTotal
	s.State = StateQuoteUpdated
	s.Append(RoleAssistant, fmt.Sprintf("Good news - your total has been updated to $%s.", newTotal.StringFixed(2)))
	return nil
}

// nextSlot returns the first ungathered slot and its question
func nextSlot(slots Slots) (string, string) {
	switch {
	case slots.StorageType == nil:
		return "storage_type", storageTypeQuestion
	case slots.QuantitySize == nil:
		return "quantity", quantityQuestion
	case slots.DurationWeeks == nil:
		return "duration", durationQuestion
	case slots.SpecialInstructions == nil:
		return "special_instructions", instructionsQuestion
	}
	return "", ""
}

func parseStorageType(v string) (quote.StorageType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(v))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch quote.StorageType(normalized) {
	case quote.StorageStandard, quote.StorageClimateControlled, quote.StorageHazardous,
		quote.StoragePallet, quote.StorageFloorSpace:
		return quote.StorageType(normalized), true
	}
	return "", false
}

func missing(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
