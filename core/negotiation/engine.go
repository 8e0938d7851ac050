// Package negotiation - Discount eligibility and approval workflow
// Eligibility is scored from customer history; discounts within the
// ceiling auto-approve for established customers, everything else
// waits for an admin decision. A negotiation record is decided exactly
// once and never re-opened.
package negotiation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"warequote/core/money"
	"warequote/core/quote"
	"warequote/internal/errors"
	"warequote/internal/logging"
)

// Status is a negotiation record status
type Status string

const (
	StatusPending        Status = "pending"
	StatusAccepted       Status = "accepted"
	StatusRejected       Status = "rejected"
	StatusCounterOffered Status = "counter_offered"
)

// CustomerHistory summarizes a customer's track record
type CustomerHistory struct {
	// TenureDays is days since the customer's first quote
	TenureDays int `json:"tenure_days"`

	// TotalQuotes is the number of quotes ever issued
	TotalQuotes int `json:"total_quotes"`

	// AcceptedQuotes is the number of quotes the customer accepted
	AcceptedQuotes int `json:"accepted_quotes"`

	// TotalSpend is the customer's lifetime accepted-quote value
	TotalSpend decimal.Decimal `json:"total_spend"`
}

// Eligibility is the outcome of discount eligibility scoring
type Eligibility struct {
	// Eligible reports whether any discount may be requested
	Eligible bool `json:"eligible"`

	// MaxDiscountPct is the customer's discount ceiling in percent
	MaxDiscountPct decimal.Decimal `json:"max_discount"`

	// AutoApprove allows in-ceiling discounts without admin review
	AutoApprove bool `json:"auto_approve"`
}

// Negotiation is the audit record of one discount request
type Negotiation struct {
	// ID uniquely identifies the negotiation
	ID uuid.UUID `json:"id"`

	// QuoteID references the quote being negotiated
	QuoteID string `json:"quote_id"`

	// OriginalAmount is the quote total before any discount
	OriginalAmount decimal.Decimal `json:"original_amount"`

	// ProposedAmount is the total the requested discount would produce
	ProposedAmount decimal.Decimal `json:"proposed_amount"`

	// RequestedPct is the requested discount percentage
	RequestedPct decimal.Decimal `json:"requested_pct"`

	// Reason is the customer's stated reason
	Reason string `json:"reason,omitempty"`

	// Status is the record status; it transitions exactly once
	Status Status `json:"status"`

	// AdminID records who decided the negotiation
	AdminID string `json:"admin_id,omitempty"`

	// AdminResponse records the admin's notes
	AdminResponse string `json:"admin_response,omitempty"`

	// CreatedAt is when the request was made
	CreatedAt time.Time `json:"created_at"`

	// DecidedAt is when the record was decided
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// Outcome is the result of a discount action, exposed to the API layer
type Outcome struct {
	// Status is "approved" or "pending_approval"
	Status string `json:"status"`

	// OriginalAmount is the pre-discount total
	OriginalAmount decimal.Decimal `json:"original_amount"`

	// DiscountedAmount is the post-discount total (approved only)
	DiscountedAmount decimal.Decimal `json:"discounted_amount,omitempty"`

	// ApprovedPct is the percentage that was applied (approved only)
	ApprovedPct decimal.Decimal `json:"approved_discount,omitempty"`
}

// Engine runs the negotiation workflow
type Engine struct{}

// NewEngine creates a negotiation engine
func NewEngine() *Engine {
	return &Engine{}
}

// CheckEligibility scores a customer's history into a discount ceiling.
// Every customer is eligible for something; new customers get the base
// ceiling and never auto-approve.
func (e *Engine) CheckEligibility(h CustomerHistory) Eligibility {
	score := decimal.NewFromInt(5)

	if h.TenureDays >= 180 {
		score = score.Add(decimal.NewFromInt(2))
	}
	if h.TenureDays >= 365 {
		score = score.Add(decimal.NewFromInt(3))
	}
	if h.AcceptedQuotes >= 5 {
		score = score.Add(decimal.NewFromInt(2))
	}
	if h.TotalQuotes >= 4 && h.AcceptedQuotes*2 >= h.TotalQuotes {
		score = score.Add(decimal.NewFromInt(3))
	}
	if h.TotalSpend.GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		score = score.Add(decimal.NewFromInt(2))
	}

	cap := decimal.NewFromInt(15)
	if score.GreaterThan(cap) {
		score = cap
	}

	return Eligibility{
		Eligible:       true,
		MaxDiscountPct: score,
		AutoApprove:    h.TenureDays >= 90 && h.AcceptedQuotes >= 2,
	}
}

// ApplyDiscount requests a discount against a quote.
// Auto-approve customers get in-ceiling discounts applied immediately
// and an error above the ceiling. Everyone else gets a pending
// negotiation recorded, with the quote untouched until an admin
// decides.
func (e *Engine) ApplyDiscount(quoteID string, q *quote.QuoteResult, h CustomerHistory, pct decimal.Decimal, reason string) (*Negotiation, *Outcome, error) {
	if pct.LessThanOrEqual(decimal.Zero) || pct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, nil, errors.Input("discount percentage must be between 0 and 100")
	}

	elig := e.CheckEligibility(h)
	if elig.AutoApprove && pct.GreaterThan(elig.MaxDiscountPct) {
		return nil, nil, errors.Negotiation(
			"not eligible: requested discount exceeds the customer's ceiling of " + elig.MaxDiscountPct.String() + "%")
	}

	original := q.TotalAmount
	discounted := discountedTotal(original, pct)

	n := &Negotiation{
		ID:             uuid.New(),
		QuoteID:        quoteID,
		OriginalAmount: original,
		ProposedAmount: discounted,
		RequestedPct:   pct,
		Reason:         reason,
		Status:         StatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if !elig.AutoApprove {
		logging.Info("discount pending approval",
			zap.String("quote_id", quoteID),
			zap.String("requested_pct", pct.String()))
		return n, &Outcome{
			Status:         "pending_approval",
			OriginalAmount: original,
		}, nil
	}

	now := time.Now().UTC()
	n.Status = StatusAccepted
	n.DecidedAt = &now
	q.TotalAmount = discounted
	q.AddMessage("A " + pct.String() + "% discount has been applied to your quote.")

	logging.Info("discount auto-approved",
		zap.String("quote_id", quoteID),
		zap.String("pct", pct.String()),
		zap.String("discounted", discounted.StringFixed(2)))
	return n, &Outcome{
		Status:           "approved",
		OriginalAmount:   original,
		DiscountedAmount: discounted,
		ApprovedPct:      pct,
	}, nil
}

// ApproveDiscount records an admin approval on a pending negotiation
// and recomputes the quote total
func (e *Engine) ApproveDiscount(n *Negotiation, q *quote.QuoteResult, approvedPct decimal.Decimal, adminID, notes string) (*Outcome, error) {
	if n.Status != StatusPending {
		return nil, errors.Negotiation("already decided: negotiation is " + string(n.Status))
	}
	if approvedPct.LessThanOrEqual(decimal.Zero) || approvedPct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, errors.Input("approved percentage must be between 0 and 100")
	}

	now := time.Now().UTC()
	discounted := discountedTotal(n.OriginalAmount, approvedPct)

	n.Status = StatusAccepted
	n.AdminID = adminID
	n.AdminResponse = notes
	n.ProposedAmount = discounted
	n.DecidedAt = &now

	q.TotalAmount = discounted
	q.AddMessage("A " + approvedPct.String() + "% discount has been approved on your quote.")

	logging.Info("discount approved by admin",
		zap.String("negotiation_id", n.ID.String()),
		zap.String("admin_id", adminID),
		zap.String("approved_pct", approvedPct.String()))
	return &Outcome{
		Status:           "approved",
		OriginalAmount:   n.OriginalAmount,
		DiscountedAmount: discounted,
		ApprovedPct:      approvedPct,
	}, nil
}

// RejectDiscount records an admin rejection; the quote stays unchanged
func (e *Engine) RejectDiscount(n *Negotiation, adminID, notes string) error {
	if n.Status != StatusPending {
		return errors.Negotiation("already decided: negotiation is " + string(n.Status))
	}
	now := time.Now().UTC()
	n.Status = StatusRejected
	n.AdminID = adminID
	n.AdminResponse = notes
	n.DecidedAt = &now
	return nil
}

// CounterOffer records an admin counter at a different percentage; the
// quote stays unchanged until the customer accepts the counter through
// a fresh application
func (e *Engine) CounterOffer(n *Negotiation, counterPct decimal.Decimal, adminID, notes string) error {
	if n.Status != StatusPending {
		return errors.Negotiation("already decided: negotiation is " + string(n.Status))
	}
	if counterPct.LessThanOrEqual(decimal.Zero) || counterPct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return errors.Input("counter percentage must be between 0 and 100")
	}
	now := time.Now().UTC()
	n.Status = StatusCounterOffered
	n.AdminID = adminID
	n.AdminResponse = notes
	n.ProposedAmount = discountedTotal(n.OriginalAmount, counterPct)
	n.DecidedAt = &now
	return nil
}

func discountedTotal(original, pct decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(pct.Div(decimal.NewFromInt(100)))
	return money.RoundCents(original.Mul(factor))
}
