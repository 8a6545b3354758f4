package models

import "github.com/google/uuid"

// BillDetails holds the shared fees of a bill.
// All values are expected to be non-negative; the calculator does not enforce it.
type BillDetails struct {
	// Delivery is split equally among all participants.
	Delivery float64

	// Tax is split proportionally to each participant's ordered amount.
	Tax float64

	// Service is split proportionally to each participant's ordered amount.
	Service float64
}

// Fees returns the sum of all shared fees.
func (b BillDetails) Fees() float64 {
	return b.Delivery + b.Tax + b.Service
}

// Participant represents one person taking part in the split.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format when generated).
	// Stable across a session and never reused.
	ID string

	// Name is the display name. May be empty.
	Name string

	// OrderedAmount is the value of items this person personally ordered, excluding fees.
	OrderedAmount float64

	// PaidAmount is the value this person actually paid toward the bill.
	PaidAmount float64
}

// NewParticipant creates a participant with a freshly generated ID and zero amounts.
func NewParticipant(name string) Participant {
	return Participant{ID: uuid.New().String(), Name: name}
}

// Label returns the name used when presenting this participant, falling back to the ID
// when no name has been entered.
func (p Participant) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// SplitResult is one participant's calculated share of the bill.
// This is the output of the allocation algorithm.
type SplitResult struct {
	Participant

	// DeliveryShare is this person's equal share of the delivery fee.
	DeliveryShare float64

	// TaxShare is this person's proportional share of the tax.
	TaxShare float64

	// ServiceShare is this person's proportional share of the service fee.
	ServiceShare float64

	// TotalOwed is the fair share of the full bill: ordered amount plus all fee shares.
	TotalOwed float64

	// NetBalance is PaidAmount - TotalOwed.
	// Positive = owed money back, Negative = still owes money.
	NetBalance float64
}

// LineItem represents a single itemized line extracted from a receipt.
type LineItem struct {
	// ID is the unique identifier for the line.
	ID string

	// Name is the description printed on the receipt (e.g., "Pizza", "Beer").
	Name string

	// Price is the line price as printed, already covering Quantity units.
	Price float64

	// Quantity is the number of units on the line.
	Quantity int
}
