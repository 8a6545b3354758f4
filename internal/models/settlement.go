package models

// Settlement represents a single proposed payment from a debtor to a creditor.
type Settlement struct {
	// From is the display label of the participant who pays (debtor settling up).
	From string

	// To is the display label of the participant who receives (creditor being paid).
	To string

	// FromID is the ID of the paying participant.
	FromID string

	// ToID is the ID of the receiving participant.
	ToID string

	// Amount is the payment amount, rounded to cents.
	Amount float64
}

// Balance is a participant's outstanding amount that no settlement could absorb.
type Balance struct {
	ParticipantID string
	Label         string
	Amount        float64 // Positive = still owed money, Negative = still owes money
}
