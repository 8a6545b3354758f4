package models

import "fmt"

// Summary reconciles what the bill adds up to against what was paid and, optionally,
// against the total printed on the receipt.
type Summary struct {
	// TotalBill is the sum of ordered amounts plus all shared fees.
	TotalBill float64

	// TotalPaid is the sum of paid amounts.
	TotalPaid float64

	// PaidDifference is TotalPaid - TotalBill.
	PaidDifference float64

	// PaidMatched reports whether payments cover the bill to within one cent.
	PaidMatched bool

	// TargetTotal is the receipt total entered by the user, if any.
	TargetTotal *float64

	// TargetDifference is TargetTotal - TotalBill. Zero when no target was given.
	TargetDifference float64

	// TargetMatched reports whether the computed bill matches the receipt total.
	// Always true when no target was given.
	TargetMatched bool
}

// Warnings returns a message for every mismatch in the summary.
func (s Summary) Warnings() []string {
	var warnings []string
	if !s.PaidMatched {
		warnings = append(warnings, fmt.Sprintf("payment mismatch: paid %.2f but bill is %.2f", s.TotalPaid, s.TotalBill))
	}
	if !s.TargetMatched {
		warnings = append(warnings, fmt.Sprintf("order total is off by %.2f", s.TargetDifference))
	}
	return warnings
}
