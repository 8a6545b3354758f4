package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsettle/internal/models"
)

// Summarize reconciles a bill against what was paid and, when target is non-nil,
// against the total printed on the receipt. Mismatches are reported, never rejected;
// only non-finite amounts return ErrInvalidInput.
func Summarize(participants []models.Participant, bill models.BillDetails, target *float64) (models.Summary, error) {
	if !isFinite(bill.Delivery) || !isFinite(bill.Tax) || !isFinite(bill.Service) {
		return models.Summary{}, fmt.Errorf("%w: bill fees must be finite numbers", ErrInvalidInput)
	}
	if target != nil && !isFinite(*target) {
		return models.Summary{}, fmt.Errorf("%w: target total must be a finite number", ErrInvalidInput)
	}

	totalBill := toDecimal(bill.Delivery).Add(toDecimal(bill.Tax)).Add(toDecimal(bill.Service))
	totalPaid := decimal.Zero
	for _, p := range participants {
		if !isFinite(p.OrderedAmount) || !isFinite(p.PaidAmount) {
			return models.Summary{}, fmt.Errorf("%w: participant %q has a non-finite amount", ErrInvalidInput, p.ID)
		}
		totalBill = totalBill.Add(toDecimal(p.OrderedAmount))
		totalPaid = totalPaid.Add(toDecimal(p.PaidAmount))
	}

	paidDiff := totalPaid.Sub(totalBill)
	summary := models.Summary{
		TotalBill:      totalBill.InexactFloat64(),
		TotalPaid:      totalPaid.InexactFloat64(),
		PaidDifference: paidDiff.InexactFloat64(),
		PaidMatched:    withinTolerance(paidDiff),
		TargetMatched:  true,
	}

	if target != nil {
		t := *target
		targetDiff := toDecimal(t).Sub(totalBill)
		summary.TargetTotal = &t
		summary.TargetDifference = targetDiff.InexactFloat64()
		summary.TargetMatched = withinTolerance(targetDiff)
	}

	return summary, nil
}
