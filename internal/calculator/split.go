package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsettle/internal/models"
)

// CalculateSplits computes each participant's fair share of the bill and their net balance.
//
// Algorithm:
//   - Delivery is split equally: delivery / n
//   - Tax and service are split by order share: fee × (ordered_i / total_ordered)
//   - If nobody has ordered anything yet, tax and service fall back to an equal split
//   - total_owed = ordered + delivery share + tax share + service share
//   - net_balance = paid - total_owed
//
// Results come back in input order, one per participant. The input is never mutated.
func CalculateSplits(participants []models.Participant, bill models.BillDetails) ([]models.SplitResult, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: must have at least one participant", ErrInvalidInput)
	}
	if !isFinite(bill.Delivery) || !isFinite(bill.Tax) || !isFinite(bill.Service) {
		return nil, fmt.Errorf("%w: bill fees must be finite numbers", ErrInvalidInput)
	}

	totalOrdered := decimal.Zero
	for _, p := range participants {
		if !isFinite(p.OrderedAmount) || !isFinite(p.PaidAmount) {
			return nil, fmt.Errorf("%w: participant %q has a non-finite amount", ErrInvalidInput, p.ID)
		}
		totalOrdered = totalOrdered.Add(toDecimal(p.OrderedAmount))
	}

	n := decimal.NewFromInt(int64(len(participants)))
	delivery := toDecimal(bill.Delivery)
	tax := toDecimal(bill.Tax)
	service := toDecimal(bill.Service)

	deliveryShare := delivery.Div(n)

	results := make([]models.SplitResult, len(participants))
	for i, p := range participants {
		ordered := toDecimal(p.OrderedAmount)

		var taxShare, serviceShare decimal.Decimal
		if totalOrdered.IsZero() {
			// No orders entered yet: keep fees defined by splitting equally
			taxShare = tax.Div(n)
			serviceShare = service.Div(n)
		} else {
			taxShare = tax.Mul(ordered).Div(totalOrdered)
			serviceShare = service.Mul(ordered).Div(totalOrdered)
		}

		totalOwed := ordered.Add(deliveryShare).Add(taxShare).Add(serviceShare)
		netBalance := toDecimal(p.PaidAmount).Sub(totalOwed)

		results[i] = models.SplitResult{
			Participant:   p,
			DeliveryShare: deliveryShare.InexactFloat64(),
			TaxShare:      taxShare.InexactFloat64(),
			ServiceShare:  serviceShare.InexactFloat64(),
			TotalOwed:     totalOwed.InexactFloat64(),
			NetBalance:    netBalance.InexactFloat64(),
		}
	}

	return results, nil
}
