package service

import (
	"github.com/mmynk/billsettle/internal/models"
	"github.com/mmynk/billsettle/pkg/splitapi"
)

func billFromAPI(b splitapi.BillDetails) models.BillDetails {
	return models.BillDetails{Delivery: b.Delivery, Tax: b.Tax, Service: b.Service}
}

func billToAPI(b models.BillDetails) splitapi.BillDetails {
	return splitapi.BillDetails{Delivery: b.Delivery, Tax: b.Tax, Service: b.Service}
}

// participantsFromAPI converts wire participants, giving a fresh ID to any that
// arrive without one so settlements can always reference both sides.
func participantsFromAPI(in []splitapi.Participant) []models.Participant {
	out := make([]models.Participant, len(in))
	for i, p := range in {
		participant := models.Participant{ID: p.ID, Name: p.Name}
		if participant.ID == "" {
			participant = models.NewParticipant(p.Name)
		}
		participant.OrderedAmount = p.OrderedAmount
		participant.PaidAmount = p.PaidAmount
		out[i] = participant
	}
	return out
}

func participantsToAPI(in []models.Participant) []splitapi.Participant {
	out := make([]splitapi.Participant, len(in))
	for i, p := range in {
		out[i] = splitapi.Participant{
			ID:            p.ID,
			Name:          p.Name,
			OrderedAmount: p.OrderedAmount,
			PaidAmount:    p.PaidAmount,
		}
	}
	return out
}

func resultsFromAPI(in []splitapi.SplitResult) []models.SplitResult {
	out := make([]models.SplitResult, len(in))
	for i, r := range in {
		out[i] = models.SplitResult{
			Participant: models.Participant{
				ID:            r.ID,
				Name:          r.Name,
				OrderedAmount: r.OrderedAmount,
				PaidAmount:    r.PaidAmount,
			},
			DeliveryShare: r.DeliveryShare,
			TaxShare:      r.TaxShare,
			ServiceShare:  r.ServiceShare,
			TotalOwed:     r.TotalOwed,
			NetBalance:    r.NetBalance,
		}
	}
	return out
}

func resultsToAPI(in []models.SplitResult) []splitapi.SplitResult {
	out := make([]splitapi.SplitResult, len(in))
	for i, r := range in {
		out[i] = splitapi.SplitResult{
			ID:            r.ID,
			Name:          r.Name,
			OrderedAmount: r.OrderedAmount,
			PaidAmount:    r.PaidAmount,
			DeliveryShare: r.DeliveryShare,
			TaxShare:      r.TaxShare,
			ServiceShare:  r.ServiceShare,
			TotalOwed:     r.TotalOwed,
			NetBalance:    r.NetBalance,
		}
	}
	return out
}

func settlementsToAPI(in []models.Settlement) []splitapi.Settlement {
	out := make([]splitapi.Settlement, len(in))
	for i, s := range in {
		out[i] = splitapi.Settlement{
			From:   s.From,
			To:     s.To,
			FromID: s.FromID,
			ToID:   s.ToID,
			Amount: s.Amount,
		}
	}
	return out
}

func balancesToAPI(in []models.Balance) []splitapi.Balance {
	out := make([]splitapi.Balance, len(in))
	for i, b := range in {
		out[i] = splitapi.Balance{ParticipantID: b.ParticipantID, Label: b.Label, Amount: b.Amount}
	}
	return out
}

func summaryToAPI(s models.Summary) splitapi.Summary {
	return splitapi.Summary{
		TotalBill:        s.TotalBill,
		TotalPaid:        s.TotalPaid,
		PaidDifference:   s.PaidDifference,
		PaidMatched:      s.PaidMatched,
		TargetTotal:      s.TargetTotal,
		TargetDifference: s.TargetDifference,
		TargetMatched:    s.TargetMatched,
	}
}

func itemsFromAPI(in []splitapi.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(in))
	for i, item := range in {
		out[i] = models.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: int(item.Quantity),
		}
	}
	return out
}

func itemsToAPI(in []models.LineItem) []splitapi.LineItem {
	out := make([]splitapi.LineItem, len(in))
	for i, item := range in {
		out[i] = splitapi.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: int32(item.Quantity),
		}
	}
	return out
}
