package calculator

import (
	"container/heap"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsettle/internal/models"
)

// party is one side of a pending settlement. remaining is always a positive magnitude.
type party struct {
	index     int
	id        string
	label     string
	remaining decimal.Decimal
}

// partyHeap orders parties by largest remaining balance first, then by input order.
type partyHeap []*party

func (h partyHeap) Len() int { return len(h) }

func (h partyHeap) Less(i, j int) bool {
	if c := h[i].remaining.Cmp(h[j].remaining); c != 0 {
		return c > 0
	}
	return h[i].index < h[j].index
}

func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *partyHeap) Push(x any) { *h = append(*h, x.(*party)) }

func (h *partyHeap) Pop() any {
	old := *h
	p := old[len(old)-1]
	*h = old[:len(old)-1]
	return p
}

// CalculateSettlements turns net balances into a list of payments that clears them.
//
// Algorithm (greedy matching):
//   - Creditors have net balance > 0.01, debtors < -0.01; everyone else is settled
//   - Take the largest debtor and the largest creditor, ties broken by input order
//   - Pay min(debt, credit) from debtor to creditor and reduce both
//   - Drop whoever reached zero, repeat until a side runs out
//
// Amounts are rounded to cents on the emitted settlements only; balances are reduced
// at full precision. Parties dropped within a cent of zero leave residue behind; a
// leftover no larger than that residue (plus one cent) is treated as drift. Anything
// larger means the balances did not sum to zero: the settlements computed so far are
// returned together with an *UnsettledError.
func CalculateSettlements(results []models.SplitResult) ([]models.Settlement, error) {
	creditors := &partyHeap{}
	debtors := &partyHeap{}
	absorbed := decimal.Zero

	for i, r := range results {
		if !isFinite(r.NetBalance) {
			return nil, fmt.Errorf("%w: participant %q has a non-finite balance", ErrInvalidInput, r.ID)
		}
		balance := toDecimal(r.NetBalance)
		p := &party{index: i, id: r.ID, label: r.Label()}

		switch {
		case balance.GreaterThan(tolerance):
			p.remaining = balance
			*creditors = append(*creditors, p)
		case balance.LessThan(tolerance.Neg()):
			p.remaining = balance.Neg()
			*debtors = append(*debtors, p)
		default:
			absorbed = absorbed.Add(balance.Abs())
		}
	}
	heap.Init(creditors)
	heap.Init(debtors)

	settlements := []models.Settlement{}
	for debtors.Len() > 0 && creditors.Len() > 0 {
		debtor := (*debtors)[0]
		creditor := (*creditors)[0]

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		settlements = append(settlements, models.Settlement{
			From:   debtor.label,
			To:     creditor.label,
			FromID: debtor.id,
			ToID:   creditor.id,
			Amount: amount.Round(2).InexactFloat64(),
		})

		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		absorbed = absorbed.Add(settle(debtors, debtor))
		absorbed = absorbed.Add(settle(creditors, creditor))
	}

	if leftover, total := unsettled(debtors, creditors); total.GreaterThan(absorbed.Add(tolerance)) {
		return settlements, &UnsettledError{Leftover: leftover}
	}

	return settlements, nil
}

// settle removes the top party once its balance is within a cent of zero and returns
// the residue dropped with it, otherwise restores heap order after its balance was reduced.
func settle(h *partyHeap, top *party) decimal.Decimal {
	if top.remaining.LessThanOrEqual(tolerance) {
		heap.Pop(h)
		return top.remaining
	}
	heap.Fix(h, 0)
	return decimal.Zero
}

// unsettled drains whichever pool still holds balances, largest first, and returns
// them with their total magnitude. Debtors are reported with negative amounts.
func unsettled(debtors, creditors *partyHeap) ([]models.Balance, decimal.Decimal) {
	var leftover []models.Balance
	total := decimal.Zero
	for debtors.Len() > 0 {
		p := heap.Pop(debtors).(*party)
		total = total.Add(p.remaining)
		leftover = append(leftover, models.Balance{
			ParticipantID: p.id,
			Label:         p.label,
			Amount:        p.remaining.Neg().InexactFloat64(),
		})
	}
	for creditors.Len() > 0 {
		p := heap.Pop(creditors).(*party)
		total = total.Add(p.remaining)
		leftover = append(leftover, models.Balance{
			ParticipantID: p.id,
			Label:         p.label,
			Amount:        p.remaining.InexactFloat64(),
		})
	}
	return leftover, total
}
