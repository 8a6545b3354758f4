package calculator

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsettle/internal/models"
)

// randomBill builds a reconciled bill: payments add up exactly to orders plus fees.
// Amounts are whole cents so the totals are representable.
func randomBill(rng *rand.Rand, n int) ([]models.Participant, models.BillDetails) {
	cents := func(max int) float64 { return float64(rng.Intn(max)) / 100 }

	bill := models.BillDetails{Delivery: cents(2000), Tax: cents(1500), Service: cents(1500)}
	participants := make([]models.Participant, n)
	totalCents := int(math.Round(bill.Fees() * 100))
	for i := range participants {
		ordered := rng.Intn(10000)
		totalCents += ordered
		participants[i] = models.Participant{
			ID:            fmt.Sprintf("p%d", i),
			Name:          fmt.Sprintf("Person %d", i),
			OrderedAmount: float64(ordered) / 100,
		}
	}

	// Hand the whole bill to a few random payers
	remaining := totalCents
	for remaining > 0 {
		payer := rng.Intn(n)
		amount := rng.Intn(remaining) + 1
		if rng.Intn(3) == 0 {
			amount = remaining
		}
		participants[payer].PaidAmount += float64(amount) / 100
		remaining -= amount
	}
	return participants, bill
}

func TestProperties_RandomBills(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := rng.Intn(8) + 1
		participants, bill := randomBill(rng, n)

		results, err := CalculateSplits(participants, bill)
		require.NoError(t, err)

		// Conservation
		var sum float64
		unbalanced := 0
		for _, r := range results {
			sum += r.NetBalance
			if math.Abs(r.NetBalance) > 0.01 {
				unbalanced++
			}
		}
		require.InDelta(t, 0, sum, 0.01, "round %d: balances must sum to zero", round)

		settlements, err := CalculateSettlements(results)
		require.NoError(t, err, "round %d", round)

		// Minimality bound
		if unbalanced > 0 {
			assert.LessOrEqual(t, len(settlements), unbalanced-1, "round %d", round)
		} else {
			assert.Empty(t, settlements, "round %d", round)
		}

		// Settlement correctness
		remaining := make(map[string]float64, n)
		for _, r := range results {
			remaining[r.ID] = r.NetBalance
		}
		for _, s := range settlements {
			assert.Greater(t, s.Amount, 0.0)
			remaining[s.FromID] += s.Amount
			remaining[s.ToID] -= s.Amount
		}
		for id, bal := range remaining {
			assert.InDelta(t, 0, bal, 0.05, "round %d: %s left with %.4f", round, id, bal)
		}

		// Determinism
		again, err := CalculateSettlements(results)
		require.NoError(t, err)
		assert.Equal(t, settlements, again, "round %d", round)
	}
}

func TestScenarios(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		results, err := CalculateSplits([]models.Participant{
			{ID: "1", Name: "Alice", OrderedAmount: 50, PaidAmount: 120},
			{ID: "2", Name: "Bob", OrderedAmount: 50, PaidAmount: 0},
		}, models.BillDetails{Delivery: 10, Tax: 10, Service: 0})
		require.NoError(t, err)

		settlements, err := CalculateSettlements(results)
		require.NoError(t, err)
		require.Len(t, settlements, 1)
		assert.Equal(t, "Bob", settlements[0].From)
		assert.Equal(t, "Alice", settlements[0].To)
		assert.Equal(t, 60.0, settlements[0].Amount)
	})

	t.Run("uneven split", func(t *testing.T) {
		results, err := CalculateSplits([]models.Participant{
			{ID: "1", Name: "Alice", OrderedAmount: 80, PaidAmount: 130},
			{ID: "2", Name: "Bob", OrderedAmount: 20, PaidAmount: 0},
		}, models.BillDetails{Delivery: 10, Tax: 10, Service: 10})
		require.NoError(t, err)

		settlements, err := CalculateSettlements(results)
		require.NoError(t, err)
		require.Len(t, settlements, 1)
		assert.Equal(t, "Bob", settlements[0].From)
		assert.Equal(t, "Alice", settlements[0].To)
		// Bob's net deficit, not his total owed
		assert.InDelta(t, -results[1].NetBalance, settlements[0].Amount, 0.005)
		assert.Equal(t, 29.0, settlements[0].Amount)
	})

	t.Run("single participant", func(t *testing.T) {
		results, err := CalculateSplits([]models.Participant{
			{ID: "1", Name: "Alice", OrderedAmount: 20, PaidAmount: 26},
		}, models.BillDetails{Delivery: 2, Tax: 2, Service: 2})
		require.NoError(t, err)
		assert.InDelta(t, 26.0, results[0].TotalOwed, 0.001)

		settlements, err := CalculateSettlements(results)
		require.NoError(t, err)
		assert.Empty(t, settlements)
	})
}
