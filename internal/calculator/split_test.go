package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsettle/internal/models"
)

func TestCalculateSplits(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
		bill         models.BillDetails
		wantErr      error
		validateFunc func(t *testing.T, results []models.SplitResult)
	}{
		{
			name: "even split",
			participants: []models.Participant{
				{ID: "1", Name: "Alice", OrderedAmount: 50, PaidAmount: 120},
				{ID: "2", Name: "Bob", OrderedAmount: 50, PaidAmount: 0},
			},
			bill: models.BillDetails{Delivery: 10, Tax: 10, Service: 0},
			validateFunc: func(t *testing.T, results []models.SplitResult) {
				// Delivery 5 each, tax 5 each: 60 owed each
				alice, bob := results[0], results[1]
				assert.InDelta(t, 60.0, alice.TotalOwed, 0.01)
				assert.InDelta(t, 60.0, bob.TotalOwed, 0.01)
				assert.InDelta(t, 60.0, alice.NetBalance, 0.01)
				assert.InDelta(t, -60.0, bob.NetBalance, 0.01)
			},
		},
		{
			name: "uneven split",
			participants: []models.Participant{
				{ID: "1", Name: "Alice", OrderedAmount: 80, PaidAmount: 130},
				{ID: "2", Name: "Bob", OrderedAmount: 20, PaidAmount: 0},
			},
			bill: models.BillDetails{Delivery: 10, Tax: 10, Service: 10},
			validateFunc: func(t *testing.T, results []models.SplitResult) {
				// Alice: 80 + 5 delivery + 8 tax + 8 service = 101
				// Bob: 20 + 5 delivery + 2 tax + 2 service = 29
				alice, bob := results[0], results[1]
				assert.InDelta(t, 101.0, alice.TotalOwed, 0.01)
				assert.InDelta(t, 29.0, bob.TotalOwed, 0.01)
				assert.InDelta(t, 8.0, alice.TaxShare, 0.01)
				assert.InDelta(t, 2.0, bob.ServiceShare, 0.01)
				assert.InDelta(t, 5.0, bob.DeliveryShare, 0.01)
				assert.InDelta(t, 29.0, alice.NetBalance, 0.01)
				assert.InDelta(t, -29.0, bob.NetBalance, 0.01)
			},
		},
		{
			name: "no orders entered falls back to equal fees",
			participants: []models.Participant{
				{ID: "1", Name: "Alice"},
				{ID: "2", Name: "Bob"},
				{ID: "3", Name: "Charlie"},
			},
			bill: models.BillDetails{Delivery: 9, Tax: 3, Service: 6},
			validateFunc: func(t *testing.T, results []models.SplitResult) {
				for _, r := range results {
					assert.InDelta(t, 3.0, r.DeliveryShare, 0.001, r.Name)
					assert.InDelta(t, 1.0, r.TaxShare, 0.001, r.Name)
					assert.InDelta(t, 2.0, r.ServiceShare, 0.001, r.Name)
					assert.InDelta(t, 6.0, r.TotalOwed, 0.001, r.Name)
					assert.InDelta(t, -6.0, r.NetBalance, 0.001, r.Name)
				}
			},
		},
		{
			name: "single participant owes the whole bill",
			participants: []models.Participant{
				{ID: "1", Name: "Alice", OrderedAmount: 42, PaidAmount: 50},
			},
			bill: models.BillDetails{Delivery: 3, Tax: 2, Service: 3},
			validateFunc: func(t *testing.T, results []models.SplitResult) {
				require.Len(t, results, 1)
				assert.InDelta(t, 50.0, results[0].TotalOwed, 0.001)
				assert.InDelta(t, 0.0, results[0].NetBalance, 0.001)
			},
		},
		{
			name: "negative values are calculated, not rejected",
			participants: []models.Participant{
				{ID: "1", Name: "Alice", OrderedAmount: 30, PaidAmount: 0},
				{ID: "2", Name: "Bob", OrderedAmount: -10, PaidAmount: 15},
			},
			bill: models.BillDetails{Delivery: -4, Tax: 2, Service: 0},
			validateFunc: func(t *testing.T, results []models.SplitResult) {
				// total ordered 20: Alice ratio 1.5, Bob ratio -0.5
				assert.InDelta(t, 30-2+3, results[0].TotalOwed, 0.001)
				assert.InDelta(t, -10-2-1, results[1].TotalOwed, 0.001)
			},
		},
		{
			name:    "no participants should error",
			bill:    models.BillDetails{Delivery: 10},
			wantErr: ErrInvalidInput,
		},
		{
			name:         "NaN fee should error",
			participants: []models.Participant{{ID: "1", OrderedAmount: 10}},
			bill:         models.BillDetails{Tax: math.NaN()},
			wantErr:      ErrInvalidInput,
		},
		{
			name:         "infinite fee should error",
			participants: []models.Participant{{ID: "1", OrderedAmount: 10}},
			bill:         models.BillDetails{Service: math.Inf(1)},
			wantErr:      ErrInvalidInput,
		},
		{
			name:         "infinite participant amount should error",
			participants: []models.Participant{{ID: "1", PaidAmount: math.Inf(-1)}},
			wantErr:      ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := CalculateSplits(tt.participants, tt.bill)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, results, len(tt.participants))
			if tt.validateFunc != nil {
				tt.validateFunc(t, results)
			}
		})
	}
}

func TestCalculateSplits_PreservesOrderAndInput(t *testing.T) {
	participants := []models.Participant{
		{ID: "c", Name: "Charlie", OrderedAmount: 5, PaidAmount: 1},
		{ID: "a", Name: "Alice", OrderedAmount: 15, PaidAmount: 2},
		{ID: "b", Name: "", OrderedAmount: 30, PaidAmount: 3},
	}
	before := make([]models.Participant, len(participants))
	copy(before, participants)

	results, err := CalculateSplits(participants, models.BillDetails{Delivery: 6, Tax: 5, Service: 5})
	require.NoError(t, err)

	assert.Equal(t, before, participants, "input must not be mutated")
	for i, r := range results {
		assert.Equal(t, participants[i], r.Participant)
	}
}

func TestCalculateSplits_FeePolicies(t *testing.T) {
	participants := []models.Participant{
		{ID: "1", OrderedAmount: 12.5},
		{ID: "2", OrderedAmount: 40},
		{ID: "3", OrderedAmount: 7.25},
		{ID: "4", OrderedAmount: 0},
	}
	bill := models.BillDetails{Delivery: 7, Tax: 4.79, Service: 6.1}

	results, err := CalculateSplits(participants, bill)
	require.NoError(t, err)

	totalOrdered := 12.5 + 40 + 7.25
	for i, r := range results {
		ratio := participants[i].OrderedAmount / totalOrdered
		assert.InDelta(t, bill.Delivery/4, r.DeliveryShare, 1e-9, "delivery is equal regardless of order")
		assert.InDelta(t, bill.Tax*ratio, r.TaxShare, 1e-9, "tax tracks order share")
		assert.InDelta(t, bill.Service*ratio, r.ServiceShare, 1e-9, "service tracks order share")
		assert.InDelta(t, participants[i].OrderedAmount+r.DeliveryShare+r.TaxShare+r.ServiceShare, r.TotalOwed, 1e-9)
	}
}
