// Package assign maps itemized receipt lines to the participants who ordered them.
//
// Assignments live outside the Participant model: a participant only carries the
// ordered amount, while this package keeps the item → participant mapping. Apply turns
// the mapping into ordered-amount increments before the bill is split. Removing a
// participant is an explicit cleanup step that frees every item they held.
package assign

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mmynk/billsettle/internal/models"
)

var (
	// ErrUnknownItem is returned when an assignment references an item that is not on the receipt.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnknownParticipant is returned when an assignment references a participant that does not exist.
	ErrUnknownParticipant = errors.New("unknown participant")
)

// Assignments maps item IDs to the ID of the participant the item is assigned to.
// Each item has at most one assignee.
type Assignments map[string]string

// Assign gives the item to the participant, replacing any previous assignee.
func (a Assignments) Assign(itemID, participantID string) {
	a[itemID] = participantID
}

// Unassign frees the item. It is a no-op for items that are not assigned.
func (a Assignments) Unassign(itemID string) {
	delete(a, itemID)
}

// AssigneeOf returns the participant holding the item.
func (a Assignments) AssigneeOf(itemID string) (string, bool) {
	participantID, ok := a[itemID]
	return participantID, ok
}

// RemoveParticipant drops every assignment held by the participant and returns the
// freed item IDs in sorted order.
func (a Assignments) RemoveParticipant(participantID string) []string {
	var freed []string
	for itemID, assignee := range a {
		if assignee == participantID {
			freed = append(freed, itemID)
		}
	}
	for _, itemID := range freed {
		delete(a, itemID)
	}
	sort.Strings(freed)
	return freed
}

// Unassigned returns the items nobody holds, in receipt order.
func (a Assignments) Unassigned(items []models.LineItem) []models.LineItem {
	var free []models.LineItem
	for _, item := range items {
		if _, ok := a[item.ID]; !ok {
			free = append(free, item)
		}
	}
	return free
}

// Apply returns a copy of participants with each assigned item's price added to the
// assignee's ordered amount. The input slice is left untouched.
func (a Assignments) Apply(participants []models.Participant, items []models.LineItem) ([]models.Participant, error) {
	prices := make(map[string]float64, len(items))
	for _, item := range items {
		prices[item.ID] = item.Price
	}

	index := make(map[string]int, len(participants))
	updated := make([]models.Participant, len(participants))
	for i, p := range participants {
		index[p.ID] = i
		updated[i] = p
	}

	// Walk items in receipt order so the sums are reproducible
	for _, item := range items {
		participantID, ok := a[item.ID]
		if !ok {
			continue
		}
		i, ok := index[participantID]
		if !ok {
			return nil, fmt.Errorf("%w: %q (item %q)", ErrUnknownParticipant, participantID, item.ID)
		}
		updated[i].OrderedAmount += prices[item.ID]
	}

	for itemID := range a {
		if _, ok := prices[itemID]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
		}
	}

	return updated, nil
}
