// Package models defines the core domain models for billsettle.
//
// # Models
//
//   - BillDetails: shared fees (delivery, tax, service) not attributable to one person
//   - Participant: one person in the split, with what they ordered and what they paid
//   - SplitResult: a participant's fair share of the bill and resulting net balance
//   - Settlement: one directed payment from a debtor to a creditor
//   - LineItem: an itemized receipt line that can be assigned to a participant
//   - Summary: reconciliation totals for a bill and its payments
//
// Every value is transient. Results are recomputed from scratch on each calculation
// and nothing in the calculator mutates the models it is handed.
//
// # Identity
//
// Participants are identified by ID strings. Names are free-text labels that may be
// empty or repeated, so cross-references (item assignments, settlements) always carry
// the ID alongside the display label.
package models
