// Package splitapi defines the wire messages of the billsettle.v1 SplitService.
package splitapi

// BillDetails holds the shared fees of a bill.
type BillDetails struct {
	Delivery float64 `json:"delivery"`
	Tax      float64 `json:"tax"`
	Service  float64 `json:"service"`
}

// Participant is one person in the split.
type Participant struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	OrderedAmount float64 `json:"ordered_amount"`
	PaidAmount    float64 `json:"paid_amount"`
}

// SplitResult is a participant's share of the bill.
type SplitResult struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	OrderedAmount float64 `json:"ordered_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	DeliveryShare float64 `json:"delivery_share"`
	TaxShare      float64 `json:"tax_share"`
	ServiceShare  float64 `json:"service_share"`
	TotalOwed     float64 `json:"total_owed"`
	NetBalance    float64 `json:"net_balance"`
}

// Settlement is one payment from a debtor to a creditor.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	FromID string  `json:"from_id"`
	ToID   string  `json:"to_id"`
	Amount float64 `json:"amount"`
}

// Balance is an amount left over after settlement.
type Balance struct {
	ParticipantID string  `json:"participant_id"`
	Label         string  `json:"label"`
	Amount        float64 `json:"amount"`
}

// LineItem is one itemized receipt line.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

// Summary reconciles the bill against payments and the receipt total.
type Summary struct {
	TotalBill        float64  `json:"total_bill"`
	TotalPaid        float64  `json:"total_paid"`
	PaidDifference   float64  `json:"paid_difference"`
	PaidMatched      bool     `json:"paid_matched"`
	TargetTotal      *float64 `json:"target_total,omitempty"`
	TargetDifference float64  `json:"target_difference"`
	TargetMatched    bool     `json:"target_matched"`
}

type CalculateSplitsRequest struct {
	Participants []Participant `json:"participants"`
	Bill         BillDetails   `json:"bill"`
}

type CalculateSplitsResponse struct {
	Results []SplitResult `json:"results"`
}

type CalculateSettlementsRequest struct {
	Results []SplitResult `json:"results"`
}

type CalculateSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
	// Unsettled lists balances left over when the results did not sum to zero.
	Unsettled []Balance `json:"unsettled,omitempty"`
}

type SettleRequest struct {
	Participants []Participant `json:"participants"`
	Bill         BillDetails   `json:"bill"`
	// TargetTotal is the total printed on the receipt, if the user entered one.
	TargetTotal *float64 `json:"target_total,omitempty"`
}

type SettleResponse struct {
	Results     []SplitResult `json:"results"`
	Settlements []Settlement  `json:"settlements"`
	Summary     Summary       `json:"summary"`
	Warnings    []string      `json:"warnings,omitempty"`
	// Unsettled lists balances no settlement could clear on an unreconciled bill.
	Unsettled []Balance `json:"unsettled,omitempty"`
}

type AssignItemsRequest struct {
	Participants []Participant `json:"participants"`
	Items        []LineItem    `json:"items"`
	// Assignments maps item IDs to participant IDs.
	Assignments map[string]string `json:"assignments"`
}

type AssignItemsResponse struct {
	Participants []Participant `json:"participants"`
	Unassigned   []LineItem    `json:"unassigned"`
}

type ScanReceiptRequest struct {
	Image    []byte `json:"image"`
	MimeType string `json:"mime_type"`
}

type ScanReceiptResponse struct {
	Bill       BillDetails `json:"bill"`
	Total      float64     `json:"total"`
	ItemsTotal float64     `json:"items_total"`
	Items      []LineItem  `json:"items"`
}
