package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/billsettle/internal/assign"
	"github.com/mmynk/billsettle/internal/calculator"
	"github.com/mmynk/billsettle/internal/receipt"
	"github.com/mmynk/billsettle/pkg/splitapi"
	"github.com/mmynk/billsettle/pkg/splitapi/splitapiconnect"
)

// SplitService implements the Connect SplitService
type SplitService struct {
	splitapiconnect.UnimplementedSplitServiceHandler
	scanner receipt.Scanner
}

// NewSplitService creates a new SplitService. scanner may be nil, in which case
// ScanReceipt reports the feature as unavailable.
func NewSplitService(scanner receipt.Scanner) *SplitService {
	return &SplitService{scanner: scanner}
}

// CalculateSplits allocates shared fees and returns each participant's share.
func (s *SplitService) CalculateSplits(ctx context.Context, req *connect.Request[splitapi.CalculateSplitsRequest]) (*connect.Response[splitapi.CalculateSplitsResponse], error) {
	participants := participantsFromAPI(req.Msg.Participants)
	bill := billFromAPI(req.Msg.Bill)

	results, err := calculator.CalculateSplits(participants, bill)
	if err != nil {
		slog.Error("CalculateSplits failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	for _, r := range results {
		slog.Debug("Person split",
			"participant_id", r.ID,
			"ordered", r.OrderedAmount,
			"delivery", r.DeliveryShare,
			"tax", r.TaxShare,
			"service", r.ServiceShare,
			"total_owed", r.TotalOwed,
			"net_balance", r.NetBalance,
		)
	}

	return connect.NewResponse(&splitapi.CalculateSplitsResponse{
		Results: resultsToAPI(results),
	}), nil
}

// CalculateSettlements converts net balances into payments. Balances that do not sum to
// zero are not rejected here: the leftovers are returned so the caller can decide.
func (s *SplitService) CalculateSettlements(ctx context.Context, req *connect.Request[splitapi.CalculateSettlementsRequest]) (*connect.Response[splitapi.CalculateSettlementsResponse], error) {
	settlements, err := calculator.CalculateSettlements(resultsFromAPI(req.Msg.Results))

	resp := &splitapi.CalculateSettlementsResponse{}
	var unsettled *calculator.UnsettledError
	switch {
	case err == nil:
	case errors.As(err, &unsettled):
		slog.Warn("CalculateSettlements left balances unsettled", "error", err)
		resp.Unsettled = balancesToAPI(unsettled.Leftover)
	default:
		slog.Error("CalculateSettlements failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	resp.Settlements = settlementsToAPI(settlements)
	return connect.NewResponse(resp), nil
}

// Settle runs the full calculation: fee allocation, reconciliation summary and settlements.
func (s *SplitService) Settle(ctx context.Context, req *connect.Request[splitapi.SettleRequest]) (*connect.Response[splitapi.SettleResponse], error) {
	participants := participantsFromAPI(req.Msg.Participants)
	bill := billFromAPI(req.Msg.Bill)

	results, err := calculator.CalculateSplits(participants, bill)
	if err != nil {
		slog.Error("Settle: split calculation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	summary, err := calculator.Summarize(participants, bill, req.Msg.TargetTotal)
	if err != nil {
		slog.Error("Settle: summary failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	resp := &splitapi.SettleResponse{
		Results:  resultsToAPI(results),
		Summary:  summaryToAPI(summary),
		Warnings: summary.Warnings(),
	}

	settlements, err := calculator.CalculateSettlements(results)
	var unsettled *calculator.UnsettledError
	switch {
	case err == nil:
	case errors.As(err, &unsettled) && !summary.PaidMatched:
		// Payments don't cover the bill, so leftovers are expected
		slog.Warn("Settle: bill is unreconciled",
			"total_bill", summary.TotalBill,
			"total_paid", summary.TotalPaid,
			"unsettled", len(unsettled.Leftover),
		)
		resp.Unsettled = balancesToAPI(unsettled.Leftover)
	case errors.Is(err, calculator.ErrInvalidInput):
		slog.Error("Settle: settlement input rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	default:
		slog.Error("Settle: settlement failed on a reconciled bill", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	resp.Settlements = settlementsToAPI(settlements)

	slog.Info("Bill settled",
		"participants", len(participants),
		"settlements", len(settlements),
		"paid_matched", summary.PaidMatched,
		"target_matched", summary.TargetMatched,
	)

	return connect.NewResponse(resp), nil
}

// AssignItems applies item assignments to participants' ordered amounts.
func (s *SplitService) AssignItems(ctx context.Context, req *connect.Request[splitapi.AssignItemsRequest]) (*connect.Response[splitapi.AssignItemsResponse], error) {
	items := itemsFromAPI(req.Msg.Items)

	assignments := make(assign.Assignments, len(req.Msg.Assignments))
	for itemID, participantID := range req.Msg.Assignments {
		assignments.Assign(itemID, participantID)
	}

	participants, err := assignments.Apply(participantsFromAPI(req.Msg.Participants), items)
	if err != nil {
		slog.Error("AssignItems failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	unassigned := assignments.Unassigned(items)
	slog.Debug("Items assigned",
		"items", len(items),
		"assigned", len(assignments),
		"unassigned", len(unassigned),
	)

	return connect.NewResponse(&splitapi.AssignItemsResponse{
		Participants: participantsToAPI(participants),
		Unassigned:   itemsToAPI(unassigned),
	}), nil
}

// ScanReceipt forwards a receipt image to the configured scanner.
func (s *SplitService) ScanReceipt(ctx context.Context, req *connect.Request[splitapi.ScanReceiptRequest]) (*connect.Response[splitapi.ScanReceiptResponse], error) {
	if s.scanner == nil {
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("receipt scanning is not configured"))
	}
	if len(req.Msg.Image) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("image required"))
	}

	mimeType := req.Msg.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(req.Msg.Image)
	}

	scan, err := s.scanner.Scan(ctx, req.Msg.Image, mimeType)
	if err != nil {
		slog.Error("ScanReceipt failed", "mime_type", mimeType, "error", err)
		if errors.Is(err, receipt.ErrInvalidScan) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	slog.Info("Receipt scanned", "items", len(scan.Items), "total", scan.Total)

	return connect.NewResponse(&splitapi.ScanReceiptResponse{
		Bill:       billToAPI(scan.BillDetails()),
		Total:      scan.Total,
		ItemsTotal: scan.ItemsTotal(),
		Items:      itemsToAPI(scan.LineItems()),
	}), nil
}
