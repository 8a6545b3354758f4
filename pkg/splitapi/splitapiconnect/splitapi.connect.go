// Package splitapiconnect wires the billsettle.v1 SplitService onto Connect handlers
// and clients.
package splitapiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/billsettle/pkg/splitapi"
)

// SplitServiceName is the fully-qualified name of the SplitService service.
const SplitServiceName = "billsettle.v1.SplitService"

// Procedure paths, usable as HTTP routes and in interceptors.
const (
	SplitServiceCalculateSplitsProcedure      = "/billsettle.v1.SplitService/CalculateSplits"
	SplitServiceCalculateSettlementsProcedure = "/billsettle.v1.SplitService/CalculateSettlements"
	SplitServiceSettleProcedure               = "/billsettle.v1.SplitService/Settle"
	SplitServiceAssignItemsProcedure          = "/billsettle.v1.SplitService/AssignItems"
	SplitServiceScanReceiptProcedure          = "/billsettle.v1.SplitService/ScanReceipt"
)

// SplitServiceClient is a client for the billsettle.v1.SplitService service.
type SplitServiceClient interface {
	CalculateSplits(context.Context, *connect.Request[splitapi.CalculateSplitsRequest]) (*connect.Response[splitapi.CalculateSplitsResponse], error)
	CalculateSettlements(context.Context, *connect.Request[splitapi.CalculateSettlementsRequest]) (*connect.Response[splitapi.CalculateSettlementsResponse], error)
	Settle(context.Context, *connect.Request[splitapi.SettleRequest]) (*connect.Response[splitapi.SettleResponse], error)
	AssignItems(context.Context, *connect.Request[splitapi.AssignItemsRequest]) (*connect.Response[splitapi.AssignItemsResponse], error)
	ScanReceipt(context.Context, *connect.Request[splitapi.ScanReceiptRequest]) (*connect.Response[splitapi.ScanReceiptResponse], error)
}

// NewSplitServiceClient constructs a client for the billsettle.v1.SplitService service.
// The JSON codec is always installed; options may add interceptors or headers.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(splitapi.JSONCodec{})}, opts...)
	return &splitServiceClient{
		calculateSplits: connect.NewClient[splitapi.CalculateSplitsRequest, splitapi.CalculateSplitsResponse](
			httpClient, baseURL+SplitServiceCalculateSplitsProcedure, opts...),
		calculateSettlements: connect.NewClient[splitapi.CalculateSettlementsRequest, splitapi.CalculateSettlementsResponse](
			httpClient, baseURL+SplitServiceCalculateSettlementsProcedure, opts...),
		settle: connect.NewClient[splitapi.SettleRequest, splitapi.SettleResponse](
			httpClient, baseURL+SplitServiceSettleProcedure, opts...),
		assignItems: connect.NewClient[splitapi.AssignItemsRequest, splitapi.AssignItemsResponse](
			httpClient, baseURL+SplitServiceAssignItemsProcedure, opts...),
		scanReceipt: connect.NewClient[splitapi.ScanReceiptRequest, splitapi.ScanReceiptResponse](
			httpClient, baseURL+SplitServiceScanReceiptProcedure, opts...),
	}
}

type splitServiceClient struct {
	calculateSplits      *connect.Client[splitapi.CalculateSplitsRequest, splitapi.CalculateSplitsResponse]
	calculateSettlements *connect.Client[splitapi.CalculateSettlementsRequest, splitapi.CalculateSettlementsResponse]
	settle               *connect.Client[splitapi.SettleRequest, splitapi.SettleResponse]
	assignItems          *connect.Client[splitapi.AssignItemsRequest, splitapi.AssignItemsResponse]
	scanReceipt          *connect.Client[splitapi.ScanReceiptRequest, splitapi.ScanReceiptResponse]
}

func (c *splitServiceClient) CalculateSplits(ctx context.Context, req *connect.Request[splitapi.CalculateSplitsRequest]) (*connect.Response[splitapi.CalculateSplitsResponse], error) {
	return c.calculateSplits.CallUnary(ctx, req)
}

func (c *splitServiceClient) CalculateSettlements(ctx context.Context, req *connect.Request[splitapi.CalculateSettlementsRequest]) (*connect.Response[splitapi.CalculateSettlementsResponse], error) {
	return c.calculateSettlements.CallUnary(ctx, req)
}

func (c *splitServiceClient) Settle(ctx context.Context, req *connect.Request[splitapi.SettleRequest]) (*connect.Response[splitapi.SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}

func (c *splitServiceClient) AssignItems(ctx context.Context, req *connect.Request[splitapi.AssignItemsRequest]) (*connect.Response[splitapi.AssignItemsResponse], error) {
	return c.assignItems.CallUnary(ctx, req)
}

func (c *splitServiceClient) ScanReceipt(ctx context.Context, req *connect.Request[splitapi.ScanReceiptRequest]) (*connect.Response[splitapi.ScanReceiptResponse], error) {
	return c.scanReceipt.CallUnary(ctx, req)
}

// SplitServiceHandler is implemented by the billsettle.v1.SplitService server.
type SplitServiceHandler interface {
	CalculateSplits(context.Context, *connect.Request[splitapi.CalculateSplitsRequest]) (*connect.Response[splitapi.CalculateSplitsResponse], error)
	CalculateSettlements(context.Context, *connect.Request[splitapi.CalculateSettlementsRequest]) (*connect.Response[splitapi.CalculateSettlementsResponse], error)
	Settle(context.Context, *connect.Request[splitapi.SettleRequest]) (*connect.Response[splitapi.SettleResponse], error)
	AssignItems(context.Context, *connect.Request[splitapi.AssignItemsRequest]) (*connect.Response[splitapi.AssignItemsResponse], error)
	ScanReceipt(context.Context, *connect.Request[splitapi.ScanReceiptRequest]) (*connect.Response[splitapi.ScanReceiptResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(splitapi.JSONCodec{})}, opts...)

	calculateSplitsHandler := connect.NewUnaryHandler(SplitServiceCalculateSplitsProcedure, svc.CalculateSplits, opts...)
	calculateSettlementsHandler := connect.NewUnaryHandler(SplitServiceCalculateSettlementsProcedure, svc.CalculateSettlements, opts...)
	settleHandler := connect.NewUnaryHandler(SplitServiceSettleProcedure, svc.Settle, opts...)
	assignItemsHandler := connect.NewUnaryHandler(SplitServiceAssignItemsProcedure, svc.AssignItems, opts...)
	scanReceiptHandler := connect.NewUnaryHandler(SplitServiceScanReceiptProcedure, svc.ScanReceipt, opts...)

	return "/" + SplitServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceCalculateSplitsProcedure:
			calculateSplitsHandler.ServeHTTP(w, r)
		case SplitServiceCalculateSettlementsProcedure:
			calculateSettlementsHandler.ServeHTTP(w, r)
		case SplitServiceSettleProcedure:
			settleHandler.ServeHTTP(w, r)
		case SplitServiceAssignItemsProcedure:
			assignItemsHandler.ServeHTTP(w, r)
		case SplitServiceScanReceiptProcedure:
			scanReceiptHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSplitServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSplitServiceHandler struct{}

func (UnimplementedSplitServiceHandler) CalculateSplits(context.Context, *connect.Request[splitapi.CalculateSplitsRequest]) (*connect.Response[splitapi.CalculateSplitsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsettle.v1.SplitService.CalculateSplits is not implemented"))
}

func (UnimplementedSplitServiceHandler) CalculateSettlements(context.Context, *connect.Request[splitapi.CalculateSettlementsRequest]) (*connect.Response[splitapi.CalculateSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsettle.v1.SplitService.CalculateSettlements is not implemented"))
}

func (UnimplementedSplitServiceHandler) Settle(context.Context, *connect.Request[splitapi.SettleRequest]) (*connect.Response[splitapi.SettleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsettle.v1.SplitService.Settle is not implemented"))
}

func (UnimplementedSplitServiceHandler) AssignItems(context.Context, *connect.Request[splitapi.AssignItemsRequest]) (*connect.Response[splitapi.AssignItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsettle.v1.SplitService.AssignItems is not implemented"))
}

func (UnimplementedSplitServiceHandler) ScanReceipt(context.Context, *connect.Request[splitapi.ScanReceiptRequest]) (*connect.Response[splitapi.ScanReceiptResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsettle.v1.SplitService.ScanReceipt is not implemented"))
}
