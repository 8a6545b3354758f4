// Package receipt handles the output of the external receipt-scanning service.
//
// The scanner itself (image parsing, AI extraction) lives outside this repository.
// This package defines the fixed shape it returns, validates it, and converts it into
// the calculator's models.
package receipt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsettle/internal/models"
)

// ErrInvalidScan is returned when a scan result cannot be decoded or fails validation.
var ErrInvalidScan = errors.New("invalid scan result")

// Item is one itemized line as returned by the scanner.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// ScanResult is the fee breakdown and item list extracted from a receipt image.
type ScanResult struct {
	Delivery float64 `json:"delivery" validate:"gte=0"`
	Tax      float64 `json:"tax" validate:"gte=0"`
	Service  float64 `json:"service" validate:"gte=0"`
	Total    float64 `json:"total" validate:"gte=0"`
	Items    []Item  `json:"items" validate:"dive"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the scan result against its field rules.
func (s *ScanResult) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidScan, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidScan, err)
	}
	return nil
}

// Decode reads a scan result as JSON, validates it and assigns IDs to items that
// arrived without one.
func Decode(r io.Reader) (*ScanResult, error) {
	var scan ScanResult
	if err := json.NewDecoder(r).Decode(&scan); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScan, err)
	}
	if err := scan.Validate(); err != nil {
		return nil, err
	}

	for i := range scan.Items {
		if scan.Items[i].ID == "" {
			scan.Items[i].ID = uuid.New().String()
		}
	}
	return &scan, nil
}

// BillDetails returns the shared fees of the receipt.
func (s *ScanResult) BillDetails() models.BillDetails {
	return models.BillDetails{
		Delivery: s.Delivery,
		Tax:      s.Tax,
		Service:  s.Service,
	}
}

// LineItems converts the scanned items into the models used for assignment.
func (s *ScanResult) LineItems() []models.LineItem {
	items := make([]models.LineItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = models.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return items
}

// ItemsTotal returns the sum of all item prices, excluding fees.
func (s *ScanResult) ItemsTotal() float64 {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total.InexactFloat64()
}
