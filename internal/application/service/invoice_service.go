package service

import (
	"context"
	"errors"

	"github.com/op/go-logging"
	"github.com/sangkips/confreg-invoicing/internal/domain/entity"
	"github.com/sangkips/confreg-invoicing/internal/domain/repository"
	"github.com/sangkips/confreg-invoicing/pkg/apperror"
	"github.com/sangkips/confreg-invoicing/pkg/fira"
)

var log = logging.MustGetLogger("service")

// InvoiceService builds FIRA orders from registrations and forwards them.
type InvoiceService struct {
	gateway  repository.InvoiceGateway
	currency string
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(gateway repository.InvoiceGateway, currency string) *InvoiceService {
	return &InvoiceService{
		gateway:  gateway,
		currency: currency,
	}
}

// InvoicePreview is a built order together with its domain breakdown
type InvoicePreview struct {
	Order     *fira.WebshopOrder `json:"order"`
	LineItems []entity.LineItem  `json:"line_items"`
	Totals    entity.OrderTotals `json:"totals"`
}

// SubmitResult is the outcome of a submission. Demo is set when no FIRA
// credential is configured and nothing was sent.
type SubmitResult struct {
	Order   *fira.WebshopOrder  `json:"order"`
	Invoice *fira.InvoiceResult `json:"invoice"`
	Demo    bool                `json:"demo"`
}

// Preview builds the order without contacting FIRA
func (s *InvoiceService) Preview(order *entity.RegistrationOrder) *InvoicePreview {
	items := BuildLineItems(order.TicketName, order.TicketPrice, order.Addons)
	return &InvoicePreview{
		Order:     BuildOrder(order, s.currency),
		LineItems: items,
		Totals:    SumTotals(items),
	}
}

// Submit builds the order and sends it to FIRA. Upstream failures are
// returned as a 502 AppError carrying FIRA's status and body.
func (s *InvoiceService) Submit(ctx context.Context, order *entity.RegistrationOrder) (*SubmitResult, error) {
	built := BuildOrder(order, s.currency)

	result, err := s.gateway.SubmitOrder(ctx, built)
	if err != nil {
		var ie *fira.IntegrationError
		if errors.As(err, &ie) {
			return nil, apperror.NewBadGatewayError("Invoicing provider rejected the order", map[string]interface{}{
				"upstream_status": ie.StatusCode,
				"upstream_body":   ie.Body,
			}, err)
		}
		return nil, err
	}

	if result == nil {
		log.Infof("Demo mode: order %s built but not sent", order.InvoiceNumber)
	}

	return &SubmitResult{
		Order:   built,
		Invoice: result,
		Demo:    result == nil,
	}, nil
}

// Status looks up an order at FIRA. A nil result means unknown.
func (s *InvoiceService) Status(ctx context.Context, externalID string) *fira.InvoiceResult {
	return s.gateway.GetOrderStatus(ctx, externalID)
}

// Enabled reports whether orders are actually forwarded
func (s *InvoiceService) Enabled() bool {
	return s.gateway.IsConfigured()
}
